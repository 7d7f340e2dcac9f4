// Package apiclient talks to the Rembug Warga REST API on behalf of a signed-in browser.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrRequestFailed matches every *RequestError.
var ErrRequestFailed = errors.New("request failed")

// RequestError is returned for any non-2xx response and for transport or decode
// failures. Status is 0 when no HTTP response was read.
type RequestError struct {
	Method    string
	Path      string
	Status    int
	Message   string
	RequestID string
	Err       error
}

func (e *RequestError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: request failed", e.Method, e.Path)
	if e.Status != 0 {
		fmt.Fprintf(&b, " with status %d", e.Status)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *RequestError) Is(target error) bool { return target == ErrRequestFailed }

func (e *RequestError) Unwrap() error { return e.Err }

// Unauthorized reports whether the API rejected the token itself.
func (e *RequestError) Unauthorized() bool { return e.Status == http.StatusUnauthorized }

// MessageOr returns the server message, or fallback when the server sent none.
func MessageOr(err error, fallback string) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Unauthorized()
}

// Body is an outbound request payload.
type Body interface {
	encode() (io.Reader, string, error)
}

type jsonBody struct{ v interface{} }

// JSON sends v as application/json.
func JSON(v interface{}) Body { return jsonBody{v: v} }

func (b jsonBody) encode() (io.Reader, string, error) {
	buf, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(buf), "application/json", nil
}

type fileBody struct {
	field    string
	filename string
	r        io.Reader
}

// File sends one file as multipart/form-data under field.
func File(field, filename string, r io.Reader) Body {
	return fileBody{field: field, filename: filename, r: r}
}

func (b fileBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(b.field, b.filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, b.r); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Get fetches path and decodes the JSON response into out (if non-nil).
func (c *Client) Get(ctx context.Context, path, token string, out interface{}) error {
	return c.Send(ctx, http.MethodGet, path, token, nil, out)
}

// Send issues method on path with an optional body and decodes the response into out.
func (c *Client) Send(ctx context.Context, method, path, token string, body Body, out interface{}) error {
	requestID := uuid.New().String()
	fail := func(status int, msg string, err error) error {
		return &RequestError{Method: method, Path: path, Status: status, Message: msg, RequestID: requestID, Err: err}
	}

	var reader io.Reader
	contentType := ""
	if body != nil {
		var err error
		reader, contentType, err = body.encode()
		if err != nil {
			return fail(0, "", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fail(0, "", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("api %s %s [%s] transport error: %v", method, path, requestID, err)
		return fail(0, "", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(respBody)
		log.Printf("api %s %s [%s] status %d: %s", method, path, requestID, resp.StatusCode, msg)
		return fail(resp.StatusCode, msg, nil)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		log.Printf("api %s %s [%s] decode error: %v", method, path, requestID, err)
		return fail(resp.StatusCode, "", err)
	}
	return nil
}

// errorMessage pulls "message" (or "error") out of an error body.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
