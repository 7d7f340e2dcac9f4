// Package format holds the display helpers shared by every page: Rupiah amounts,
// Indonesian dates and safe markdown.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidPeriod = errors.New("invalid period")
)

var idPrinter = message.NewPrinter(language.Indonesian)

// mdRenderer escapes raw HTML in announcement bodies (WithUnsafe is not set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var monthShort = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// Rupiah formats an amount as IDR without decimals, e.g. Rp65.000.
func Rupiah(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + "Rp" + idPrinter.Sprintf("%d", n)
}

// ParseTime accepts the timestamp shapes the API emits. Zone-less values are read in time.Local.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(time.Local), true
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date renders "05 Januari 2025". Unparseable input is returned as-is.
func Date(s string) string {
	t, ok := ParseTime(s)
	if !ok {
		return s
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// ShortDate renders "5/1/2025".
func ShortDate(s string) string {
	t, ok := ParseTime(s)
	if !ok {
		return s
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// DateTime renders "05 Jan 2025, 07.00".
func DateTime(s string) string {
	t, ok := ParseTime(s)
	if !ok {
		return s
	}
	return fmt.Sprintf("%02d %s %d, %02d.%02d", t.Day(), monthShort[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// Period renders an invoice period as "Maret 2025".
func Period(s string) string {
	t, ok := ParseTime(s)
	if !ok {
		return s
	}
	return MonthName(t.Month()) + " " + fmt.Sprint(t.Year())
}

func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// StatusLabel turns "waiting_verification" into "waiting verification".
func StatusLabel(status string) string {
	return strings.Replace(status, "_", " ", 1)
}

// Markdown renders announcement content to HTML.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		log.Printf("markdown render failed: %v", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// ParseAmount reads a positive form amount such as "65000" or "65000.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}
	return d, nil
}

// NormalizePeriod turns a month input "2025-03" into the first day "2025-03-01".
func NormalizePeriod(s string) (string, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return t.Format("2006-01-02"), nil
}

// Funcs is the template function map registered on the view engine.
func Funcs() map[string]interface{} {
	return map[string]interface{}{
		"rupiah":        Rupiah,
		"tanggal":       Date,
		"tanggalPendek": ShortDate,
		"waktu":         DateTime,
		"periode":       Period,
		"statusLabel":   func(v interface{}) string { return StatusLabel(fmt.Sprint(v)) },
		"markdown":      Markdown,
	}
}
