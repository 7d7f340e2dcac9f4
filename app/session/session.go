// Package session keeps the API token and role in two browser cookies.
package session

import (
	"errors"
	"time"

	"github.com/dimasdaffa/fe-rembugwarga/app/config"
	"github.com/dimasdaffa/fe-rembugwarga/app/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenCookie = "auth_token"
	RoleCookie  = "user_role"
	issuer      = "rembug-warga"
)

// Session is what the browser holds. Either field may be empty.
type Session struct {
	Token string
	Role  models.Role
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

type roleClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Store reads and writes the session cookie pair. The role cookie is signed so
// a browser cannot promote itself to pengurus.
type Store struct {
	secret []byte
	secure bool
	maxAge time.Duration
	now    func() time.Time
}

func NewStore(cfg config.SessionConfig) *Store {
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}
	return &Store{
		secret: []byte(cfg.Secret),
		secure: cfg.CookieSecure,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Read returns the current session. A role cookie that fails verification reads as no role.
func (s *Store) Read(c *fiber.Ctx) Session {
	sess := Session{Token: c.Cookies(TokenCookie)}
	if raw := c.Cookies(RoleCookie); raw != "" {
		if role, err := s.verifyRole(raw); err == nil {
			sess.Role = role
		}
	}
	return sess
}

// Save writes both cookies.
func (s *Store) Save(c *fiber.Ctx, token string, role models.Role) error {
	if token == "" {
		return errors.New("session: empty token")
	}
	signed, err := s.signRole(role)
	if err != nil {
		return err
	}
	expires := s.now().Add(s.maxAge)
	c.Cookie(s.cookie(TokenCookie, token, expires))
	c.Cookie(s.cookie(RoleCookie, signed, expires))
	return nil
}

// Clear expires both cookies together.
func (s *Store) Clear(c *fiber.Ctx) {
	past := s.now().Add(-time.Hour)
	c.Cookie(s.cookie(TokenCookie, "", past))
	c.Cookie(s.cookie(RoleCookie, "", past))
}

func (s *Store) cookie(name, value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: "Lax",
	}
}

func (s *Store) signRole(role models.Role) (string, error) {
	now := s.now()
	claims := roleClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Store) verifyRole(raw string) (models.Role, error) {
	token, err := jwt.ParseWithClaims(raw, &roleClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*roleClaims); ok && token.Valid {
		return models.ParseRole(claims.Role), nil
	}
	return "", jwt.ErrInvalidKey
}
