package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

var ErrInvalidCookie = errors.New("invalid browser cookie")

// Cookies issues and verifies the signed cookie that identifies a browser.
// The cookie carries only the browser ID; the backend token stays in the Store.
type Cookies struct {
	Name   string
	Secure bool
	key    []byte
}

func NewCookies(name string, key []byte, secure bool) *Cookies {
	return &Cookies{Name: name, Secure: secure, key: key}
}

// Issue mints a new browser ID and its signed cookie value.
func (c *Cookies) Issue() (string, string, error) {
	browserID := uuid.NewString()
	claims := &models.BrowserClaims{
		BrowserID: browserID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	value, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign browser cookie: %w", err)
	}
	return browserID, value, nil
}

// Parse verifies a cookie value and returns the browser ID it carries.
func (c *Cookies) Parse(value string) (string, error) {
	claims := &models.BrowserClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		return c.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidCookie
	}
	if _, err := uuid.Parse(claims.BrowserID); err != nil {
		return "", ErrInvalidCookie
	}
	return claims.BrowserID, nil
}
