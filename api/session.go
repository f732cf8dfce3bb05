package api

import (
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "stringshop_session"

// SessionCookie issues the session cookie for a logged-in user. The payload
// is an HS256 JWT holding the user id, username and expiry; there is no
// server-side session store.
func SessionCookie(secret string, userID int64, username string, d time.Duration) (*http.Cookie, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(d).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    tokenStr,
		Path:     "/",
		MaxAge:   int(d / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// clearedSessionCookie expires the session cookie in the browser.
func clearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// sessionFromRequest extracts and verifies the session cookie. A missing,
// malformed, tampered or expired token all read as anonymous.
func sessionFromRequest(r *http.Request, secret string) (int64, string, bool) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c.Value == "" {
		return 0, "", false
	}

	token, err := jwt.Parse(c.Value, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		logger.Debug("session token rejected", slog.Any("err", err))
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}

	var userID int64
	switch id := claims["user_id"].(type) {
	case float64:
		userID = int64(id)
	case int64:
		userID = id
	default:
		return 0, "", false
	}

	username, _ := claims["username"].(string)

	return userID, username, true
}
