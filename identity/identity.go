package identity

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	ClaimsKey = "claims"
	TokenKey  = "token"

	// nameIdentifierClaim is how ASP.NET identity providers spell the subject.
	nameIdentifierClaim = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrTokenExpired = errors.New("token has expired")
)

var subjectClaims = []string{"sub", "nameid", nameIdentifierClaim}

// UserID returns the numeric id of the authenticated caller.
func UserID(c *gin.Context) (int, error) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return 0, ErrUnauthorized
	}
	claims, ok := v.(jwt.MapClaims)
	if !ok {
		return 0, ErrUnauthorized
	}

	if exp, ok := claims["exp"]; ok {
		if t, ok := unixTime(exp); ok && time.Now().After(t) {
			return 0, ErrTokenExpired
		}
	}

	for _, name := range subjectClaims {
		raw, ok := claims[name]
		if !ok {
			continue
		}
		// Issuers may put an email in sub and the numeric id elsewhere.
		if id, ok := parseID(raw); ok {
			return id, nil
		}
	}
	return 0, ErrUnauthorized
}

// BearerToken is the raw credential the caller presented, forwarded to the
// catalog and cart services.
func BearerToken(c *gin.Context) string {
	if token := c.GetString(TokenKey); token != "" {
		return token
	}
	return StripBearer(c.GetHeader("Authorization"))
}

func StripBearer(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

func parseID(raw any) (int, bool) {
	switch v := raw.(type) {
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 0, false
		}
		id, err := strconv.Atoi(v)
		return id, err == nil
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

func unixTime(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case float64:
		return time.Unix(int64(v), 0), true
	case int64:
		return time.Unix(v, 0), true
	default:
		return time.Time{}, false
	}
}
