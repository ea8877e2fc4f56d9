package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"bookstore/identity"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
)

const (
	ErrorTypeAuthorization  = "AuthorizationFailed"
	ErrorTypeAuthentication = "AuthenticationFailed"
	ErrorTypeTokenExpired   = "TokenExpired"

	msgTokenRequired = "Token is required. Please provide a valid token."
	msgInvalidToken  = "Invalid token. Please log in again."
	msgTokenExpired  = "Token has expired."
)

type AuthConfig struct {
	SecretKey string
	Issuer    string
	Audience  string
}

// AuthError is the fixed 401 body.
type AuthError struct {
	StatusCode int    `json:"StatusCode"`
	Message    string `json:"Message"`
	ErrorType  string `json:"ErrorType"`
}

func abortUnauthorized(c *gin.Context, message, errorType string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, AuthError{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
		ErrorType:  errorType,
	})
}

func Authenticate(cfg AuthConfig) gin.HandlerFunc {
	secret := []byte(cfg.SecretKey)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))

	return func(c *gin.Context) {
		tokenString := identity.StripBearer(c.GetHeader("Authorization"))
		if tokenString == "" || tokenString == "Bearer" {
			abortUnauthorized(c, msgTokenRequired, ErrorTypeAuthorization)
			return
		}

		log := zerolog.Ctx(c.Request.Context())

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
				log.Info().Msg("rejected expired token")
				abortUnauthorized(c, msgTokenExpired, ErrorTypeTokenExpired)
				return
			}
			log.Warn().Err(err).Msg("rejected token")
			abortUnauthorized(c, msgInvalidToken, ErrorTypeAuthentication)
			return
		}

		if !token.Valid ||
			(cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true)) ||
			(cfg.Audience != "" && !claims.VerifyAudience(cfg.Audience, true)) {
			log.Warn().Msg("rejected token with wrong issuer or audience")
			abortUnauthorized(c, msgInvalidToken, ErrorTypeAuthentication)
			return
		}

		c.Set(identity.ClaimsKey, claims)
		c.Set(identity.TokenKey, tokenString)
		c.Next()
	}
}

// AuthFailures answers 401 for identity errors a handler pushed onto
// c.Errors without writing a response itself.
func AuthFailures() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for _, e := range c.Errors {
			switch {
			case errors.Is(e.Err, identity.ErrTokenExpired):
				abortUnauthorized(c, msgTokenExpired, ErrorTypeTokenExpired)
				return
			case errors.Is(e.Err, identity.ErrUnauthorized):
				abortUnauthorized(c, msgInvalidToken, ErrorTypeAuthentication)
				return
			}
		}
	}
}
