// Package auth provides JWT bearer authentication middleware for officer sessions.
//
// Session tokens are minted by the external session collaborator; this
// middleware only validates the signature and injects the officer identity
// into the request context. The verified flag is NOT trusted from the token:
// every service entry point re-reads it from the officer directory.
package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	id "pawtrol/pkg/domain"
	"pawtrol/pkg/requestcontext"
)

// Claims are the claims we require from a session token.
type Claims struct {
	OfficerID string `json:"officer_id"`
	jwt.RegisteredClaims
}

// Validator validates officer session tokens.
type Validator struct {
	signingKey []byte
}

// NewValidator creates a token validator with the shared HMAC signing key.
func NewValidator(signingKey string) *Validator {
	return &Validator{signingKey: []byte(signingKey)}
}

// ValidateToken parses and validates a session token, returning its claims.
func (v *Validator) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// Middleware validates the Authorization bearer token and injects the officer
// ID into the request context. Requests without a valid token get 401.
func Middleware(validator *Validator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				logger.WarnContext(ctx, "unauthorized access - missing bearer token",
					"path", r.URL.Path,
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			claims, err := validator.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"path", r.URL.Path,
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "invalid session token")
				return
			}

			officerID, err := id.ParseOfficerID(claims.OfficerID)
			if err != nil || officerID.IsNil() {
				logger.WarnContext(ctx, "unauthorized access - malformed officer claim",
					"path", r.URL.Path,
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "invalid session token")
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithOfficerID(ctx, officerID)))
		})
	}
}
