package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// contextKey is a private type for request-context values
type contextKey string

// UserIDKey carries the authenticated subject through the request context
const UserIDKey contextKey = "userID"

// Authenticate gates mutation endpoints behind a bearer token. Behind API
// Gateway the JWT authorizer has already validated the token, so in a
// Lambda environment only the subject is extracted; elsewhere the token
// signature, issuer and expiry are verified locally.
func Authenticate(secret, issuer string) func(next http.Handler) http.Handler {
	verifyLocally := os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == ""

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				respondUnauthorized(w, "missing bearer token")
				return
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			var claims jwt.RegisteredClaims
			var err error
			if verifyLocally {
				_, err = jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, jwt.ErrSignatureInvalid
					}
					return []byte(secret), nil
				}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
			} else {
				// Signature already checked upstream; decode claims only.
				_, _, err = jwt.NewParser().ParseUnverified(tokenString, &claims)
			}
			if err != nil {
				respondUnauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated subject from the request context
func UserID(ctx context.Context) string {
	if v, ok := ctx.Value(UserIDKey).(string); ok {
		return v
	}
	return ""
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
