package modelutil

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sirupsen/logrus"
)

const (
	userIDKey = "user_id"
	roleKey   = "role"
	rolesKey  = "roles"
)

// Auth verifies HS256 bearer tokens.
type Auth struct {
	ja *jwtauth.JWTAuth
}

func NewAuth(secret []byte) *Auth {
	return &Auth{ja: jwtauth.New("HS256", secret, nil)}
}

// Token issues a token carrying claims that expires after ttl.
func (a *Auth) Token(claims map[string]interface{}, ttl time.Duration) (string, error) {
	c := make(map[string]interface{}, len(claims)+1)
	for k, v := range claims {
		c[k] = v
	}
	c["exp"] = time.Now().Add(ttl)

	_, token, err := a.ja.Encode(c)
	if err != nil {
		return "", fmt.Errorf("error generating access token: %w", err)
	}
	return token, nil
}

// Required rejects requests without a valid bearer token.
func (a *Auth) Required() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return jwtauth.Verifier(a.ja)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				logrus.WithError(err).Debug("rejected unauthenticated request")
				Unauthorized(w, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

// Roles only admits requests whose token carries one of roles, either as
// a "role" string or in a "roles" list. It must run after Required.
func (a *Auth) Roles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				Unauthorized(w, "Unauthorized")
				return
			}

			for _, role := range claimRoles(claims) {
				if allowed[role] {
					next.ServeHTTP(w, r)
					return
				}
			}

			Forbidden(w, "Forbidden")
		})
	}
}

func claimRoles(claims map[string]interface{}) []string {
	var out []string

	if s, ok := claims[roleKey].(string); ok && s != "" {
		out = append(out, s)
	}

	switch v := claims[rolesKey].(type) {
	case []interface{}:
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, v...)
	}

	return out
}

// UserID returns the user_id claim of the verified token.
func UserID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", fmt.Errorf("error retrieving auth claims: %w", err)
	}

	v, ok := claims[userIDKey].(string)
	if !ok {
		return "", fmt.Errorf("invalid token: unable to locate key %v in claims", userIDKey)
	}

	return v, nil
}
