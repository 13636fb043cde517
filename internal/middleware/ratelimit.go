package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/repline-dev/repline/internal/middleware/ratelimiter"
	"github.com/repline-dev/repline/internal/utils"
)

// RateLimit throttles write endpoints per identity. Admins bypass so
// instructor replies are never dropped by the student-facing budget.
func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := GetUserFromContext(r); user != nil && user.Admin {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				http.Error(w, "Rate limit exceeded, try again later", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Possible if user was authorized with previous middleware
func GetUserIDFromContext(r *http.Request) (string, error) {
	user := GetUserFromContext(r)
	if user == nil {
		return "", errors.New("can't get user id")
	}
	return fmt.Sprintf("user_%d", user.Id), nil
}
