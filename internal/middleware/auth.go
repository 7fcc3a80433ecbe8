package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"roam/internal/models"
	"roam/internal/store"
	"roam/internal/utils"
)

type contextKey string

// UserKey holds the authenticated *models.User in the request context.
const UserKey contextKey = "authUser"

// UserGetter is the single storage read the guard performs per request.
type UserGetter interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// UserFrom returns the authenticated user injected by AuthJWT.
func UserFrom(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(UserKey).(*models.User)
	return u, ok
}

func unauthorized(w http.ResponseWriter) {
	utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "unauthorized"})
}

// AuthJWT validates the bearer token and resolves it to a stored user.
// Every failure collapses to the same 401 for the caller; the real reason
// only goes to the log.
func AuthJWT(secret string, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				log.WithField("path", r.URL.Path).Info("auth: missing bearer token")
				unauthorized(w)
				return
			}
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				log.WithField("path", r.URL.Path).Info("auth: malformed authorization header")
				unauthorized(w)
				return
			}

			userID, _, err := utils.ParseJWT(tokenStr, secret)
			if err != nil {
				reason := "invalid token"
				if errors.Is(err, jwt.ErrTokenExpired) {
					reason = "token expired"
				}
				log.WithField("path", r.URL.Path).WithError(err).Infof("auth: %s", reason)
				unauthorized(w)
				return
			}

			// Token may outlive the account; confirm the user still exists.
			user, err := users.GetUserByID(r.Context(), userID)
			if errors.Is(err, store.ErrNotFound) {
				log.WithField("user_id", userID).Info("auth: user no longer exists")
				unauthorized(w)
				return
			} else if err != nil {
				utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "internal error"})
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
