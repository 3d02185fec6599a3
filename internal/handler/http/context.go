package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

var errMissingUserClaim = errors.New("missing user_id claim")

// userIDFromClaims pulls the authenticated admin's ID out of the verified
// token. AuthRequired runs first, so a failure here means a malformed token
// rather than a missing one.
func userIDFromClaims(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errMissingUserClaim
	}
	return userID, nil
}
