package handlers

import (
	"net/http"

	"rental-backend/internal/middleware"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// requestUser pulls the authenticated tenant id injected by the auth
// middleware. A false return means the route was wired without it.
func requestUser(r *http.Request) (uuid.UUID, bool) {
	return middleware.GetUserIDFromContext(r.Context())
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}
