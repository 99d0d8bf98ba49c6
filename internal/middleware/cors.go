package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORS returns the CORS wrapper for the API. The frontend is served
// from a different origin during development, so all origins are
// allowed; the admin gate is the token, not the origin.
func NewCORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler
}
