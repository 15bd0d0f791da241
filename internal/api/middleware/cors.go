package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a middleware that allows cross-origin requests from the
// configured origins with credentials, mirroring the permissive defaults
// a browser-facing API template needs.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
