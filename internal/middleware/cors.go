package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors lets any origin read the game endpoints in development. Otherwise
// only allowedOrigins may.
func Cors(development bool, allowedOrigins ...string) Middleware {
	options := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedHeaders: []string{"*"},
	}
	if development {
		options.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	return cors.New(options).Handler
}
