package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

func Cors(development bool) Middleware {
	options := cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedHeaders: []string{RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		// cross-origin only in development
		AllowOriginFunc: func(origin string) bool {
			return development
		},
	}
	return cors.New(options).Handler
}
