package middleware

import (
	"wellness-assistant/pkg/log"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

type Middleware struct {
	l              log.Logger
	allowedOrigins []string
}

func New(l log.Logger, allowedOrigins []string) Middleware {
	return Middleware{
		l:              l,
		allowedOrigins: allowedOrigins,
	}
}
