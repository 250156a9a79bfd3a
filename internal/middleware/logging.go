package middleware

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// responseStats records the status and body size a handler sent back.
type responseStats struct {
	http.ResponseWriter
	status   int
	size     int
	upgraded bool
}

func (rs *responseStats) WriteHeader(status int) {
	if rs.status == 0 {
		rs.status = status
	}
	rs.ResponseWriter.WriteHeader(status)
}

func (rs *responseStats) Write(b []byte) (int, error) {
	if rs.status == 0 {
		rs.status = http.StatusOK
	}
	n, err := rs.ResponseWriter.Write(b)
	rs.size += n
	return n, err
}

func (rs *responseStats) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rs.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer cannot be hijacked")
	}
	rs.upgraded = true
	rs.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func Logging(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			log := logger.With(slog.String("requestId", GetRequestID(r.Context())))
			log.Debug(r.Method + " " + r.URL.RequestURI())

			stats := &responseStats{ResponseWriter: w}

			next.ServeHTTP(stats, r)

			log.Info(
				"handled request",
				slog.Int("statusCode", stats.status),
				slog.Int("bytes", stats.size),
				slog.Bool("upgraded", stats.upgraded),
				slog.String("remoteAddr", r.RemoteAddr),
				slog.String("xffHeader", r.Header.Get("X-Forwarded-For")),
				slog.String("method", r.Method),
				slog.String("uri", r.URL.RequestURI()),
				slog.Int64("durationMs", time.Since(start).Milliseconds()),
			)
		})
	}
}
