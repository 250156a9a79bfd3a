package config

import (
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

// NewWebSocket accepts any origin in development and same-host origins
// otherwise.
func NewWebSocket() *WebSocket {
	upgrader := websocket.Upgrader{
		CheckOrigin: sameHost,
	}
	if Development() {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}
	return &WebSocket{Upgrader: upgrader}
}

func sameHost(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}
