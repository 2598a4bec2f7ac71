package api

import (
	"net/http"
	"time"
)

type healthHandler struct {
	responder   Responder
	startupTime time.Time
}

func newHealthHandler(responder Responder, startupTime time.Time) healthHandler {
	return healthHandler{responder: responder, startupTime: startupTime}
}

func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"status": "ok",
			"uptime": time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
