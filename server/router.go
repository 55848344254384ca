package server

import (
	"net/http"

	"burrow/server/domain"
	"burrow/server/handler"
)

func Route(broadcaster *domain.Broadcaster) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/events", handler.NewAcceptHandler(broadcaster))
	mux.Handle("/healthz", handler.NewHealthHandler())
	return mux
}
