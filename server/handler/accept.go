package handler

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"

	adapterwebsocket "burrow/server/adapter/websocket"
	"burrow/server/domain"
)

// AcceptHandler は観戦者のWebSocket接続を受け付け、イベントストリームへ接続します。
type AcceptHandler struct {
	broadcaster *domain.Broadcaster
}

func NewAcceptHandler(broadcaster *domain.Broadcaster) *AcceptHandler {
	return &AcceptHandler{broadcaster: broadcaster}
}

func (h *AcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // 開発用: Origin チェックをスキップ
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to accept", "err", err)
		return
	}

	session := domain.NewSession()
	transport := adapterwebsocket.NewTransportFrom(conn)
	connection := domain.NewConnection(session.ID, transport)
	endpoint, err := domain.NewStreamEndpoint(session, connection, h.broadcaster)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create stream endpoint", "err", err)
		return
	}
	slog.DebugContext(ctx, "accepted new spectator", "session_id", session.ID)
	if err := endpoint.Run(); err != nil {
		slog.ErrorContext(ctx, "failed to run stream endpoint", "err", err)
		return
	}
}
