package domain

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrInitializationFailed はストリームエンドポイントの初期化に失敗した場合に返されるエラーです。
	ErrInitializationFailed = errors.New("failed to initialize stream endpoint")
)

// StreamEndpoint は観戦者1接続へゲームイベントをJSONで配信します。
type StreamEndpoint struct {
	ctx    context.Context
	cancel context.CancelFunc

	session     *Session
	connection  *Connection
	broadcaster *Broadcaster

	writeIdleTimeout time.Duration
}

func NewStreamEndpoint(session *Session, connection *Connection, broadcaster *Broadcaster) (*StreamEndpoint, error) {
	if session == nil {
		return nil, ErrInitializationFailed
	}
	if connection == nil {
		return nil, ErrInitializationFailed
	}
	if broadcaster == nil {
		return nil, ErrInitializationFailed
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &StreamEndpoint{
		ctx:              ctx,
		cancel:           cancel,
		session:          session,
		connection:       connection,
		broadcaster:      broadcaster,
		writeIdleTimeout: 5 * time.Minute,
	}, nil
}

func (se *StreamEndpoint) Run() error {
	evCh := se.broadcaster.Subscribe()
	defer se.broadcaster.Unsubscribe(evCh)
	defer se.close()

	eg, ctx := errgroup.WithContext(se.ctx)
	eg.Go(func() error {
		se.writeLoop(ctx, evCh)
		return nil
	})
	eg.Go(func() error {
		se.readLoop(ctx)
		return nil
	})
	eg.Go(func() error {
		se.idleLoop(ctx)
		return nil
	})

	return eg.Wait()
}

// writeLoop は購読チャネルのイベントをJSONにして接続へ書き込みます。
func (se *StreamEndpoint) writeLoop(ctx context.Context, evCh <-chan Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-evCh:
			if !ok {
				se.cancel()
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				slog.WarnContext(ctx, "stream endpoint: marshal failed", "err", err)
				continue
			}
			if err := se.connection.Write(ctx, data); err != nil {
				slog.DebugContext(ctx, "stream endpoint: write failed, closing", "sessionID", se.session.ID, "err", err)
				se.cancel()
				return
			}
			se.session.TouchWrite()
		}
	}
}

// readLoop は切断検知のために受信データを読み捨てます。
func (se *StreamEndpoint) readLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			if _, err := se.connection.Read(ctx); err != nil {
				se.cancel()
				return
			}
		}
	}
}

func (se *StreamEndpoint) idleLoop(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if se.session.IsWriteIdle(se.writeIdleTimeout) {
				slog.InfoContext(ctx, "stream endpoint: idle, closing", "sessionID", se.session.ID)
				se.cancel()
				return
			}
		}
	}
}

func (se *StreamEndpoint) close() {
	if !se.session.Close() {
		return
	}
	se.cancel()
	se.connection.Close()
}
