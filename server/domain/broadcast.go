package domain

import (
	"context"
	"log/slog"
	"sync"
)

// Broadcaster はイベントを購読者チャネルへファンアウトするEventSinkです。
// 購読者のチャネルが満杯の場合はイベントを破棄します（配送は fire-and-forget）。
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

var _ EventSink = (*Broadcaster)(nil)

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[chan Event]struct{}),
	}
}

// Subscribe は新しい購読チャネルを返します。
func (b *Broadcaster) Subscribe() chan Event {
	ch := make(chan Event, 256)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe は購読を解除しチャネルを閉じます。
func (b *Broadcaster) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish は全購読者へイベントを配送します。満杯の購読者には配送しません。
func (b *Broadcaster) Publish(ctx context.Context, ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
			slog.WarnContext(ctx, "broadcaster: subscriber full, event dropped", "kind", ev.Kind)
		}
	}
}
