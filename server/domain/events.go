package domain

import (
	"context"
	"time"
)

// EventKind はゲームイベントの種別です。
type EventKind string

const (
	EventWallGenerated EventKind = "wall_generated"
	EventMoleSpawned   EventKind = "mole_spawned"
	EventMoleHit       EventKind = "mole_hit"
	EventMoleMissed    EventKind = "mole_missed"
	EventMoleExpired   EventKind = "mole_expired"
	EventPointerShot   EventKind = "pointer_shot"
)

// Event はコアが発行する構造化イベントです。
// 配送は fire-and-forget であり、ゲームロジックをブロックしてはいけません。
type Event struct {
	Kind      EventKind `json:"kind"`
	SessionID string    `json:"sessionId"`
	MoleID    int       `json:"moleId,omitempty"`
	Seq       uint64    `json:"seq,omitempty"`
	Outcome   string    `json:"outcome,omitempty"`
	Feedback  float32   `json:"feedback,omitempty"`
	At        time.Time `json:"at"`
}

//go:generate go tool mockgen -destination=./mocks/events_mock.go -package=mocks . EventSink

// EventSink はイベントの配送先です。実装はブロックせず、配送失敗を握りつぶします。
type EventSink interface {
	Publish(ctx context.Context, ev Event)
}

// nopSink は何もしないEventSinkです。
type nopSink struct{}

var _ EventSink = (*nopSink)(nil)

func (nopSink) Publish(ctx context.Context, ev Event) {}

func NewNopSink() EventSink {
	return nopSink{}
}
