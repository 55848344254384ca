package domain

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// SessionID は観戦セッションの識別子です。
type SessionID string

func (id SessionID) String() string { return string(id) }

// Session は観戦者1接続の論理的な状態を表す構造体です。
type Session struct {
	ID SessionID

	// activity
	lastWrite atomic.Int64

	// lifecycle
	closed atomic.Bool
}

func NewSession() *Session {
	s := &Session{
		ID: SessionID(uuid.NewString()),
	}
	s.lastWrite.Store(time.Now().UnixNano())
	return s
}

func (s *Session) TouchWrite() {
	s.lastWrite.Store(time.Now().UnixNano())
}

func (s *Session) Close() bool {
	return s.closed.CompareAndSwap(false, true)
}

func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// IsWriteIdle はtimeoutを超えて書き込みが行われていない場合にtrueを返します。
// timeout<=0 のときは無効です。
func (s *Session) IsWriteIdle(timeout time.Duration) bool {
	if timeout <= 0 {
		return false
	}
	last := time.Unix(0, s.lastWrite.Load())
	return time.Since(last) > timeout
}
