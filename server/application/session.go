package application

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"burrow/server/domain"
)

// InputSource はtickごとのポインタ入力を供給します。
type InputSource interface {
	Sample(w *Wall, dt time.Duration) PointerSample
}

var _ InputSource = (*AutoPointerDriver)(nil)

// SessionConfig は1プレイセッションのスケジュール設定です。
type SessionConfig struct {
	TickInterval     time.Duration
	SpawnInterval    time.Duration
	MoleLifetime     time.Duration
	MoleExpire       time.Duration
	DistractorChance float64 // スポーンがディストラクターになる確率
	RevealPairDelay  time.Duration
}

func (c *SessionConfig) applyDefaults() {
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second / 60
	}
	if c.SpawnInterval <= 0 {
		c.SpawnInterval = 800 * time.Millisecond
	}
	if c.MoleLifetime <= 0 {
		c.MoleLifetime = 3 * time.Second
	}
	if c.MoleExpire <= 0 {
		c.MoleExpire = 2 * time.Second
	}
	if c.RevealPairDelay <= 0 {
		c.RevealPairDelay = RevealPairDelay
	}
}

// GameSession はセッション単位で壁・ポインタ・スコアラーを束ねる所有者です。
// 全ての状態機械は単一のtickループで協調的に進行します。
type GameSession struct {
	ID string

	wall    *Wall
	pointer *Pointer
	scorer  *FeedbackScorer
	input   InputSource
	sink    domain.EventSink

	cfg SessionConfig
	rng *rand.Rand

	paused     bool
	spawnLeft  time.Duration
	revealLeft time.Duration

	runCtx context.Context
}

func NewGameSession(wall *Wall, pointer *Pointer, scorer *FeedbackScorer, input InputSource, sink domain.EventSink, cfg SessionConfig, rng *rand.Rand) *GameSession {
	cfg.applyDefaults()
	if sink == nil {
		sink = domain.NewNopSink()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &GameSession{
		ID:        uuid.NewString(),
		wall:      wall,
		pointer:   pointer,
		scorer:    scorer,
		input:     input,
		sink:      sink,
		cfg:       cfg,
		rng:       rng,
		spawnLeft: cfg.SpawnInterval,
	}
	// 配送順序: 壁の処理が先（モグラ→壁の直接通知）、次にスコアラー、最後にイベント発行
	wall.AddObserver(scorer)
	wall.AddObserver(s)
	return s
}

func (s *GameSession) Wall() *Wall             { return s.wall }
func (s *GameSession) Pointer() *Pointer       { return s.pointer }
func (s *GameSession) Scorer() *FeedbackScorer { return s.scorer }

// SetPaused はセッション全体のポーズフラグを設定します。
// 全モグラのタイマーとポインタのクールダウンが凍結されます。
func (s *GameSession) SetPaused(paused bool) {
	s.paused = paused
	s.wall.SetPausedAll(paused)
}

func (s *GameSession) Paused() bool { return s.paused }

// Run はセッションを開始し、ctxのキャンセルまでtickループを駆動します。
// 出現ステージングもtickループが消化するため、壁を触るゴルーチンは常に1本です。
// キャンセル時は全タイマーと出現ステージングを無条件に即時中断し、
// 次のRunが全モグラDisabledのクリーンな状態から始まるよう壁を破棄します。
func (s *GameSession) Run(ctx context.Context) error {
	s.runCtx = ctx
	s.wall.Generate()
	s.wall.StageReveal()
	s.revealLeft = 0
	s.pointer.Enable()
	s.scorer.Reset()

	s.sink.Publish(ctx, domain.Event{
		Kind:      domain.EventWallGenerated,
		SessionID: s.ID,
		At:        time.Now(),
	})

	s.loop(ctx)
	s.pointer.Disable()
	s.wall.Clear()
	return nil
}

func (s *GameSession) loop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			s.Step(ctx, dt)
		}
	}
}

// Step は1tick分のシミュレーションを進めます。
// 順序: モグラの満了遷移 → スコアラーの移動蓄積 → ポインタ（照準→発射）→ 出現演出 → スポーン。
// 満了遷移が適格性チェックより先に解決されることを保証します。
func (s *GameSession) Step(ctx context.Context, dt time.Duration) {
	if s.paused || dt <= 0 {
		return
	}

	s.wall.TickAll(dt)

	sample := s.input.Sample(s.wall, dt)
	s.scorer.Track(sample.Origin, dt)

	if res := s.pointer.Tick(ctx, dt, sample); res != nil {
		s.publishShot(ctx, res)
	}

	if s.wall.RevealPending() {
		s.revealLeft -= dt
		if s.revealLeft <= 0 {
			s.revealLeft += s.cfg.RevealPairDelay
			s.wall.RevealNextPair()
		}
	}

	s.spawnLeft -= dt
	if s.spawnLeft <= 0 {
		s.spawnLeft += s.cfg.SpawnInterval
		s.spawn(ctx)
	}
}

func (s *GameSession) spawn(ctx context.Context) {
	kind := s.rollKind()
	m, err := s.wall.SelectAndActivate(s.cfg.MoleLifetime, s.cfg.MoleExpire, kind)
	if err != nil {
		slog.WarnContext(ctx, "spawn skipped", "err", err)
		return
	}
	s.sink.Publish(ctx, domain.Event{
		Kind:      domain.EventMoleSpawned,
		SessionID: s.ID,
		MoleID:    m.ID,
		Outcome:   kind.String(),
		At:        time.Now(),
	})
}

func (s *GameSession) rollKind() MoleKind {
	if s.rng.Float64() >= s.cfg.DistractorChance {
		return KindPrimary
	}
	if s.rng.Float64() < 0.5 {
		return KindDistractorLeft
	}
	return KindDistractorRight
}

func (s *GameSession) publishShot(ctx context.Context, res *ShotResult) {
	s.sink.Publish(ctx, domain.Event{
		Kind:      domain.EventPointerShot,
		SessionID: s.ID,
		Seq:       res.Seq,
		Outcome:   res.Outcome.String(),
		Feedback:  res.Feedback,
		At:        time.Now(),
	})
	if res.Outcome == ShotHitMole {
		s.sink.Publish(ctx, domain.Event{
			Kind:      domain.EventMoleHit,
			SessionID: s.ID,
			MoleID:    res.Mole.ID,
			Seq:       res.Seq,
			Outcome:   res.Pop.String(),
			Feedback:  res.Feedback,
			At:        time.Now(),
		})
	}
}

var _ MoleObserver = (*GameSession)(nil)

// MoleStateChanged は取り逃しと消滅をイベントとして発行します。
func (s *GameSession) MoleStateChanged(m *Mole, from, to MoleState) {
	ctx := s.runCtx
	if ctx == nil {
		ctx = context.Background()
	}
	switch to {
	case MoleMissed:
		s.sink.Publish(ctx, domain.Event{
			Kind:      domain.EventMoleMissed,
			SessionID: s.ID,
			MoleID:    m.ID,
			At:        time.Now(),
		})
	case MoleExpired:
		s.sink.Publish(ctx, domain.Event{
			Kind:      domain.EventMoleExpired,
			SessionID: s.ID,
			MoleID:    m.ID,
			At:        time.Now(),
		})
	}
}
