package application

import (
	"context"
	"log/slog"
	"math"
	"time"

	"burrow/server/domain"
	"burrow/utils"
)

// AimAssistMode はフレームごとの候補方向アルゴリズムの選択です。
type AimAssistMode uint8

const (
	AssistNone AimAssistMode = iota
	AssistSnap
	AssistMagnetize
)

func (m AimAssistMode) String() string {
	switch m {
	case AssistNone:
		return "none"
	case AssistSnap:
		return "snap"
	case AssistMagnetize:
		return "magnetize"
	default:
		return "unknown"
	}
}

// CooldownState はポインタの射撃クールダウン状態です。モグラの状態とは独立です。
type CooldownState uint8

const (
	PointerIdle CooldownState = iota
	PointerCoolingDown
)

// PointerSample は1tick分の入力スナップショットです。
type PointerSample struct {
	Origin  domain.Vec3 // ポインタ原点
	Forward domain.Vec3 // 生の前方ベクトル
	Motor   domain.Vec2 // モーター空間の照準座標
	Trigger bool        // トリガー押下（立ち上がりで発射）
}

// ShotOutcome は受理されたショットの分類です。ショット1発につきちょうど1つ確定します。
type ShotOutcome uint8

const (
	ShotOutOfBounds ShotOutcome = iota // コライダー非命中
	ShotHitMole                        // モグラ命中（Popの結果はPopに従う）
	ShotMissSurface                    // モグラ以外のコライダー命中
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotOutOfBounds:
		return "out_of_bounds"
	case ShotHitMole:
		return "hit_mole"
	case ShotMissSurface:
		return "miss_surface"
	default:
		return "unknown"
	}
}

// ShotResult は受理されたショット1発の解決結果です。
type ShotResult struct {
	Seq      uint64
	Outcome  ShotOutcome
	Mole     *Mole // ShotHitMole時のみ非nil
	Pop      PopOutcome
	Feedback float32
	// FeedbackSevere はディストラクター命中時に演出強度へフィードバックを
	// 反映するかどうか（セッションのperformanceFeedback設定）です。
	FeedbackSevere bool
}

// PointerConfig はポインタエンジンの設定です。
type PointerConfig struct {
	Assist    AimAssistMode
	Smoothing bool
	Cooldown  time.Duration
	RayOffset domain.Vec3 // レイ原点へ加算する固定オフセット

	// PerformanceFeedback はセッションの演出フィードバック有効フラグです。
	PerformanceFeedback bool
}

// Pointer は照準解決と射撃パイプラインを駆動するエンジンです。
type Pointer struct {
	wall      *Wall
	mapper    domain.SurfaceMapper
	raycaster domain.Raycaster
	scorer    *FeedbackScorer

	cfg PointerConfig

	enabled     bool
	cooldown    CooldownState
	cooldownEnd time.Duration // CoolingDown中の残り時間
	seq         uint64
	prevTrigger bool

	hovered *Mole

	// 平滑化状態
	prevDir   domain.Vec3
	hasPrev   bool
	smoothOff domain.Vec3
}

func NewPointer(wall *Wall, mapper domain.SurfaceMapper, raycaster domain.Raycaster, scorer *FeedbackScorer, cfg PointerConfig) *Pointer {
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = ShotCooldown
	}
	return &Pointer{
		wall:      wall,
		mapper:    mapper,
		raycaster: raycaster,
		scorer:    scorer,
		cfg:       cfg,
	}
}

// Enable はポインタを有効化し、ショット通し番号とクールダウンをリセットします。
func (p *Pointer) Enable() {
	p.enabled = true
	p.seq = 0
	p.cooldown = PointerIdle
	p.cooldownEnd = 0
	p.prevTrigger = false
	p.hasPrev = false
	p.smoothOff = domain.Vec3{}
}

// Disable はポインタを無効化し、ホバー状態を解除します。
func (p *Pointer) Disable() {
	p.enabled = false
	if p.hovered != nil {
		p.hovered.HoverLeave()
		p.hovered = nil
	}
}

func (p *Pointer) Enabled() bool             { return p.enabled }
func (p *Pointer) ShotSeq() uint64           { return p.seq }
func (p *Pointer) Cooldown() CooldownState   { return p.cooldown }
func (p *Pointer) Hovered() *Mole            { return p.hovered }
func (p *Pointer) AssistMode() AimAssistMode { return p.cfg.Assist }

// SetAssistMode はエイムアシストモードを切り替えます。
func (p *Pointer) SetAssistMode(mode AimAssistMode) { p.cfg.Assist = mode }

// Tick はフレームごとの照準・射撃パイプラインを実行します。
// ショットが受理された場合のみ解決結果を返します。
// 照準・レイキャストはトリガー判定より先に同一tick内で再計算されます。
func (p *Pointer) Tick(ctx context.Context, dt time.Duration, sample PointerSample) *ShotResult {
	if !p.enabled {
		return nil
	}
	if !utils.FiniteVec(sample.Origin) || !utils.FiniteVec(sample.Forward) {
		slog.WarnContext(ctx, "pointer: non-finite sample dropped")
		return nil
	}

	origin := sample.Origin.Add(p.cfg.RayOffset)

	// 1-2. マップ済み照準点へのディスプレイレイ。可視レーザーは常にこの方向を指す。
	aimPoint := p.mapper.MapMotorPositionToWorld(sample.Motor)
	displayDir := aimPoint.Sub(origin).Normalize()
	p.updateHover(origin, displayDir)

	// 3. 射撃候補方向（エイムアシスト + 平滑化）
	candidate := p.candidateDirection(origin, sample.Forward)
	if p.cfg.Smoothing {
		candidate = p.smooth(dt, candidate)
	}

	// クールダウンを先に消化してからトリガーエッジを評価する
	if p.cooldown == PointerCoolingDown {
		p.cooldownEnd -= dt
		if p.cooldownEnd <= 0 {
			p.cooldownEnd = 0
			p.cooldown = PointerIdle
		}
	}

	edge := sample.Trigger && !p.prevTrigger
	p.prevTrigger = sample.Trigger

	if !edge || p.cooldown != PointerIdle {
		return nil
	}

	// 4. ショット受理: 通し番号は結果に関わらずちょうど1回だけ増える
	p.seq++
	p.cooldown = PointerCoolingDown
	p.cooldownEnd = p.cfg.Cooldown

	return p.resolveShot(ctx, origin, candidate)
}

// updateHover はディスプレイレイの命中先でホバー状態を更新します。
// ホバー対象は常に高々1体です。
func (p *Pointer) updateHover(origin, dir domain.Vec3) {
	var next *Mole
	if hit, ok := p.raycaster.Raycast(origin, dir, PointerRayMaxDistance); ok && hit.HasMole {
		if m, found := p.wall.Mole(hit.MoleID); found {
			next = m
		}
	}
	if next == p.hovered {
		return
	}
	if p.hovered != nil {
		p.hovered.HoverLeave()
	}
	if next != nil {
		next.HoverEnter()
	}
	p.hovered = next
}

// candidateDirection はエイムアシスト設定に従って射撃候補方向を選びます。
func (p *Pointer) candidateDirection(origin, forward domain.Vec3) domain.Vec3 {
	forward = forward.Normalize()
	if p.cfg.Assist == AssistNone {
		return forward
	}

	hit, ok := p.raycaster.Raycast(origin, forward, PointerRayMaxDistance)
	if !ok {
		return forward
	}

	nearest := p.nearestMoleTo(hit.Point, SnapRadius)
	if nearest == nil {
		return forward
	}

	switch p.cfg.Assist {
	case AssistSnap:
		// わずかに上方向へバイアスをかけて直接狙う
		target := nearest.Pose.Position.Add(domain.Vec3{Y: SnapVerticalBias})
		return target.Sub(origin).Normalize()
	case AssistMagnetize:
		// 着弾点と最寄りモグラの中点へ部分的に引き寄せる
		target := domain.Midpoint(hit.Point, nearest.Pose.Position)
		return target.Sub(origin).Normalize()
	}
	return forward
}

// nearestMoleTo は着弾点から半径radius以内で最も近いモグラを返します。
func (p *Pointer) nearestMoleTo(point domain.Vec3, radius float32) *Mole {
	var nearest *Mole
	nearestDistSq := radius * radius
	for _, m := range p.wall.Moles() {
		d := m.Pose.Position.Sub(point).LengthSq()
		if d <= nearestDistSq {
			nearestDistSq = d
			nearest = m
		}
	}
	return nearest
}

// smooth は候補方向の急な変化を指数減衰オフセットで減衰させます。
// アシストによるジャンプを隠しつつ、生入力の遅延は増やしません。
func (p *Pointer) smooth(dt time.Duration, dir domain.Vec3) domain.Vec3 {
	if !p.hasPrev {
		p.prevDir = dir
		p.hasPrev = true
		return dir
	}
	// 前回方向との差分を蓄積し、時定数で0へ減衰させてから差し引く
	p.smoothOff = p.smoothOff.Add(p.prevDir.Sub(dir))
	decay := float32(math.Exp(-float64(dt) / float64(SmoothingTau)))
	p.smoothOff = p.smoothOff.Scale(decay)
	p.prevDir = dir
	return dir.Add(p.smoothOff).Normalize()
}

// resolveShot は受理されたショットをちょうど1つの結果へ分類します。
func (p *Pointer) resolveShot(ctx context.Context, origin, dir domain.Vec3) *ShotResult {
	feedback := p.scorer.OnShot()

	res := &ShotResult{
		Seq:            p.seq,
		Feedback:       feedback,
		FeedbackSevere: p.cfg.PerformanceFeedback,
	}

	hit, ok := p.raycaster.Raycast(origin, dir, PointerRayMaxDistance)
	if !ok {
		res.Outcome = ShotOutOfBounds
		slog.DebugContext(ctx, "shot: out of bounds", "seq", res.Seq)
		return res
	}
	if !hit.HasMole {
		res.Outcome = ShotMissSurface
		slog.DebugContext(ctx, "shot: surface miss", "seq", res.Seq)
		return res
	}

	m, found := p.wall.Mole(hit.MoleID)
	if !found {
		res.Outcome = ShotMissSurface
		slog.WarnContext(ctx, "shot: unknown mole id", "seq", res.Seq, "moleID", hit.MoleID)
		return res
	}

	res.Outcome = ShotHitMole
	res.Mole = m
	res.Pop = m.Pop(hit.Point, feedback)
	slog.DebugContext(ctx, "shot: mole hit",
		"seq", res.Seq,
		"moleID", m.ID,
		"pop", res.Pop.String(),
		"feedback", feedback,
	)
	return res
}
