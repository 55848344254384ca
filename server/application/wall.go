package application

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"burrow/server/domain"
)

var (
	// ErrNoEligibleMole は抽選リトライ上限内に適格なモグラが見つからなかった場合に返されます。
	// 呼び出し側は適格なモグラが少なくとも1体存在することを保証する責務を負います。
	ErrNoEligibleMole = errors.New("wall: no eligible mole for activation")
)

// Bounds は生成済みモグラ（アンカー含む）のワールド空間での広がりです。
type Bounds struct {
	Min domain.Vec3
	Max domain.Vec3
}

// Wall は1プレイセッション分の湾曲グリッドです。モグラの集合を排他的に所有します。
type Wall struct {
	layout WallLayout

	moles       map[int]*Mole
	ids         []int         // 生成順のID列（reveal・抽選用）
	anchors     []domain.Pose // 四隅のアンカーポーズ（モグラなし、境界計算のみ）
	bounds      Bounds
	revealQueue []int // StageRevealで抽選済み、未演出のID列

	presenters PresenterFactory
	observers  []MoleObserver
	rng        *rand.Rand

	nextOrder int
}

var _ MoleObserver = (*Wall)(nil)

// NewWall はレイアウトを検証し、グリッドを生成した壁を返します。
func NewWall(layout WallLayout, presenters PresenterFactory, rng *rand.Rand) (*Wall, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	w := &Wall{
		layout:     layout,
		presenters: presenters,
		rng:        rng,
	}
	w.Generate()
	return w, nil
}

// Generate はグリッドを(再)生成します。既存のモグラ集合は全て置き換えられます。
func (w *Wall) Generate() {
	w.Clear()
	w.moles = make(map[int]*Mole, w.layout.Cols*w.layout.Rows)
	w.ids = w.ids[:0]
	w.anchors = w.anchors[:0]
	w.nextOrder = 0

	for x := 0; x < w.layout.Cols; x++ {
		for y := 0; y < w.layout.Rows; y++ {
			pose := w.layout.DefineMolePose(x, y)
			if w.layout.IsCornerAnchor(x, y) {
				// 四隅はアンカー専用。ポーズだけ境界計算に登録する。
				w.anchors = append(w.anchors, pose)
				continue
			}
			id := CellID(x, y)
			m := NewMole(id, pose, w.layout.NormalizedIndex(x, y), w.presenters)
			m.observer = w
			w.moles[id] = m
			w.ids = append(w.ids, id)
		}
	}
	w.recomputeBounds()
}

// Clear は全モグラのタイマーを破棄して集合を空にします。
func (w *Wall) Clear() {
	for _, m := range w.moles {
		m.Reset()
	}
	w.moles = nil
	w.ids = nil
	w.anchors = nil
	w.revealQueue = nil
}

// Layout は生成に使われたレイアウトを返します。
func (w *Wall) Layout() WallLayout { return w.layout }

// Bounds は生成済みモグラとアンカーの軸ごとの最小・最大を返します。
func (w *Wall) Bounds() Bounds { return w.bounds }

// Mole はIDからモグラを取得します。
func (w *Wall) Mole(id int) (*Mole, bool) {
	m, ok := w.moles[id]
	return m, ok
}

// Moles は生成順のモグラのスライスを返します。
func (w *Wall) Moles() []*Mole {
	out := make([]*Mole, 0, len(w.ids))
	for _, id := range w.ids {
		out = append(out, w.moles[id])
	}
	return out
}

// Len は生成済みモグラの数を返します（アンカーは含みません）。
func (w *Wall) Len() int { return len(w.ids) }

// AnchorCount はアンカー専用セルの数を返します。
func (w *Wall) AnchorCount() int { return len(w.anchors) }

// AddObserver は状態遷移の観測者を登録します。通知は登録順です。
func (w *Wall) AddObserver(o MoleObserver) {
	w.observers = append(w.observers, o)
}

// MoleStateChanged はモグラからの遷移通知を登録済み観測者へ転送します。
// 壁自身の処理が先、外部観測者が後という順序を保証します。
func (w *Wall) MoleStateChanged(m *Mole, from, to MoleState) {
	for _, o := range w.observers {
		o.MoleStateChanged(m, from, to)
	}
}

// SelectAndActivate は生存集合から一様に抽選し、適格なモグラを活性化します。
// リトライはモグラ数の ActivationRetryFactor 倍で打ち切り、ErrNoEligibleMoleを返します。
func (w *Wall) SelectAndActivate(lifetime, expire time.Duration, kind MoleKind) (*Mole, error) {
	if len(w.ids) == 0 {
		return nil, ErrNoEligibleMole
	}
	maxAttempts := ActivationRetryFactor * len(w.ids)
	for i := 0; i < maxAttempts; i++ {
		id := w.ids[w.rng.IntN(len(w.ids))]
		m := w.moles[id]
		if !m.CanBeActivated() {
			continue
		}
		m.Activate(lifetime, expire, kind, w.nextOrder)
		w.nextOrder++
		return m, nil
	}
	return nil, ErrNoEligibleMole
}

// TickAll は全モグラのタイマーを進めます。満了遷移はこの呼び出し内で同期的に解決されます。
func (w *Wall) TickAll(dt time.Duration) {
	for _, id := range w.ids {
		w.moles[id].Tick(dt)
	}
}

// SetPausedAll は全モグラのポーズフラグを設定します。
func (w *Wall) SetPausedAll(paused bool) {
	for _, m := range w.moles {
		m.SetPaused(paused)
	}
}

// AnyActive はEnablingまたはEnabledのモグラが存在するかを返します。
func (w *Wall) AnyActive() bool {
	for _, m := range w.moles {
		switch m.State() {
		case MoleEnabling, MoleEnabled:
			return true
		}
	}
	return false
}

// StageReveal は出現演出の順序を抽選してキューに積みます。
// 演出の消化はtickループがRevealNextPairで行います。壁の状態を触る
// ゴルーチンはtickループだけ、という前提を守るためのステージングです。
func (w *Wall) StageReveal() {
	w.revealQueue = make([]int, len(w.ids))
	copy(w.revealQueue, w.ids)
	w.rng.Shuffle(len(w.revealQueue), func(i, j int) {
		w.revealQueue[i], w.revealQueue[j] = w.revealQueue[j], w.revealQueue[i]
	})
}

// RevealNextPair はキュー先頭から最大2体の出現演出を進め、演出した数を返します。
// 純粋な演出ステージングでありゲームプレイのタイマーではありません。
func (w *Wall) RevealNextPair() int {
	n := 0
	for n < RevealPairSize && len(w.revealQueue) > 0 {
		id := w.revealQueue[0]
		w.revealQueue = w.revealQueue[1:]
		w.moles[id].Reveal()
		n++
	}
	return n
}

// RevealPending は未演出のモグラがキューに残っているかを返します。
func (w *Wall) RevealPending() bool { return len(w.revealQueue) > 0 }

// recomputeBounds はモグラとアンカーの位置から軸ごとの最小・最大を再計算します。
func (w *Wall) recomputeBounds() {
	min := domain.Vec3{X: math.MaxFloat32, Y: math.MaxFloat32, Z: math.MaxFloat32}
	max := domain.Vec3{X: -math.MaxFloat32, Y: -math.MaxFloat32, Z: -math.MaxFloat32}

	extend := func(p domain.Vec3) {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}

	for _, id := range w.ids {
		extend(w.moles[id].Pose.Position)
	}
	for _, a := range w.anchors {
		extend(a.Position)
	}
	w.bounds = Bounds{Min: min, Max: max}
}
