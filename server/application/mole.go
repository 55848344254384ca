package application

import (
	"time"

	"burrow/server/domain"
)

// MoleState はモグラのライフサイクル状態です。常にちょうど1つの状態を取ります。
type MoleState uint8

const (
	MoleDisabled MoleState = iota
	MoleEnabling
	MoleEnabled
	MolePopping
	MolePopped
	MoleMissed
	MoleDisabling
	MoleExpired
)

func (s MoleState) String() string {
	switch s {
	case MoleDisabled:
		return "disabled"
	case MoleEnabling:
		return "enabling"
	case MoleEnabled:
		return "enabled"
	case MolePopping:
		return "popping"
	case MolePopped:
		return "popped"
	case MoleMissed:
		return "missed"
	case MoleDisabling:
		return "disabling"
	case MoleExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// MoleKind はモグラの種別です。Primaryのみが取り逃しスコアの対象になります。
type MoleKind uint8

const (
	KindPrimary MoleKind = iota
	KindDistractorLeft
	KindDistractorRight
)

func (k MoleKind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindDistractorLeft:
		return "distractor_left"
	case KindDistractorRight:
		return "distractor_right"
	default:
		return "unknown"
	}
}

// IsDistractor は種別がディストラクターかを返します。
func (k MoleKind) IsDistractor() bool {
	return k == KindDistractorLeft || k == KindDistractorRight
}

// PopOutcome はPop呼び出しの結果です。
// DisabledやPausedは頻繁に起こる正常系であり、エラーではありません。
type PopOutcome uint8

const (
	PopOk       PopOutcome = iota // Primaryへの有効ヒット
	PopFake                       // ディストラクターへのヒット
	PopDisabled                   // 解決済み・未活性のモグラへの遅いヒット
	PopExpired                    // Expired中のヒット（計測のみ、遷移なし）
	PopPaused                     // ポーズ中
)

func (o PopOutcome) String() string {
	switch o {
	case PopOk:
		return "ok"
	case PopFake:
		return "fake"
	case PopDisabled:
		return "disabled"
	case PopExpired:
		return "expired"
	case PopPaused:
		return "paused"
	default:
		return "unknown"
	}
}

//go:generate go tool mockgen -destination=./mocks/presenter_mock.go -package=mocks . MolePresenter

// MolePresenter は状態遷移に伴う演出フックです。
// 実装はブロックしてはならず、遷移を失敗させてはいけません。
type MolePresenter interface {
	OnEnabling()
	OnEnabled()
	OnPopping(feedback float32)
	OnMissed()
	OnDisabling()
	OnExpired()
	OnReset()
	OnReveal()
	OnHoverEnter()
	OnHoverLeave()
}

// PresenterFactory は種別ごとの演出実装を選択します。
type PresenterFactory func(kind MoleKind) MolePresenter

// MoleObserver はモグラの状態遷移の通知を受け取ります。
type MoleObserver interface {
	MoleStateChanged(m *Mole, from, to MoleState)
}

// Mole はグリッド1セル分のターゲットです。自身のタイマーとポーズフラグを所有します。
type Mole struct {
	ID   int
	Pose domain.Pose
	Norm domain.Vec2 // グリッド内の正規化インデックス

	kind   MoleKind
	state  MoleState
	order  int // 活性化された通し番号
	paused bool

	lifetime time.Duration // Activateで記録されるEnabled滞在時間
	expire   time.Duration // Activateで記録されるExpired滞在時間

	remaining time.Duration // 現在状態の残り時間（0以下は停止中）
	cooldown  time.Duration // 再活性化クールダウン（Disabled中に消化）

	lastHitLocal domain.Vec3
	lateHits     int // Expired後に届いたPopの計測

	presenters PresenterFactory
	presenter  MolePresenter
	observer   MoleObserver
}

func NewMole(id int, pose domain.Pose, norm domain.Vec2, presenters PresenterFactory) *Mole {
	if presenters == nil {
		presenters = func(MoleKind) MolePresenter { return nopPresenter{} }
	}
	return &Mole{
		ID:         id,
		Pose:       pose,
		Norm:       norm,
		state:      MoleDisabled,
		presenters: presenters,
		presenter:  presenters(KindPrimary),
	}
}

func (m *Mole) State() MoleState { return m.state }
func (m *Mole) Kind() MoleKind   { return m.kind }
func (m *Mole) Order() int       { return m.order }
func (m *Mole) Paused() bool     { return m.paused }
func (m *Mole) LateHits() int    { return m.lateHits }

// LastHitLocal は直近のPopのローカル座標での命中点を返します。
func (m *Mole) LastHitLocal() domain.Vec3 { return m.lastHitLocal }

// SetPaused はポーズフラグを設定します。ポーズ中は全タイマーが凍結されます。
func (m *Mole) SetPaused(paused bool) {
	m.paused = paused
}

// CanBeActivated は(再)活性化の適格性を返します。
// Enabled・Enabling・Disabling中、およびクールダウン消化中はfalseです。
func (m *Mole) CanBeActivated() bool {
	switch m.state {
	case MoleEnabled, MoleEnabling, MoleDisabling:
		return false
	}
	return m.cooldown <= 0
}

// Activate はモグラを活性化します。適格でない場合は既存タイマーを変更せずfalseを返します。
func (m *Mole) Activate(lifetime, expire time.Duration, kind MoleKind, order int) bool {
	if !m.CanBeActivated() {
		return false
	}
	m.kind = kind
	m.order = order
	m.lifetime = lifetime
	m.expire = expire
	m.presenter = m.presenters(kind)
	m.transition(MoleEnabling, EnablingDuration)
	return true
}

// Pop は命中解決を行います。
// ポーズ中はPaused、未活性・解決済みはDisabled、Expired中は計測のみでExpiredを返します。
func (m *Mole) Pop(hitPoint domain.Vec3, feedback float32) PopOutcome {
	if m.paused {
		return PopPaused
	}
	if m.state == MoleExpired {
		// 遅着弾は計測のみ。再活性化クールダウンには触れない。
		m.lateHits++
		return PopExpired
	}
	if m.state != MoleEnabled && m.state != MoleEnabling {
		return PopDisabled
	}

	m.lastHitLocal = m.Pose.ToLocal(hitPoint)
	outcome := PopOk
	if m.kind.IsDistractor() {
		outcome = PopFake
	}
	m.transitionWith(MolePopping, PoppingDuration, func() {
		m.presenter.OnPopping(feedback)
	})
	return outcome
}

// HoverEnter はディスプレイレイが当たった際の演出フックを呼びます。
func (m *Mole) HoverEnter() { m.presenter.OnHoverEnter() }

// HoverLeave はディスプレイレイが外れた際の演出フックを呼びます。
func (m *Mole) HoverLeave() { m.presenter.OnHoverLeave() }

// Reveal は生成後のステージング演出フックを呼びます。活性化状態とは無関係です。
func (m *Mole) Reveal() { m.presenter.OnReveal() }

// Tick は経過時間ぶんタイマーを進め、満了した遷移を同期的に発火します。
// ポーズ中は何もしません。
func (m *Mole) Tick(dt time.Duration) {
	if m.paused || dt <= 0 {
		return
	}

	if m.state == MoleDisabled {
		if m.cooldown > 0 {
			m.cooldown -= dt
			if m.cooldown < 0 {
				m.cooldown = 0
			}
		}
		return
	}

	if m.remaining <= 0 {
		return // 滞在時間のない状態（Popped）
	}
	m.remaining -= dt
	if m.remaining > 0 {
		return
	}
	m.remaining = 0
	m.completeState()
}

// completeState は現在状態のタイマー満了時の後続遷移を発火します。
func (m *Mole) completeState() {
	switch m.state {
	case MoleEnabling:
		m.transition(MoleEnabled, m.lifetime)
	case MoleEnabled:
		// 寿命切れ。Primaryのみ取り逃し扱い。
		if m.kind == KindPrimary {
			m.transition(MoleMissed, MissedDuration)
		} else {
			m.transition(MoleDisabling, DisablingDuration)
		}
	case MolePopping:
		m.transition(MolePopped, 0)
	case MoleMissed, MoleDisabling:
		m.transition(MoleExpired, m.expire)
	case MoleExpired:
		m.cooldown = ReactivateCooldown
		m.transition(MoleDisabled, 0)
	}
}

// Reset は全タイマーを破棄してDisabledに戻します。壁の破棄・再生成時に呼ばれます。
func (m *Mole) Reset() {
	from := m.state
	m.state = MoleDisabled
	m.remaining = 0
	m.cooldown = 0
	m.paused = false
	m.lateHits = 0
	m.presenter.OnReset()
	m.notify(from, MoleDisabled)
}

func (m *Mole) transition(to MoleState, stay time.Duration) {
	m.transitionWith(to, stay, nil)
}

func (m *Mole) transitionWith(to MoleState, stay time.Duration, hook func()) {
	from := m.state
	m.state = to
	m.remaining = stay
	if hook != nil {
		hook()
	} else {
		m.enterHook(to)
	}
	m.notify(from, to)
}

func (m *Mole) enterHook(to MoleState) {
	switch to {
	case MoleEnabling:
		m.presenter.OnEnabling()
	case MoleEnabled:
		m.presenter.OnEnabled()
	case MoleMissed:
		m.presenter.OnMissed()
	case MoleDisabling:
		m.presenter.OnDisabling()
	case MoleExpired:
		m.presenter.OnExpired()
	}
}

func (m *Mole) notify(from, to MoleState) {
	if m.observer != nil && from != to {
		m.observer.MoleStateChanged(m, from, to)
	}
}

// nopPresenter は何もしない演出実装です。
type nopPresenter struct{}

var _ MolePresenter = nopPresenter{}

func (nopPresenter) OnEnabling()       {}
func (nopPresenter) OnEnabled()        {}
func (nopPresenter) OnPopping(float32) {}
func (nopPresenter) OnMissed()         {}
func (nopPresenter) OnDisabling()      {}
func (nopPresenter) OnExpired()        {}
func (nopPresenter) OnReset()          {}
func (nopPresenter) OnReveal()         {}
func (nopPresenter) OnHoverEnter()     {}
func (nopPresenter) OnHoverLeave()     {}

// NopPresenterFactory は全種別に無演出の実装を返します。
func NopPresenterFactory(MoleKind) MolePresenter { return nopPresenter{} }
