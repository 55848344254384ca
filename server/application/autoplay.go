package application

import (
	"math"
	"math/rand/v2"
	"time"

	"burrow/server/domain"
)

const (
	autoplayJitterAngle = 0.035 // 照準ノイズ ±2度
)

// AutoPointerDriver は有効なモグラに照準を合わせて撃つルールベースの入力源です。
// ヘッドレスのデモサーバーが自走するために使います。
// インスタンスごとに異なる個性パラメータを持ちます。
type AutoPointerDriver struct {
	Origin        domain.Vec3
	ReactionDelay time.Duration // 目標を捉えてから撃つまでの遅延
	MotorNoise    float32       // モーター座標の揺らぎ

	rng      *rand.Rand
	targetID int
	aimFor   time.Duration
	fired    bool
}

// NewAutoPointerDriver はランダムな個性を持つドライバを生成します。
func NewAutoPointerDriver(origin domain.Vec3, rng *rand.Rand) *AutoPointerDriver {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &AutoPointerDriver{
		Origin:        origin,
		ReactionDelay: 150*time.Millisecond + time.Duration(rng.Int64N(int64(200*time.Millisecond))),
		MotorNoise:    0.01 + rng.Float32()*0.02,
		rng:           rng,
		targetID:      -1,
	}
}

// Sample は現在の壁の状態から1tick分の入力を生成します。
func (d *AutoPointerDriver) Sample(w *Wall, dt time.Duration) PointerSample {
	target := d.pickTarget(w)
	if target == nil {
		d.targetID = -1
		d.aimFor = 0
		d.fired = false
		return PointerSample{
			Origin:  d.Origin,
			Forward: domain.Vec3{Z: 1},
			Motor:   domain.Vec2{X: 0.5, Y: 0.5},
		}
	}

	if target.ID != d.targetID {
		// 目標切替: 反応遅延を仕切り直す
		d.targetID = target.ID
		d.aimFor = 0
		d.fired = false
	}
	d.aimFor += dt

	forward := d.jitter(target.Pose.Position.Sub(d.Origin).Normalize())
	motor := domain.Vec2{
		X: target.Norm.X + (d.rng.Float32()*2-1)*d.MotorNoise,
		Y: target.Norm.Y + (d.rng.Float32()*2-1)*d.MotorNoise,
	}

	trigger := false
	if d.aimFor >= d.ReactionDelay && !d.fired {
		trigger = true
		d.fired = true
	}

	return PointerSample{
		Origin:  d.Origin,
		Forward: forward,
		Motor:   motor,
		Trigger: trigger,
	}
}

// pickTarget は活性化順が最も古いEnabledのモグラを選びます。
func (d *AutoPointerDriver) pickTarget(w *Wall) *Mole {
	var oldest *Mole
	for _, m := range w.Moles() {
		if m.State() != MoleEnabled {
			continue
		}
		if oldest == nil || m.Order() < oldest.Order() {
			oldest = m
		}
	}
	return oldest
}

// jitter は照準方向に ±autoplayJitterAngle のランダムノイズを加えます。
func (d *AutoPointerDriver) jitter(dir domain.Vec3) domain.Vec3 {
	noise := (d.rng.Float64()*2 - 1) * autoplayJitterAngle
	cos := float32(math.Cos(noise))
	sin := float32(math.Sin(noise))
	// Y軸まわりの小さな回転で十分な揺らぎになる
	return domain.Vec3{
		X: dir.X*cos + dir.Z*sin,
		Y: dir.Y,
		Z: -dir.X*sin + dir.Z*cos,
	}.Normalize()
}
