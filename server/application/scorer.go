package application

import (
	"time"

	"burrow/server/domain"
)

// FeedbackScorer はショット間のポインタ移動速度から正規化された[0,1]の
// フィードバック値を算出します。値は演出の強度選択のみに使われる助言であり、
// ヒット判定そのものには影響しません。単一の書き手（スコアラー自身）が更新します。
type FeedbackScorer struct {
	window []float32 // 直近ショットの速度のFIFO（最大SpeedWindowCap件）

	shots    int           // これまでの総ショット数
	distance float32       // 前回ショット以降の累積移動距離
	elapsed  time.Duration // 前回ショット以降の経過時間

	lastPos domain.Vec3
	hasLast bool

	liveCount int // Enabled中のモグラ数（観測者通知で維持）

	feedback float32 // 直近のショットで確定した値。次のショットまで保持される。
}

var _ MoleObserver = (*FeedbackScorer)(nil)

func NewFeedbackScorer() *FeedbackScorer {
	return &FeedbackScorer{
		window:   make([]float32, 0, SpeedWindowCap),
		feedback: 1.0,
	}
}

// Feedback は直近のショットで確定したフィードバック値を返します。
func (s *FeedbackScorer) Feedback() float32 { return s.feedback }

// Shots はこれまでの総ショット数を返します。
func (s *FeedbackScorer) Shots() int { return s.shots }

// MoleStateChanged はEnabled中のモグラ数を追跡します。
// ターゲットが生存している間のみ移動距離を蓄積するために使います。
func (s *FeedbackScorer) MoleStateChanged(m *Mole, from, to MoleState) {
	if to == MoleEnabled {
		s.liveCount++
	}
	if from == MoleEnabled {
		s.liveCount--
	}
}

// Track はポインタ位置のサンプルを取り込み、移動距離と経過時間を蓄積します。
// 生存ターゲットがいない間は距離を蓄積しません。
func (s *FeedbackScorer) Track(pos domain.Vec3, dt time.Duration) {
	if !s.hasLast {
		s.lastPos = pos
		s.hasLast = true
		return
	}
	if s.liveCount > 0 {
		s.distance += s.lastPos.DistanceTo(pos)
		s.elapsed += dt
	}
	s.lastPos = pos
}

// OnShot はショット確定時に呼ばれ、フィードバック値を再計算して返します。
// 値は次のOnShotまで保持されます。
func (s *FeedbackScorer) OnShot() float32 {
	speed := float32(0)
	if secs := s.elapsed.Seconds(); secs > 0 {
		speed = s.distance / float32(secs)
	}

	// 窓は常に更新する（古いものから追い出し）
	if len(s.window) >= SpeedWindowCap {
		s.window = s.window[1:]
	}
	s.window = append(s.window, speed)
	s.shots++

	s.feedback = s.score(speed)

	// ショットごとの蓄積をリセット。位置の連続性は保つ。
	s.distance = 0
	s.elapsed = 0
	return s.feedback
}

func (s *FeedbackScorer) score(speed float32) float32 {
	// 履歴不足の間は判定しない
	if s.shots < MinShotsForFeedback {
		return 1.0
	}
	// ほぼ静止した精密照準は満点扱い
	if s.distance <= MinTravelDistance {
		return 1.0
	}

	avg := s.windowAverage()
	up := FeedbackUpFactor * avg
	down := FeedbackDownFactor * avg
	if up <= down {
		return 1.0
	}
	if speed <= down {
		return 0.0
	}
	if speed >= up {
		return 1.0
	}
	return (speed - down) / (up - down)
}

func (s *FeedbackScorer) windowAverage() float32 {
	if len(s.window) == 0 {
		return 0
	}
	var sum float32
	for _, v := range s.window {
		sum += v
	}
	return sum / float32(len(s.window))
}

// Reset は窓と蓄積を初期状態に戻します。セッションの再開時に呼ばれます。
func (s *FeedbackScorer) Reset() {
	s.window = s.window[:0]
	s.shots = 0
	s.distance = 0
	s.elapsed = 0
	s.hasLast = false
	s.liveCount = 0
	s.feedback = 1.0
}
