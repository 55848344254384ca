package application

import "time"

const (
	// モグラの演出時間
	EnablingDuration  = 250 * time.Millisecond // 出現演出
	PoppingDuration   = 300 * time.Millisecond // ヒット演出
	MissedDuration    = 400 * time.Millisecond // 取り逃し演出
	DisablingDuration = 250 * time.Millisecond // 退場演出

	// 再活性化クールダウン（Disabled復帰後）
	ReactivateCooldown = 500 * time.Millisecond

	// ポインタ
	ShotCooldown          = 300 * time.Millisecond
	SmoothingTau          = 80 * time.Millisecond // 照準平滑化の時定数
	PointerRayMaxDistance float32 = 50.0

	// エイムアシスト
	SnapRadius       float32 = 0.2  // 着弾点からの候補収集半径
	SnapVerticalBias float32 = 0.02 // スナップ時のわずかな上方向バイアス

	// フィードバックスコアラー
	SpeedWindowCap      = 20
	MinShotsForFeedback = 5
	MinTravelDistance   float32 = 0.3 // これ以下の移動は精密照準として満点扱い
	FeedbackUpFactor    float32 = 1.5
	FeedbackDownFactor  float32 = 0.5

	// 壁
	RevealPairDelay       = 100 * time.Millisecond // 出現ステージングの消化間隔
	RevealPairSize        = 2                      // 1回のステージングで演出するモグラ数
	ActivationRetryFactor = 4                      // 抽選リトライ上限 = 係数 × モグラ数
)
