package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"burrow/server/application"
	"burrow/server/domain"
)

var (
	ErrUnknownAssistMode = errors.New("config: unknown aim assist mode")
	ErrInvalidChance     = errors.New("config: distractor_chance must be in [0, 1]")
)

// Config はチューニング設定ファイル全体です。
type Config struct {
	Wall    WallConfig    `yaml:"wall"`
	Pointer PointerConfig `yaml:"pointer"`
	Session SessionConfig `yaml:"session"`
}

// WallConfig は壁グリッドの形状設定です。
type WallConfig struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Width      float32 `yaml:"width"`
	Height     float32 `yaml:"height"`
	Depth      float32 `yaml:"depth"`
	XCurve     float32 `yaml:"x_curve"`
	YCurve     float32 `yaml:"y_curve"`
	MaxTiltDeg float32 `yaml:"max_tilt_deg"`
	MoleScale  float32 `yaml:"mole_scale"`
}

// PointerConfig はポインタエンジンの設定です。
type PointerConfig struct {
	Assist              string `yaml:"assist"` // none | snap | magnetize
	Smoothing           bool   `yaml:"smoothing"`
	CooldownMs          int    `yaml:"cooldown_ms"`
	PerformanceFeedback bool   `yaml:"performance_feedback"`
}

// SessionConfig はセッションのスケジュール設定です。
type SessionConfig struct {
	TickRateHz        int     `yaml:"tick_rate_hz"`
	SpawnIntervalMs   int     `yaml:"spawn_interval_ms"`
	MoleLifetimeMs    int     `yaml:"mole_lifetime_ms"`
	MoleExpireMs      int     `yaml:"mole_expire_ms"`
	DistractorChance  float64 `yaml:"distractor_chance"`
	RevealPairDelayMs int     `yaml:"reveal_pair_delay_ms"`
}

// Default は動作するデフォルト設定を返します。
func Default() Config {
	return Config{
		Wall: WallConfig{
			Rows:       4,
			Cols:       5,
			Width:      3.0,
			Height:     2.0,
			Depth:      0.4,
			XCurve:     0.5,
			YCurve:     0.3,
			MaxTiltDeg: 20,
			MoleScale:  1.0,
		},
		Pointer: PointerConfig{
			Assist:              "snap",
			Smoothing:           true,
			CooldownMs:          300,
			PerformanceFeedback: true,
		},
		Session: SessionConfig{
			TickRateHz:        60,
			SpawnIntervalMs:   800,
			MoleLifetimeMs:    3000,
			MoleExpireMs:      2000,
			DistractorChance:  0.2,
			RevealPairDelayMs: 100,
		},
	}
}

// Load はYAMLファイルをデフォルト設定に重ねて読み込み、検証します。
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate は設定時エラーを検出します。退化したグリッドはここで拒否されます。
func (c Config) Validate() error {
	if err := c.WallLayout().Validate(); err != nil {
		return err
	}
	if _, err := c.AssistMode(); err != nil {
		return err
	}
	if c.Session.DistractorChance < 0 || c.Session.DistractorChance > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidChance, c.Session.DistractorChance)
	}
	return nil
}

// WallLayout は設定をコアのレイアウトパラメータへ変換します。
func (c Config) WallLayout() application.WallLayout {
	return application.WallLayout{
		Rows:      c.Wall.Rows,
		Cols:      c.Wall.Cols,
		Size:      domain.Vec3{X: c.Wall.Width, Y: c.Wall.Height, Z: c.Wall.Depth},
		XCurve:    c.Wall.XCurve,
		YCurve:    c.Wall.YCurve,
		MaxTilt:   float32(float64(c.Wall.MaxTiltDeg) * math.Pi / 180),
		MoleScale: c.Wall.MoleScale,
	}
}

// AssistMode は設定文字列をエイムアシストモードへ変換します。
func (c Config) AssistMode() (application.AimAssistMode, error) {
	switch c.Pointer.Assist {
	case "", "none":
		return application.AssistNone, nil
	case "snap":
		return application.AssistSnap, nil
	case "magnetize":
		return application.AssistMagnetize, nil
	default:
		return application.AssistNone, fmt.Errorf("%w: %q", ErrUnknownAssistMode, c.Pointer.Assist)
	}
}

// PointerSettings はコアのポインタ設定へ変換します。
func (c Config) PointerSettings() application.PointerConfig {
	mode, _ := c.AssistMode()
	return application.PointerConfig{
		Assist:              mode,
		Smoothing:           c.Pointer.Smoothing,
		Cooldown:            time.Duration(c.Pointer.CooldownMs) * time.Millisecond,
		PerformanceFeedback: c.Pointer.PerformanceFeedback,
	}
}

// SessionSettings はコアのセッション設定へ変換します。
func (c Config) SessionSettings() application.SessionConfig {
	tick := time.Second / 60
	if c.Session.TickRateHz > 0 {
		tick = time.Second / time.Duration(c.Session.TickRateHz)
	}
	return application.SessionConfig{
		TickInterval:     tick,
		SpawnInterval:    time.Duration(c.Session.SpawnIntervalMs) * time.Millisecond,
		MoleLifetime:     time.Duration(c.Session.MoleLifetimeMs) * time.Millisecond,
		MoleExpire:       time.Duration(c.Session.MoleExpireMs) * time.Millisecond,
		DistractorChance: c.Session.DistractorChance,
		RevealPairDelay:  time.Duration(c.Session.RevealPairDelayMs) * time.Millisecond,
	}
}
