package application

import (
	"errors"
	"fmt"
	"math"

	"burrow/server/domain"
)

var (
	ErrDegenerateGrid      = errors.New("layout: row and column count must be at least 2")
	ErrInvalidCurveRatio   = errors.New("layout: curve ratio must be in (0, 1]")
	ErrNonPositiveWallSize = errors.New("layout: wall size must be positive on all axes")
)

// WallLayout は湾曲した壁グリッドの形状パラメータです。
// 全ての導出関数はパラメータに対して決定的な純粋関数です。
type WallLayout struct {
	Rows int
	Cols int

	Size domain.Vec3 // 幅・高さ・奥行き

	XCurve float32 // 水平曲率 (0,1]
	YCurve float32 // 垂直曲率 (0,1]

	MaxTilt   float32 // 端のモグラの最大傾き（ラジアン）
	MoleScale float32
}

// Validate は (count-1) や曲率による除算が破綻するパラメータを拒否します。
func (l WallLayout) Validate() error {
	if l.Rows < 2 || l.Cols < 2 {
		return fmt.Errorf("%w: rows=%d cols=%d", ErrDegenerateGrid, l.Rows, l.Cols)
	}
	if l.XCurve <= 0 || l.XCurve > 1 {
		return fmt.Errorf("%w: xCurve=%v", ErrInvalidCurveRatio, l.XCurve)
	}
	if l.YCurve <= 0 || l.YCurve > 1 {
		return fmt.Errorf("%w: yCurve=%v", ErrInvalidCurveRatio, l.YCurve)
	}
	if l.Size.X <= 0 || l.Size.Y <= 0 || l.Size.Z <= 0 {
		return fmt.Errorf("%w: size=%+v", ErrNonPositiveWallSize, l.Size)
	}
	return nil
}

// CellID は(列, 行)を安定した整数IDにエンコードします。
func CellID(col, row int) int {
	return col<<16 | row
}

// CellFromID はCellIDを(列, 行)に復元します。
func CellFromID(id int) (col, row int) {
	return id >> 16, id & 0xFFFF
}

// DefineMolePos はグリッドインデックスから湾曲面上のローカル位置を計算します。
func (l WallLayout) DefineMolePos(x, y int) domain.Vec3 {
	angleX := l.angleX(x)
	angleY := l.angleY(y)
	return domain.Vec3{
		X: float32(math.Sin(angleX) * float64(l.Size.X) / float64(2*l.XCurve)),
		Y: float32(math.Sin(angleY) * float64(l.Size.Y) / float64(2*l.YCurve)),
		Z: float32(float64(l.Size.Z) * (math.Cos(angleX) + math.Cos(angleY))),
	}
}

// DefineMoleRotation は曲面中心の外側を向くピッチ・ヨー（ラジアン）を計算します。
func (l WallLayout) DefineMoleRotation(x, y int) (pitch, yaw float32) {
	nx := l.centered(x, l.Cols)
	ny := l.centered(y, l.Rows)
	pitch = float32(-ny * float64(l.MaxTilt) * float64(l.YCurve))
	yaw = float32(nx * float64(l.MaxTilt) * float64(l.XCurve))
	return pitch, yaw
}

// DefineMolePose は位置と向きをまとめたポーズを返します。
func (l WallLayout) DefineMolePose(x, y int) domain.Pose {
	pitch, yaw := l.DefineMoleRotation(x, y)
	return domain.Pose{
		Position: l.DefineMolePos(x, y),
		Pitch:    pitch,
		Yaw:      yaw,
	}
}

// NormalizedIndex はセルの正規化インデックス [0,1]×[0,1] を返します。
func (l WallLayout) NormalizedIndex(x, y int) domain.Vec2 {
	return domain.Vec2{
		X: float32(x) / float32(l.Cols-1),
		Y: float32(y) / float32(l.Rows-1),
	}
}

// IsCornerAnchor は四隅（レイアウトアンカー専用、モグラを生成しないセル）かを判定します。
func (l WallLayout) IsCornerAnchor(x, y int) bool {
	return (x == 0 || x == l.Cols-1) && (y == 0 || y == l.Rows-1)
}

// angleX は列インデックスを水平湾曲角に変換します。
func (l WallLayout) angleX(x int) float64 {
	return l.centered(x, l.Cols) * math.Pi * float64(l.XCurve) / 2
}

func (l WallLayout) angleY(y int) float64 {
	return l.centered(y, l.Rows) * math.Pi * float64(l.YCurve) / 2
}

// centered はインデックスを [-1,1] に正規化します。
func (l WallLayout) centered(i, count int) float64 {
	return 2*float64(i)/float64(count-1) - 1
}
