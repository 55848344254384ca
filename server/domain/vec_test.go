package domain

import (
	"math"
	"testing"
)

func almostEqual(a, b Vec3) bool {
	return a.Sub(b).Length() < 1e-5
}

func TestVec3_Normalize(t *testing.T) {
	v := Vec3{X: 3, Y: 4}.Normalize()
	if diff := math.Abs(float64(v.Length() - 1)); diff > 1e-6 {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}
	if !almostEqual(v, Vec3{X: 0.6, Y: 0.8}) {
		t.Errorf("Normalize = %+v, want {0.6 0.8 0}", v)
	}

	// ほぼ0のベクトルはゼロベクトルになる（NaNを出さない）
	if got := (Vec3{X: 1e-8}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize near-zero = %+v, want zero vector", got)
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(Vec3{X: 2}, Vec3{X: 4, Y: 2})
	if !almostEqual(got, Vec3{X: 3, Y: 1}) {
		t.Errorf("Midpoint = %+v, want {3 1 0}", got)
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"same direction", Vec3{Z: 1}, Vec3{Z: 5}, 0},
		{"perpendicular", Vec3{X: 1}, Vec3{Y: 1}, math.Pi / 2},
		{"opposite", Vec3{X: 1}, Vec3{X: -1}, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := float64(AngleBetween(tt.a, tt.b))
			if math.Abs(got-tt.want) > 1e-5 {
				t.Errorf("AngleBetween = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPose_Forward(t *testing.T) {
	// 無回転の正面は+Z
	if got := (Pose{}).Forward(); !almostEqual(got, Vec3{Z: 1}) {
		t.Errorf("Forward = %+v, want {0 0 1}", got)
	}

	// ヨー90度で+X
	right := Pose{Yaw: math.Pi / 2}.Forward()
	if !almostEqual(right, Vec3{X: 1}) {
		t.Errorf("Forward with yaw pi/2 = %+v, want {1 0 0}", right)
	}

	// 正のピッチで下向き成分
	down := Pose{Pitch: math.Pi / 4}.Forward()
	if down.Y >= 0 {
		t.Errorf("Forward.Y with positive pitch = %v, want negative", down.Y)
	}
}

// ToLocal はポーズ正面の点をローカル+Z軸上へ写す。
func TestPose_ToLocal(t *testing.T) {
	p := Pose{Position: Vec3{X: 1, Y: 2, Z: 3}, Yaw: math.Pi / 2}
	world := p.Position.Add(p.Forward().Scale(2))

	local := p.ToLocal(world)
	if !almostEqual(local, Vec3{Z: 2}) {
		t.Errorf("ToLocal(front point) = %+v, want {0 0 2}", local)
	}

	// 自身の位置はローカル原点
	if got := p.ToLocal(p.Position); !almostEqual(got, Vec3{}) {
		t.Errorf("ToLocal(own position) = %+v, want origin", got)
	}
}
