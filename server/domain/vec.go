package domain

import "math"

// Vec2 はモーター空間の2次元座標です。
type Vec2 struct {
	X, Y float32
}

// Vec3 はワールド空間の3次元ベクトルです。
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) LengthSq() float32 {
	return v.Dot(v)
}

func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// Normalize は単位ベクトルを返します。長さがほぼ0の場合はゼロベクトルを返します。
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-6 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) DistanceTo(o Vec3) float32 {
	return o.Sub(v).Length()
}

// Midpoint は2点の中点を返します。
func Midpoint(a, b Vec3) Vec3 {
	return Vec3{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
		Z: (a.Z + b.Z) / 2,
	}
}

// AngleBetween は2つの方向ベクトルのなす角（ラジアン）を返します。
func AngleBetween(a, b Vec3) float32 {
	an := a.Normalize()
	bn := b.Normalize()
	dot := float64(an.Dot(bn))
	if dot > 1 {
		dot = 1
	}
	if dot < -1 {
		dot = -1
	}
	return float32(math.Acos(dot))
}
