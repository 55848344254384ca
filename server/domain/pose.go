package domain

import "math"

// Pose はワールド空間での位置と向き（ピッチ・ヨー、ラジアン）を表します。
type Pose struct {
	Position Vec3
	Pitch    float32
	Yaw      float32
}

// Forward はポーズの正面方向の単位ベクトルを返します。
func (p Pose) Forward() Vec3 {
	cp := math.Cos(float64(p.Pitch))
	return Vec3{
		X: float32(math.Sin(float64(p.Yaw)) * cp),
		Y: float32(-math.Sin(float64(p.Pitch))),
		Z: float32(math.Cos(float64(p.Yaw)) * cp),
	}.Normalize()
}

// ToLocal はワールド座標の点をこのポーズのローカル座標に変換します。
// ヨー・ピッチの順で逆回転します。
func (p Pose) ToLocal(world Vec3) Vec3 {
	d := world.Sub(p.Position)

	// ヨーの逆回転（Y軸まわり）
	sy := float32(math.Sin(float64(-p.Yaw)))
	cy := float32(math.Cos(float64(-p.Yaw)))
	x := d.X*cy + d.Z*sy
	z := -d.X*sy + d.Z*cy

	// ピッチの逆回転（X軸まわり）
	sp := float32(math.Sin(float64(-p.Pitch)))
	cp := float32(math.Cos(float64(-p.Pitch)))
	y := d.Y*cp - z*sp
	z = d.Y*sp + z*cp

	return Vec3{X: x, Y: y, Z: z}
}
