package application

import (
	"math"

	"burrow/server/domain"
)

// PlanarSurfaceMapper はモーター空間の[0,1]×[0,1]を壁手前の平面へ射影する
// 組み込みのSurfaceMapper実装です。エンジンなしでデモとテストを動かすためのものです。
type PlanarSurfaceMapper struct {
	Center domain.Vec3 // 平面の中心
	Width  float32
	Height float32
}

var _ domain.SurfaceMapper = PlanarSurfaceMapper{}

// NewPlanarSurfaceMapperForWall は壁の境界に合わせた平面マッパーを返します。
func NewPlanarSurfaceMapperForWall(w *Wall) PlanarSurfaceMapper {
	b := w.Bounds()
	return PlanarSurfaceMapper{
		Center: domain.Vec3{
			X: (b.Min.X + b.Max.X) / 2,
			Y: (b.Min.Y + b.Max.Y) / 2,
			Z: b.Min.Z,
		},
		Width:  b.Max.X - b.Min.X,
		Height: b.Max.Y - b.Min.Y,
	}
}

func (m PlanarSurfaceMapper) MapMotorPositionToWorld(p domain.Vec2) domain.Vec3 {
	return domain.Vec3{
		X: m.Center.X + (p.X-0.5)*m.Width,
		Y: m.Center.Y + (p.Y-0.5)*m.Height,
		Z: m.Center.Z,
	}
}

// WallRaycaster は壁のモグラを球体コライダーとして扱う組み込みのRaycaster実装です。
// モグラに当たらなかったレイは壁背面の平面で受けます。
type WallRaycaster struct {
	wall       *Wall
	MoleRadius float32
	BackplaneZ float32 // 壁背面の当たり平面のZ位置
}

var _ domain.Raycaster = (*WallRaycaster)(nil)

func NewWallRaycaster(w *Wall, moleRadius float32) *WallRaycaster {
	return &WallRaycaster{
		wall:       w,
		MoleRadius: moleRadius,
		BackplaneZ: w.Bounds().Max.Z,
	}
}

func (r *WallRaycaster) Raycast(origin, direction domain.Vec3, maxDistance float32) (domain.RayHit, bool) {
	dir := direction.Normalize()
	if dir == (domain.Vec3{}) {
		return domain.RayHit{}, false
	}

	bestT := float64(maxDistance)
	var best domain.RayHit
	found := false

	for _, m := range r.wall.Moles() {
		t, ok := raySphere(origin, dir, m.Pose.Position, r.MoleRadius)
		if !ok || t > bestT {
			continue
		}
		bestT = t
		best = domain.RayHit{
			Point:   origin.Add(dir.Scale(float32(t))),
			MoleID:  m.ID,
			HasMole: true,
		}
		found = true
	}
	if found {
		return best, true
	}

	// 背面平面
	if dz := float64(dir.Z); dz > 1e-9 {
		t := (float64(r.BackplaneZ) - float64(origin.Z)) / dz
		if t >= 0 && t <= float64(maxDistance) {
			return domain.RayHit{
				Point: origin.Add(dir.Scale(float32(t))),
			}, true
		}
	}

	return domain.RayHit{}, false
}

// raySphere はレイと球の最初の交点までの距離を返します。
func raySphere(origin, dir, center domain.Vec3, radius float32) (float64, bool) {
	oc := origin.Sub(center)
	b := float64(oc.Dot(dir))
	c := float64(oc.LengthSq() - radius*radius)
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq // レイ原点が球内
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
