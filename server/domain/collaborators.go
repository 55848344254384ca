package domain

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . SurfaceMapper,Raycaster

// SurfaceMapper はモーター空間の2次元点をワールド空間の照準点へ射影します。
// 純粋関数であることを前提とし、副作用を持ってはいけません。
type SurfaceMapper interface {
	MapMotorPositionToWorld(point Vec2) Vec3
}

// RayHit はレイキャストの命中結果です。
type RayHit struct {
	Point   Vec3
	MoleID  int
	HasMole bool // false の場合はターゲット以外のコライダーに命中
}

// Raycaster はレイとコライダーの交差判定を提供します。
// 何にも命中しなかった場合は ok=false を返します。
type Raycaster interface {
	Raycast(origin, direction Vec3, maxDistance float32) (RayHit, bool)
}
