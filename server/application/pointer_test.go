package application

import (
	"context"
	"math"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"burrow/server/domain"
	"burrow/server/domain/mocks"
)

type pointerFixture struct {
	pointer   *Pointer
	wall      *Wall
	mapper    *mocks.MockSurfaceMapper
	raycaster *mocks.MockRaycaster
	scorer    *FeedbackScorer
}

func newPointerFixture(t *testing.T, ctrl *gomock.Controller, cfg PointerConfig) *pointerFixture {
	t.Helper()
	w := newTestWall(t)
	mapper := mocks.NewMockSurfaceMapper(ctrl)
	raycaster := mocks.NewMockRaycaster(ctrl)
	scorer := NewFeedbackScorer()
	p := NewPointer(w, mapper, raycaster, scorer, cfg)
	p.Enable()
	return &pointerFixture{pointer: p, wall: w, mapper: mapper, raycaster: raycaster, scorer: scorer}
}

// 照準点は原点前方の固定点、レイキャストは常に空振りという無風の入力環境。
func (f *pointerFixture) stubQuietScene() {
	f.mapper.EXPECT().MapMotorPositionToWorld(gomock.Any()).
		Return(domain.Vec3{Z: 1}).AnyTimes()
	f.raycaster.EXPECT().Raycast(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.RayHit{}, false).AnyTimes()
}

func forwardSample(trigger bool) PointerSample {
	return PointerSample{
		Forward: domain.Vec3{Z: 1},
		Motor:   domain.Vec2{X: 0.5, Y: 0.5},
		Trigger: trigger,
	}
}

func TestPointer_DisabledIgnoresInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPointerFixture(t, ctrl, PointerConfig{})
	f.pointer.Disable()

	if res := f.pointer.Tick(context.Background(), 16*time.Millisecond, forwardSample(true)); res != nil {
		t.Errorf("Tick on disabled pointer = %+v, want nil", res)
	}
	if f.pointer.ShotSeq() != 0 {
		t.Errorf("ShotSeq = %d, want 0", f.pointer.ShotSeq())
	}
}

func TestPointer_NonFiniteSampleDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPointerFixture(t, ctrl, PointerConfig{})

	sample := forwardSample(true)
	sample.Origin.X = float32(math.NaN())
	if res := f.pointer.Tick(context.Background(), 16*time.Millisecond, sample); res != nil {
		t.Errorf("Tick with NaN sample = %+v, want nil", res)
	}
	if f.pointer.ShotSeq() != 0 {
		t.Errorf("ShotSeq = %d, want 0", f.pointer.ShotSeq())
	}
}

// 通し番号は受理されたショットでのみ増え、エッジなし・クールダウン中は拒否される。
func TestPointer_ShotSequencing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPointerFixture(t, ctrl, PointerConfig{})
	f.stubQuietScene()
	ctx := context.Background()

	// 立ち上がりエッジで受理
	res := f.pointer.Tick(ctx, 16*time.Millisecond, forwardSample(true))
	if res == nil || res.Seq != 1 {
		t.Fatalf("first shot = %+v, want Seq 1", res)
	}
	if res.Outcome != ShotOutOfBounds {
		t.Errorf("Outcome = %v, want %v", res.Outcome, ShotOutOfBounds)
	}
	if f.pointer.Cooldown() != PointerCoolingDown {
		t.Errorf("Cooldown = %v, want %v", f.pointer.Cooldown(), PointerCoolingDown)
	}

	// 押しっぱなしはエッジではない
	if res := f.pointer.Tick(ctx, 100*time.Millisecond, forwardSample(true)); res != nil {
		t.Errorf("held trigger = %+v, want nil", res)
	}

	// クールダウン中の再押下は拒否（通し番号も進まない）
	f.pointer.Tick(ctx, 50*time.Millisecond, forwardSample(false))
	if res := f.pointer.Tick(ctx, 50*time.Millisecond, forwardSample(true)); res != nil {
		t.Errorf("trigger during cooldown = %+v, want nil", res)
	}
	if f.pointer.ShotSeq() != 1 {
		t.Errorf("ShotSeq = %d, want 1", f.pointer.ShotSeq())
	}

	// クールダウン明けの押下で2発目
	f.pointer.Tick(ctx, ShotCooldown, forwardSample(false))
	if f.pointer.Cooldown() != PointerIdle {
		t.Fatalf("Cooldown = %v, want %v", f.pointer.Cooldown(), PointerIdle)
	}
	res = f.pointer.Tick(ctx, 16*time.Millisecond, forwardSample(true))
	if res == nil || res.Seq != 2 {
		t.Errorf("second shot = %+v, want Seq 2", res)
	}
}

// ディスプレイレイの命中・離脱でホバーが高々1体に保たれる。
func TestPointer_HoverEnterLeave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hover := &hoverCountingPresenter{}
	w, err := NewWall(validLayout(), func(MoleKind) MolePresenter { return hover }, nil)
	if err != nil {
		t.Fatalf("NewWall: %v", err)
	}
	mapper := mocks.NewMockSurfaceMapper(ctrl)
	raycaster := mocks.NewMockRaycaster(ctrl)
	p := NewPointer(w, mapper, raycaster, NewFeedbackScorer(), PointerConfig{})
	p.Enable()

	mapper.EXPECT().MapMotorPositionToWorld(gomock.Any()).Return(domain.Vec3{Z: 1}).AnyTimes()

	centerID := CellID(1, 1)
	hitMole := true
	raycaster.EXPECT().Raycast(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(domain.Vec3, domain.Vec3, float32) (domain.RayHit, bool) {
			if hitMole {
				return domain.RayHit{MoleID: centerID, HasMole: true}, true
			}
			return domain.RayHit{}, false
		}).AnyTimes()

	ctx := context.Background()
	p.Tick(ctx, 16*time.Millisecond, forwardSample(false))
	if p.Hovered() == nil || p.Hovered().ID != centerID {
		t.Fatalf("Hovered = %v, want mole %d", p.Hovered(), centerID)
	}
	if hover.enters != 1 || hover.leaves != 0 {
		t.Errorf("enters=%d leaves=%d, want 1 and 0", hover.enters, hover.leaves)
	}

	// 同じ対象にとどまる間は再入場しない
	p.Tick(ctx, 16*time.Millisecond, forwardSample(false))
	if hover.enters != 1 {
		t.Errorf("enters = %d, want 1 (no re-entry while hovering)", hover.enters)
	}

	hitMole = false
	p.Tick(ctx, 16*time.Millisecond, forwardSample(false))
	if p.Hovered() != nil {
		t.Errorf("Hovered = %v, want nil", p.Hovered())
	}
	if hover.leaves != 1 {
		t.Errorf("leaves = %d, want 1", hover.leaves)
	}
}

type hoverCountingPresenter struct {
	nopPresenter
	enters int
	leaves int
}

func (p *hoverCountingPresenter) OnHoverEnter() { p.enters++ }
func (p *hoverCountingPresenter) OnHoverLeave() { p.leaves++ }

// スナップは生の前方より角度偏差を厳密に小さくする。
func TestPointer_CandidateDirection_Snap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPointerFixture(t, ctrl, PointerConfig{Assist: AssistSnap})

	mole, _ := f.wall.Mole(CellID(1, 1))
	molePos := mole.Pose.Position
	impact := molePos.Add(domain.Vec3{X: 0.15}) // SnapRadius内の着弾
	origin := domain.Vec3{Z: molePos.Z - 3}
	forward := impact.Sub(origin).Normalize()

	f.raycaster.EXPECT().Raycast(origin, gomock.Any(), gomock.Any()).
		Return(domain.RayHit{Point: impact}, true)

	candidate := f.pointer.candidateDirection(origin, forward)

	want := molePos.Add(domain.Vec3{Y: SnapVerticalBias}).Sub(origin).Normalize()
	if diff := candidate.Sub(want).Length(); diff > 1e-5 {
		t.Errorf("candidate = %+v, want %+v", candidate, want)
	}

	toMole := molePos.Sub(origin).Normalize()
	if domain.AngleBetween(candidate, toMole) >= domain.AngleBetween(forward, toMole) {
		t.Error("snap must strictly reduce angular deviation toward the mole")
	}
}

// マグネタイズは着弾点とモグラの中点へ部分的に引き寄せる。
func TestPointer_CandidateDirection_Magnetize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPointerFixture(t, ctrl, PointerConfig{Assist: AssistMagnetize})

	mole, _ := f.wall.Mole(CellID(1, 1))
	molePos := mole.Pose.Position
	impact := molePos.Add(domain.Vec3{X: 0.15})
	origin := domain.Vec3{Z: molePos.Z - 3}
	forward := impact.Sub(origin).Normalize()

	f.raycaster.EXPECT().Raycast(origin, gomock.Any(), gomock.Any()).
		Return(domain.RayHit{Point: impact}, true)

	candidate := f.pointer.candidateDirection(origin, forward)

	want := domain.Midpoint(impact, molePos).Sub(origin).Normalize()
	if diff := candidate.Sub(want).Length(); diff > 1e-5 {
		t.Errorf("candidate = %+v, want %+v", candidate, want)
	}
}

// 近傍にモグラがなければアシストモードでも生の前方を使う。
func TestPointer_CandidateDirection_NoNearbyMole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPointerFixture(t, ctrl, PointerConfig{Assist: AssistSnap})

	origin := domain.Vec3{Z: -3}
	forward := domain.Vec3{Z: 1}
	farPoint := domain.Vec3{X: 100, Y: 100, Z: 100} // 全モグラのSnapRadius外

	f.raycaster.EXPECT().Raycast(origin, gomock.Any(), gomock.Any()).
		Return(domain.RayHit{Point: farPoint}, true)

	if got := f.pointer.candidateDirection(origin, forward); got != forward {
		t.Errorf("candidate = %+v, want raw forward %+v", got, forward)
	}
}

func TestPointer_CandidateDirection_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPointerFixture(t, ctrl, PointerConfig{Assist: AssistNone})

	forward := domain.Vec3{X: 3} // 正規化されて返る
	got := f.pointer.candidateDirection(domain.Vec3{}, forward)
	if got != (domain.Vec3{X: 1}) {
		t.Errorf("candidate = %+v, want {1 0 0}", got)
	}
}

// 平滑化は方向ジャンプを部分的に遅らせ、継続入力では目標方向へ収束する。
func TestPointer_SmoothingConverges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPointerFixture(t, ctrl, PointerConfig{Smoothing: true})

	const dt = 16 * time.Millisecond
	oldDir := domain.Vec3{Z: 1}
	newDir := domain.Vec3{X: 1}

	if got := f.pointer.smooth(dt, oldDir); got != oldDir {
		t.Fatalf("first smoothed dir = %+v, want raw %+v", got, oldDir)
	}

	// ジャンプ直後は旧方向へ引き戻される
	got := f.pointer.smooth(dt, newDir)
	if domain.AngleBetween(got, oldDir) >= domain.AngleBetween(newDir, oldDir) {
		t.Error("smoothed direction must lag behind an abrupt jump")
	}

	// 同じ入力を続ければ新方向へ収束する
	for i := 0; i < 100; i++ {
		got = f.pointer.smooth(dt, newDir)
	}
	if angle := domain.AngleBetween(got, newDir); angle > 0.01 {
		t.Errorf("smoothed direction did not converge: residual angle %v", angle)
	}
}

// モグラ命中時はPopまで解決され、結果がちょうど1つに分類される。
func TestPointer_Shot_HitMole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPointerFixture(t, ctrl, PointerConfig{})
	ctx := context.Background()

	mole, _ := f.wall.Mole(CellID(1, 1))
	mole.Activate(5*time.Second, 2*time.Second, KindPrimary, 0)
	f.wall.TickAll(EnablingDuration)

	f.mapper.EXPECT().MapMotorPositionToWorld(gomock.Any()).Return(domain.Vec3{Z: 1}).AnyTimes()
	f.raycaster.EXPECT().Raycast(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.RayHit{Point: mole.Pose.Position, MoleID: mole.ID, HasMole: true}, true).AnyTimes()

	res := f.pointer.Tick(ctx, 16*time.Millisecond, forwardSample(true))
	if res == nil {
		t.Fatal("Tick = nil, want accepted shot")
	}
	if res.Outcome != ShotHitMole || res.Pop != PopOk {
		t.Errorf("result = %+v, want hit_mole with PopOk", res)
	}
	if mole.State() != MolePopping {
		t.Errorf("State = %v, want %v", mole.State(), MolePopping)
	}
	if res.Feedback != 1.0 {
		t.Errorf("Feedback = %v, want 1.0 during warmup", res.Feedback)
	}
}

// 未知のモグラIDは面ミスとして解決される。
func TestPointer_Shot_UnknownMoleID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPointerFixture(t, ctrl, PointerConfig{})

	f.mapper.EXPECT().MapMotorPositionToWorld(gomock.Any()).Return(domain.Vec3{Z: 1}).AnyTimes()
	f.raycaster.EXPECT().Raycast(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.RayHit{MoleID: 0xBAD0BAD, HasMole: true}, true).AnyTimes()

	res := f.pointer.Tick(context.Background(), 16*time.Millisecond, forwardSample(true))
	if res == nil || res.Outcome != ShotMissSurface {
		t.Errorf("result = %+v, want %v", res, ShotMissSurface)
	}
}

func TestPointer_Enable_ResetsSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPointerFixture(t, ctrl, PointerConfig{})
	f.stubQuietScene()

	f.pointer.Tick(context.Background(), 16*time.Millisecond, forwardSample(true))
	if f.pointer.ShotSeq() != 1 {
		t.Fatalf("ShotSeq = %d, want 1", f.pointer.ShotSeq())
	}

	f.pointer.Enable()
	if f.pointer.ShotSeq() != 0 || f.pointer.Cooldown() != PointerIdle {
		t.Errorf("ShotSeq = %d Cooldown = %v, want 0 and %v",
			f.pointer.ShotSeq(), f.pointer.Cooldown(), PointerIdle)
	}
}
