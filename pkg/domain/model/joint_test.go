// 指示: miu200521358
package model

import (
	"testing"

	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/mmath"
)

// buildTestChain はテスト用の3階層チェーンを生成する。
func buildTestChain(t *testing.T) (*Joint, *Joint, *Joint) {
	t.Helper()
	root := NewJoint("Chest")
	child := NewJoint("UpperArm_L")
	grandchild := NewJoint("LowerArm_L")
	root.Add(child)
	child.Add(grandchild)

	root.Current.Rotation = mmath.NewQuaternionFromDegrees(0, 30, 0)
	child.Current.Position = mmath.NewVec3(0, 1, 0)
	child.Current.Rotation = mmath.NewQuaternionFromDegrees(20, 0, 0)
	grandchild.Current.Position = mmath.NewVec3(0, 0.5, 0)
	return root, child, grandchild
}

func TestLayoutDepthFirstOrder(t *testing.T) {
	root := NewJoint("Hips")
	spine := NewJoint("Spine")
	chest := NewJoint("Chest")
	legL := NewJoint("UpperLeg_L")
	legR := NewJoint("UpperLeg_R")
	root.Add(spine)
	spine.Add(chest)
	root.Add(legL)
	root.Add(legR)

	layout := root.Layout()
	names := make([]string, 0, len(layout))
	for _, entry := range layout {
		names = append(names, entry.Joint.Name())
	}
	expected := []string{"Hips", "Spine", "Chest", "UpperLeg_L", "UpperLeg_R"}
	for i, name := range expected {
		if names[i] != name {
			t.Fatalf("layout mismatch at %d: %s != %s", i, names[i], name)
		}
	}
	if layout[2].Depth != 2 {
		t.Fatalf("depth mismatch: %d", layout[2].Depth)
	}
}

func TestRollKeepsWorldPose(t *testing.T) {
	root, child, grandchild := buildTestChain(t)
	childBefore := child.GlobalPosition()
	grandchildBefore := grandchild.GlobalPosition()
	rotationBefore := root.Current.Rotation

	root.Roll(-90, false)

	if root.Current.Rotation.NearEquals(rotationBefore, 1e-10) {
		t.Fatalf("root rotation should change")
	}
	if !child.GlobalPosition().NearEquals(childBefore, 1e-9) {
		t.Fatalf("child world position changed: %+v", child.GlobalPosition())
	}
	if !grandchild.GlobalPosition().NearEquals(grandchildBefore, 1e-9) {
		t.Fatalf("grandchild world position changed: %+v", grandchild.GlobalPosition())
	}
}

func TestRollRecursiveKeepsWorldPose(t *testing.T) {
	root, child, grandchild := buildTestChain(t)
	grandchildBefore := grandchild.GlobalPosition()
	childRotationBefore := child.Current.Rotation

	root.Roll(180, true)

	if !grandchild.GlobalPosition().NearEquals(grandchildBefore, 1e-9) {
		t.Fatalf("grandchild world position changed: %+v", grandchild.GlobalPosition())
	}
	if child.Current.Rotation.NearEquals(childRotationBefore, 1e-10) {
		t.Fatalf("child rotation should change by recursive roll")
	}
}

func TestClearParentDetachesFromHierarchy(t *testing.T) {
	root := NewJoint("root")
	hips := NewJoint("Hips")
	root.Add(hips)

	detached := hips.ClearParent()
	if detached.Parent() != nil {
		t.Fatalf("parent should be nil")
	}
	if len(root.Children()) != 0 {
		t.Fatalf("root should have no children: %d", len(root.Children()))
	}
}

func TestSearchByName(t *testing.T) {
	root, _, grandchild := buildTestChain(t)
	found, ok := root.SearchByName("LowerArm_L")
	if !ok || found != grandchild {
		t.Fatalf("search failed")
	}
	if _, ok := root.SearchByName("missing"); ok {
		t.Fatalf("expected not found")
	}
}

func TestKeyframeRangeCoversSubtree(t *testing.T) {
	root, child, _ := buildTestChain(t)
	if _, _, ok := root.KeyframeRange(); ok {
		t.Fatalf("expected no keyframes")
	}

	root.InsertKeyframe(2, NewTransform())
	root.InsertKeyframe(5, NewTransform())
	child.InsertKeyframe(0, NewTransform())

	first, last, ok := root.KeyframeRange()
	if !ok {
		t.Fatalf("expected keyframes")
	}
	if first != 0 || last != 5 {
		t.Fatalf("range mismatch: %d..%d", first, last)
	}
}

func TestLoadPoseComposesRestAndDelta(t *testing.T) {
	joint := NewJoint("Hips")
	joint.RestPose.Position = mmath.NewVec3(0, 2, 0)
	joint.RestPose.Rotation = mmath.NewQuaternionFromAxisAngleDeg(mmath.UNIT_Y_VEC3, 90)

	delta := NewTransform()
	delta.Position = mmath.NewVec3(1, 0, 0)
	joint.InsertKeyframe(0, delta)

	joint.LoadPose(0, false)
	if !joint.Current.Position.NearEquals(mmath.NewVec3(0, 2, -1), 1e-9) {
		t.Fatalf("position mismatch: %+v", joint.Current.Position)
	}
}

func TestWritePoseStoresRestRelativeDelta(t *testing.T) {
	joint := NewJoint("Spine")
	joint.RestPose.Rotation = mmath.NewQuaternionFromDegrees(0, 90, 0)

	delta := NewTransform()
	delta.Rotation = mmath.NewQuaternionFromDegrees(30, 0, 0)
	joint.Current = joint.RestPose.Composed(delta)
	joint.WritePose(3, false)

	keyframes := joint.Keyframes()
	if len(keyframes) != 1 || keyframes[0].Frame != 3 {
		t.Fatalf("keyframe mismatch: %+v", keyframes)
	}
	if !keyframes[0].Transform.Rotation.NearEquals(delta.Rotation, 1e-9) {
		t.Fatalf("delta rotation mismatch")
	}
}

func TestCopiedKeyframesIsolatesMutation(t *testing.T) {
	joint := NewJoint("Hips")
	delta := NewTransform()
	delta.Position = mmath.NewVec3(1, 0, 0)
	joint.InsertKeyframe(0, delta)

	copied, err := joint.CopiedKeyframes()
	if err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	copied[0].Transform.Position = mmath.NewVec3(9, 9, 9)

	if !joint.Keyframes()[0].Transform.Position.NearEquals(delta.Position, 1e-12) {
		t.Fatalf("source keyframe mutated: %+v", joint.Keyframes()[0].Transform.Position)
	}
}

func TestRestGlobalPositionChainsRestPoses(t *testing.T) {
	root := NewJoint("Hips")
	root.RestPose.Position = mmath.NewVec3(0, 2, 0)
	root.RestPose.Rotation = mmath.NewQuaternionFromAxisAngleDeg(mmath.UNIT_Y_VEC3, 90)
	child := NewJoint("Spine")
	child.RestPose.Position = mmath.NewVec3(1, 0, 0)
	root.Add(child)

	if !child.RestGlobalPosition().NearEquals(mmath.NewVec3(0, 2, -1), 1e-9) {
		t.Fatalf("rest global position mismatch: %+v", child.RestGlobalPosition())
	}
}

func TestPoseAtInterpolatesBetweenKeyframes(t *testing.T) {
	joint := NewJoint("Hips")
	start := NewTransform()
	end := NewTransform()
	end.Position = mmath.NewVec3(10, 0, 0)
	joint.InsertKeyframe(0, start)
	joint.InsertKeyframe(10, end)

	pose := joint.PoseAt(5)
	if !pose.Position.NearEquals(mmath.NewVec3(5, 0, 0), 1e-9) {
		t.Fatalf("interpolated position mismatch: %+v", pose.Position)
	}

	// 範囲外は端のキーフレームへ張り付く
	pose = joint.PoseAt(20)
	if !pose.Position.NearEquals(mmath.NewVec3(10, 0, 0), 1e-9) {
		t.Fatalf("clamped position mismatch: %+v", pose.Position)
	}
}

func TestInsertKeyframeReplacesSameFrame(t *testing.T) {
	joint := NewJoint("Hips")
	first := NewTransform()
	first.Position = mmath.NewVec3(1, 0, 0)
	joint.InsertKeyframe(0, first)

	second := NewTransform()
	second.Position = mmath.NewVec3(2, 0, 0)
	joint.InsertKeyframe(0, second)

	keyframes := joint.Keyframes()
	if len(keyframes) != 1 {
		t.Fatalf("keyframe count mismatch: %d", len(keyframes))
	}
	if !keyframes[0].Transform.Position.NearEquals(second.Position, 1e-12) {
		t.Fatalf("keyframe should be replaced")
	}
}

func TestWriteRestPosePersistsCurrent(t *testing.T) {
	root, child, _ := buildTestChain(t)
	root.SetEuler(0, 90, 0)
	root.WriteRestPose(true)

	if !root.RestPose.Rotation.NearEquals(mmath.NewQuaternionFromDegrees(0, 90, 0), 1e-10) {
		t.Fatalf("rest rotation mismatch")
	}
	if !child.RestPose.Position.NearEquals(child.Current.Position, 1e-12) {
		t.Fatalf("child rest position mismatch")
	}

	root.Current.Rotation = mmath.NewQuaternion()
	root.LoadRestPose(true)
	if !root.Current.Rotation.NearEquals(mmath.NewQuaternionFromDegrees(0, 90, 0), 1e-10) {
		t.Fatalf("load rest pose mismatch")
	}
}
