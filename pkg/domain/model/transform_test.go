// 指示: miu200521358
package model

import (
	"testing"

	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/mmath"
)

func TestComposedAppliesRestRotationToDelta(t *testing.T) {
	rest := NewTransform()
	rest.Position = mmath.NewVec3(0, 2, 0)
	rest.Rotation = mmath.NewQuaternionFromAxisAngleDeg(mmath.UNIT_Y_VEC3, 90)

	delta := NewTransform()
	delta.Position = mmath.NewVec3(1, 0, 0)

	composed := rest.Composed(delta)
	if !composed.Position.NearEquals(mmath.NewVec3(0, 2, -1), 1e-9) {
		t.Fatalf("position mismatch: %+v", composed.Position)
	}
	if !composed.Rotation.NearEquals(rest.Rotation, 1e-10) {
		t.Fatalf("rotation mismatch")
	}
}

func TestRelativizedInvertsComposed(t *testing.T) {
	rest := NewTransform()
	rest.Position = mmath.NewVec3(1, 2, 3)
	rest.Rotation = mmath.NewQuaternionFromDegrees(10, 20, 30)

	delta := NewTransform()
	delta.Position = mmath.NewVec3(-0.5, 0.25, 4)
	delta.Rotation = mmath.NewQuaternionFromDegrees(5, -15, 45)

	recovered := rest.Relativized(rest.Composed(delta))
	if !recovered.Position.NearEquals(delta.Position, 1e-9) {
		t.Fatalf("position mismatch: %+v", recovered.Position)
	}
	if !recovered.Rotation.NearEquals(delta.Rotation, 1e-9) {
		t.Fatalf("rotation mismatch")
	}
	if !recovered.Scale.NearEquals(delta.Scale, 1e-9) {
		t.Fatalf("scale mismatch: %+v", recovered.Scale)
	}
}

func TestComposedWithIdentityDeltaKeepsRest(t *testing.T) {
	rest := NewTransform()
	rest.Position = mmath.NewVec3(0, 0.9, 0)
	rest.Rotation = mmath.NewQuaternionFromDegrees(0, 90, 0)

	composed := rest.Composed(NewTransform())
	if !composed.Position.NearEquals(rest.Position, 1e-12) {
		t.Fatalf("position mismatch: %+v", composed.Position)
	}
	if !composed.Rotation.NearEquals(rest.Rotation, 1e-12) {
		t.Fatalf("rotation mismatch")
	}
}
