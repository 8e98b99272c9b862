// 指示: miu200521358
package mmath

import (
	"math"
	"testing"
)

func TestNewQuaternionFromDegreesRotatesAroundX(t *testing.T) {
	q := NewQuaternionFromDegrees(90, 0, 0)
	rotated := q.MulVec3(UNIT_Y_VEC3)
	if !rotated.NearEquals(UNIT_Z_VEC3, 1e-9) {
		t.Fatalf("rotated mismatch: %+v", rotated)
	}
}

func TestNewQuaternionFromDegreesAppliesXBeforeY(t *testing.T) {
	q := NewQuaternionFromDegrees(90, 90, 0)
	rotated := q.MulVec3(UNIT_Y_VEC3)
	if !rotated.NearEquals(UNIT_X_VEC3, 1e-9) {
		t.Fatalf("rotated mismatch: %+v", rotated)
	}
}

func TestNewQuaternionFromAxisAngleDeg(t *testing.T) {
	q := NewQuaternionFromAxisAngleDeg(UNIT_Y_VEC3, 90)
	rotated := q.MulVec3(UNIT_X_VEC3)
	if !rotated.NearEquals(UNIT_Z_NEG_VEC3, 1e-9) {
		t.Fatalf("rotated mismatch: %+v", rotated)
	}
}

func TestMulVec3FlipsAxesOnHalfTurn(t *testing.T) {
	q := NewQuaternionFromAxisAngleDeg(UNIT_Z_VEC3, 180)
	if !q.MulVec3(UNIT_X_VEC3).NearEquals(UNIT_X_NEG_VEC3, 1e-9) {
		t.Fatalf("x axis should flip: %+v", q.MulVec3(UNIT_X_VEC3))
	}
	if !q.MulVec3(UNIT_Y_VEC3).NearEquals(UNIT_Y_NEG_VEC3, 1e-9) {
		t.Fatalf("y axis should flip: %+v", q.MulVec3(UNIT_Y_VEC3))
	}
}

func TestMuledInvertedIsIdentity(t *testing.T) {
	q := NewQuaternionFromDegrees(10, 20, 30)
	if !q.Muled(q.Inverted()).IsIdent() {
		t.Fatalf("expected identity")
	}
}

func TestToEulerDegreesZXYRoundtrip(t *testing.T) {
	original := NewQuaternionFromAxisAngleDeg(UNIT_Z_VEC3, 30).
		Muled(NewQuaternionFromAxisAngleDeg(UNIT_X_VEC3, 40)).
		Muled(NewQuaternionFromAxisAngleDeg(UNIT_Y_VEC3, 50))

	zDeg, xDeg, yDeg := original.ToEulerDegreesZXY()
	rebuilt := NewQuaternionFromAxisAngleDeg(UNIT_Z_VEC3, zDeg).
		Muled(NewQuaternionFromAxisAngleDeg(UNIT_X_VEC3, xDeg)).
		Muled(NewQuaternionFromAxisAngleDeg(UNIT_Y_VEC3, yDeg))

	if !original.NearEquals(rebuilt, 1e-9) {
		t.Fatalf("roundtrip mismatch: z=%f x=%f y=%f", zDeg, xDeg, yDeg)
	}
}

func TestToEulerDegreesZXYSingleAxis(t *testing.T) {
	q := NewQuaternionFromDegrees(0, 90, 0)
	zDeg, xDeg, yDeg := q.ToEulerDegreesZXY()
	if math.Abs(zDeg) > 1e-9 || math.Abs(xDeg) > 1e-9 || math.Abs(yDeg-90) > 1e-9 {
		t.Fatalf("euler mismatch: z=%f x=%f y=%f", zDeg, xDeg, yDeg)
	}
}

func TestNearEqualsToleratesSignFlip(t *testing.T) {
	q := NewQuaternionFromDegrees(10, 20, 30)
	flipped := q
	flipped.Quat.W = -flipped.Quat.W
	flipped.Quat.V = flipped.Quat.V.Mul(-1)
	if !q.NearEquals(flipped, 1e-10) {
		t.Fatalf("expected sign flipped quaternion to match")
	}
}

func TestSlerpedEndpoints(t *testing.T) {
	a := NewQuaternion()
	b := NewQuaternionFromAxisAngleDeg(UNIT_Y_VEC3, 90)
	if !a.Slerped(b, 0).NearEquals(a, 1e-10) {
		t.Fatalf("slerp at 0 mismatch")
	}
	if !a.Slerped(b, 1).NearEquals(b, 1e-10) {
		t.Fatalf("slerp at 1 mismatch")
	}
}
