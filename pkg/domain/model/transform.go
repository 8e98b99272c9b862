// 指示: miu200521358
package model

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/mmath"
)

// Transform はジョイントのローカル姿勢(位置・回転・スケール)を表す。
type Transform struct {
	Position mmath.Vec3
	Rotation mmath.Quaternion
	Scale    mmath.Vec3
}

// NewTransform は単位姿勢を生成する。
func NewTransform() Transform {
	return Transform{
		Position: mmath.ZERO_VEC3,
		Rotation: mmath.NewQuaternion(),
		Scale:    mmath.ONE_VEC3,
	}
}

// Matrix はローカル変換行列(T・R・S)を返す。
func (t Transform) Matrix() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Position.X, t.Position.Y, t.Position.Z)
	rotate := t.Rotation.Quat.Normalize().Mat4()
	scale := mgl64.Scale3D(t.Scale.X, t.Scale.Y, t.Scale.Z)
	return translate.Mul4(rotate).Mul4(scale)
}

// Composed は自身を基準姿勢として差分姿勢を合成したローカル姿勢を返す。
func (t Transform) Composed(delta Transform) Transform {
	scaled := mmath.NewVec3(
		delta.Position.X*t.Scale.X,
		delta.Position.Y*t.Scale.Y,
		delta.Position.Z*t.Scale.Z,
	)
	return Transform{
		Position: t.Position.Added(t.Rotation.MulVec3(scaled)),
		Rotation: t.Rotation.Muled(delta.Rotation),
		Scale: mmath.NewVec3(
			t.Scale.X*delta.Scale.X,
			t.Scale.Y*delta.Scale.Y,
			t.Scale.Z*delta.Scale.Z,
		),
	}
}

// Relativized は自身を基準姿勢として、合成後のローカル姿勢から差分姿勢を求める。
func (t Transform) Relativized(composed Transform) Transform {
	inverse := t.Rotation.Inverted()
	offset := inverse.MulVec3(composed.Position.Subed(t.Position))
	return Transform{
		Position: mmath.NewVec3(
			safeDivScale(offset.X, t.Scale.X),
			safeDivScale(offset.Y, t.Scale.Y),
			safeDivScale(offset.Z, t.Scale.Z),
		),
		Rotation: inverse.Muled(composed.Rotation),
		Scale: mmath.NewVec3(
			safeDivScale(composed.Scale.X, t.Scale.X),
			safeDivScale(composed.Scale.Y, t.Scale.Y),
			safeDivScale(composed.Scale.Z, t.Scale.Z),
		),
	}
}

// safeDivScale はスケール成分の除算を行う。0スケールは等倍として扱う。
func safeDivScale(value float64, scale float64) float64 {
	if scale == 0 {
		return value
	}
	return value / scale
}

// Keyframe は特定フレームのローカル姿勢差分を表す。
// 差分は基準姿勢に対するもので、合成後のローカル姿勢は RestPose.Composed で得る。
type Keyframe struct {
	Frame     int
	Transform Transform
}
