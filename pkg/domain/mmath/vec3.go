// 指示: miu200521358
package mmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

// 基本ベクトル定数。
var (
	ZERO_VEC3       = Vec3{}
	ONE_VEC3        = NewVec3(1, 1, 1)
	UNIT_X_VEC3     = NewVec3(1, 0, 0)
	UNIT_Y_VEC3     = NewVec3(0, 1, 0)
	UNIT_Z_VEC3     = NewVec3(0, 0, 1)
	UNIT_X_NEG_VEC3 = NewVec3(-1, 0, 0)
	UNIT_Y_NEG_VEC3 = NewVec3(0, -1, 0)
	UNIT_Z_NEG_VEC3 = NewVec3(0, 0, -1)
)

// NewVec3 は成分指定でVec3を生成する。
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// Added は加算結果を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed は減算結果を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// MuledScalar はスカラー倍した結果を返す。
func (v Vec3) MuledScalar(scale float64) Vec3 {
	return Vec3{Vec: r3.Scale(scale, v.Vec)}
}

// Dot は内積を返す。
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(v.Vec, other.Vec)
}

// Cross は外積を返す。
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{Vec: r3.Cross(v.Vec, other.Vec)}
}

// Length はベクトル長を返す。
func (v Vec3) Length() float64 {
	return r3.Norm(v.Vec)
}

// Normalized は正規化した結果を返す。ゼロベクトルはそのまま返す。
func (v Vec3) Normalized() Vec3 {
	if r3.Norm(v.Vec) == 0 {
		return v
	}
	return Vec3{Vec: r3.Unit(v.Vec)}
}

// Lerped は線形補間した結果を返す。
func (v Vec3) Lerped(other Vec3, t float64) Vec3 {
	return v.Added(other.Subed(v).MuledScalar(t))
}

// NearEquals は許容誤差内で一致するか判定する。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon
}

// Mgl はmathgl形式へ変換する。
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// NewVec3FromMgl はmathgl形式から生成する。
func NewVec3FromMgl(v mgl64.Vec3) Vec3 {
	return NewVec3(v.X(), v.Y(), v.Z())
}
