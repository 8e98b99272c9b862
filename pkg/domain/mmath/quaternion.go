// 指示: miu200521358
package mmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion は回転を表すクォータニオンを表す。
type Quaternion struct {
	mgl64.Quat
}

// NewQuaternion は単位クォータニオンを生成する。
func NewQuaternion() Quaternion {
	return Quaternion{Quat: mgl64.QuatIdent()}
}

// NewQuaternionFromDegrees はオイラー角(度)からクォータニオンを生成する。
// 合成順序は Rz・Ry・Rx (X軸回転を最初に適用)。
func NewQuaternionFromDegrees(x, y, z float64) Quaternion {
	qx := mgl64.QuatRotate(DegToRad(x), mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(DegToRad(y), mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(DegToRad(z), mgl64.Vec3{0, 0, 1})
	return Quaternion{Quat: qz.Mul(qy).Mul(qx)}
}

// NewQuaternionFromAxisAngleDeg は軸と角度(度)からクォータニオンを生成する。
func NewQuaternionFromAxisAngleDeg(axis Vec3, degrees float64) Quaternion {
	normalized := axis.Normalized()
	return Quaternion{Quat: mgl64.QuatRotate(DegToRad(degrees), normalized.Mgl())}
}

// Muled は回転を合成した結果を返す。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{Quat: q.Quat.Mul(other.Quat)}
}

// MulVec3 はベクトルを回転した結果を返す。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	return NewVec3FromMgl(q.Quat.Rotate(v.Mgl()))
}

// Inverted は逆回転を返す。
func (q Quaternion) Inverted() Quaternion {
	return Quaternion{Quat: q.Quat.Inverse()}
}

// Normalized は正規化した結果を返す。
func (q Quaternion) Normalized() Quaternion {
	return Quaternion{Quat: q.Quat.Normalize()}
}

// Slerped は球面線形補間した結果を返す。
func (q Quaternion) Slerped(other Quaternion, t float64) Quaternion {
	return Quaternion{Quat: mgl64.QuatSlerp(q.Quat, other.Quat, t)}
}

// Dot は内積を返す。
func (q Quaternion) Dot(other Quaternion) float64 {
	return q.Quat.Dot(other.Quat)
}

// IsIdent は単位クォータニオンか判定する。
func (q Quaternion) IsIdent() bool {
	return q.NearEquals(NewQuaternion(), 1e-10)
}

// NearEquals は符号反転も同一回転として許容誤差内で一致するか判定する。
func (q Quaternion) NearEquals(other Quaternion, epsilon float64) bool {
	dot := math.Abs(q.Normalized().Dot(other.Normalized()))
	return 1.0-dot <= epsilon
}

// ToEulerDegreesZXY はZXY順(BVHの回転チャンネル順)のオイラー角(度)へ分解する。
// 戻り値は (zDeg, xDeg, yDeg)。回転行列 R = Rz・Rx・Ry を満たす。
func (q Quaternion) ToEulerDegreesZXY() (float64, float64, float64) {
	m := q.Quat.Normalize().Mat4()

	sx := m.At(2, 1)
	if sx > 1 {
		sx = 1
	} else if sx < -1 {
		sx = -1
	}
	x := math.Asin(sx)

	var y, z float64
	if math.Abs(sx) < 1-1e-9 {
		y = math.Atan2(-m.At(2, 0), m.At(2, 2))
		z = math.Atan2(-m.At(0, 1), m.At(1, 1))
	} else {
		// ジンバルロック時はYへ寄せる
		y = 0
		z = math.Atan2(m.At(1, 0), m.At(0, 0))
	}

	return RadToDeg(z), RadToDeg(x), RadToDeg(y)
}

// RadToDeg はラジアンを度へ変換する。
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// DegToRad は度をラジアンへ変換する。
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
