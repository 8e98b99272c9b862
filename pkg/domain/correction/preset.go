// 指示: miu200521358
// Package correction はリグ規約補正の定義(Tポーズ角度・ロール補正)を提供する。
package correction

import (
	"fmt"

	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/mmath"
)

// Axis は補正回転の軸を表す。
type Axis string

// 補正軸一覧。
const (
	AXIS_X Axis = "x"
	AXIS_Y Axis = "y"
	AXIS_Z Axis = "z"
)

// Vec3 は軸に対応する単位ベクトルを返す。
func (a Axis) Vec3() (mmath.Vec3, bool) {
	switch a {
	case AXIS_X:
		return mmath.UNIT_X_VEC3, true
	case AXIS_Y:
		return mmath.UNIT_Y_VEC3, true
	case AXIS_Z:
		return mmath.UNIT_Z_VEC3, true
	default:
		return mmath.ZERO_VEC3, false
	}
}

// Euler はオイラー角(度、X/Y/Z順)を表す。
type Euler [3]float64

// Quaternion はオイラー角をクォータニオンへ変換する。
func (e Euler) Quaternion() mmath.Quaternion {
	return mmath.NewQuaternionFromDegrees(e[0], e[1], e[2])
}

// TPoseRotation はTポーズ化で基準姿勢へ設定する回転を表す。
type TPoseRotation struct {
	Joint string
	Euler Euler
	// Roll はオイラー設定後に追加するローカルY軸ロール(度)。0の場合は適用しない。
	Roll float64
}

// RollCorrection はフレームごとに適用するロール補正を表す。
type RollCorrection struct {
	Joint     string
	Degrees   float64
	Recursive bool
}

// AxisRotation はフレームごとに後乗せする固定軸回転を表す。
type AxisRotation struct {
	Joint   string
	Axis    Axis
	Degrees float64
}

// Preset は1つの入力スケルトン規約に対する補正一式を表す。
type Preset struct {
	Name string
	// FrameTime は出力BVHの1フレーム再生時間(秒)。
	FrameTime float64
	// ExpectedJoints はルート直下から深さ優先順で並ぶ想定ジョイント名。
	ExpectedJoints []string
	TPose          []TPoseRotation
	Rolls          []RollCorrection
	Rotations      []AxisRotation
	// RootRestEuler は2パス目でルートの基準回転へ設定するオイラー角。
	RootRestEuler Euler
}

// Validate は補正定義の整合性を検証する。
func (p *Preset) Validate() error {
	if p == nil {
		return fmt.Errorf("補正プリセットが未設定です")
	}
	if p.FrameTime <= 0 {
		return fmt.Errorf("出力フレーム時間が不正です: %f", p.FrameTime)
	}
	if len(p.ExpectedJoints) == 0 {
		return fmt.Errorf("想定ジョイント一覧が空です")
	}

	known := make(map[string]struct{}, len(p.ExpectedJoints))
	for _, name := range p.ExpectedJoints {
		known[name] = struct{}{}
	}
	for _, entry := range p.TPose {
		if _, ok := known[entry.Joint]; !ok {
			return fmt.Errorf("Tポーズ補正対象が想定ジョイントにありません: %s", entry.Joint)
		}
	}
	for _, entry := range p.Rolls {
		if _, ok := known[entry.Joint]; !ok {
			return fmt.Errorf("ロール補正対象が想定ジョイントにありません: %s", entry.Joint)
		}
	}
	for _, entry := range p.Rotations {
		if _, ok := known[entry.Joint]; !ok {
			return fmt.Errorf("軸回転補正対象が想定ジョイントにありません: %s", entry.Joint)
		}
		if _, ok := entry.Axis.Vec3(); !ok {
			return fmt.Errorf("軸回転補正の軸が不正です: %s (%s)", entry.Axis, entry.Joint)
		}
	}
	return nil
}
