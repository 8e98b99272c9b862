// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/correction"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/model"
)

// checkJoints は変換元モーションのジョイント配置を検証する。
// 変換元はプレースホルダルートの直下に想定ジョイント列が深さ優先順で並ぶ前提で、
// 検証済みのジョイント名引きマップを返す。
func checkJoints(motion *MotionData, preset *correction.Preset) (map[string]*model.Joint, error) {
	if motion == nil || motion.Root == nil {
		return nil, fmt.Errorf("変換対象モーションが未設定です")
	}
	if preset == nil {
		return nil, fmt.Errorf("補正プリセットが未設定です")
	}

	layout := motion.Root.Layout()
	if len(layout) != len(preset.ExpectedJoints)+1 {
		return nil, fmt.Errorf("ジョイント数が想定と一致しません: %d (想定: %d)",
			len(layout), len(preset.ExpectedJoints)+1)
	}

	joints := make(map[string]*model.Joint, len(preset.ExpectedJoints))
	for i, name := range preset.ExpectedJoints {
		joint := layout[i+1].Joint
		if joint.Name() != name {
			return nil, fmt.Errorf("ジョイント名が想定と一致しません: index=%d name=%s (想定: %s)",
				i+1, joint.Name(), name)
		}
		joints[name] = joint
	}
	return joints, nil
}
