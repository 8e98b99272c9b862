// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_bvh2tpose/pkg/usecase/port/moutput"
)

// SaveMotion はモーションファイルを保存する。
func (uc *Bvh2TposeUsecase) SaveMotion(rep moutput.IMotionWriter, path string, motionData *MotionData, opts SaveOptions) error {
	writer := rep
	if writer == nil {
		writer = uc.motionWriter
	}
	if writer == nil {
		return fmt.Errorf("モーション保存リポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("保存先パスが未指定です")
	}
	if motionData == nil {
		return fmt.Errorf("保存対象モーションが未設定です")
	}
	return writer.Save(path, motionData, opts)
}
