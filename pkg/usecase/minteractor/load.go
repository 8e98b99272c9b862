// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_bvh2tpose/pkg/usecase/port/moutput"
)

// LoadMotion はモーションファイルを読み込む。
func (uc *Bvh2TposeUsecase) LoadMotion(rep moutput.IMotionReader, path string) (*MotionData, error) {
	repo := rep
	if repo == nil {
		repo = uc.motionReader
	}
	if repo == nil {
		return nil, fmt.Errorf("モーション読み込みリポジトリが設定されていません")
	}
	return repo.Load(path)
}
