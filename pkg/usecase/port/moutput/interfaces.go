// 指示: miu200521358
package moutput

import (
	"github.com/miu200521358/mu_bvh2tpose/pkg/adapter/io_common"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/model"
)

// SaveOptions は保存時のオプションを表す。
type SaveOptions = io_common.SaveOptions

// IMotionReader はモーションファイルの読み込み契約を表す。
type IMotionReader interface {
	// CanLoad はパスが読み込み対象かどうかを判定する。
	CanLoad(path string) bool
	// InferName はパスから表示名を推定する。
	InferName(path string) string
	// Load はモーションファイルをジョイント階層として読み込む。
	Load(path string) (*model.Motion, error)
}

// IMotionWriter はモーションファイルの書き込み契約を表す。
type IMotionWriter interface {
	// Save はジョイント階層をモーションファイルへ書き込む。
	Save(path string, motion *model.Motion, options SaveOptions) error
}
