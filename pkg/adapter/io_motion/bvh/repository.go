// 指示: miu200521358
// Package bvh はBVH形式モーションファイルの入出力アダプタを提供する。
package bvh

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_bvh2tpose/pkg/adapter/io_common"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/model"
	"github.com/miu200521358/mu_bvh2tpose/pkg/shared/base/logging"
)

const bvhExtension = ".bvh"

// BvhRepository はBVHモーションの読み書き契約を表す。
type BvhRepository struct {
}

// NewBvhRepository はBvhRepositoryを生成する。
func NewBvhRepository() *BvhRepository {
	return &BvhRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *BvhRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), bvhExtension)
}

// InferName はパスから表示名を推定する。
func (r *BvhRepository) InferName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Load はBVHファイルをジョイント階層として読み込む。
func (r *BvhRepository) Load(path string) (*model.Motion, error) {
	if !r.CanLoad(path) {
		return nil, io_common.NewIoExtInvalid(path, nil)
	}
	logBvhInfo("BVH読込開始: file=%s", filepath.Base(path))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, io_common.NewIoFileNotFound(path, err)
		}
		return nil, io_common.NewIoParseFailed("BVHファイルの読み取りに失敗しました", err)
	}

	motion, err := parseBvh(string(data))
	if err != nil {
		return nil, err
	}
	motion.SetPath(path)
	motion.Root.LoadRestPose(true)

	logBvhDebug("BVH読込完了: joints=%d frames=%d frameTime=%f",
		len(motion.Layout()), motion.FrameCount, motion.FrameTime)
	return motion, nil
}

// Save はジョイント階層をBVHファイルへ書き込む。
func (r *BvhRepository) Save(path string, motion *model.Motion, options io_common.SaveOptions) error {
	if motion == nil || motion.Root == nil {
		return io_common.NewIoWriteFailed(path, nil)
	}
	logBvhInfo("BVH保存開始: file=%s", filepath.Base(path))

	text := formatBvh(motion, options)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return io_common.NewIoWriteFailed(path, err)
	}

	logBvhDebug("BVH保存完了: file=%s bytes=%d", filepath.Base(path), len(text))
	return nil
}

// logBvhInfo はBVH入出力のINFOログを出力する。
func logBvhInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}

// logBvhDebug はBVH入出力のデバッグログを出力する。
func logBvhDebug(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Debug(format, params...)
}
