// 指示: miu200521358
package minteractor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/miu200521358/mu_bvh2tpose/pkg/shared/base/logging"
)

// ConvertAll は変換元ディレクトリ内の全BVHファイルを補正し、同名で変換先へ保存する。
// いずれかのファイルで失敗した場合はその時点で中断する。
func (uc *Bvh2TposeUsecase) ConvertAll(request ConvertRequest) (*ConvertResult, error) {
	sourceDir := strings.TrimSpace(request.SourceDir)
	if sourceDir == "" {
		return nil, ErrSourceDirNotFound
	}
	if info, err := os.Stat(sourceDir); err != nil || !info.IsDir() {
		return nil, ErrSourceDirNotFound
	}

	destinationDir := strings.TrimSpace(request.DestinationDir)
	if destinationDir == "" {
		return nil, ErrDestinationDirNotFound
	}
	if info, err := os.Stat(destinationDir); err != nil || !info.IsDir() {
		return nil, ErrDestinationDirNotFound
	}

	files, err := uc.listConvertTargets(request, sourceDir)
	if err != nil {
		return nil, err
	}
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type:      ConvertProgressEventTypeFilesFound,
		FileCount: len(files),
	})

	result := &ConvertResult{}
	for _, file := range files {
		sourcePath := filepath.Join(sourceDir, file)
		destinationPath := filepath.Join(destinationDir, file)
		logConvertInfo("変換開始: file=%s", file)

		if err := uc.correctFile(request, sourcePath, destinationPath); err != nil {
			return nil, fmt.Errorf("BVH補正に失敗しました: %s: %w", file, err)
		}
		result.Files = append(result.Files, file)
	}

	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type:      ConvertProgressEventTypeCompleted,
		FileCount: len(result.Files),
	})
	return result, nil
}

// listConvertTargets は変換元ディレクトリから読み込み可能なファイル名を名前順で列挙する。
func (uc *Bvh2TposeUsecase) listConvertTargets(request ConvertRequest, sourceDir string) ([]string, error) {
	reader := request.Reader
	if reader == nil {
		reader = uc.motionReader
	}
	if reader == nil {
		return nil, fmt.Errorf("モーション読み込みリポジトリが設定されていません")
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("変換元ディレクトリの列挙に失敗しました: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !reader.CanLoad(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

// logConvertInfo は変換処理のINFOログを出力する。
func logConvertInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}
