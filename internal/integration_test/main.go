// 指示: miu200521358
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/miu200521358/mu_bvh2tpose/pkg/adapter/io_config"
	"github.com/miu200521358/mu_bvh2tpose/pkg/adapter/io_motion/bvh"
	"github.com/miu200521358/mu_bvh2tpose/pkg/usecase/minteractor"
)

const batchOutputDirMode = 0o755

// batchConfig はバッチ補正の実行設定を表す。
type batchConfig struct {
	SourceDir  string
	OutputRoot string
	DryRun     bool
}

// convertProgressCollector は ConvertAll の進捗イベントを収集する。
type convertProgressCollector struct {
	eventCounts   map[minteractor.ConvertProgressEventType]int
	frameTotal    int
	keyframeTotal int
}

// main は検証用のBVH一括Tポーズ補正を実行する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括補正を実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	if _, err := os.Stat(config.SourceDir); err != nil {
		fmt.Fprintf(os.Stderr, "変換元ディレクトリが見つかりません: %v\n", err)
		return 2
	}
	if config.DryRun {
		fmt.Printf("DRY-RUN: source=%s output=%s\n", config.SourceDir, config.OutputRoot)
		return 0
	}
	if err := os.MkdirAll(config.OutputRoot, batchOutputDirMode); err != nil {
		fmt.Fprintf(os.Stderr, "出力ディレクトリ作成に失敗しました: %v\n", err)
		return 2
	}

	preset, err := io_config.LoadBandaiNamcoPreset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "補正プリセット読み込みに失敗しました: %v\n", err)
		return 2
	}
	repository := bvh.NewBvhRepository()
	usecase := minteractor.NewBvh2TposeUsecase(minteractor.Bvh2TposeUsecaseDeps{
		MotionReader: repository,
		MotionWriter: repository,
		Preset:       preset,
	})

	startedAt := time.Now()
	collector := newConvertProgressCollector()
	result, err := usecase.ConvertAll(minteractor.ConvertRequest{
		SourceDir:        config.SourceDir,
		DestinationDir:   config.OutputRoot,
		Reader:           repository,
		Writer:           repository,
		ProgressReporter: collector,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "一括補正に失敗しました: %v\n", err)
		return 1
	}

	fmt.Printf("バッチ補正サマリ: files=%d elapsed=%s %s\n",
		len(result.Files), time.Since(startedAt).Round(time.Millisecond), collector.Summary())
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
func parseBatchConfig() (batchConfig, error) {
	defaultOutputRoot, err := resolveDefaultOutputRoot()
	if err != nil {
		return batchConfig{}, err
	}
	sourceDir := flag.String("source-dir", "", "変換元BVHディレクトリ")
	outputRoot := flag.String("output-root", defaultOutputRoot, "補正結果の出力ルートディレクトリ")
	dryRun := flag.Bool("dry-run", false, "実変換せず、入出力の解決結果のみ表示する")
	flag.Parse()

	trimmedSourceDir := strings.TrimSpace(*sourceDir)
	if trimmedSourceDir == "" {
		return batchConfig{}, errors.New("source-dir が空です")
	}
	trimmedOutputRoot := strings.TrimSpace(*outputRoot)
	if trimmedOutputRoot == "" {
		return batchConfig{}, errors.New("output-root が空です")
	}
	return batchConfig{
		SourceDir:  filepath.Clean(trimmedSourceDir),
		OutputRoot: filepath.Clean(trimmedOutputRoot),
		DryRun:     *dryRun,
	}, nil
}

// resolveDefaultOutputRoot はスクリプト配置ディレクトリ基準の既定出力先を返す。
func resolveDefaultOutputRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("実行ファイル位置を取得できません")
	}
	currentDir := filepath.Dir(currentFilePath)
	return filepath.Join(currentDir, "output"), nil
}

// newConvertProgressCollector は ConvertAll 進捗収集器を生成する。
func newConvertProgressCollector() *convertProgressCollector {
	return &convertProgressCollector{
		eventCounts: map[minteractor.ConvertProgressEventType]int{},
	}
}

// ReportConvertProgress は ConvertAll の進捗イベントを収集する。
func (collector *convertProgressCollector) ReportConvertProgress(event minteractor.ConvertProgressEvent) {
	if collector == nil {
		return
	}
	if collector.eventCounts == nil {
		collector.eventCounts = map[minteractor.ConvertProgressEventType]int{}
	}
	collector.eventCounts[event.Type]++
	collector.frameTotal += event.FrameCount
	collector.keyframeTotal += event.KeyframeCount

	if event.Type == minteractor.ConvertProgressEventTypeFileLoaded {
		fmt.Printf("| 読み込み: %s\n", event.FileName)
	}
}

// Summary は収集した ConvertAll 進捗の要約文字列を返す。
func (collector *convertProgressCollector) Summary() string {
	if collector == nil || len(collector.eventCounts) == 0 {
		return "events=0"
	}
	return fmt.Sprintf("events=%d frames=%d removedKeyframes=%d",
		len(collector.eventCounts), collector.frameTotal, collector.keyframeTotal)
}
