// 指示: miu200521358
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/miu200521358/mu_bvh2tpose/pkg/adapter/io_config"
	"github.com/miu200521358/mu_bvh2tpose/pkg/adapter/io_motion/bvh"
	"github.com/miu200521358/mu_bvh2tpose/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_bvh2tpose/pkg/infra/base/mlogging"
	"github.com/miu200521358/mu_bvh2tpose/pkg/shared/base/logging"
	"github.com/miu200521358/mu_bvh2tpose/pkg/usecase/minteractor"
)

// options はCLI引数を保持する。
type options struct {
	sourceDir      string
	destinationDir string
}

// main はBVHの基準姿勢補正を一括実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
// 変換元・変換先ディレクトリが存在しない場合はメッセージのみ出力して正常終了する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}

	if logging.DefaultLogger() == nil {
		logging.SetDefaultLogger(mlogging.NewLogger(errOut))
	}

	preset, err := io_config.LoadBandaiNamcoPreset()
	if err != nil {
		return fmt.Errorf("補正プリセットの読み込みに失敗しました: %w", err)
	}

	repository := bvh.NewBvhRepository()
	usecase := minteractor.NewBvh2TposeUsecase(minteractor.Bvh2TposeUsecaseDeps{
		MotionReader: repository,
		MotionWriter: repository,
		Preset:       preset,
	})

	result, err := usecase.ConvertAll(minteractor.ConvertRequest{
		SourceDir:        opts.sourceDir,
		DestinationDir:   opts.destinationDir,
		Reader:           repository,
		Writer:           repository,
		ProgressReporter: &convertProgressPrinter{out: out},
	})
	if err != nil {
		if errors.Is(err, minteractor.ErrSourceDirNotFound) {
			fmt.Fprintf(out, "[mu_bvh2tpose] %s\n", messages.MessageSourceDirMissing)
			return nil
		}
		if errors.Is(err, minteractor.ErrDestinationDirNotFound) {
			fmt.Fprintf(out, "[mu_bvh2tpose] %s\n", messages.MessageDestinationDirMissing)
			return nil
		}
		return fmt.Errorf("%s: %w", messages.MessageConvertFailed, err)
	}

	fmt.Fprintf(out, "[mu_bvh2tpose] "+messages.MessageCompleted+"\n", len(result.Files))
	return nil
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("mu_bvh2tpose", flag.ContinueOnError)
	fs.SetOutput(errOut)

	src := fs.String("src", "", "変換元BVHディレクトリパス")
	dst := fs.String("dst", "", "変換先BVHディレクトリパス")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *src == "" && fs.NArg() > 0 {
		*src = fs.Arg(0)
	}
	if *dst == "" && fs.NArg() > 1 {
		*dst = fs.Arg(1)
	}
	if *src == "" {
		return options{}, fmt.Errorf("変換元ディレクトリを指定してください (-src)")
	}
	if *dst == "" {
		return options{}, fmt.Errorf("変換先ディレクトリを指定してください (-dst)")
	}

	return options{sourceDir: *src, destinationDir: *dst}, nil
}

// convertProgressPrinter は変換進捗を標準出力へ表示する。
type convertProgressPrinter struct {
	out io.Writer
}

// ReportConvertProgress は変換処理進捗を表示する。
func (p *convertProgressPrinter) ReportConvertProgress(event minteractor.ConvertProgressEvent) {
	switch event.Type {
	case minteractor.ConvertProgressEventTypeFilesFound:
		fmt.Fprintf(p.out, "[mu_bvh2tpose] "+messages.MessageFilesFound+"\n", event.FileCount)
	case minteractor.ConvertProgressEventTypeFileLoaded:
		fmt.Fprintf(p.out, "[mu_bvh2tpose] "+messages.MessageFileLoaded+"\n", event.FileName)
	case minteractor.ConvertProgressEventTypeTposeApplied:
		fmt.Fprintf(p.out, "[mu_bvh2tpose] "+messages.MessageTposeApplied+"\n", event.FileName)
	case minteractor.ConvertProgressEventTypeFramesCorrected:
		fmt.Fprintf(p.out, "[mu_bvh2tpose] "+messages.MessageFramesCorrected+"\n", event.FileName, event.FrameCount)
	case minteractor.ConvertProgressEventTypeMotionRemoved:
		fmt.Fprintf(p.out, "[mu_bvh2tpose] "+messages.MessageMotionRemoved+"\n", event.FileName, event.KeyframeCount)
	case minteractor.ConvertProgressEventTypeFileWritten:
		fmt.Fprintf(p.out, "[mu_bvh2tpose] "+messages.MessageFileWritten+"\n", event.FileName)
	}
}
