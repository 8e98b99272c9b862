// 指示: miu200521358
package minteractor

import (
	"errors"

	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/model"
	"github.com/miu200521358/mu_bvh2tpose/pkg/usecase/port/moutput"
)

// MotionData は変換対象モーションを表す。
type MotionData = model.Motion

// SaveOptions は保存時オプションを表す。
type SaveOptions = moutput.SaveOptions

// 入出力ディレクトリ検証の既定エラー。
var (
	// ErrSourceDirNotFound は変換元ディレクトリが存在しない場合のエラーを表す。
	ErrSourceDirNotFound = errors.New("変換元ディレクトリが存在しません")
	// ErrDestinationDirNotFound は変換先ディレクトリが存在しない場合のエラーを表す。
	ErrDestinationDirNotFound = errors.New("変換先ディレクトリが存在しません")
)

// ConvertProgressEventType は変換処理の進捗イベント種別を表す。
type ConvertProgressEventType string

const (
	// ConvertProgressEventTypeFilesFound は変換対象ファイル列挙完了イベントを表す。
	ConvertProgressEventTypeFilesFound ConvertProgressEventType = "files_found"
	// ConvertProgressEventTypeFileLoaded は変換元ファイル読み込み完了イベントを表す。
	ConvertProgressEventTypeFileLoaded ConvertProgressEventType = "file_loaded"
	// ConvertProgressEventTypeTposeApplied はTポーズ設定完了イベントを表す。
	ConvertProgressEventTypeTposeApplied ConvertProgressEventType = "tpose_applied"
	// ConvertProgressEventTypeFramesCorrected はフレーム補正完了イベントを表す。
	ConvertProgressEventTypeFramesCorrected ConvertProgressEventType = "frames_corrected"
	// ConvertProgressEventTypeMotionRemoved は移動成分除去完了イベントを表す。
	ConvertProgressEventTypeMotionRemoved ConvertProgressEventType = "motion_removed"
	// ConvertProgressEventTypeFileWritten は変換先ファイル書き込み完了イベントを表す。
	ConvertProgressEventTypeFileWritten ConvertProgressEventType = "file_written"
	// ConvertProgressEventTypeCompleted は全ファイル変換完了イベントを表す。
	ConvertProgressEventTypeCompleted ConvertProgressEventType = "completed"
)

// ConvertProgressEvent は変換処理の進捗イベントを表す。
type ConvertProgressEvent struct {
	Type          ConvertProgressEventType
	FileName      string
	FileCount     int
	FrameCount    int
	KeyframeCount int
}

// IConvertProgressReporter は変換処理の進捗通知契約を表す。
type IConvertProgressReporter interface {
	// ReportConvertProgress は変換処理進捗を通知する。
	ReportConvertProgress(event ConvertProgressEvent)
}

// ConvertRequest はBVH一括変換要求を表す。
type ConvertRequest struct {
	SourceDir        string
	DestinationDir   string
	Reader           moutput.IMotionReader
	Writer           moutput.IMotionWriter
	ProgressReporter IConvertProgressReporter
}

// ConvertResult はBVH一括変換結果を表す。
type ConvertResult struct {
	// Files は変換したファイル名(拡張子付き)の一覧を変換順で保持する。
	Files []string
}

// reportConvertProgress は変換処理の進捗を通知する。
func reportConvertProgress(reporter IConvertProgressReporter, event ConvertProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportConvertProgress(event)
}
