// 指示: miu200521358
// Package messages はCLI表示に使うメッセージを提供する。
package messages

// メッセージ一覧。
const (
	MessageSourceDirMissing      = "変換元ディレクトリが存在しません"
	MessageDestinationDirMissing = "変換先ディレクトリが存在しません"

	MessageFilesFound      = "変換対象のBVHファイルを%d件見つけました"
	MessageFileLoaded      = "読み込み完了: %s"
	MessageTposeApplied    = "Tポーズ設定完了: %s"
	MessageFramesCorrected = "フレーム補正完了: %s (%dフレーム)"
	MessageMotionRemoved   = "移動成分除去完了: %s (%dキーフレーム)"
	MessageFileWritten     = "書き込み完了: %s"
	MessageCompleted       = "変換完了: %d件"

	MessageConvertFailed = "変換失敗"
)
