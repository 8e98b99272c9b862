// 指示: miu200521358
// Package io_common は入出力アダプタ共通の型を提供する。
package io_common

import (
	"errors"
	"fmt"
)

// SaveOptions は保存時のオプションを表す。
type SaveOptions struct {
	// FrameTime は1フレームあたりの再生時間(秒)。0の場合は読み込み時の値を使う。
	FrameTime float64
}

// IoErrorKind は入出力エラー種別を表す。
type IoErrorKind int

// 入出力エラー種別一覧。
const (
	IO_ERROR_FILE_NOT_FOUND IoErrorKind = iota
	IO_ERROR_EXT_INVALID
	IO_ERROR_PARSE_FAILED
	IO_ERROR_WRITE_FAILED
)

// IoError は入出力エラーを表す。
type IoError struct {
	Kind    IoErrorKind
	Path    string
	Message string
	cause   error
}

// Error はエラーメッセージを返す。
func (e *IoError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Path)
	}
	return e.Message
}

// Unwrap は原因エラーを返す。
func (e *IoError) Unwrap() error {
	return e.cause
}

// NewIoFileNotFound はファイル未検出エラーを生成する。
func NewIoFileNotFound(path string, cause error) *IoError {
	return &IoError{Kind: IO_ERROR_FILE_NOT_FOUND, Path: path, Message: "ファイルが見つかりません", cause: cause}
}

// NewIoExtInvalid は拡張子不正エラーを生成する。
func NewIoExtInvalid(path string, cause error) *IoError {
	return &IoError{Kind: IO_ERROR_EXT_INVALID, Path: path, Message: "未対応の拡張子です", cause: cause}
}

// NewIoParseFailed は解析失敗エラーを生成する。
func NewIoParseFailed(message string, cause error) *IoError {
	return &IoError{Kind: IO_ERROR_PARSE_FAILED, Message: message, cause: cause}
}

// NewIoWriteFailed は書き込み失敗エラーを生成する。
func NewIoWriteFailed(path string, cause error) *IoError {
	return &IoError{Kind: IO_ERROR_WRITE_FAILED, Path: path, Message: "ファイルの書き込みに失敗しました", cause: cause}
}

// IsIoErrorKind は指定種別の入出力エラーか判定する。
func IsIoErrorKind(err error, kind IoErrorKind) bool {
	var ioErr *IoError
	if !errors.As(err, &ioErr) {
		return false
	}
	return ioErr.Kind == kind
}
