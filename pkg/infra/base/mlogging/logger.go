// 指示: miu200521358
// Package mlogging はlogging契約の標準実装を提供する。
package mlogging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/miu200521358/mu_bvh2tpose/pkg/shared/base/logging"
)

// Logger はlogging.ILoggerの標準実装を表す。
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	level  logging.Level
	buffer *logging.MessageBuffer
}

// NewLogger はロガーを生成する。outがnilの場合は標準エラー出力へ書く。
func NewLogger(out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		out:    out,
		level:  logging.LOG_LEVEL_INFO,
		buffer: logging.NewMessageBuffer(),
	}
}

// Debug はデバッグログを出力する。
func (l *Logger) Debug(format string, params ...any) {
	l.log(logging.LOG_LEVEL_DEBUG, "DEBUG", format, params...)
}

// Info は情報ログを出力する。
func (l *Logger) Info(format string, params ...any) {
	l.log(logging.LOG_LEVEL_INFO, "INFO", format, params...)
}

// Warn は警告ログを出力する。
func (l *Logger) Warn(format string, params ...any) {
	l.log(logging.LOG_LEVEL_WARN, "WARN", format, params...)
}

// Error はエラーログを出力する。
func (l *Logger) Error(format string, params ...any) {
	l.log(logging.LOG_LEVEL_ERROR, "ERROR", format, params...)
}

// SetLevel は出力レベルを設定する。
func (l *Logger) SetLevel(level logging.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level は出力レベルを返す。
func (l *Logger) Level() logging.Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// IsDebugEnabled はデバッグ出力が有効か返す。
func (l *Logger) IsDebugEnabled() bool {
	return l.Level() <= logging.LOG_LEVEL_DEBUG
}

// MessageBuffer は出力済みメッセージの保持先を返す。
func (l *Logger) MessageBuffer() *logging.MessageBuffer {
	return l.buffer
}

// log はレベル判定の上でメッセージを整形して出力する。
func (l *Logger) log(level logging.Level, tag string, format string, params ...any) {
	if l.Level() > level {
		return
	}
	message := fmt.Sprintf("[%s] %s", tag, fmt.Sprintf(format, params...))
	l.buffer.Append(message)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, message)
}
