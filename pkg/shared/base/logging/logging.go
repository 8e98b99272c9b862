// 指示: miu200521358
// Package logging はアプリ共通のログ契約を提供する。
package logging

import "sync"

// Level はログレベルを表す。
type Level int

// ログレベル一覧。
const (
	LOG_LEVEL_DEBUG Level = iota
	LOG_LEVEL_INFO
	LOG_LEVEL_WARN
	LOG_LEVEL_ERROR
)

// ILogger はログ出力の契約を表す。
type ILogger interface {
	// Debug はデバッグログを出力する。
	Debug(format string, params ...any)
	// Info は情報ログを出力する。
	Info(format string, params ...any)
	// Warn は警告ログを出力する。
	Warn(format string, params ...any)
	// Error はエラーログを出力する。
	Error(format string, params ...any)
	// SetLevel は出力レベルを設定する。
	SetLevel(level Level)
	// Level は出力レベルを返す。
	Level() Level
	// IsDebugEnabled はデバッグ出力が有効か返す。
	IsDebugEnabled() bool
	// MessageBuffer は出力済みメッセージの保持先を返す。
	MessageBuffer() *MessageBuffer
}

// MessageBuffer は出力済みメッセージを保持する。
type MessageBuffer struct {
	mu       sync.Mutex
	messages []string
}

// NewMessageBuffer はメッセージバッファを生成する。
func NewMessageBuffer() *MessageBuffer {
	return &MessageBuffer{}
}

// Append はメッセージを追記する。
func (b *MessageBuffer) Append(message string) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, message)
}

// Messages は保持中メッセージの複製を返す。
func (b *MessageBuffer) Messages() []string {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	copied := make([]string, len(b.messages))
	copy(copied, b.messages)
	return copied
}

// Clear は保持中メッセージを破棄する。
func (b *MessageBuffer) Clear() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = nil
}

var (
	defaultLoggerMu sync.RWMutex
	defaultLogger   ILogger
)

// DefaultLogger は既定ロガーを返す。未設定の場合はnilを返す。
func DefaultLogger() ILogger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger は既定ロガーを設定する。
func SetDefaultLogger(logger ILogger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}
