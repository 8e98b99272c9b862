// 指示: miu200521358
package model

import (
	"path/filepath"
	"strings"
)

// Motion は1ファイル分のモーション(階層+キーフレーム)を表す。
type Motion struct {
	Root       *Joint
	FrameCount int
	FrameTime  float64
	path       string
}

// NewMotion はモーションを生成する。
func NewMotion(root *Joint) *Motion {
	return &Motion{Root: root}
}

// Path はファイルパスを返す。
func (m *Motion) Path() string {
	return m.path
}

// SetPath はファイルパスを設定する。
func (m *Motion) SetPath(path string) {
	m.path = path
}

// Name はパスから表示名を返す。
func (m *Motion) Name() string {
	base := filepath.Base(m.path)
	ext := filepath.Ext(base)
	if ext == "" {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Layout はルート起点の平坦化配置を返す。
func (m *Motion) Layout() []LayoutEntry {
	if m.Root == nil {
		return nil
	}
	return m.Root.Layout()
}
