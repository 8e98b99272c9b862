// 指示: miu200521358
// Package io_config は組み込みの補正プリセット定義を読み込むアダプタを提供する。
package io_config

import (
	"embed"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/correction"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/model"
	"github.com/tiendc/go-deepcopy"
)

const bandaiNamcoPresetAssetName = "assets/bandai_namco.yaml"

// embeddedPresetFiles は補正プリセットの組み込みリソースを保持する。
//
//go:embed assets/*.yaml
var embeddedPresetFiles embed.FS

var (
	bandaiNamcoPresetOnce   sync.Once
	bandaiNamcoPresetCached *correction.Preset
	bandaiNamcoPresetErr    error
)

// presetDocument はプリセットYAMLのルート構造を表す。
type presetDocument struct {
	Name           string               `yaml:"name"`
	Fps            float64              `yaml:"fps"`
	ExpectedJoints []string             `yaml:"expected_joints"`
	TPose          []tposeEntry         `yaml:"tpose"`
	FrameRolls     []frameRollEntry     `yaml:"frame_rolls"`
	FrameRotations []frameRotationEntry `yaml:"frame_rotations"`
	RootRestEuler  [3]float64           `yaml:"root_rest_euler"`
}

type tposeEntry struct {
	Joint string     `yaml:"joint"`
	Euler [3]float64 `yaml:"euler"`
	Roll  float64    `yaml:"roll"`
}

type frameRollEntry struct {
	Joint     string  `yaml:"joint"`
	Degrees   float64 `yaml:"degrees"`
	Recursive bool    `yaml:"recursive"`
}

type frameRotationEntry struct {
	Joint   string  `yaml:"joint"`
	Axis    string  `yaml:"axis"`
	Degrees float64 `yaml:"degrees"`
}

// LoadBandaiNamcoPreset は組み込みのBandai Namco向け補正プリセットを返す。
// 返り値は呼び出しごとのディープコピーで、呼び出し側が変更しても共有状態へ影響しない。
func LoadBandaiNamcoPreset() (*correction.Preset, error) {
	bandaiNamcoPresetOnce.Do(func() {
		bandaiNamcoPresetCached, bandaiNamcoPresetErr = loadEmbeddedPreset(bandaiNamcoPresetAssetName)
	})
	if bandaiNamcoPresetErr != nil {
		return nil, bandaiNamcoPresetErr
	}

	copied := &correction.Preset{}
	if err := deepcopy.Copy(copied, bandaiNamcoPresetCached); err != nil {
		return nil, fmt.Errorf("補正プリセットの複製に失敗しました: %w", err)
	}
	return copied, nil
}

// loadEmbeddedPreset は組み込みYAMLを解析して補正プリセットへ変換する。
func loadEmbeddedPreset(assetName string) (*correction.Preset, error) {
	data, err := embeddedPresetFiles.ReadFile(assetName)
	if err != nil {
		return nil, fmt.Errorf("組み込み補正プリセットの読み込みに失敗しました: %s: %w", assetName, err)
	}

	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("補正プリセットYAMLの解析に失敗しました: %s: %w", assetName, err)
	}
	if document.Fps <= 0 {
		return nil, fmt.Errorf("補正プリセットのfpsが不正です: %s: %f", assetName, document.Fps)
	}

	preset := &correction.Preset{
		Name:           document.Name,
		FrameTime:      1.0 / document.Fps,
		ExpectedJoints: document.ExpectedJoints,
		RootRestEuler:  correction.Euler(document.RootRestEuler),
	}
	for _, entry := range document.TPose {
		preset.TPose = append(preset.TPose, correction.TPoseRotation{
			Joint: entry.Joint,
			Euler: correction.Euler(entry.Euler),
			Roll:  entry.Roll,
		})
	}
	for _, entry := range document.FrameRolls {
		preset.Rolls = append(preset.Rolls, correction.RollCorrection{
			Joint:     entry.Joint,
			Degrees:   entry.Degrees,
			Recursive: entry.Recursive,
		})
	}
	for _, entry := range document.FrameRotations {
		preset.Rotations = append(preset.Rotations, correction.AxisRotation{
			Joint:   entry.Joint,
			Axis:    correction.Axis(entry.Axis),
			Degrees: entry.Degrees,
		})
	}

	if err := validateStandardLayout(preset.ExpectedJoints); err != nil {
		return nil, fmt.Errorf("補正プリセットの検証に失敗しました: %s: %w", assetName, err)
	}
	if err := preset.Validate(); err != nil {
		return nil, fmt.Errorf("補正プリセットの検証に失敗しました: %s: %w", assetName, err)
	}
	return preset, nil
}

// validateStandardLayout は想定ジョイント一覧が標準ジョイント配置順と一致するか検証する。
func validateStandardLayout(names []string) error {
	standard := model.StandardLayoutNames()
	if len(names) != len(standard) {
		return fmt.Errorf("想定ジョイント数が標準配置と一致しません: %d (標準: %d)", len(names), len(standard))
	}
	for i, name := range standard {
		if names[i] != name {
			return fmt.Errorf("想定ジョイント名が標準配置と一致しません: index=%d name=%s (標準: %s)", i, names[i], name)
		}
	}
	return nil
}
