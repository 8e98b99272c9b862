// 指示: miu200521358
// Package minteractor はBVHモーションの基準姿勢補正ユースケースを提供する。
package minteractor

import (
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/correction"
	"github.com/miu200521358/mu_bvh2tpose/pkg/usecase/port/moutput"
)

// Bvh2TposeUsecaseDeps はBVH補正ユースケースの依存を表す。
type Bvh2TposeUsecaseDeps struct {
	MotionReader moutput.IMotionReader
	MotionWriter moutput.IMotionWriter
	Preset       *correction.Preset
}

// Bvh2TposeUsecase はBVHモーションの基準姿勢をTポーズへ補正するユースケースを表す。
type Bvh2TposeUsecase struct {
	motionReader moutput.IMotionReader
	motionWriter moutput.IMotionWriter
	preset       *correction.Preset
}

// NewBvh2TposeUsecase はBVH補正ユースケースを生成する。
func NewBvh2TposeUsecase(deps Bvh2TposeUsecaseDeps) *Bvh2TposeUsecase {
	return &Bvh2TposeUsecase{
		motionReader: deps.MotionReader,
		motionWriter: deps.MotionWriter,
		preset:       deps.Preset,
	}
}
