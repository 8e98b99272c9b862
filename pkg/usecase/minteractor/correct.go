// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/correction"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/mmath"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/model"
	"github.com/miu200521358/mu_bvh2tpose/pkg/shared/base/logging"
)

// correctFile は変換元BVH1件を読み込み、基準姿勢をTポーズへ補正して変換先へ保存する。
// ルートのY軸回転はTポーズ設定時と最終基準姿勢で二重に必要なため、
// 変換先への保存を挟んだ2パスで処理する。
func (uc *Bvh2TposeUsecase) correctFile(request ConvertRequest, sourcePath string, destinationPath string) error {
	preset := uc.preset
	if preset == nil {
		return fmt.Errorf("補正プリセットが未設定です")
	}

	motion, err := uc.LoadMotion(request.Reader, sourcePath)
	if err != nil {
		return err
	}
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type:     ConvertProgressEventTypeFileLoaded,
		FileName: motion.Name(),
	})

	joints, err := checkJoints(motion, preset)
	if err != nil {
		return err
	}

	// プレースホルダルート直下のジョイントを原点直上へ寄せる。
	root := motion.Root
	base := root.Children()[0]
	base.RestPose.Position.X = 0
	base.RestPose.Position.Z = 0
	root.LoadRestPose(true)

	applyTpose(joints, preset)
	root.WriteRestPose(true)
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type:     ConvertProgressEventTypeTposeApplied,
		FileName: motion.Name(),
	})

	frameCount := correctFrames(root, joints, preset)
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type:       ConvertProgressEventTypeFramesCorrected,
		FileName:   motion.Name(),
		FrameCount: frameCount,
	})

	firstPass := model.NewMotion(root.Children()[0].ClearParent())
	firstPass.FrameTime = preset.FrameTime
	options := SaveOptions{FrameTime: preset.FrameTime}
	if err := uc.SaveMotion(request.Writer, destinationPath, firstPass, options); err != nil {
		return err
	}

	if err := uc.finalizeRestPose(request, destinationPath, options); err != nil {
		return err
	}
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type:     ConvertProgressEventTypeFileWritten,
		FileName: motion.Name(),
	})
	return nil
}

// finalizeRestPose は1パス目の出力を読み直し、子孫の移動成分を除去した上で
// ルートの基準回転を設定して保存し直す。
func (uc *Bvh2TposeUsecase) finalizeRestPose(request ConvertRequest, destinationPath string, options SaveOptions) error {
	preset := uc.preset
	motion, err := uc.LoadMotion(request.Reader, destinationPath)
	if err != nil {
		return err
	}

	removed := 0
	for _, child := range motion.Root.Children() {
		removed += removeMotion(child)
	}
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type:          ConvertProgressEventTypeMotionRemoved,
		FileName:      motion.Name(),
		KeyframeCount: removed,
	})

	motion.Root.LoadRestPose(true)
	motion.Root.Current.Rotation = preset.RootRestEuler.Quaternion()
	motion.Root.WriteRestPose(true)

	return uc.SaveMotion(request.Writer, destinationPath, motion, options)
}

// applyTpose は基準姿勢の各ジョイントへTポーズ回転を設定する。
func applyTpose(joints map[string]*model.Joint, preset *correction.Preset) {
	for _, entry := range preset.TPose {
		joint := joints[entry.Joint]
		joint.Current.Rotation = entry.Euler.Quaternion()
		if entry.Roll != 0 {
			joint.Roll(entry.Roll, false)
		}
	}
}

// correctFrames は全フレームの姿勢を読み込み、ロール補正と固定軸回転を適用して書き戻す。
// 処理したフレーム数を返す。
func correctFrames(root *model.Joint, joints map[string]*model.Joint, preset *correction.Preset) int {
	first, last, hasKeyframes := root.KeyframeRange()
	if !hasKeyframes {
		return 0
	}

	for frame := first; frame <= last; frame++ {
		root.LoadPose(frame, true)
		for _, entry := range preset.Rolls {
			joints[entry.Joint].Roll(entry.Degrees, entry.Recursive)
		}
		for _, entry := range preset.Rotations {
			axis, ok := entry.Axis.Vec3()
			if !ok {
				continue
			}
			joints[entry.Joint].RotateLocal(axis, entry.Degrees)
		}
		root.WritePose(frame, true)
	}
	return last - first + 1
}

// removeMotion はジョイント以下の全キーフレームの位置差分を打ち消し、
// 実姿勢の位置を基準姿勢の位置へ固定する。固定したキーフレーム数を返す。
func removeMotion(joint *model.Joint) int {
	keyframes := joint.Keyframes()
	for i := range keyframes {
		keyframes[i].Transform.Position = mmath.ZERO_VEC3
	}
	logConvertDebug("移動成分を除去しました: joint=%s keyframes=%d", joint.Name(), len(keyframes))

	count := len(keyframes)
	for _, child := range joint.Children() {
		count += removeMotion(child)
	}
	return count
}

// logConvertDebug は変換処理のデバッグログを出力する。
func logConvertDebug(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Debug(format, params...)
}
