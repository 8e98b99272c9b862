// 指示: miu200521358
package bvh

import (
	"strconv"
	"strings"

	"github.com/miu200521358/mu_bvh2tpose/pkg/adapter/io_common"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/mmath"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/model"
)

const (
	bvhIndent           = "  "
	bvhDefaultFrameTime = 1.0 / 30.0
)

// 書き出しチャンネル定義。全ジョイントへ位置+回転の6チャンネルを出力する。
var bvhOutputChannels = []string{
	channelXPosition, channelYPosition, channelZPosition,
	channelZRotation, channelXRotation, channelYRotation,
}

// formatBvh はモーションをBVHテキストへ整形する。
func formatBvh(motion *model.Motion, options io_common.SaveOptions) string {
	frameTime := options.FrameTime
	if frameTime <= 0 {
		frameTime = motion.FrameTime
	}
	if frameTime <= 0 {
		frameTime = bvhDefaultFrameTime
	}

	var sb strings.Builder
	sb.WriteString("HIERARCHY\n")
	writeJoint(&sb, motion.Root, 0, true)
	writeMotionBlock(&sb, motion, frameTime)
	return sb.String()
}

// writeJoint はジョイント定義1つ(子孫を含む)を書き出す。
func writeJoint(sb *strings.Builder, joint *model.Joint, depth int, isRoot bool) {
	indent := strings.Repeat(bvhIndent, depth)
	keyword := "JOINT"
	if isRoot {
		keyword = "ROOT"
	}

	sb.WriteString(indent + keyword + " " + joint.Name() + "\n")
	sb.WriteString(indent + "{\n")
	sb.WriteString(indent + bvhIndent + "OFFSET " + formatVec3(joint.RestPose.Position) + "\n")
	sb.WriteString(indent + bvhIndent + "CHANNELS " +
		strconv.Itoa(len(bvhOutputChannels)) + " " + strings.Join(bvhOutputChannels, " ") + "\n")

	if len(joint.Children()) == 0 {
		endOffset, _ := joint.EndSite()
		sb.WriteString(indent + bvhIndent + "End Site\n")
		sb.WriteString(indent + bvhIndent + "{\n")
		sb.WriteString(indent + bvhIndent + bvhIndent + "OFFSET " + formatVec3(endOffset) + "\n")
		sb.WriteString(indent + bvhIndent + "}\n")
	} else {
		for _, child := range joint.Children() {
			writeJoint(sb, child, depth+1, false)
		}
	}
	sb.WriteString(indent + "}\n")
}

// writeMotionBlock はMOTIONブロックを書き出す。
func writeMotionBlock(sb *strings.Builder, motion *model.Motion, frameTime float64) {
	first, last, hasKeyframes := motion.Root.KeyframeRange()
	frameCount := 0
	if hasKeyframes {
		frameCount = last - first + 1
	}

	sb.WriteString("MOTION\n")
	sb.WriteString("Frames: " + strconv.Itoa(frameCount) + "\n")
	sb.WriteString("Frame Time: " + formatFloat(frameTime) + "\n")

	layout := motion.Layout()
	for frame := first; hasKeyframes && frame <= last; frame++ {
		values := make([]string, 0, len(layout)*len(bvhOutputChannels))
		for _, entry := range layout {
			pose := entry.Joint.PoseAt(frame)
			zDeg, xDeg, yDeg := pose.Rotation.ToEulerDegreesZXY()
			values = append(values,
				formatFloat(pose.Position.X),
				formatFloat(pose.Position.Y),
				formatFloat(pose.Position.Z),
				formatFloat(zDeg),
				formatFloat(xDeg),
				formatFloat(yDeg),
			)
		}
		sb.WriteString(strings.Join(values, " ") + "\n")
	}
}

// formatVec3 はベクトルをBVH数値列へ整形する。
func formatVec3(v mmath.Vec3) string {
	return formatFloat(v.X) + " " + formatFloat(v.Y) + " " + formatFloat(v.Z)
}

// formatFloat はBVH出力用に小数6桁で整形する。
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}
