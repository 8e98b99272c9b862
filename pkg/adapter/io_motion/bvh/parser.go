// 指示: miu200521358
package bvh

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/miu200521358/mu_bvh2tpose/pkg/adapter/io_common"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/mmath"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/model"
)

// チャンネル名一覧(BVH仕様)。
const (
	channelXPosition = "Xposition"
	channelYPosition = "Yposition"
	channelZPosition = "Zposition"
	channelXRotation = "Xrotation"
	channelYRotation = "Yrotation"
	channelZRotation = "Zrotation"
)

// parsedJoint は解析中のジョイントとそのチャンネル定義を表す。
type parsedJoint struct {
	joint    *model.Joint
	channels []string
}

// tokenReader はBVHテキストの空白区切りトークン列を読み進める。
type tokenReader struct {
	tokens []string
	pos    int
}

func newTokenReader(data string) *tokenReader {
	return &tokenReader{tokens: strings.Fields(data)}
}

// next は次のトークンを返す。終端に達した場合はエラーを返す。
func (r *tokenReader) next() (string, error) {
	if r.pos >= len(r.tokens) {
		return "", io_common.NewIoParseFailed("BVHデータが途中で終了しています", nil)
	}
	token := r.tokens[r.pos]
	r.pos++
	return token, nil
}

// expect は次のトークンが期待値であることを検証する。
func (r *tokenReader) expect(expected string) error {
	token, err := r.next()
	if err != nil {
		return err
	}
	if token != expected {
		return io_common.NewIoParseFailed(
			fmt.Sprintf("BVHトークンが不正です: %s (期待値: %s)", token, expected), nil)
	}
	return nil
}

// nextFloat は次のトークンを浮動小数として読み取る。
func (r *tokenReader) nextFloat() (float64, error) {
	token, err := r.next()
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, io_common.NewIoParseFailed(fmt.Sprintf("BVH数値の解析に失敗しました: %s", token), err)
	}
	return value, nil
}

// nextInt は次のトークンを整数として読み取る。
func (r *tokenReader) nextInt() (int, error) {
	token, err := r.next()
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, io_common.NewIoParseFailed(fmt.Sprintf("BVH整数の解析に失敗しました: %s", token), err)
	}
	return value, nil
}

// parseBvh はBVHテキストをモーションへ変換する。
func parseBvh(data string) (*model.Motion, error) {
	reader := newTokenReader(data)
	if err := reader.expect("HIERARCHY"); err != nil {
		return nil, err
	}
	if err := reader.expect("ROOT"); err != nil {
		return nil, err
	}

	var order []*parsedJoint
	root, err := parseJoint(reader, &order)
	if err != nil {
		return nil, err
	}

	motion := model.NewMotion(root)
	if err := parseMotion(reader, order, motion); err != nil {
		return nil, err
	}
	return motion, nil
}

// parseJoint はジョイント定義1つ(子孫を含む)を解析する。
// 呼び出し時点でROOT/JOINTキーワードは消費済みで、次は名前トークンを指す。
func parseJoint(reader *tokenReader, order *[]*parsedJoint) (*model.Joint, error) {
	name, err := reader.next()
	if err != nil {
		return nil, err
	}
	joint := model.NewJoint(name)
	entry := &parsedJoint{joint: joint}
	*order = append(*order, entry)

	if err := reader.expect("{"); err != nil {
		return nil, err
	}
	if err := reader.expect("OFFSET"); err != nil {
		return nil, err
	}
	offset, err := parseVec3(reader)
	if err != nil {
		return nil, err
	}
	joint.RestPose.Position = offset

	if err := reader.expect("CHANNELS"); err != nil {
		return nil, err
	}
	channelCount, err := reader.nextInt()
	if err != nil {
		return nil, err
	}
	for i := 0; i < channelCount; i++ {
		channel, err := reader.next()
		if err != nil {
			return nil, err
		}
		entry.channels = append(entry.channels, channel)
	}

	for {
		token, err := reader.next()
		if err != nil {
			return nil, err
		}
		switch token {
		case "JOINT":
			child, err := parseJoint(reader, order)
			if err != nil {
				return nil, err
			}
			joint.Add(child)
		case "End":
			if err := reader.expect("Site"); err != nil {
				return nil, err
			}
			if err := reader.expect("{"); err != nil {
				return nil, err
			}
			if err := reader.expect("OFFSET"); err != nil {
				return nil, err
			}
			endOffset, err := parseVec3(reader)
			if err != nil {
				return nil, err
			}
			joint.SetEndSite(endOffset)
			if err := reader.expect("}"); err != nil {
				return nil, err
			}
		case "}":
			return joint, nil
		default:
			return nil, io_common.NewIoParseFailed(
				fmt.Sprintf("BVH階層トークンが不正です: %s", token), nil)
		}
	}
}

// parseVec3 は連続する3つの数値トークンを読み取る。
func parseVec3(reader *tokenReader) (mmath.Vec3, error) {
	x, err := reader.nextFloat()
	if err != nil {
		return mmath.ZERO_VEC3, err
	}
	y, err := reader.nextFloat()
	if err != nil {
		return mmath.ZERO_VEC3, err
	}
	z, err := reader.nextFloat()
	if err != nil {
		return mmath.ZERO_VEC3, err
	}
	return mmath.NewVec3(x, y, z), nil
}

// parseMotion はMOTIONブロックを解析し、各ジョイントへキーフレームを割り当てる。
// チャンネル値は実姿勢なので、基準姿勢に対する差分へ変換して保持する。
func parseMotion(reader *tokenReader, order []*parsedJoint, motion *model.Motion) error {
	if err := reader.expect("MOTION"); err != nil {
		return err
	}
	if err := reader.expect("Frames:"); err != nil {
		return err
	}
	frameCount, err := reader.nextInt()
	if err != nil {
		return err
	}
	if err := reader.expect("Frame"); err != nil {
		return err
	}
	if err := reader.expect("Time:"); err != nil {
		return err
	}
	frameTime, err := reader.nextFloat()
	if err != nil {
		return err
	}

	motion.FrameCount = frameCount
	motion.FrameTime = frameTime

	keyframes := make([][]model.Keyframe, len(order))
	for i := range keyframes {
		keyframes[i] = make([]model.Keyframe, 0, frameCount)
	}

	for frame := 0; frame < frameCount; frame++ {
		for jointIndex, entry := range order {
			transform, err := parseFrameChannels(reader, entry)
			if err != nil {
				return err
			}
			keyframes[jointIndex] = append(keyframes[jointIndex], model.Keyframe{
				Frame:     frame,
				Transform: entry.joint.RestPose.Relativized(transform),
			})
		}
	}

	for jointIndex, entry := range order {
		entry.joint.SetKeyframes(keyframes[jointIndex])
	}
	return nil
}

// parseFrameChannels は1ジョイント分のチャンネル値をローカル姿勢へ変換する。
// 回転はチャンネル定義順に内在的に合成する。位置チャンネルが無い軸は基準オフセットを使う。
func parseFrameChannels(reader *tokenReader, entry *parsedJoint) (model.Transform, error) {
	transform := model.NewTransform()
	transform.Position = entry.joint.RestPose.Position

	for _, channel := range entry.channels {
		value, err := reader.nextFloat()
		if err != nil {
			return transform, err
		}
		switch channel {
		case channelXPosition:
			transform.Position.X = value
		case channelYPosition:
			transform.Position.Y = value
		case channelZPosition:
			transform.Position.Z = value
		case channelXRotation:
			transform.Rotation = transform.Rotation.Muled(
				mmath.NewQuaternionFromAxisAngleDeg(mmath.UNIT_X_VEC3, value))
		case channelYRotation:
			transform.Rotation = transform.Rotation.Muled(
				mmath.NewQuaternionFromAxisAngleDeg(mmath.UNIT_Y_VEC3, value))
		case channelZRotation:
			transform.Rotation = transform.Rotation.Muled(
				mmath.NewQuaternionFromAxisAngleDeg(mmath.UNIT_Z_VEC3, value))
		default:
			return transform, io_common.NewIoParseFailed(
				fmt.Sprintf("BVHチャンネルが不正です: %s", channel), nil)
		}
	}
	return transform, nil
}
