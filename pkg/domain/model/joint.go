// 指示: miu200521358
package model

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/mmath"
	"github.com/tiendc/go-deepcopy"
)

// Joint はスケルトン階層の1ジョイントを表す。
// RestPose は基準姿勢、Current は作業用の現在姿勢を保持する。
// キーフレームは基準姿勢に対する差分として保持するため、
// 基準姿勢を書き換えると全フレームの実姿勢も連動して変わる。
type Joint struct {
	name      string
	parent    *Joint
	children  []*Joint
	RestPose  Transform
	Current   Transform
	keyframes []Keyframe
	endSite   *mmath.Vec3
}

// LayoutEntry は深さ優先で平坦化した配置の1要素を表す。
type LayoutEntry struct {
	Joint *Joint
	Depth int
}

// NewJoint はジョイントを生成する。
func NewJoint(name string) *Joint {
	return &Joint{
		name:     name,
		RestPose: NewTransform(),
		Current:  NewTransform(),
	}
}

// Name はジョイント名を返す。
func (j *Joint) Name() string {
	return j.name
}

// SetName はジョイント名を設定する。
func (j *Joint) SetName(name string) {
	j.name = name
}

// Parent は親ジョイントを返す。
func (j *Joint) Parent() *Joint {
	return j.parent
}

// Children は子ジョイント一覧を返す。
func (j *Joint) Children() []*Joint {
	return j.children
}

// Add は子ジョイントを追加する。
func (j *Joint) Add(child *Joint) *Joint {
	if child == nil {
		return j
	}
	child.parent = j
	j.children = append(j.children, child)
	return j
}

// ClearParent は親子関係を切り離し、自身を返す。
func (j *Joint) ClearParent() *Joint {
	if j.parent == nil {
		return j
	}
	siblings := j.parent.children
	for i, sibling := range siblings {
		if sibling == j {
			j.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	j.parent = nil
	return j
}

// EndSite は終端オフセットを返す。
func (j *Joint) EndSite() (mmath.Vec3, bool) {
	if j.endSite == nil {
		return mmath.ZERO_VEC3, false
	}
	return *j.endSite, true
}

// SetEndSite は終端オフセットを設定する。
func (j *Joint) SetEndSite(offset mmath.Vec3) {
	j.endSite = &offset
}

// Keyframes はフレーム昇順のキーフレーム一覧を返す。
func (j *Joint) Keyframes() []Keyframe {
	return j.keyframes
}

// CopiedKeyframes はキーフレーム一覧のディープコピーを返す。
func (j *Joint) CopiedKeyframes() ([]Keyframe, error) {
	copied := make([]Keyframe, 0, len(j.keyframes))
	if err := deepcopy.Copy(&copied, j.keyframes); err != nil {
		return nil, err
	}
	return copied, nil
}

// SetKeyframes はキーフレーム一覧を設定する。フレーム昇順に整列する。
func (j *Joint) SetKeyframes(keyframes []Keyframe) {
	j.keyframes = keyframes
	sort.SliceStable(j.keyframes, func(a, b int) bool {
		return j.keyframes[a].Frame < j.keyframes[b].Frame
	})
}

// InsertKeyframe は指定フレームのキーフレームを挿入または置換する。
func (j *Joint) InsertKeyframe(frame int, transform Transform) {
	idx := sort.Search(len(j.keyframes), func(i int) bool {
		return j.keyframes[i].Frame >= frame
	})
	if idx < len(j.keyframes) && j.keyframes[idx].Frame == frame {
		j.keyframes[idx].Transform = transform
		return
	}
	j.keyframes = append(j.keyframes, Keyframe{})
	copy(j.keyframes[idx+1:], j.keyframes[idx:])
	j.keyframes[idx] = Keyframe{Frame: frame, Transform: transform}
}

// KeyframeRange は自身と子孫を含む最小・最大フレーム番号を返す。
// キーフレームが1つも無い場合は ok=false を返す。
func (j *Joint) KeyframeRange() (int, int, bool) {
	first, last := 0, 0
	found := false
	for _, entry := range j.Layout() {
		frames := entry.Joint.keyframes
		if len(frames) == 0 {
			continue
		}
		if !found {
			first, last = frames[0].Frame, frames[len(frames)-1].Frame
			found = true
			continue
		}
		if frames[0].Frame < first {
			first = frames[0].Frame
		}
		if frames[len(frames)-1].Frame > last {
			last = frames[len(frames)-1].Frame
		}
	}
	return first, last, found
}

// Layout は自身を起点に深さ優先で平坦化した配置一覧を返す。
func (j *Joint) Layout() []LayoutEntry {
	var entries []LayoutEntry
	var walk func(joint *Joint, depth int)
	walk = func(joint *Joint, depth int) {
		entries = append(entries, LayoutEntry{Joint: joint, Depth: depth})
		for _, child := range joint.children {
			walk(child, depth+1)
		}
	}
	walk(j, 0)
	return entries
}

// SearchByName は自身以下から名前一致するジョイントを探す。
func (j *Joint) SearchByName(name string) (*Joint, bool) {
	for _, entry := range j.Layout() {
		if entry.Joint.name == name {
			return entry.Joint, true
		}
	}
	return nil, false
}

// LoadRestPose は基準姿勢を現在姿勢へ読み込む。
func (j *Joint) LoadRestPose(recursive bool) *Joint {
	j.Current = j.RestPose
	if recursive {
		for _, child := range j.children {
			child.LoadRestPose(true)
		}
	}
	return j
}

// WriteRestPose は現在姿勢を基準姿勢へ書き戻す。
func (j *Joint) WriteRestPose(recursive bool) *Joint {
	j.RestPose = j.Current
	if recursive {
		for _, child := range j.children {
			child.WriteRestPose(true)
		}
	}
	return j
}

// LoadPose は指定フレームの実姿勢(基準姿勢と差分の合成)を現在姿勢へ読み込む。
// キーフレームが無いフレームは前後から補間する。
func (j *Joint) LoadPose(frame int, recursive bool) *Joint {
	j.Current = j.RestPose.Composed(j.sampleDelta(frame))
	if recursive {
		for _, child := range j.children {
			child.LoadPose(frame, true)
		}
	}
	return j
}

// WritePose は現在姿勢を基準姿勢との差分へ変換して指定フレームへ書き戻す。
func (j *Joint) WritePose(frame int, recursive bool) *Joint {
	j.InsertKeyframe(frame, j.RestPose.Relativized(j.Current))
	if recursive {
		for _, child := range j.children {
			child.WritePose(frame, true)
		}
	}
	return j
}

// SetEuler は現在姿勢の回転をオイラー角(度)で設定する。
func (j *Joint) SetEuler(x, y, z float64) *Joint {
	j.Current.Rotation = mmath.NewQuaternionFromDegrees(x, y, z)
	return j
}

// RotateLocal は現在姿勢の回転へ軸回転(度)を後乗せする。
func (j *Joint) RotateLocal(axis mmath.Vec3, degrees float64) *Joint {
	j.Current.Rotation = j.Current.Rotation.Muled(mmath.NewQuaternionFromAxisAngleDeg(axis, degrees))
	return j
}

// Roll は現在姿勢をローカルY軸まわりに回転する。
// 直下の子は逆回転で打ち消すため、ワールド姿勢は変化しない。
// recursive の場合は子孫にも同じロールを適用する。
func (j *Joint) Roll(degrees float64, recursive bool) *Joint {
	change := mmath.NewQuaternionFromAxisAngleDeg(mmath.UNIT_Y_VEC3, degrees)
	changeInverse := change.Inverted()

	j.Current.Rotation = j.Current.Rotation.Muled(change)
	for _, child := range j.children {
		child.Current.Position = changeInverse.MulVec3(child.Current.Position)
		child.Current.Rotation = changeInverse.Muled(child.Current.Rotation)
		if recursive {
			child.Roll(degrees, true)
		}
	}
	return j
}

// GlobalMatrix は現在姿勢のワールド変換行列を返す。
func (j *Joint) GlobalMatrix() mgl64.Mat4 {
	local := j.Current.Matrix()
	if j.parent == nil {
		return local
	}
	return j.parent.GlobalMatrix().Mul4(local)
}

// GlobalPosition は現在姿勢のワールド位置を返す。
func (j *Joint) GlobalPosition() mmath.Vec3 {
	m := j.GlobalMatrix()
	return mmath.NewVec3(m.At(0, 3), m.At(1, 3), m.At(2, 3))
}

// RestGlobalMatrix は基準姿勢のワールド変換行列を返す。
func (j *Joint) RestGlobalMatrix() mgl64.Mat4 {
	local := j.RestPose.Matrix()
	if j.parent == nil {
		return local
	}
	return j.parent.RestGlobalMatrix().Mul4(local)
}

// RestGlobalPosition は基準姿勢のワールド位置を返す。
func (j *Joint) RestGlobalPosition() mmath.Vec3 {
	m := j.RestGlobalMatrix()
	return mmath.NewVec3(m.At(0, 3), m.At(1, 3), m.At(2, 3))
}

// PoseAt は現在姿勢を変更せずに指定フレームの実姿勢を返す。
func (j *Joint) PoseAt(frame int) Transform {
	return j.RestPose.Composed(j.sampleDelta(frame))
}

// sampleDelta は指定フレームの差分姿勢を取得する。
func (j *Joint) sampleDelta(frame int) Transform {
	if len(j.keyframes) == 0 {
		return NewTransform()
	}
	idx := sort.Search(len(j.keyframes), func(i int) bool {
		return j.keyframes[i].Frame >= frame
	})
	if idx < len(j.keyframes) && j.keyframes[idx].Frame == frame {
		return j.keyframes[idx].Transform
	}
	if idx == 0 {
		return j.keyframes[0].Transform
	}
	if idx == len(j.keyframes) {
		return j.keyframes[len(j.keyframes)-1].Transform
	}

	before := j.keyframes[idx-1]
	after := j.keyframes[idx]
	t := float64(frame-before.Frame) / float64(after.Frame-before.Frame)
	return Transform{
		Position: before.Transform.Position.Lerped(after.Transform.Position, t),
		Rotation: before.Transform.Rotation.Slerped(after.Transform.Rotation, t),
		Scale:    before.Transform.Scale.Lerped(after.Transform.Scale, t),
	}
}
