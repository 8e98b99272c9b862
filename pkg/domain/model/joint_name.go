// 指示: miu200521358
package model

// StandardJointName はBandai-Namcoモーションデータセットの標準ジョイント名を表す。
type StandardJointName string

// 標準ジョイント名一覧。
const (
	HIPS      StandardJointName = "Hips"
	SPINE     StandardJointName = "Spine"
	CHEST     StandardJointName = "Chest"
	NECK      StandardJointName = "Neck"
	HEAD      StandardJointName = "Head"
	SHOULDER  StandardJointName = "Shoulder"
	UPPER_ARM StandardJointName = "UpperArm"
	LOWER_ARM StandardJointName = "LowerArm"
	HAND      StandardJointName = "Hand"
	UPPER_LEG StandardJointName = "UpperLeg"
	LOWER_LEG StandardJointName = "LowerLeg"
	FOOT      StandardJointName = "Foot"
	TOES      StandardJointName = "Toes"
)

// String はジョイント名文字列を返す。
func (n StandardJointName) String() string {
	return string(n)
}

// Left は左側のジョイント名を返す。
func (n StandardJointName) Left() string {
	return string(n) + "_L"
}

// Right は右側のジョイント名を返す。
func (n StandardJointName) Right() string {
	return string(n) + "_R"
}

// StandardLayoutNames はルート直下から深さ優先順で並ぶ標準ジョイント名一覧を返す。
// 添字は配置ルートの次(1)から始まる従来の配置順に一致する。
func StandardLayoutNames() []string {
	return []string{
		HIPS.String(),
		SPINE.String(),
		CHEST.String(),
		NECK.String(),
		HEAD.String(),
		SHOULDER.Left(),
		UPPER_ARM.Left(),
		LOWER_ARM.Left(),
		HAND.Left(),
		SHOULDER.Right(),
		UPPER_ARM.Right(),
		LOWER_ARM.Right(),
		HAND.Right(),
		UPPER_LEG.Left(),
		LOWER_LEG.Left(),
		FOOT.Left(),
		TOES.Left(),
		UPPER_LEG.Right(),
		LOWER_LEG.Right(),
		FOOT.Right(),
		TOES.Right(),
	}
}
