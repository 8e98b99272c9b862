// 指示: miu200521358
package bvh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/miu200521358/mu_bvh2tpose/pkg/adapter/io_common"
	"github.com/miu200521358/mu_bvh2tpose/pkg/domain/mmath"
)

const testBvhText = `HIERARCHY
ROOT Hips
{
  OFFSET 0.5 0.9 0.3
  CHANNELS 6 Xposition Yposition Zposition Zrotation Xrotation Yrotation
  JOINT Spine
  {
    OFFSET 0.0 0.4 0.0
    CHANNELS 3 Zrotation Xrotation Yrotation
    End Site
    {
      OFFSET 0.0 0.3 0.0
    }
  }
}
MOTION
Frames: 2
Frame Time: 0.033333
0.5 1.0 0.3 0.0 90.0 0.0 30.0 0.0 0.0
0.6 1.1 0.4 10.0 0.0 0.0 0.0 45.0 0.0
`

// writeTestBvh はテスト用BVHファイルを保存する。
func writeTestBvh(t *testing.T, dir string, name string, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write bvh failed: %v", err)
	}
	return path
}

func TestCanLoad(t *testing.T) {
	repository := NewBvhRepository()
	if !repository.CanLoad("motion.bvh") {
		t.Fatalf("expected loadable")
	}
	if !repository.CanLoad("MOTION.BVH") {
		t.Fatalf("expected loadable (case insensitive)")
	}
	if repository.CanLoad("motion.vmd") {
		t.Fatalf("expected not loadable")
	}
}

func TestInferName(t *testing.T) {
	repository := NewBvhRepository()
	if name := repository.InferName(filepath.Join("dir", "walk_01.bvh")); name != "walk_01" {
		t.Fatalf("name mismatch: %s", name)
	}
}

func TestLoadParsesHierarchyAndFrames(t *testing.T) {
	repository := NewBvhRepository()
	path := writeTestBvh(t, t.TempDir(), "motion.bvh", testBvhText)

	motion, err := repository.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if motion.Root.Name() != "Hips" {
		t.Fatalf("root name mismatch: %s", motion.Root.Name())
	}
	if !motion.Root.RestPose.Position.NearEquals(mmath.NewVec3(0.5, 0.9, 0.3), 1e-9) {
		t.Fatalf("root offset mismatch: %+v", motion.Root.RestPose.Position)
	}
	if motion.FrameCount != 2 {
		t.Fatalf("frame count mismatch: %d", motion.FrameCount)
	}
	if motion.FrameTime < 0.033 || motion.FrameTime > 0.034 {
		t.Fatalf("frame time mismatch: %f", motion.FrameTime)
	}

	spine, ok := motion.Root.SearchByName("Spine")
	if !ok {
		t.Fatalf("spine not found")
	}
	if !spine.RestPose.Position.NearEquals(mmath.NewVec3(0, 0.4, 0), 1e-9) {
		t.Fatalf("spine offset mismatch: %+v", spine.RestPose.Position)
	}
	endSite, ok := spine.EndSite()
	if !ok || !endSite.NearEquals(mmath.NewVec3(0, 0.3, 0), 1e-9) {
		t.Fatalf("end site mismatch: %+v", endSite)
	}

	rootPose := motion.Root.PoseAt(0)
	if !rootPose.Position.NearEquals(mmath.NewVec3(0.5, 1.0, 0.3), 1e-9) {
		t.Fatalf("root frame position mismatch: %+v", rootPose.Position)
	}
	if !rootPose.Rotation.NearEquals(mmath.NewQuaternionFromAxisAngleDeg(mmath.UNIT_X_VEC3, 90), 1e-9) {
		t.Fatalf("root frame rotation mismatch")
	}

	spinePose := spine.PoseAt(0)
	if !spinePose.Position.NearEquals(spine.RestPose.Position, 1e-9) {
		t.Fatalf("spine frame position mismatch: %+v", spinePose.Position)
	}
	if !spinePose.Rotation.NearEquals(mmath.NewQuaternionFromAxisAngleDeg(mmath.UNIT_Z_VEC3, 30), 1e-9) {
		t.Fatalf("spine frame rotation mismatch")
	}
}

func TestSaveRoundtrip(t *testing.T) {
	repository := NewBvhRepository()
	tempDir := t.TempDir()
	sourcePath := writeTestBvh(t, tempDir, "motion.bvh", testBvhText)

	motion, err := repository.Load(sourcePath)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	savedPath := filepath.Join(tempDir, "saved.bvh")
	if err := repository.Save(savedPath, motion, io_common.SaveOptions{}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded, err := repository.Load(savedPath)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.FrameCount != motion.FrameCount {
		t.Fatalf("frame count mismatch: %d != %d", reloaded.FrameCount, motion.FrameCount)
	}

	originalLayout := motion.Layout()
	reloadedLayout := reloaded.Layout()
	if len(originalLayout) != len(reloadedLayout) {
		t.Fatalf("layout size mismatch: %d != %d", len(originalLayout), len(reloadedLayout))
	}
	for i := range originalLayout {
		originalJoint := originalLayout[i].Joint
		reloadedJoint := reloadedLayout[i].Joint
		if originalJoint.Name() != reloadedJoint.Name() {
			t.Fatalf("joint name mismatch at %d: %s != %s", i, originalJoint.Name(), reloadedJoint.Name())
		}
		for frame := 0; frame < motion.FrameCount; frame++ {
			originalPose := originalJoint.PoseAt(frame)
			reloadedPose := reloadedJoint.PoseAt(frame)
			if !originalPose.Position.NearEquals(reloadedPose.Position, 1e-5) {
				t.Fatalf("position mismatch: joint=%s frame=%d", originalJoint.Name(), frame)
			}
			if !originalPose.Rotation.NearEquals(reloadedPose.Rotation, 1e-9) {
				t.Fatalf("rotation mismatch: joint=%s frame=%d", originalJoint.Name(), frame)
			}
		}
	}
}

func TestSaveWritesFullChannelsAndFrameTime(t *testing.T) {
	repository := NewBvhRepository()
	tempDir := t.TempDir()
	sourcePath := writeTestBvh(t, tempDir, "motion.bvh", testBvhText)

	motion, err := repository.Load(sourcePath)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	savedPath := filepath.Join(tempDir, "saved.bvh")
	if err := repository.Save(savedPath, motion, io_common.SaveOptions{FrameTime: 1.0 / 30.0}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(savedPath)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "CHANNELS 6 Xposition Yposition Zposition Zrotation Xrotation Yrotation") {
		t.Fatalf("channels missing: %s", text)
	}
	if !strings.Contains(text, "Frame Time: 0.033333") {
		t.Fatalf("frame time missing: %s", text)
	}
	if !strings.Contains(text, "End Site") {
		t.Fatalf("end site missing: %s", text)
	}
}

func TestLoadRejectsInvalidExtension(t *testing.T) {
	repository := NewBvhRepository()
	if _, err := repository.Load("motion.vmd"); !io_common.IsIoErrorKind(err, io_common.IO_ERROR_EXT_INVALID) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	repository := NewBvhRepository()
	path := filepath.Join(t.TempDir(), "missing.bvh")
	if _, err := repository.Load(path); !io_common.IsIoErrorKind(err, io_common.IO_ERROR_FILE_NOT_FOUND) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadBrokenHierarchy(t *testing.T) {
	repository := NewBvhRepository()
	path := writeTestBvh(t, t.TempDir(), "broken.bvh", "HIERARCHY\nROOT Hips\n{\nOFFSET 0 0 0\n")
	if _, err := repository.Load(path); !io_common.IsIoErrorKind(err, io_common.IO_ERROR_PARSE_FAILED) {
		t.Fatalf("unexpected error: %v", err)
	}
}
