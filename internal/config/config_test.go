package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// snapshot captures the global settings and restores them when the test ends.
func snapshot(t *testing.T) {
	t.Helper()
	fov := GetFOV()
	near, far := GetClipPlanes()
	w, h := GetDefaultSize()
	aa := GetAntialias()
	gamma := GetGammaOutput()
	interval := GetResizeInterval()
	orbit := GetOrbitCameraPosition()
	bg := GetBackground()
	delta, elapsed := GetFixedTick()
	fps := GetFPSLimit()
	slow := GetSlowFrameThreshold()
	topN := GetProfilingTopN()
	t.Cleanup(func() {
		SetFOV(fov)
		SetClipPlanes(near, far)
		SetDefaultSize(w, h)
		SetAntialias(aa)
		SetGammaOutput(gamma)
		SetResizeInterval(interval)
		SetOrbitCameraPosition(orbit)
		SetBackground(bg)
		SetFixedTick(delta, elapsed)
		SetFPSLimit(fps)
		SetSlowFrameThreshold(slow)
		SetProfilingTopN(topN)
	})
}

func TestDefaults(t *testing.T) {
	if got := GetFOV(); got != 70 {
		t.Errorf("FOV = %v, want 70", got)
	}
	near, far := GetClipPlanes()
	if near != 0.1 || far != 100 {
		t.Errorf("clip planes = (%v, %v), want (0.1, 100)", near, far)
	}
	if got := GetResizeInterval(); got != 10 {
		t.Errorf("resize interval = %d, want 10", got)
	}
	if !GetGammaOutput() {
		t.Error("gamma output should default to on")
	}
	if got := GetOrbitCameraPosition(); got != (mgl32.Vec3{0, 0, 3}) {
		t.Errorf("orbit camera = %v, want (0,0,3)", got)
	}
	delta, elapsed := GetFixedTick()
	if delta != 0.1 || elapsed != 0 {
		t.Errorf("fixed tick = (%v, %v), want (0.1, 0)", delta, elapsed)
	}
}

func TestSettersClamp(t *testing.T) {
	snapshot(t)

	SetFOV(500)
	if got := GetFOV(); got != 170 {
		t.Errorf("FOV = %v, want clamp to 170", got)
	}
	SetResizeInterval(0)
	if got := GetResizeInterval(); got != 1 {
		t.Errorf("resize interval = %d, want clamp to 1", got)
	}
	SetFPSLimit(-3)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("FPS limit = %d, want 0", got)
	}

	SetClipPlanes(5, 1)
	near, far := GetClipPlanes()
	if near != 0.1 || far != 100 {
		t.Errorf("invalid clip planes were applied: (%v, %v)", near, far)
	}
}

func TestParseAndApply(t *testing.T) {
	snapshot(t)

	f, err := Parse([]byte(`
render:
  fov: 60
  far: 250
  resize_interval: 5
  gamma_output: false
  orbit_camera: [1, 2, 4]
  background: "#102030"
loop:
  fixed_delta: 0.05
  fps_limit: 90
  slow_frame_ms: 33
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f.Apply()

	if got := GetFOV(); got != 60 {
		t.Errorf("FOV = %v, want 60", got)
	}
	near, far := GetClipPlanes()
	if near != 0.1 || far != 250 {
		t.Errorf("clip planes = (%v, %v), want (0.1, 250)", near, far)
	}
	if got := GetResizeInterval(); got != 5 {
		t.Errorf("resize interval = %d, want 5", got)
	}
	if GetGammaOutput() {
		t.Error("gamma_output: false not applied")
	}
	if got := GetOrbitCameraPosition(); got != (mgl32.Vec3{1, 2, 4}) {
		t.Errorf("orbit camera = %v", got)
	}
	if got := GetBackground(); got != "#102030" {
		t.Errorf("background = %q", got)
	}
	delta, elapsed := GetFixedTick()
	if delta != 0.05 || elapsed != 0 {
		t.Errorf("fixed tick = (%v, %v)", delta, elapsed)
	}
	if got := GetFPSLimit(); got != 90 {
		t.Errorf("FPS limit = %d, want 90", got)
	}
	if got := GetSlowFrameThreshold(); got != 33*time.Millisecond {
		t.Errorf("slow frame = %v", got)
	}
}

func TestParseRejectsShortVector(t *testing.T) {
	if _, err := Parse([]byte("render:\n  orbit_camera: [1, 2]\n")); err == nil {
		t.Fatal("expected error for 2-component orbit_camera")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWatchReloads(t *testing.T) {
	snapshot(t)

	path := filepath.Join(t.TempDir(), "vrstage.yaml")
	if err := os.WriteFile(path, []byte("render:\n  fov: 70\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	// Replace the file atomically so the reload never sees a half-written document.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte("render:\n  fov: 45\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for GetFOV() != 45 {
		select {
		case <-w.Events:
		case err := <-w.Errors:
			t.Fatalf("watch error: %v", err)
		case <-deadline:
			t.Fatalf("FOV after reload = %v, want 45", GetFOV())
		}
	}
}

func TestWatchReloadsTruncateThenWrite(t *testing.T) {
	snapshot(t)

	path := filepath.Join(t.TempDir(), "vrstage.yaml")
	if err := os.WriteFile(path, []byte("render:\n  fov: 70\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := f.WriteString("render:\n  fov: 45\n"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for GetFOV() != 45 {
		select {
		case <-w.Events:
		case err := <-w.Errors:
			t.Fatalf("watch error: %v", err)
		case <-deadline:
			t.Fatalf("FOV after save = %v, want 45", GetFOV())
		}
	}
}
