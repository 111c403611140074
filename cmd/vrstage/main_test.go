package main

import (
	"io"
	"log/slog"
	"testing"

	"vrstage/internal/config"
)

func TestRunHeadless(t *testing.T) {
	config.SetDefaultSize(400, 400)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	sum, err := runHeadless(12, true, nil, log)
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if sum.Ticks != 12 {
		t.Errorf("ticks = %d, want 12", sum.Ticks)
	}
	if sum.Width != 400 || sum.Height != 400 {
		t.Errorf("canvas = %dx%d, want 400x400", sum.Width, sum.Height)
	}
	if sum.InsideVR {
		t.Error("inside VR without a session")
	}
	if sum.Camera.Len() == 0 {
		t.Error("camera left at the origin")
	}
}

func TestRunHeadlessZeroTicks(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sum, err := runHeadless(0, false, nil, log)
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if sum.Ticks != 0 || sum.Width != 0 {
		t.Errorf("summary = %+v, want zero", sum)
	}
}
