package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log, closeFn, err := New("debug", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.WithFields(logrus.Fields{"rows": 9, "cols": 9}).Debug("round started")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"round started", "rows=9", "level=debug"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q lacks %q", out, want)
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New("loud", ""); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestNewDiscardsWithoutPath(t *testing.T) {
	log, closeFn, err := New("warn", "")
	if err != nil {
		t.Fatal(err)
	}
	if log.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn level, got %v", log.GetLevel())
	}
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
}

func TestDiscardDropsOutput(t *testing.T) {
	log := Discard()
	log.Info("nobody hears this")
	if log.Out == os.Stdout || log.Out == os.Stderr {
		t.Fatal("discard logger writes to a terminal stream")
	}
}
