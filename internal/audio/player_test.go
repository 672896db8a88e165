package audio

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewExecPlayerRejectsMissingCommand(t *testing.T) {
	t.Parallel()

	_, err := NewExecPlayer("flippr-no-such-player-binary --quiet")
	if err == nil {
		t.Fatal("expected error for missing command")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("error = %v, want not found", err)
	}
}

func TestPlayReportsCommandFailure(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}
	p, err := NewExecPlayer("false")
	if err != nil {
		t.Fatalf("NewExecPlayer: %v", err)
	}
	if err := p.Play("like.mp3"); err == nil {
		t.Fatal("Play with failing command returned nil")
	}
}

func TestPlayAppendsPath(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	p, err := NewExecPlayer("true -x")
	if err != nil {
		t.Fatalf("NewExecPlayer: %v", err)
	}
	if p.Command() != "true" {
		t.Fatalf("command = %q, want true", p.Command())
	}
	if err := p.Play("dislike.mp3"); err != nil {
		t.Fatalf("Play: %v", err)
	}
}

func TestEffectsIn(t *testing.T) {
	t.Parallel()

	e := EffectsIn("assets")
	if e.Like != filepath.Join("assets", "like.mp3") || e.Dislike != filepath.Join("assets", "dislike.mp3") {
		t.Fatalf("effects = %+v", e)
	}
}
