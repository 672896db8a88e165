// Package audio plays the like/dislike sound effects through an external
// command-line player.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Effect file names, relative to the assets dir.
const (
	LikeFile    = "like.mp3"
	DislikeFile = "dislike.mp3"
)

// DefaultTimeout bounds one playback.
const DefaultTimeout = 10 * time.Second

// candidates are tried in order when no player command is configured.
var candidates = [][]string{
	{"afplay", "-v", "0.5"},
	{"paplay", "--volume", "32768"},
	{"mpg123", "-q", "-f", "16384"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", "-volume", "50"},
}

// ErrNoPlayer is returned when no usable player command exists.
var ErrNoPlayer = errors.New("audio: no player command found in PATH")

// ExecPlayer runs an external command with the sound file appended to its
// arguments.
type ExecPlayer struct {
	command string
	args    []string
	timeout time.Duration
}

// NewExecPlayer parses commandLine ("mpg123 -q") into a player. An empty
// commandLine picks the first known player found in PATH.
func NewExecPlayer(commandLine string) (*ExecPlayer, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		for _, c := range candidates {
			if _, err := exec.LookPath(c[0]); err == nil {
				fields = c
				break
			}
		}
	}
	if len(fields) == 0 {
		return nil, ErrNoPlayer
	}
	if _, err := exec.LookPath(fields[0]); err != nil {
		return nil, fmt.Errorf("audio: %s not found in PATH", fields[0])
	}
	return &ExecPlayer{
		command: fields[0],
		args:    append([]string(nil), fields[1:]...),
		timeout: DefaultTimeout,
	}, nil
}

// Command returns the resolved player command.
func (p *ExecPlayer) Command() string {
	return p.command
}

// Play runs the player on path and waits for it to exit.
func (p *ExecPlayer) Play(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	args := append(append([]string(nil), p.args...), path)
	cmd := exec.CommandContext(ctx, p.command, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("audio: %s %s failed: %w: %s", p.command, filepath.Base(path), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Silent discards every sound.
type Silent struct{}

func (Silent) Play(string) error { return nil }

// Effects resolves the sound effect paths under an assets dir.
type Effects struct {
	Like    string
	Dislike string
}

// EffectsIn returns the effect paths inside dir.
func EffectsIn(dir string) Effects {
	return Effects{
		Like:    filepath.Join(dir, LikeFile),
		Dislike: filepath.Join(dir, DislikeFile),
	}
}
