package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/heyojules/flippr/internal/deck"
	"github.com/heyojules/flippr/internal/model"
)

func TestRenderStackShowsDepth(t *testing.T) {
	t.Parallel()

	d := deck.FromIDs([]string{"baz", "emma", "chad", "cody"})
	d.Advance()
	out := renderStack(d.Stack(3), 0, 80, "assets")

	if !strings.Contains(out, "Baz") {
		t.Fatal("front card name missing")
	}
	if strings.Contains(out, "Emma") {
		t.Fatal("deeper card rendered as a full card")
	}
	if got := strings.Count(out, "╰"); got != 3 {
		t.Fatalf("ledges+border corners = %d, want 3 (front border + 2 ledges)", got)
	}
}

func TestShiftBlockClipsToWidth(t *testing.T) {
	t.Parallel()

	block := "abcdef\nghijkl"
	if got := shiftBlock(block, 2, 5); got != "  abc\n  ghi" {
		t.Fatalf("right shift = %q", got)
	}
	if got := shiftBlock(block, -4, 5); got != "ef\nkl" {
		t.Fatalf("left shift = %q", got)
	}
}

func TestRenderStackFlyOffLeavesViewport(t *testing.T) {
	t.Parallel()

	d := deck.FromIDs([]string{"baz"})
	out := renderStack(d.Stack(3), -100, 60, "assets")
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 60 {
			t.Fatalf("line width %d exceeds viewport", w)
		}
	}
	if strings.Contains(out, "flippr") {
		t.Fatal("card still visible after flying fully left")
	}
}

func TestRenderIcon(t *testing.T) {
	t.Parallel()

	blank := renderIcon(model.IconState{}, 20, iconBandHeight)
	if strings.TrimSpace(ansi.Strip(blank)) != "" {
		t.Fatalf("hidden icon rendered %q", blank)
	}
	if lipgloss.Height(blank) != iconBandHeight {
		t.Fatalf("blank band height = %d", lipgloss.Height(blank))
	}

	big := renderIcon(model.IconState{Icon: model.IconLike, Scale: 5, Opacity: 1}, 20, iconBandHeight)
	if got := strings.Count(ansi.Strip(big), "♥"); got != 25 {
		t.Fatalf("scale 5 hearts = %d, want 25", got)
	}

	faded := renderIcon(model.IconState{Icon: model.IconDislike, Scale: 5, Opacity: 0}, 20, iconBandHeight)
	if strings.Contains(ansi.Strip(faded), "✕") {
		t.Fatal("fully transparent icon drawn")
	}

	small := renderIcon(model.IconState{Icon: model.IconDislike, Scale: 0.4, Opacity: 0.4}, 20, iconBandHeight)
	if got := strings.Count(ansi.Strip(small), "✕"); got != 1 {
		t.Fatalf("small icon crosses = %d, want 1", got)
	}
}

func TestRenderLeaderboardChartSkipsEmpty(t *testing.T) {
	t.Parallel()

	if got := renderLeaderboardChart([]model.Ranking{{ID: "baz"}, {ID: "emma"}}, 40); got != "" {
		t.Fatal("chart drawn with zero likes")
	}
	if got := renderLeaderboardChart([]model.Ranking{{ID: "baz", Count: 2}, {ID: "emma", Count: 1}}, 40); got == "" {
		t.Fatal("chart missing with likes")
	}
}
