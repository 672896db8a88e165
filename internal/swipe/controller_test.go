package swipe

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/heyojules/flippr/internal/audio"
	"github.com/heyojules/flippr/internal/deck"
	"github.com/heyojules/flippr/internal/kvstore"
	"github.com/heyojules/flippr/internal/model"
	"github.com/heyojules/flippr/internal/nightmode"
	"github.com/heyojules/flippr/internal/scores"
	"github.com/heyojules/flippr/internal/sequencer"
)

const testWidth = 100 // threshold 30

type harness struct {
	c   *Controller
	clk *clock.Mock
	kv  *kvstore.Memory
}

func newHarness(t *testing.T, ids ...string) *harness {
	t.Helper()
	clk := clock.NewMock()
	clk.Set(time.Date(2026, 10, 17, 12, 0, 0, 0, time.Local))
	kv := kvstore.NewMemory()

	c := New(Options{
		Deck:    deck.FromIDs(ids),
		Scores:  scores.Load(kv, model.DefaultStoreKey, ids),
		Night:   nightmode.Default,
		Effects: audio.EffectsIn("assets"),
		Clock:   clk,
	})
	c.SetWidth(testWidth)
	return &harness{c: c, clk: clk, kv: kv}
}

// swipe drags by dx, releases, and lets the whole timeline run.
func (h *harness) swipe(dx float64) (model.Decision, []Effect) {
	h.c.Press(50)
	h.c.Drag(50 + dx)
	d := h.c.Release()

	var effects []Effect
	for i := 0; i < 3; i++ {
		h.clk.Add(sequencer.PhaseDuration)
		effects = append(effects, h.c.Tick()...)
	}
	return d, effects
}

func TestBelowThresholdChangesNothing(t *testing.T) {
	for _, dx := range []float64{0, 10, -10, 30, -30} {
		h := newHarness(t, "a", "b")
		h.c.Deck().Advance()
		before := h.c.Scores().Snapshot()

		d, effects := h.swipe(dx)
		if d != model.DecisionNone || len(effects) != 0 {
			t.Fatalf("dx=%v: decision=%v effects=%v, want none", dx, d, effects)
		}
		if got := h.c.Deck().Cursor(); got != 0 {
			t.Fatalf("dx=%v: cursor = %d, want 0", dx, got)
		}
		if got := h.c.Scores().Count("a"); got != before["a"] {
			t.Fatalf("dx=%v: count changed to %d", dx, got)
		}
		if _, ok := h.c.Interaction().(Idle); !ok {
			t.Fatalf("dx=%v: state = %T, want Idle", dx, h.c.Interaction())
		}
	}
}

func TestRightCommitIncrementsAndAdvances(t *testing.T) {
	h := newHarness(t, "a", "b")
	h.c.Deck().Advance()

	d, effects := h.swipe(31)
	if d != model.DecisionRight {
		t.Fatalf("decision = %v, want right", d)
	}
	if got := h.c.Scores().Count("a"); got != 1 {
		t.Fatalf("count(a) = %d, want 1", got)
	}
	if got := h.c.Deck().Cursor(); got != 1 {
		t.Fatalf("cursor = %d, want 1", got)
	}
	if len(effects) != 1 || effects[0] != (PlaySound{Path: audio.EffectsIn("assets").Like}) {
		t.Fatalf("effects = %v, want like sound", effects)
	}
	raw, ok, _ := h.kv.Get(model.DefaultStoreKey)
	if !ok || raw == "" {
		t.Fatal("snapshot not persisted after like")
	}
}

func TestLeftCommitAdvancesWithoutScoring(t *testing.T) {
	h := newHarness(t, "a", "b")
	h.c.Deck().Advance()

	d, effects := h.swipe(-31)
	if d != model.DecisionLeft {
		t.Fatalf("decision = %v, want left", d)
	}
	if got := h.c.Scores().Count("a"); got != 0 {
		t.Fatalf("count(a) = %d, want 0 (dislikes are not tallied)", got)
	}
	if got := h.c.Deck().Cursor(); got != 1 {
		t.Fatalf("cursor = %d, want 1", got)
	}
	if len(effects) != 1 || effects[0] != (PlaySound{Path: audio.EffectsIn("assets").Dislike}) {
		t.Fatalf("effects = %v, want dislike sound", effects)
	}
	if _, ok, _ := h.kv.Get(model.DefaultStoreKey); ok {
		t.Fatal("snapshot written by a dislike")
	}
}

func TestIntroOnlyAdvancesRight(t *testing.T) {
	h := newHarness(t, "a")

	for _, dx := range []float64{-31, -500, -5000} {
		if d, _ := h.swipe(dx); d != model.DecisionNone {
			t.Fatalf("intro dx=%v decision = %v, want none", dx, d)
		}
		if !h.c.Deck().AtIntro() {
			t.Fatalf("intro dx=%v moved cursor to %d", dx, h.c.Deck().Cursor())
		}
	}

	d, effects := h.swipe(31)
	if d != model.DecisionRight || h.c.Deck().Cursor() != 0 {
		t.Fatalf("intro right: decision=%v cursor=%d", d, h.c.Deck().Cursor())
	}
	if len(effects) != 0 {
		t.Fatalf("intro commit effects = %v, want none", effects)
	}
	if got := h.c.Scores().Count("a"); got != 0 {
		t.Fatalf("intro commit scored: %d", got)
	}
}

func TestIntroCommitShowsNoIcon(t *testing.T) {
	h := newHarness(t, "a")
	h.c.Press(0)
	h.c.Drag(90)
	if icon := h.c.Icon(); icon.Visible() {
		t.Fatalf("intro drag icon = %+v", icon)
	}
	h.c.Release()
	if icon := h.c.Icon(); icon.Visible() {
		t.Fatalf("intro commit icon = %+v", icon)
	}
}

func TestScenarioTwoItems(t *testing.T) {
	h := newHarness(t, "A", "B")

	h.swipe(40)
	if got := h.c.Deck().Cursor(); got != 0 {
		t.Fatalf("after intro cursor = %d, want 0", got)
	}
	if snap := h.c.Scores().Snapshot(); snap["A"] != 0 || snap["B"] != 0 {
		t.Fatalf("intro changed counts: %v", snap)
	}

	h.swipe(40)
	if got := h.c.Scores().Count("A"); got != 1 {
		t.Fatalf("counts[A] = %d, want 1", got)
	}
	if got := h.c.Deck().Cursor(); got != 1 {
		t.Fatalf("cursor = %d, want 1 (B)", got)
	}

	h.swipe(-40)
	if !h.c.Deck().Done() {
		t.Fatalf("cursor = %d, want done", h.c.Deck().Cursor())
	}
	if got := h.c.Screen(); got != model.ScreenResults {
		t.Fatalf("screen = %v, want results", got)
	}

	ranked := h.c.Ranked()
	want := []model.Ranking{{ID: "A", Count: 1}, {ID: "B", Count: 0}}
	if len(ranked) != len(want) || ranked[0] != want[0] || ranked[1] != want[1] {
		t.Fatalf("ranked = %v, want %v", ranked, want)
	}
}

func TestScenarioAllLikedKeepsDeckOrder(t *testing.T) {
	ids := []string{"baz", "shelley", "emma", "chad", "cody"}
	h := newHarness(t, ids...)

	h.swipe(40)
	for range ids {
		h.swipe(40)
	}

	ranked := h.c.Ranked()
	for i, r := range ranked {
		if r.ID != ids[i] || r.Count != 1 {
			t.Fatalf("ranked[%d] = %+v, want {%s 1}", i, r, ids[i])
		}
	}
}

func TestInputIgnoredWhileResolving(t *testing.T) {
	h := newHarness(t, "a", "b", "c")
	h.c.Deck().Advance()

	h.c.Press(50)
	h.c.Drag(90)
	h.c.Release()

	if h.c.Press(50) {
		t.Fatal("Press accepted while resolving")
	}
	h.c.Drag(0)
	if d := h.c.Release(); d != model.DecisionNone {
		t.Fatalf("second release decision = %v", d)
	}

	h.clk.Add(sequencer.PhaseDuration)
	h.c.Tick()
	if got := h.c.Deck().Cursor(); got != 1 {
		t.Fatalf("cursor after apply = %d, want 1", got)
	}
	if h.c.Press(50) {
		t.Fatal("Press accepted before the timeline finished")
	}

	h.clk.Add(sequencer.PhaseDuration)
	h.c.Tick()
	if !h.c.Press(50) {
		t.Fatal("Press rejected after the timeline finished")
	}
}

func TestTimelineAppliesOnceAtPhaseBoundary(t *testing.T) {
	h := newHarness(t, "a", "b")
	h.c.Deck().Advance()

	h.c.Press(50)
	h.c.Drag(90)
	h.c.Release()

	h.clk.Add(299 * time.Millisecond)
	h.c.Tick()
	if got := h.c.Scores().Count("a"); got != 0 {
		t.Fatalf("applied early: count = %d", got)
	}
	if off := h.c.CardOffset(); off <= 0 || off > testWidth {
		t.Fatalf("fly-off offset = %v, want (0, %d]", off, testWidth)
	}

	h.clk.Add(time.Millisecond)
	h.c.Tick()
	h.c.Tick()
	if got := h.c.Scores().Count("a"); got != 1 {
		t.Fatalf("count after apply = %d, want 1", got)
	}
	if off := h.c.CardOffset(); off != 0 {
		t.Fatalf("offset after apply = %v, want 0", off)
	}
	if icon := h.c.Icon(); icon.Icon != model.IconLike {
		t.Fatalf("icon during pop = %+v, want like", icon)
	}
}

func TestDragFeedbackOnlyOneIcon(t *testing.T) {
	h := newHarness(t, "a")
	h.c.Deck().Advance()

	h.c.Press(50)
	h.c.Drag(65)
	if icon := h.c.Icon(); icon.Icon != model.IconLike {
		t.Fatalf("right drag icon = %+v", icon)
	}
	h.c.Drag(35)
	if icon := h.c.Icon(); icon.Icon != model.IconDislike {
		t.Fatalf("left drag icon = %+v", icon)
	}
	h.c.Drag(50)
	if icon := h.c.Icon(); icon.Visible() {
		t.Fatalf("zero offset icon = %+v", icon)
	}
}

func TestDraggingCarriesOrigin(t *testing.T) {
	h := newHarness(t, "a")
	h.c.Deck().Advance()

	h.c.Press(40)
	h.c.Drag(55)
	h.c.Drag(62)
	d, ok := h.c.Interaction().(Dragging)
	if !ok {
		t.Fatalf("state = %T, want Dragging", h.c.Interaction())
	}
	if d.Origin != 40 || d.Offset != 22 {
		t.Fatalf("drag = origin %v offset %v, want 40/22", d.Origin, d.Offset)
	}
}

func TestSnapBackEasesToRest(t *testing.T) {
	h := newHarness(t, "a")
	h.c.Deck().Advance()

	h.c.Press(50)
	h.c.Drag(70)
	h.c.Release()

	if !h.c.Animating() {
		t.Fatal("not animating during snap-back")
	}
	if off := h.c.CardOffset(); off != 20 {
		t.Fatalf("snap-back start offset = %v, want 20", off)
	}
	h.clk.Add(sequencer.PhaseDuration)
	if h.c.Animating() || h.c.CardOffset() != 0 {
		t.Fatalf("snap-back not finished: animating=%v offset=%v", h.c.Animating(), h.c.CardOffset())
	}
}

func TestStartOverKeepsScores(t *testing.T) {
	h := newHarness(t, "a")
	h.swipe(40)
	h.swipe(40)
	if h.c.Screen() != model.ScreenResults {
		t.Fatalf("screen = %v, want results", h.c.Screen())
	}
	session := h.c.Session()

	h.c.StartOver()
	if !h.c.Deck().AtIntro() || h.c.Screen() != model.ScreenSwipe {
		t.Fatalf("after StartOver cursor=%d screen=%v", h.c.Deck().Cursor(), h.c.Screen())
	}
	if got := h.c.Scores().Count("a"); got != 1 {
		t.Fatalf("StartOver cleared scores: %d", got)
	}
	if h.c.Session() == session {
		t.Fatal("StartOver kept the session id")
	}
}

func TestNightSupersedesScreens(t *testing.T) {
	h := newHarness(t, "a")

	h.c.Press(50)
	h.c.Drag(60)

	h.clk.Set(time.Date(2026, 10, 17, 23, 0, 0, 0, time.Local))
	if !h.c.PollNight() {
		t.Fatal("PollNight reported no change at 23:00")
	}
	if got := h.c.Screen(); got != model.ScreenNight {
		t.Fatalf("screen = %v, want night", got)
	}
	if _, ok := h.c.Interaction().(Idle); !ok {
		t.Fatalf("drag survived night: %T", h.c.Interaction())
	}
	if h.c.Press(50) {
		t.Fatal("Press accepted at night")
	}
	if h.c.PollNight() {
		t.Fatal("PollNight reported change without one")
	}

	h.clk.Set(time.Date(2026, 10, 18, 10, 0, 0, 0, time.Local))
	h.c.PollNight()
	if got := h.c.Screen(); got != model.ScreenSwipe {
		t.Fatalf("screen = %v, want swipe", got)
	}
}
