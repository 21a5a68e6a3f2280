package ui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/strandedsim/stranded-tui/internal/engine"
	"github.com/strandedsim/stranded-tui/internal/knowledge"
	"github.com/strandedsim/stranded-tui/internal/text"
	"github.com/strandedsim/stranded-tui/internal/util"
)

func TestNextThemeNameCycles(t *testing.T) {
	start := themeNames()[0]
	name := start
	for range themeNames() {
		name = nextThemeName(name, 1)
	}
	if name != start {
		t.Fatalf("stepping through all themes should wrap, ended at %q", name)
	}
	if prev := nextThemeName(start, -1); nextThemeName(prev, 1) != start {
		t.Fatal("stepping backward then forward should return to the start")
	}
}

func TestPaletteForUnknownFallsBack(t *testing.T) {
	if paletteFor("no-such-theme") != paletteFor("forest") {
		t.Fatal("unknown theme should fall back to the default palette")
	}
}

func TestRenderMarkdownWrapsToWidth(t *testing.T) {
	long := strings.Repeat("the wind keeps rising over the ridge and will not stop ", 20)
	narrow := renderMarkdown(long, 30)
	wide := renderMarkdown(long, 120)
	if narrow == wide {
		t.Fatal("wrap width has no effect on rendered output")
	}
	if renderMarkdown(long, 0) == "" {
		t.Fatal("non-positive width must fall back to a default, not empty output")
	}
}

type recordingArchiver struct {
	starts   int
	turns    int
	finishes int
	lastTurn int
}

func (r *recordingArchiver) StartRun(context.Context, string, engine.Scenario) error {
	r.starts++
	return nil
}

func (r *recordingArchiver) RecordTurn(_ context.Context, turn int, _ engine.DecisionOutcome, _ engine.PlayerMetrics) error {
	r.turns++
	r.lastTurn = turn
	return nil
}

func (r *recordingArchiver) FinishRun(context.Context, engine.GameState) error {
	r.finishes++
	return nil
}

func TestArchiverReceivesRunAndTurns(t *testing.T) {
	tracker := knowledge.NewTracker(knowledge.NewMemoryRepository())
	arch := &recordingArchiver{}
	cfg := util.Config{SeedText: "archive-wiring-seed", Theme: "forest"}
	m := initialModel(context.Background(), tracker, text.NewTemplateNarrator(), arch, cfg)

	m.startRun()
	if arch.starts != 1 {
		t.Fatalf("starting a run should open an archive run, got %d", arch.starts)
	}
	m.enterScene()
	if len(m.decisions) == 0 {
		t.Fatal("no decisions surfaced on the opening turn")
	}
	m.choose(0)
	if arch.turns != 1 {
		t.Fatalf("one resolved turn should archive one row, got %d", arch.turns)
	}
	if arch.lastTurn != 1 {
		t.Fatalf("archived turn number = %d, want the resolved turn 1", arch.lastTurn)
	}
}

func TestNilArchiverPlaysWithoutArchiving(t *testing.T) {
	tracker := knowledge.NewTracker(knowledge.NewMemoryRepository())
	cfg := util.Config{SeedText: "no-archive-seed", Theme: "forest"}
	m := initialModel(context.Background(), tracker, text.NewTemplateNarrator(), nil, cfg)

	m.startRun()
	m.enterScene()
	if len(m.decisions) == 0 {
		t.Fatal("no decisions surfaced on the opening turn")
	}
	m.choose(0)
	if m.state.TurnNumber != 2 {
		t.Fatalf("turn did not resolve without an archiver: turn %d", m.state.TurnNumber)
	}
}

type downNarrator struct{}

func (downNarrator) Briefing(context.Context, engine.Scenario) (string, error) {
	return "", fmt.Errorf("narrator offline")
}

func (downNarrator) Scene(context.Context, engine.GameState, []engine.Decision) (string, error) {
	return "", fmt.Errorf("narrator offline")
}

func (downNarrator) Outcome(context.Context, engine.DecisionOutcome, engine.RescueStatus) (string, error) {
	return "", fmt.Errorf("narrator offline")
}

func (downNarrator) Debrief(context.Context, engine.GameState, knowledge.Stats) (string, error) {
	return "", fmt.Errorf("narrator offline")
}

func TestFailingNarratorStillRendersViews(t *testing.T) {
	tracker := knowledge.NewTracker(knowledge.NewMemoryRepository())
	cfg := util.Config{SeedText: "narrator-fallback-seed", Theme: "forest"}
	m := initialModel(context.Background(), tracker, downNarrator{}, nil, cfg)

	m.startRun()
	if m.view != viewBriefing || m.md == "" {
		t.Fatalf("briefing not rendered through the fallback narrator: view=%q", m.view)
	}
	m.enterScene()
	if m.md == "" {
		t.Fatal("scene not rendered through the fallback narrator")
	}
}
