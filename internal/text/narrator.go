package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/strandedsim/stranded-tui/internal/engine"
	"github.com/strandedsim/stranded-tui/internal/knowledge"
)

// Narrator renders game moments as markdown for the host to display.
type Narrator interface {
	Briefing(ctx context.Context, sc engine.Scenario) (string, error)
	Scene(ctx context.Context, s engine.GameState, decisions []engine.Decision) (string, error)
	Outcome(ctx context.Context, out engine.DecisionOutcome, rescue engine.RescueStatus) (string, error)
	Debrief(ctx context.Context, s engine.GameState, stats knowledge.Stats) (string, error)
}

// templateNarrator is the deterministic offline narrator. It is the default
// and the fallback; any richer narrator layers on top of it.
type templateNarrator struct{}

func NewTemplateNarrator() Narrator { return &templateNarrator{} }

var environmentLede = map[engine.Environment]string{
	engine.EnvForest:    "Old growth in every direction, and no two directions look different.",
	engine.EnvMountains: "Scree, wind, and a horizon made entirely of rock.",
	engine.EnvDesert:    "Heat shimmer flattens the distance into a single bright line.",
	engine.EnvCoast:     "Surf on one side, cliffs on the other, and a thin strip of land between.",
	engine.EnvSwamp:     "Black water and hummocks; solid ground is a rumor here.",
	engine.EnvTundra:    "White to the edge of sight, and cold that means it.",
}

func (t *templateNarrator) Briefing(ctx context.Context, sc engine.Scenario) (string, error) {
	var b strings.Builder
	b.WriteString("## STRANDED\n\n")
	b.WriteString(environmentLede[sc.Environment])
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "**Terrain:** %s  \n**Weather:** %s, %s  \n**Temperature:** %.0f°C, wind %.0f km/h\n\n",
		sc.Environment, sc.Weather, sc.TimeOfDay, sc.TemperatureC, sc.WindKPH)
	b.WriteString("### PACK\n")
	for _, e := range sc.EquipmentPool {
		if e.Quantity > 1 {
			fmt.Fprintf(&b, "- %s ×%d\n", e.Name, e.Quantity)
		} else {
			fmt.Fprintf(&b, "- %s\n", e.Name)
		}
	}
	fmt.Fprintf(&b, "\nBackpack capacity: %.0f L\n", sc.BackpackLiters)
	return b.String(), nil
}

func meterBar(v float64) string {
	filled := int(v / 10)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func (t *templateNarrator) Scene(ctx context.Context, s engine.GameState, decisions []engine.Decision) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "## TURN %d — %s, %s\n\n", s.TurnNumber, s.CurrentEnvironment, s.CurrentTimeOfDay)
	m := s.Metrics
	fmt.Fprintf(&b, "```\nEnergy    %s %3.0f   Hydration %s %3.0f\nMorale    %s %3.0f   Shelter   %s %3.0f\nFire      %s %3.0f   Signal    %s %3.0f\n```\n",
		meterBar(m.Energy), m.Energy, meterBar(m.Hydration), m.Hydration,
		meterBar(m.Morale), m.Morale, meterBar(m.Shelter), m.Shelter,
		meterBar(m.FireQuality), m.FireQuality, meterBar(m.SignalEffectiveness), m.SignalEffectiveness)
	fmt.Fprintf(&b, "Body temp %.1f°C · injury %.0f · survival odds %.0f%%\n\n", m.BodyTemperature, m.InjurySeverity, m.SurvivalProbability)
	b.WriteString("### DECISIONS\n")
	for i, d := range decisions {
		fmt.Fprintf(&b, "%d. %s (energy %.0f, risk %d, %s)\n", i+1, d.Text, d.EnergyCost, d.RiskLevel, hours(d.TimeRequired))
		if d.EnvironmentalHint != "" {
			fmt.Fprintf(&b, "   *%s*\n", d.EnvironmentalHint)
		}
	}
	return b.String(), nil
}

func hours(h float64) string {
	if h == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%g hours", h)
}

func (t *templateNarrator) Outcome(ctx context.Context, out engine.DecisionOutcome, rescue engine.RescueStatus) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n%s\n", strings.ToUpper(out.Decision.Text), out.ImmediateEffect)
	for _, c := range out.Consequences {
		fmt.Fprintf(&b, "\n- %s", c)
	}
	if out.PrincipleAlignment != "" {
		fmt.Fprintf(&b, "\n\n> %s\n", out.PrincipleAlignment)
	}
	fmt.Fprintf(&b, "\nRescue probability: %.0f%% · signal %0.f%% · navigate %.0f%% · endure %.0f%%\n",
		rescue.RescueProbability, rescue.SignalProgress, rescue.NavigateProgress, rescue.EndureProgress)
	return b.String(), nil
}

func (t *templateNarrator) Debrief(ctx context.Context, s engine.GameState, stats knowledge.Stats) (string, error) {
	var b strings.Builder
	switch s.Outcome {
	case engine.OutcomeSurvived:
		b.WriteString("## RESCUED\n\nYou made it out, and you made it out well.\n")
	case engine.OutcomeBarelySurvived:
		b.WriteString("## RESCUED — BARELY\n\nYou are alive because the margin held, not because you widened it.\n")
	case engine.OutcomeDied:
		fmt.Fprintf(&b, "## THE WILDERNESS WINS\n\nCause: %s, on turn %d.\n", s.DeathCause, s.TurnNumber)
	default:
		b.WriteString("## RUN ABANDONED\n")
	}
	fmt.Fprintf(&b, "\nGood calls: %d · poor calls: %d · principles discovered this run: %d\n",
		len(s.GoodDecisions), len(s.PoorDecisions), len(s.Discovered))
	fmt.Fprintf(&b, "Across all runs: %d sessions, %.0f%% survival rate, %d principles discovered.\n",
		stats.TotalSessions, stats.SurvivalRate*100, stats.TotalPrinciples)
	return b.String(), nil
}

// WithFallback prefers primary and falls back on error.
func WithFallback(primary, fallback Narrator) Narrator {
	return &fallbackNarrator{p: primary, f: fallback}
}

type fallbackNarrator struct{ p, f Narrator }

func (n *fallbackNarrator) Briefing(ctx context.Context, sc engine.Scenario) (string, error) {
	if n.p != nil {
		if s, err := n.p.Briefing(ctx, sc); err == nil {
			return s, nil
		}
	}
	return n.f.Briefing(ctx, sc)
}

func (n *fallbackNarrator) Scene(ctx context.Context, s engine.GameState, ds []engine.Decision) (string, error) {
	if n.p != nil {
		if md, err := n.p.Scene(ctx, s, ds); err == nil {
			return md, nil
		}
	}
	return n.f.Scene(ctx, s, ds)
}

func (n *fallbackNarrator) Outcome(ctx context.Context, out engine.DecisionOutcome, r engine.RescueStatus) (string, error) {
	if n.p != nil {
		if md, err := n.p.Outcome(ctx, out, r); err == nil {
			return md, nil
		}
	}
	return n.f.Outcome(ctx, out, r)
}

func (n *fallbackNarrator) Debrief(ctx context.Context, s engine.GameState, st knowledge.Stats) (string, error) {
	if n.p != nil {
		if md, err := n.p.Debrief(ctx, s, st); err == nil {
			return md, nil
		}
	}
	return n.f.Debrief(ctx, s, st)
}
