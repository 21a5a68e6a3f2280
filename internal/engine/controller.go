package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/strandedsim/stranded-tui/internal/knowledge"
)

// ErrGameEnded is returned when a decision is submitted against a finished
// run. There is no transition out of the ended state.
var ErrGameEnded = errors.New("game has ended")

// TriggerPredicate lets a host subsystem intercept a turn by inspecting the
// state. When one fires, the host bypasses the normal decision list for that
// turn; the core only promises read access.
type TriggerPredicate func(GameState) bool

// Controller owns the turn loop: create game, surface decisions, apply the
// chosen one, advance the world, check end conditions. It holds no game
// state of its own; every call takes the previous state and returns a new
// one.
type Controller struct {
	tracker *knowledge.Tracker
	seed    RunSeed
}

func NewController(tracker *knowledge.Tracker, seed RunSeed) *Controller {
	return &Controller{tracker: tracker, seed: seed}
}

// startingMetrics is the condition the player wakes up in. Already tired,
// already behind on water, but unhurt.
func startingMetrics() PlayerMetrics {
	return PlayerMetrics{
		Energy:              85,
		Hydration:           80,
		Morale:              70,
		Shelter:             0,
		FireQuality:         0,
		SignalEffectiveness: 10,
		SurvivalProbability: 60,
		BodyTemperature:     37,
		InjurySeverity:      0,
		CumulativeRisk:      0,
	}
}

// CreateNewGame generates a scenario biased toward the player's weak
// categories and opens a tracker session for it.
func (c *Controller) CreateNewGame() GameState {
	weak := c.tracker.RecommendedCategories()
	sc := NewScenario(weak, c.seed.Stream("scenario"))
	sessionID := uuid.NewString()
	c.tracker.StartSession(sessionID, string(sc.Environment))

	return GameState{
		TurnNumber:         1,
		Status:             StatusActive,
		Outcome:            OutcomeUndefined,
		Metrics:            startingMetrics(),
		Equipment:          append([]Equipment(nil), sc.EquipmentPool...),
		Scenario:           sc,
		CurrentEnvironment: sc.Environment,
		CurrentTimeOfDay:   sc.TimeOfDay,
		AlignmentScore:     50,
		Discovered:         map[string]struct{}{},
		SessionID:          sessionID,
	}
}

// AvailableDecisions surfaces the legal actions for the current state.
func (c *Controller) AvailableDecisions(s GameState) []Decision {
	return GenerateDecisions(s)
}

// alignmentShift converts a quality grade into the alignment delta it earns.
func alignmentShift(q DecisionQuality) float64 {
	switch q {
	case QualityExcellent:
		return 4
	case QualityGood:
		return 1
	case QualityPoor:
		return -3
	case QualityCriticalError:
		return -6
	}
	return 0
}

// MakeDecision resolves one turn: apply the decision, grade it, fold in
// matured delayed effects, advance the clock, and re-evaluate end
// conditions. Returns a new state; the input state is never mutated. The
// applied outcome is the last history entry.
func (c *Controller) MakeDecision(s GameState, d Decision) (GameState, error) {
	if s.Status != StatusActive {
		return s, ErrGameEnded
	}

	src := c.seed.Stream(fmt.Sprintf("turn:%d:%s", s.TurnNumber, d.ID))
	out := ApplyDecision(s, d, src)
	quality, principle, cat := Evaluate(d, s, out)
	out.Quality = quality
	out.PrincipleAlignment = principle

	n := s.clone()
	n.History = append(n.History, out)
	n.Metrics = n.Metrics.Apply(out.MetricsChange)
	n.Equipment = applyEquipmentChanges(n.Equipment, out.EquipmentChanges)
	if out.EnvironmentChange != "" {
		n.CurrentEnvironment = out.EnvironmentChange
	}
	if out.WasSignalAttempt {
		n.SignalAttempts++
	}
	if out.WasSuccessfulSignal {
		n.SuccessfulSignals++
	}

	n.AlignmentScore = clamp(n.AlignmentScore+alignmentShift(quality), 0, 100)
	entry := DecisionLogEntry{Turn: s.TurnNumber, Description: d.Text, Principle: principle}
	switch quality {
	case QualityExcellent, QualityGood:
		n.GoodDecisions = append(n.GoodDecisions, entry)
	case QualityPoor, QualityCriticalError:
		n.PoorDecisions = append(n.PoorDecisions, entry)
	}
	if _, seen := n.Discovered[principle]; !seen {
		n.Discovered[principle] = struct{}{}
	}
	c.tracker.RecordPrincipleView(principle, cat)

	n.TurnNumber++
	// Delayed effects land on the turn they were scheduled for. Turn
	// numbers never repeat, so each matures exactly once.
	for _, h := range n.History {
		for _, de := range h.DelayedEffects {
			if de.Turn == n.TurnNumber {
				n.Metrics = n.Metrics.Apply(de.Change)
			}
		}
	}

	n.HoursElapsed += d.TimeRequired
	n.CurrentTimeOfDay = timeOfDayAfter(n.Scenario.TimeOfDay, n.HoursElapsed)

	c.checkEndConditions(&n, out)
	return n, nil
}

// timeOfDayAfter advances the clock from the scenario's opening time, one
// period per four hours elapsed.
func timeOfDayAfter(start TimeOfDay, hoursElapsed float64) TimeOfDay {
	idx := 0
	for i, t := range AllTimesOfDay {
		if t == start {
			idx = i
			break
		}
	}
	steps := int(hoursElapsed / 4)
	return AllTimesOfDay[(idx+steps)%len(AllTimesOfDay)]
}

// checkEndConditions moves the run to ended on death or on a matured win
// condition. Unmatured delayed effects are simply abandoned with the run.
func (c *Controller) checkEndConditions(n *GameState, out DecisionOutcome) {
	if fatal, cause := n.Metrics.Fatal(); fatal {
		n.Status = StatusEnded
		n.Outcome = OutcomeDied
		n.DeathCause = cause
		c.tracker.EndSession(string(OutcomeDied))
		return
	}
	if out.WasNavigationSuccess || signalWinMet(*n) || endureWinMet(*n) {
		n.Status = StatusEnded
		n.Outcome = winOutcome(*n)
		c.tracker.EndSession(string(n.Outcome))
	}
}

// winOutcome grades a win: a clean survival needs a clearly positive
// decision record and healthy closing odds, otherwise the player only
// barely made it.
func winOutcome(s GameState) GameOutcome {
	if len(s.GoodDecisions)-len(s.PoorDecisions) >= 2 && s.Metrics.SurvivalProbability >= 50 {
		return OutcomeSurvived
	}
	return OutcomeBarelySurvived
}
