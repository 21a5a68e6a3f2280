package engine

import (
	"testing"

	"github.com/strandedsim/stranded-tui/internal/knowledge"
)

func TestUntreatedWaterIsCriticalError(t *testing.T) {
	s := baseTestState()
	d := Decision{ID: DecisionDrinkUntreated, RiskLevel: 6}
	q, principle, cat := Evaluate(d, s, DecisionOutcome{})
	if q != QualityCriticalError {
		t.Fatalf("drinking untreated water graded %s, want critical_error", q)
	}
	if cat != knowledge.CategoryWater || principle == "" {
		t.Fatalf("expected a water principle, got %q in %s", principle, cat)
	}
}

func TestEarlyShelterIsExcellent(t *testing.T) {
	s := baseTestState()
	s.TurnNumber = 2
	d := Decision{ID: DecisionShelter, RiskLevel: 2}
	if q, _, _ := Evaluate(d, s, DecisionOutcome{}); q != QualityExcellent {
		t.Fatalf("shelter on turn 2 graded %s, want excellent", q)
	}
	s.TurnNumber = 6
	if q, _, _ := Evaluate(d, s, DecisionOutcome{}); q != QualityGood {
		t.Fatalf("shelter on turn 6 graded %s, want good", q)
	}
}

func TestRiskyActionWhileDepletedIsPoor(t *testing.T) {
	s := baseTestState()
	s.Metrics.Energy = 40
	d := Decision{ID: DecisionSummitPush, RiskLevel: 7}
	if q, _, _ := Evaluate(d, s, DecisionOutcome{}); q != QualityPoor {
		t.Fatalf("risk 7 at energy 40 graded %s, want poor", q)
	}
	s.Metrics.Energy = 80
	s.Metrics.InjurySeverity = 40
	if q, _, _ := Evaluate(d, s, DecisionOutcome{}); q != QualityPoor {
		t.Fatalf("risk 7 while injured graded %s, want poor", q)
	}
}

func TestNightTravelIsPoor(t *testing.T) {
	s := baseTestState()
	s.CurrentTimeOfDay = TimeNight
	d := Decision{ID: DecisionFollowRiver, RiskLevel: 5}
	if q, _, _ := Evaluate(d, s, DecisionOutcome{}); q != QualityPoor {
		t.Fatalf("night travel graded %s, want poor", q)
	}
}

func TestPrincipleLookupFallsBackToGeneric(t *testing.T) {
	d := Decision{ID: DecisionID("hold-a-seminar"), Text: "Hold a seminar"}
	principle, cat := LookupPrinciple(d)
	if principle != genericPrinciple {
		t.Fatalf("unmapped decision should fall back to the generic principle, got %q", principle)
	}
	if cat != knowledge.CategoryPsychology {
		t.Fatalf("generic fallback category = %s", cat)
	}
}

func TestPrincipleKeywordFallback(t *testing.T) {
	// Unmapped id, but the text mentions fire; keyword search should find a
	// fire principle.
	d := Decision{ID: DecisionID("improvise"), Text: "Dry out tinder by the fire"}
	principle, cat := LookupPrinciple(d)
	if cat != knowledge.CategoryFire {
		t.Fatalf("keyword fallback picked %s, want fire (principle %q)", cat, principle)
	}
}

func TestEveryRegisteredDecisionHasACategory(t *testing.T) {
	for id := range resolverRegistry {
		d := Decision{ID: id, Text: string(id)}
		if principle, _ := LookupPrinciple(d); principle == "" {
			t.Fatalf("decision %s resolved to an empty principle", id)
		}
	}
}

func TestSeverityDerivation(t *testing.T) {
	cases := []struct {
		out  DecisionOutcome
		want Severity
	}{
		{DecisionOutcome{Quality: QualityCriticalError}, SeverityDanger},
		{DecisionOutcome{Quality: QualityPoor}, SeverityWarning},
		{DecisionOutcome{Quality: QualityGood, Decision: Decision{RiskLevel: 8}}, SeverityWarning},
		{DecisionOutcome{Quality: QualityExcellent}, SeveritySuccess},
		{DecisionOutcome{Quality: QualityGood, WasSuccessfulSignal: true}, SeveritySuccess},
		{DecisionOutcome{Quality: QualityGood, Decision: Decision{RiskLevel: 2}}, SeverityInfo},
	}
	for i, c := range cases {
		if got := SeverityFor(c.out); got != c.want {
			t.Fatalf("case %d: severity %s, want %s", i, got, c.want)
		}
	}
}
