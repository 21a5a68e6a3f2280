package engine

import "testing"

func baseTestState() GameState {
	return GameState{
		TurnNumber: 1,
		Status:     StatusActive,
		Metrics: PlayerMetrics{
			Energy: 70, Hydration: 70, Morale: 50, Shelter: 40,
			BodyTemperature: 37, SurvivalProbability: 60,
		},
		Scenario: Scenario{
			Environment: EnvForest, Weather: WeatherClear,
			TimeOfDay: TimeMorning, TemperatureC: 15,
		},
		CurrentEnvironment: EnvForest,
		CurrentTimeOfDay:   TimeMorning,
		AlignmentScore:     50,
	}
}

func TestShelterSuccessDeterministic(t *testing.T) {
	s := baseTestState()
	d := Decision{ID: DecisionShelter, Text: "Build a shelter", EnergyCost: 18, RiskLevel: 2}
	out := ApplyDecision(s, d, fixedSource{f: 0.9})
	// Passive drift never touches shelter, so the action delta is exact.
	if out.MetricsChange.Shelter != 25 {
		t.Fatalf("shelter delta = %v, want exactly 25", out.MetricsChange.Shelter)
	}
}

func TestShelterDiminishedWhenAlreadyStrong(t *testing.T) {
	s := baseTestState()
	s.Metrics.Shelter = 75
	d := Decision{ID: DecisionShelter, EnergyCost: 18, RiskLevel: 2}
	out := ApplyDecision(s, d, fixedSource{f: 0.9})
	if out.MetricsChange.Shelter != 10 {
		t.Fatalf("shelter delta above 70 = %v, want 10", out.MetricsChange.Shelter)
	}
}

func TestUntreatedWaterSchedulesIllness(t *testing.T) {
	s := baseTestState()
	s.TurnNumber = 5
	s.Equipment = []Equipment{{Name: "untreated water", Kind: ItemWaterUntreated, Quantity: 1}}
	d := Decision{ID: DecisionDrinkUntreated, EnergyCost: -2, RiskLevel: 6}
	out := ApplyDecision(s, d, fixedSource{f: 0.1})
	if len(out.DelayedEffects) != 1 {
		t.Fatalf("expected exactly one delayed effect, got %d", len(out.DelayedEffects))
	}
	de := out.DelayedEffects[0]
	ahead := de.Turn - s.TurnNumber
	if ahead < 2 || ahead > 4 {
		t.Fatalf("illness scheduled %d turns ahead, want 2-4", ahead)
	}
	if de.Change.Hydration != -25 {
		t.Fatalf("illness hydration delta = %v, want -25", de.Change.Hydration)
	}
	if out.EquipmentChanges == nil || len(out.EquipmentChanges.Removed) != 1 {
		t.Fatal("drinking must consume the untreated water")
	}
}

func TestUntreatedWaterLuckyRollSkipsIllness(t *testing.T) {
	s := baseTestState()
	s.Equipment = []Equipment{{Name: "untreated water", Kind: ItemWaterUntreated, Quantity: 1}}
	d := Decision{ID: DecisionDrinkUntreated, EnergyCost: -2, RiskLevel: 6}
	out := ApplyDecision(s, d, fixedSource{f: 0.6})
	if len(out.DelayedEffects) != 0 {
		t.Fatalf("expected no delayed effect on a lucky roll, got %d", len(out.DelayedEffects))
	}
}

func TestUnknownDecisionFallsBack(t *testing.T) {
	s := baseTestState()
	d := Decision{ID: DecisionID("build-rocket"), EnergyCost: 10, RiskLevel: 1}
	out := ApplyDecision(s, d, fixedSource{f: 0.5})
	if out.ImmediateEffect != "You take action." {
		t.Fatalf("unknown id should resolve neutrally, got %q", out.ImmediateEffect)
	}
}

func TestSuccessBonusTiers(t *testing.T) {
	cases := []struct {
		align float64
		want  float64
	}{
		{85, 0.15}, {70, 0.10}, {55, 0.05}, {40, 0}, {20, -0.08},
	}
	for _, c := range cases {
		if got := successBonus(c.align); got != c.want {
			t.Fatalf("successBonus(%v) = %v, want %v", c.align, got, c.want)
		}
	}
}

func TestMoraleAdjustmentRange(t *testing.T) {
	if got := moraleAdjustment(100); got != 0.1 {
		t.Fatalf("morale 100 adjustment = %v, want 0.1", got)
	}
	if got := moraleAdjustment(0); got != -0.1 {
		t.Fatalf("morale 0 adjustment = %v, want -0.1", got)
	}
	if got := moraleAdjustment(50); got != 0 {
		t.Fatalf("morale 50 adjustment = %v, want 0", got)
	}
}

func TestActualEnergyCostScaling(t *testing.T) {
	cheap := Decision{EnergyCost: 10, RiskLevel: 1}
	if got := actualEnergyCost(cheap, PlayerMetrics{Energy: 90, Hydration: 50}); got != 6 {
		t.Fatalf("fresh player discount: got %v, want 6", got)
	}
	if got := actualEnergyCost(cheap, PlayerMetrics{Energy: 60, Hydration: 90}); got != 8 {
		t.Fatalf("hydration discount: got %v, want 8", got)
	}
	hard := Decision{EnergyCost: 30, RiskLevel: 6}
	if got := actualEnergyCost(hard, PlayerMetrics{Energy: 20, Hydration: 60}); got != 36 {
		t.Fatalf("exhaustion surcharge: got %v, want 36", got)
	}
	if got := actualEnergyCost(hard, PlayerMetrics{Energy: 60, Hydration: 20}); got != 42 {
		t.Fatalf("dehydration surcharge: got %v, want 42", got)
	}
	recovery := Decision{EnergyCost: -18, RiskLevel: 1}
	if got := actualEnergyCost(recovery, PlayerMetrics{Energy: 10}); got != -18 {
		t.Fatalf("recovery cost must pass through unscaled: got %v", got)
	}
}

func TestHeatSurcharge(t *testing.T) {
	d := Decision{EnergyCost: 30}
	s := baseTestState()
	s.Scenario.TemperatureC = 35
	if got := heatSurcharge(d, s); got != 5 {
		t.Fatalf("hot-weather surcharge = %v, want 5", got)
	}
	s.CurrentEnvironment = EnvDesert
	if got := heatSurcharge(d, s); got != 8 {
		t.Fatalf("desert surcharge = %v, want 8", got)
	}
	s.Scenario.TemperatureC = 20
	if got := heatSurcharge(d, s); got != 0 {
		t.Fatalf("mild weather should add nothing, got %v", got)
	}
	light := Decision{EnergyCost: 10}
	s.Scenario.TemperatureC = 40
	if got := heatSurcharge(light, s); got != 0 {
		t.Fatalf("light work should add nothing, got %v", got)
	}
}

func TestNavigationNeverSucceedsEarly(t *testing.T) {
	s := baseTestState()
	s.TurnNumber = 3
	s.History = []DecisionOutcome{{Decision: Decision{ID: DecisionFollowRiver}}}
	if navigationSucceeds(s, 2.0) {
		t.Fatal("navigation succeeded at turn 3 with one attempt")
	}
	// Turn gate alone is not enough either.
	s.TurnNumber = 9
	if navigationSucceeds(s, 2.0) {
		t.Fatal("navigation succeeded with a single prior attempt")
	}
}

func TestNavigationThresholdEasesWithAttempts(t *testing.T) {
	s := baseTestState()
	s.TurnNumber = 10
	s.History = []DecisionOutcome{
		{Decision: Decision{ID: DecisionFollowRiver}},
		{Decision: Decision{ID: DecisionTriangulate}},
	}
	if navigationSucceeds(s, 0.85) {
		t.Fatal("0.85 should not clear the two-attempt threshold of 0.88")
	}
	for i := 0; i < 4; i++ {
		s.History = append(s.History, DecisionOutcome{Decision: Decision{ID: DecisionFollowRiver}})
	}
	if !navigationSucceeds(s, 0.75) {
		t.Fatal("accumulated attempts should ease the threshold to 0.7")
	}
	if navigationSucceeds(s, 0.65) {
		t.Fatal("threshold floor of 0.7 was breached")
	}
}

func TestEarlyNavigationDecisionNeverSetsFlag(t *testing.T) {
	s := baseTestState()
	s.TurnNumber = 3
	d := Decision{ID: DecisionFollowRiver, EnergyCost: 25, RiskLevel: 5}
	out := ApplyDecision(s, d, fixedSource{f: 0.99})
	if out.WasNavigationSuccess {
		t.Fatal("a single early attempt set wasNavigationSuccess")
	}
}

func TestSignalThresholdLowersWithPractice(t *testing.T) {
	if got := signalThreshold(PlayerMetrics{SignalEffectiveness: 70}); got != 0.5 {
		t.Fatalf("practiced threshold = %v, want 0.5", got)
	}
	if got := signalThreshold(PlayerMetrics{SignalEffectiveness: 40}); got != 0.65 {
		t.Fatalf("novice threshold = %v, want 0.65", got)
	}
}

func TestSignalFireSetsAttemptFlags(t *testing.T) {
	s := baseTestState()
	s.Metrics.FireQuality = 60
	d := Decision{ID: DecisionSignalFire, EnergyCost: 16, RiskLevel: 3}
	out := ApplyDecision(s, d, fixedSource{f: 0.9})
	if !out.WasSignalAttempt || !out.WasSuccessfulSignal {
		t.Fatalf("high roll should mark a successful signal attempt: %+v", out)
	}
	out = ApplyDecision(s, d, fixedSource{f: 0.1})
	if !out.WasSignalAttempt || out.WasSuccessfulSignal {
		t.Fatalf("low roll should mark a failed attempt: %+v", out)
	}
}

func TestStartFireConsumesMatches(t *testing.T) {
	s := baseTestState()
	s.Equipment = []Equipment{{Name: "waterproof matches", Kind: ItemFireStarter, Quantity: 20}}
	d := Decision{ID: DecisionStartFire, EnergyCost: 15, RiskLevel: 2}
	out := ApplyDecision(s, d, fixedSource{f: 0.9})
	if out.EquipmentChanges == nil || len(out.EquipmentChanges.Removed) != 1 {
		t.Fatal("starting a fire with matches should burn one")
	}
}

func TestPurifyConvertsWater(t *testing.T) {
	s := baseTestState()
	s.Metrics.FireQuality = 50
	s.Equipment = []Equipment{
		{Name: "untreated water", Kind: ItemWaterUntreated, Quantity: 1},
		{Name: "metal pot", Kind: ItemContainer, Quantity: 1},
	}
	d := Decision{ID: DecisionPurifyWater, EnergyCost: 6, RiskLevel: 1}
	out := ApplyDecision(s, d, fixedSource{f: 0.5})
	ch := out.EquipmentChanges
	if ch == nil || len(ch.Removed) != 1 || ch.Removed[0] != "untreated water" {
		t.Fatalf("purify must consume the untreated water: %+v", ch)
	}
	if len(ch.Added) != 1 || ch.Added[0].Kind != ItemWaterClean {
		t.Fatalf("purify must yield clean water: %+v", ch)
	}
}
