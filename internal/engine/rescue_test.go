package engine

import "testing"

func rescueState(turn, signals int) GameState {
	s := baseTestState()
	s.TurnNumber = turn
	s.SuccessfulSignals = signals
	s.SignalAttempts = signals
	s.Metrics.SignalEffectiveness = 50
	return s
}

func TestRescueZeroWithoutSignals(t *testing.T) {
	s := rescueState(14, 0)
	if p := CalculateRescueStatus(s).RescueProbability; p != 0 {
		t.Fatalf("no successful signals must mean probability 0, got %v", p)
	}
}

func TestRescueMonotonicInSignals(t *testing.T) {
	prev := -1.0
	for signals := 1; signals <= 8; signals++ {
		p := CalculateRescueStatus(rescueState(12, signals)).RescueProbability
		if p < prev {
			t.Fatalf("probability decreased from %v to %v at %d signals", prev, p, signals)
		}
		prev = p
	}
}

func TestRescueCappedBeforeSearchStarts(t *testing.T) {
	s := rescueState(5, 4)
	// Clear-midday can add on top of the pre-search cap, but the base is 15.
	s.Scenario.Weather = WeatherOvercast
	if p := CalculateRescueStatus(s).RescueProbability; p > 15 {
		t.Fatalf("pre-search probability above cap: %v", p)
	}
}

func TestRescueWeatherAdjustments(t *testing.T) {
	base := rescueState(12, 3)
	base.Scenario.Weather = WeatherOvercast
	base.CurrentTimeOfDay = TimeAfternoon
	p0 := CalculateRescueStatus(base).RescueProbability

	clear := base
	clear.Scenario.Weather = WeatherClear
	clear.CurrentTimeOfDay = TimeMidday
	if p := CalculateRescueStatus(clear).RescueProbability; p <= p0 {
		t.Fatalf("clear midday should improve odds: %v vs %v", p, p0)
	}

	storm := base
	storm.Scenario.Weather = WeatherStorm
	if p := CalculateRescueStatus(storm).RescueProbability; p >= p0 {
		t.Fatalf("storm should hurt odds: %v vs %v", p, p0)
	}

	night := base
	night.CurrentTimeOfDay = TimeNight
	if p := CalculateRescueStatus(night).RescueProbability; p >= p0 {
		t.Fatalf("night should hurt odds: %v vs %v", p, p0)
	}
}

func TestRescueMountainShelterBonus(t *testing.T) {
	s := rescueState(12, 3)
	s.Scenario.Weather = WeatherOvercast
	s.CurrentTimeOfDay = TimeAfternoon
	p0 := CalculateRescueStatus(s).RescueProbability
	s.CurrentEnvironment = EnvMountains
	s.Metrics.Shelter = 60
	if p := CalculateRescueStatus(s).RescueProbability; p != p0+5 {
		t.Fatalf("sheltered mountain bonus: got %v, want %v", p, p0+5)
	}
}

func TestSignalProgressAveragesTracks(t *testing.T) {
	s := rescueState(6, 5) // signals complete, turn halfway
	st := CalculateRescueStatus(s)
	if st.SignalProgress != 75 {
		t.Fatalf("signal progress = %v, want 75", st.SignalProgress)
	}
}

func TestNavigateProgressCapped(t *testing.T) {
	if p := CalculateRescueStatus(rescueState(20, 0)).NavigateProgress; p != 100 {
		t.Fatalf("navigate progress should cap at 100, got %v", p)
	}
	if p := CalculateRescueStatus(rescueState(5, 0)).NavigateProgress; p != 40 {
		t.Fatalf("navigate progress at turn 5 = %v, want 40", p)
	}
}

func TestEndureProgressNeedsHealthyOdds(t *testing.T) {
	s := rescueState(15, 0)
	s.Metrics.SurvivalProbability = 40
	weak := CalculateRescueStatus(s).EndureProgress
	s.Metrics.SurvivalProbability = 70
	strong := CalculateRescueStatus(s).EndureProgress
	if weak >= strong {
		t.Fatalf("low survival odds should hold endure progress back: %v vs %v", weak, strong)
	}
	if strong != 100 {
		t.Fatalf("turn 15 with healthy odds should complete endure: %v", strong)
	}
}

func TestEstimatedTurnsPositiveUntilWin(t *testing.T) {
	st := CalculateRescueStatus(rescueState(4, 1))
	if st.EstimatedTurnsToRescue < 1 {
		t.Fatalf("estimate should stay positive mid-run: %d", st.EstimatedTurnsToRescue)
	}
	done := CalculateRescueStatus(rescueState(20, 6))
	if done.EstimatedTurnsToRescue != 0 {
		t.Fatalf("completed track should estimate 0, got %d", done.EstimatedTurnsToRescue)
	}
}

func TestWinConditionGates(t *testing.T) {
	s := rescueState(12, 5)
	if !signalWinMet(s) {
		t.Fatal("signal win should mature at turn 12 with 5 signals")
	}
	if signalWinMet(rescueState(11, 5)) || signalWinMet(rescueState(12, 4)) {
		t.Fatal("signal win matured early")
	}
	e := rescueState(15, 0)
	e.Metrics.SurvivalProbability = 60
	if !endureWinMet(e) {
		t.Fatal("endure win should mature at turn 15 with odds above 55")
	}
	e.Metrics.SurvivalProbability = 55
	if endureWinMet(e) {
		t.Fatal("endure win requires odds strictly above 55")
	}
}
