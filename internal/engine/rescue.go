package engine

// Win condition constants. A run can be won by being found (signal), by
// walking out (navigate), or by simply outlasting the ordeal (endure).
const (
	signalWinTurn    = 12
	signalWinCount   = 5
	endureWinTurn    = 15
	endureWinMinSurv = 55.0
	searchStartTurn  = 10
)

// CalculateRescueStatus derives rescue probability and win-track progress
// from accumulated history. Recomputed on demand, never stored.
func CalculateRescueStatus(s GameState) RescueStatus {
	var st RescueStatus
	st.RescueProbability = rescueProbability(s)
	st.SignalProgress = signalProgress(s)
	st.NavigateProgress = clamp(float64(s.TurnNumber)*8, 0, 100)
	st.EndureProgress = endureProgress(s)
	st.EstimatedTurnsToRescue = estimatedTurns(s, st)
	return st
}

// rescueProbability is zero until a signal has actually been seen; the
// search itself does not start until turn 10, which caps early probability.
func rescueProbability(s GameState) float64 {
	if s.SuccessfulSignals == 0 {
		return 0
	}
	p := float64(s.SuccessfulSignals)*15 + s.Metrics.SignalEffectiveness*0.3
	if s.TurnNumber >= searchStartTurn {
		if p > 85 {
			p = 85
		}
	} else if p > 15 {
		p = 15
	}

	switch {
	case s.Scenario.Weather == WeatherClear && s.CurrentTimeOfDay == TimeMidday:
		p += 10
	case harshWeather(s.Scenario.Weather):
		p -= 15
	}
	if s.CurrentTimeOfDay == TimeNight {
		p -= 20
	}
	if s.CurrentEnvironment == EnvMountains && s.Metrics.Shelter > 50 {
		p += 5
	}
	return clamp(p, 0, 100)
}

// signalProgress averages signal-count progress with turn progress, since
// the signal win needs both to mature.
func signalProgress(s GameState) float64 {
	sig := clamp(float64(s.SuccessfulSignals)/signalWinCount*100, 0, 100)
	turn := clamp(float64(s.TurnNumber)/signalWinTurn*100, 0, 100)
	return (sig + turn) / 2
}

func endureProgress(s GameState) float64 {
	turn := clamp(float64(s.TurnNumber)/endureWinTurn*100, 0, 100)
	if s.Metrics.SurvivalProbability <= endureWinMinSurv {
		// Turn count alone cannot complete the endure track.
		return turn * 0.8
	}
	return turn
}

// estimatedTurns guesses how far out rescue is from whichever track is
// closest to completing. Heuristic for display only.
func estimatedTurns(s GameState, st RescueStatus) int {
	best := st.SignalProgress
	if st.NavigateProgress > best {
		best = st.NavigateProgress
	}
	if st.EndureProgress > best {
		best = st.EndureProgress
	}
	if best >= 100 {
		return 0
	}
	remaining := (100 - best) / 8
	turns := int(remaining + 0.5)
	if turns < 1 {
		turns = 1
	}
	return turns
}

// signalWinMet reports whether the signal win condition has matured.
func signalWinMet(s GameState) bool {
	return s.TurnNumber >= signalWinTurn && s.SuccessfulSignals >= signalWinCount
}

// endureWinMet reports whether the endurance win condition has matured.
func endureWinMet(s GameState) bool {
	return s.TurnNumber >= endureWinTurn && s.Metrics.SurvivalProbability > endureWinMinSurv
}
