package engine

func init() {
	register(DecisionSignalMirror, resolveSignalMirror)
	register(DecisionLaunchFlare, resolveLaunchFlare)
	register(DecisionFollowRiver, resolveFollowRiver)
	register(DecisionTriangulate, resolveTriangulate)
	register(DecisionDescendCliff, resolveDescendCliff)
	register(DecisionRaftCrossing, resolveRaftCrossing)
	register(DecisionPanicMove, resolvePanicMove)
	register(DecisionSummitPush, resolveSummitPush)
	register(DecisionReadWeather, resolveReadWeather)
	register(DecisionRopeAnchor, resolveRopeAnchor)
}

func resolveSignalMirror(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	out := DecisionOutcome{WasSignalAttempt: true}
	if roll > signalThreshold(s.Metrics) {
		out.WasSuccessfulSignal = true
		out.ImmediateEffect = "You sweep the mirror flash along the horizon, slow and deliberate."
		out.Consequences = []string{"If anyone is out there, they saw it."}
		out.MetricsChange = MetricsDelta{SignalEffectiveness: 15, Morale: 5, SurvivalProbability: 3}
		return out
	}
	out.ImmediateEffect = "Haze swallows the flash before it carries."
	out.MetricsChange = MetricsDelta{SignalEffectiveness: 5, Morale: -1}
	return out
}

func resolveLaunchFlare(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	out := DecisionOutcome{WasSignalAttempt: true}
	if i := FindKind(s.Equipment, ItemFlare); i >= 0 {
		out.EquipmentChanges = &EquipmentChanges{Removed: []string{s.Equipment[i].Name}}
	}
	if roll > signalThreshold(s.Metrics)-0.1 {
		out.WasSuccessfulSignal = true
		out.ImmediateEffect = "The flare arcs high and burns red against the sky."
		out.Consequences = []string{"Unmissable, for anyone looking this way."}
		out.MetricsChange = MetricsDelta{SignalEffectiveness: 20, Morale: 6, SurvivalProbability: 4}
		return out
	}
	out.ImmediateEffect = "The flare fizzles low over the treeline."
	out.Consequences = []string{"One fewer flare, and nothing to show for it."}
	out.MetricsChange = MetricsDelta{SignalEffectiveness: 6, Morale: -4}
	return out
}

func resolveFollowRiver(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if navigationSucceeds(s, roll) {
		return DecisionOutcome{
			WasNavigationSuccess: true,
			ImmediateEffect:      "The river widens, and around the last bend: a fishing cabin with smoke in the chimney.",
			Consequences:         []string{"You walked yourself out."},
			MetricsChange:        MetricsDelta{Morale: 20, SurvivalProbability: 10},
		}
	}
	if roll > 0.45 {
		return DecisionOutcome{
			ImmediateEffect: "The river leads you through easier country before night forces a stop.",
			Consequences:    []string{"You are closer to somewhere, even if you can't name it."},
			MetricsChange:   MetricsDelta{Morale: 4, Hydration: 4, SignalEffectiveness: 2},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "The bank turns to deadfall and bog, and progress dies with it.",
		MetricsChange:   MetricsDelta{Morale: -4, CumulativeRisk: 2},
	}
}

func resolveTriangulate(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if navigationSucceeds(s, roll) {
		return DecisionOutcome{
			WasNavigationSuccess: true,
			ImmediateEffect:      "Map, compass, and three landmarks agree: the forest road is a day's walk north.",
			Consequences:         []string{"You know exactly where you are."},
			MetricsChange:        MetricsDelta{Morale: 18, SurvivalProbability: 10},
		}
	}
	if roll > 0.4 {
		return DecisionOutcome{
			ImmediateEffect: "Two bearings line up; the third is ambiguous, but you have a working fix.",
			MetricsChange:   MetricsDelta{Morale: 5, CumulativeRisk: -2, SurvivalProbability: 2},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "Nothing on the map matches what you can see.",
		MetricsChange:   MetricsDelta{Morale: -3},
	}
}

func resolveDescendCliff(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if navigationSucceeds(s, roll) {
		return DecisionOutcome{
			WasNavigationSuccess: true,
			ImmediateEffect:      "You rope down pitch by pitch and come out onto a marked trail.",
			Consequences:         []string{"The valley floor, and a way out of it."},
			MetricsChange:        MetricsDelta{Morale: 20, SurvivalProbability: 12},
		}
	}
	if roll > 0.5 {
		return DecisionOutcome{
			ImmediateEffect: "Halfway down, the route blanks out; you climb back up before dark.",
			MetricsChange:   MetricsDelta{Morale: -3, CumulativeRisk: 3},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "The rope saws over an edge and you take a hard swing into the rock.",
		Consequences:    []string{"Bruised ribs, and a climb back up on shaking arms."},
		MetricsChange:   MetricsDelta{InjurySeverity: 18, Morale: -8, CumulativeRisk: 4},
	}
}

func resolveRaftCrossing(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.6 {
		return DecisionOutcome{
			ImmediateEffect: "The raft holds and the current does the work.",
			Consequences:    []string{"The far shore has a trail along it, worn by boots."},
			MetricsChange:   MetricsDelta{Morale: 12, SignalEffectiveness: 8, SurvivalProbability: 6},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "The lashings fail mid-channel and you swim for it.",
		Consequences:    []string{"You make the near bank soaked and shaking."},
		MetricsChange:   MetricsDelta{BodyTemperature: -1.2, Morale: -8, InjurySeverity: 8, CumulativeRisk: 5},
	}
}

func resolvePanicMove(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.75 {
		return DecisionOutcome{
			ImmediateEffect: "Blind luck: the crash through the brush dumps you onto an old logging cut.",
			MetricsChange:   MetricsDelta{Morale: 8, SignalEffectiveness: 4},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "Hours of headlong movement leave you somewhere worse than where you started.",
		Consequences:    []string{"Scratched, spent, and no longer sure which way camp was."},
		MetricsChange:   MetricsDelta{Morale: -8, InjurySeverity: 6, CumulativeRisk: 5, SurvivalProbability: -4},
	}
}

func resolveSummitPush(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.55 {
		return DecisionOutcome{
			ImmediateEffect: "From the summit you can see a ranger tower, sunlight on its windows.",
			Consequences:    []string{"A fixed point to signal toward."},
			MetricsChange:   MetricsDelta{SignalEffectiveness: 18, Morale: 10, SurvivalProbability: 5},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "Weather closes in below the ridge and turns you back.",
		MetricsChange:   MetricsDelta{Morale: -6, BodyTemperature: -0.5, CumulativeRisk: 3},
	}
}

func resolveReadWeather(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.3 {
		return DecisionOutcome{
			ImmediateEffect: "Cloud build and wind shift tell you what the next day holds.",
			Consequences:    []string{"You can plan around it instead of being caught by it."},
			MetricsChange:   MetricsDelta{Morale: 3, CumulativeRisk: -3, SurvivalProbability: 2},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "The sky keeps its own counsel today.",
	}
}

func resolveRopeAnchor(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.25 {
		return DecisionOutcome{
			ImmediateEffect: "A solid anchor around bedrock; the exposed traverse is safe now.",
			MetricsChange:   MetricsDelta{CumulativeRisk: -4, Morale: 3},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "Every placement you test pulls free.",
		MetricsChange:   MetricsDelta{Morale: -2},
	}
}
