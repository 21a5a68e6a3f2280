package engine

func init() {
	register(DecisionGatherTinder, resolveGatherTinder)
	register(DecisionGatherFirewood, resolveGatherFirewood)
	register(DecisionStartFire, resolveStartFire)
	register(DecisionMaintainFire, resolveMaintainFire)
	register(DecisionSignalFire, resolveSignalFire)
}

func resolveGatherTinder(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	wet := s.Scenario.Weather == WeatherRain || s.Scenario.Weather == WeatherStorm
	if wet && roll < 0.5 {
		return DecisionOutcome{
			ImmediateEffect: "Everything you pick up is soaked through.",
			Consequences:    []string{"A pocketful of damp bark shavings, barely worth carrying."},
			MetricsChange:   MetricsDelta{FireQuality: 2, Morale: -2},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "You fill a pocket with dry bark, grass, and resin shavings.",
		MetricsChange:   MetricsDelta{FireQuality: 6, Morale: 1},
	}
}

func resolveGatherFirewood(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.3 {
		return DecisionOutcome{
			ImmediateEffect: "A good stack of deadfall, enough for the night.",
			MetricsChange:   MetricsDelta{FireQuality: 10, Morale: 2},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "Slim pickings; most of the wood here is rotten.",
		MetricsChange:   MetricsDelta{FireQuality: 4},
	}
}

func resolveStartFire(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	threshold := 0.55
	usedMatches := false
	if HasKind(s.Equipment, ItemFireStarter) {
		threshold = 0.25
		if i := FindKind(s.Equipment, ItemFireStarter); i >= 0 && s.Equipment[i].Quantity > 1 {
			// Multi-use consumables (matches) burn one per attempt.
			usedMatches = true
		}
	}
	if s.Scenario.Weather == WeatherRain || s.Scenario.Weather == WeatherStorm {
		threshold += 0.15
	}
	out := DecisionOutcome{}
	if usedMatches {
		if i := FindKind(s.Equipment, ItemFireStarter); i >= 0 {
			out.EquipmentChanges = &EquipmentChanges{Removed: []string{s.Equipment[i].Name}}
		}
	}
	if roll > threshold {
		out.ImmediateEffect = "The flame catches and climbs into a steady fire."
		out.Consequences = []string{"Warmth, light, and something that feels like the upper hand."}
		out.MetricsChange = MetricsDelta{FireQuality: 35, Morale: 8, BodyTemperature: 0.5, SurvivalProbability: 4}
		return out
	}
	out.ImmediateEffect = "Sparks, smoke, and nothing that holds."
	out.Consequences = []string{"The tinder is spent and the cold is still here."}
	out.MetricsChange = MetricsDelta{FireQuality: 3, Morale: -5}
	return out
}

func resolveMaintainFire(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.2 {
		return DecisionOutcome{
			ImmediateEffect: "You feed and bank the fire properly.",
			MetricsChange:   MetricsDelta{FireQuality: 20, BodyTemperature: 0.3, Morale: 2},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "You smother it with green wood and have to nurse it back.",
		MetricsChange:   MetricsDelta{FireQuality: 5, Morale: -2},
	}
}

func resolveSignalFire(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	out := DecisionOutcome{WasSignalAttempt: true}
	if roll > signalThreshold(s.Metrics) {
		out.WasSuccessfulSignal = true
		out.ImmediateEffect = "A thick column of smoke stands straight up over the trees."
		out.Consequences = []string{"Anyone within miles will see that."}
		out.MetricsChange = MetricsDelta{SignalEffectiveness: 12, FireQuality: -10, Morale: 6, SurvivalProbability: 4}
		return out
	}
	out.ImmediateEffect = "The smoke shreds sideways in the wind."
	out.Consequences = []string{"You burn through fuel with little to show for it."}
	out.MetricsChange = MetricsDelta{SignalEffectiveness: 4, FireQuality: -14, Morale: -3}
	return out
}
