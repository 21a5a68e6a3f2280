package engine

func init() {
	register(DecisionShelter, resolveShelter)
	register(DecisionFortify, resolveFortify)
	register(DecisionBraceStorm, resolveBraceStorm)
	register(DecisionBaseCamp, resolveBaseCamp)
	register(DecisionCarveStakes, resolveCarveStakes)
	register(DecisionCutReeds, resolveCutReeds)
	register(DecisionSnowWall, resolveSnowWall)
	register(DecisionDigShade, resolveDigShade)
	register(DecisionRest, resolveRest)
	register(DecisionScout, resolveScout)
	register(DecisionClimbLookout, resolveClimbLookout)
	register(DecisionCombShore, resolveCombShore)
	register(DecisionFindHighGrnd, resolveFindHighGround)
}

func resolveShelter(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	switch {
	case roll > 0.45:
		gain := 25.0
		if s.Metrics.Shelter >= 70 {
			gain = 10
		}
		return DecisionOutcome{
			ImmediateEffect: "You raise a solid shelter against the weather.",
			Consequences:    []string{"The framework holds firm when you lean on it."},
			MetricsChange:   MetricsDelta{Shelter: gain, Morale: 5, SurvivalProbability: 3},
		}
	case roll > 0.2:
		return DecisionOutcome{
			ImmediateEffect: "The shelter comes together, though it sags in places.",
			Consequences:    []string{"It will keep most of the weather off."},
			MetricsChange:   MetricsDelta{Shelter: 12, Morale: 2},
		}
	default:
		return DecisionOutcome{
			ImmediateEffect: "The structure collapses twice before you give up on the spot.",
			Consequences:    []string{"Hours lost, and the materials are scattered."},
			MetricsChange:   MetricsDelta{Shelter: 4, Morale: -4, CumulativeRisk: 2},
		}
	}
}

func resolveFortify(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.3 {
		return DecisionOutcome{
			ImmediateEffect: "You brace the shelter with everything at hand.",
			Consequences:    []string{"The walls stop rattling in the gusts."},
			MetricsChange:   MetricsDelta{Shelter: 15, Morale: 3, CumulativeRisk: -2},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "The wind undoes half of what you add.",
		MetricsChange:   MetricsDelta{Shelter: 6, Morale: -2},
	}
}

func resolveBraceStorm(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.35 {
		return DecisionOutcome{
			ImmediateEffect: "You dig in before the worst of it hits.",
			Consequences:    []string{"The storm howls past without finding you."},
			MetricsChange:   MetricsDelta{Shelter: 10, Morale: 4, CumulativeRisk: -4, SurvivalProbability: 3},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "The storm arrives before you are ready.",
		Consequences:    []string{"You spend a soaked, sleepless stretch holding the shelter together."},
		MetricsChange:   MetricsDelta{Shelter: 3, Morale: -5, BodyTemperature: -0.6, CumulativeRisk: 3},
	}
}

func resolveBaseCamp(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	return DecisionOutcome{
		ImmediateEffect: "Shelter, fire pit, and stores come together into a real camp.",
		Consequences: []string{
			"Everything has a place now.",
			"A fixed camp makes you far easier for searchers to find.",
		},
		MetricsChange: MetricsDelta{Shelter: 20, Morale: 8, FireQuality: 5, SignalEffectiveness: 6, SurvivalProbability: 5},
	}
}

func resolveCarveStakes(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	out := DecisionOutcome{
		ImmediateEffect: "You carve a set of stakes and pegs.",
		MetricsChange:   MetricsDelta{Shelter: 8, Morale: 2},
	}
	if roll < 0.15 {
		out.ImmediateEffect = "The blade slips while you carve."
		out.Consequences = []string{"A shallow cut across the palm. It needs watching."}
		out.MetricsChange = MetricsDelta{Shelter: 3, InjurySeverity: 8, Morale: -2}
	}
	return out
}

func resolveCutReeds(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	return DecisionOutcome{
		ImmediateEffect: "Armfuls of reeds make dry bedding and a windbreak layer.",
		MetricsChange:   MetricsDelta{Shelter: 10, Morale: 2},
	}
}

func resolveSnowWall(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.3 {
		return DecisionOutcome{
			ImmediateEffect: "The packed wall cuts the wind to nothing.",
			MetricsChange:   MetricsDelta{Shelter: 14, BodyTemperature: 0.3, Morale: 3},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "The snow is too powdery to hold its shape.",
		MetricsChange:   MetricsDelta{Shelter: 5, BodyTemperature: -0.3, Morale: -2},
	}
}

func resolveDigShade(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	return DecisionOutcome{
		ImmediateEffect: "The trench drops the temperature by what feels like ten degrees.",
		MetricsChange:   MetricsDelta{Shelter: 12, BodyTemperature: -0.4, Morale: 3},
	}
}

func resolveRest(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	out := DecisionOutcome{
		ImmediateEffect: "You let your body stop for a while.",
		MetricsChange:   MetricsDelta{Morale: 4, InjurySeverity: -3},
	}
	if s.Metrics.FireQuality > 30 {
		out.Consequences = []string{"The fire's warmth does half the work."}
		out.MetricsChange.BodyTemperature = 0.4
		out.MetricsChange.Morale += 2
	}
	return out
}

func resolveScout(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	switch {
	case roll > 0.6:
		out := DecisionOutcome{
			ImmediateEffect: "You map the nearby terrain in your head.",
			Consequences:    []string{"A few useful landmarks, and no surprises."},
			MetricsChange:   MetricsDelta{Morale: 4, SignalEffectiveness: 3, CumulativeRisk: -2},
		}
		if src.Child("find").Float64() < 0.35 {
			out.Consequences = append(out.Consequences, "A berry thicket, untouched.")
			out.EquipmentChanges = &EquipmentChanges{Added: []Equipment{{Name: "foraged berries", Kind: ItemFood, Quantity: 1, Condition: ConditionGood, VolumeLiters: 0.5}}}
		}
		return out
	case roll > 0.25:
		return DecisionOutcome{
			ImmediateEffect: "Nothing remarkable in any direction.",
			MetricsChange:   MetricsDelta{Morale: 1},
		}
	default:
		return DecisionOutcome{
			ImmediateEffect: "You turn an ankle on loose ground.",
			MetricsChange:   MetricsDelta{InjurySeverity: 10, Morale: -3, CumulativeRisk: 2},
		}
	}
}

func resolveClimbLookout(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.4 {
		return DecisionOutcome{
			ImmediateEffect: "From the canopy you can see the lay of the whole valley.",
			MetricsChange:   MetricsDelta{SignalEffectiveness: 8, Morale: 4},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "A branch gives way beneath you.",
		Consequences:    []string{"The fall is short but it leaves a deep bruise."},
		MetricsChange:   MetricsDelta{InjurySeverity: 12, Morale: -4},
	}
}

func resolveCombShore(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	out := DecisionOutcome{
		ImmediateEffect: "The tide line is a ribbon of flotsam.",
		MetricsChange:   MetricsDelta{Morale: 2, FireQuality: 6},
	}
	if roll > 0.55 {
		out.Consequences = []string{"A length of netting, still sound."}
		out.EquipmentChanges = &EquipmentChanges{Added: []Equipment{{Name: "salvaged netting", Kind: ItemFishing, Quantity: 1, Condition: ConditionWorn, VolumeLiters: 1}}}
	}
	return out
}

func resolveFindHighGround(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.45 {
		return DecisionOutcome{
			ImmediateEffect: "From the ridge, the country opens up below you.",
			Consequences:    []string{"Anything you signal from here will carry for miles."},
			MetricsChange:   MetricsDelta{SignalEffectiveness: 12, Morale: 4, SurvivalProbability: 2},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "Every route up crumbles into scree.",
		MetricsChange:   MetricsDelta{Morale: -2, CumulativeRisk: 2},
	}
}
