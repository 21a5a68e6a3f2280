package engine

func init() {
	register(DecisionCollectWater, resolveCollectWater)
	register(DecisionPurifyWater, resolvePurifyWater)
	register(DecisionDrinkWater, resolveDrinkWater)
	register(DecisionDrinkUntreated, resolveDrinkUntreated)
	register(DecisionEatRations, resolveEatRations)
	register(DecisionSetLine, resolveSetLine)
	register(DecisionDespForage, resolveDesperateForage)
	register(DecisionRationWater, resolveRationWater)
	register(DecisionSolarStill, resolveSolarStill)
	register(DecisionSmokeRack, resolveSmokeRack)
	register(DecisionTreatInjury, resolveTreatInjury)
}

// collectThreshold reflects how hard surface water is to find per
// environment.
func collectThreshold(env Environment) float64 {
	switch env {
	case EnvDesert:
		return 0.7
	case EnvMountains, EnvTundra:
		return 0.45
	default:
		return 0.25
	}
}

func resolveCollectWater(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > collectThreshold(s.CurrentEnvironment) {
		return DecisionOutcome{
			ImmediateEffect: "You fill the pot from a find you'd never drink from untreated.",
			Consequences:    []string{"It needs boiling before it's safe."},
			MetricsChange:   MetricsDelta{Morale: 3},
			EquipmentChanges: &EquipmentChanges{Added: []Equipment{
				{Name: "untreated water", Kind: ItemWaterUntreated, Quantity: 1, Condition: ConditionGood, VolumeLiters: 1},
			}},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "Every promising spot turns out dry or stagnant.",
		MetricsChange:   MetricsDelta{Morale: -3, CumulativeRisk: 1},
	}
}

func resolvePurifyWater(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	out := DecisionOutcome{
		ImmediateEffect: "A hard rolling boil, then you set it aside to cool.",
		Consequences:    []string{"Safe to drink now."},
		MetricsChange:   MetricsDelta{Morale: 3, SurvivalProbability: 2},
	}
	if i := FindKind(s.Equipment, ItemWaterUntreated); i >= 0 {
		out.EquipmentChanges = &EquipmentChanges{
			Removed: []string{s.Equipment[i].Name},
			Added: []Equipment{
				{Name: "clean water", Kind: ItemWaterClean, Quantity: 1, Condition: ConditionGood, VolumeLiters: 1},
			},
		}
	}
	return out
}

func resolveDrinkWater(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	out := DecisionOutcome{
		ImmediateEffect: "You drink slowly and feel your head clear.",
		MetricsChange:   MetricsDelta{Hydration: 25, Morale: 2, Energy: 3},
	}
	if i := FindKind(s.Equipment, ItemWaterClean); i >= 0 {
		out.EquipmentChanges = &EquipmentChanges{Removed: []string{s.Equipment[i].Name}}
	}
	return out
}

func resolveDrinkUntreated(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	out := DecisionOutcome{
		ImmediateEffect: "You drink it anyway. It tastes like mud and risk.",
		MetricsChange:   MetricsDelta{Hydration: 18, Morale: 1},
	}
	if i := FindKind(s.Equipment, ItemWaterUntreated); i >= 0 {
		out.EquipmentChanges = &EquipmentChanges{Removed: []string{s.Equipment[i].Name}}
	}
	if src.Float64() < 0.4 {
		out.Consequences = []string{"Your stomach already feels wrong."}
		out.DelayedEffects = []DelayedEffect{{
			Turn:   s.TurnNumber + 2 + src.Intn(3),
			Effect: "The bad water catches up with you: cramps, fever, and worse.",
			Change: MetricsDelta{Hydration: -25, Energy: -10, Morale: -8, InjurySeverity: 5},
		}}
	}
	return out
}

func resolveEatRations(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	out := DecisionOutcome{
		ImmediateEffect: "Dense, joyless calories. Exactly what you need.",
		MetricsChange:   MetricsDelta{Energy: 15, Morale: 4},
	}
	if i := FindKind(s.Equipment, ItemFood); i >= 0 {
		out.EquipmentChanges = &EquipmentChanges{Removed: []string{s.Equipment[i].Name}}
	}
	return out
}

func resolveSetLine(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.5 {
		return DecisionOutcome{
			ImmediateEffect: "The line goes taut within the hour.",
			MetricsChange:   MetricsDelta{Morale: 5},
			EquipmentChanges: &EquipmentChanges{Added: []Equipment{
				{Name: "fresh catch", Kind: ItemFood, Quantity: 1, Condition: ConditionGood, VolumeLiters: 0.5},
			}},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "The bait goes untouched.",
		MetricsChange:   MetricsDelta{Morale: -1},
	}
}

func resolveDesperateForage(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.55 {
		return DecisionOutcome{
			ImmediateEffect: "Grubs, roots, and a handful of bitter greens. It counts.",
			MetricsChange:   MetricsDelta{Energy: 10, Morale: 2},
		}
	}
	out := DecisionOutcome{
		ImmediateEffect: "Hunger wins over judgement and you eat what you shouldn't.",
		MetricsChange:   MetricsDelta{Energy: 4, Morale: -2},
	}
	if src.Float64() < 0.5 {
		out.DelayedEffects = []DelayedEffect{{
			Turn:   s.TurnNumber + 1 + src.Intn(2),
			Effect: "Whatever you ate fights back hard.",
			Change: MetricsDelta{Energy: -12, InjurySeverity: 10, Morale: -5},
		}}
	}
	return out
}

func resolveRationWater(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	return DecisionOutcome{
		ImmediateEffect: "Small sips on a strict schedule, no matter how it feels.",
		Consequences:    []string{"Discipline now buys you time later."},
		MetricsChange:   MetricsDelta{Morale: -2, SurvivalProbability: 2},
		DelayedEffects: []DelayedEffect{{
			Turn:   s.TurnNumber + 1,
			Effect: "The rationing pays off; you are holding steadier than you should be.",
			Change: MetricsDelta{Hydration: 8, Morale: 3},
		}},
	}
}

func resolveSolarStill(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	if roll > 0.35 {
		return DecisionOutcome{
			ImmediateEffect: "By evening the plastic is beaded with condensate.",
			Consequences:    []string{"Slow, but it produces without costing you sweat."},
			MetricsChange:   MetricsDelta{Hydration: 6, Morale: 5, SurvivalProbability: 3},
			EquipmentChanges: &EquipmentChanges{Added: []Equipment{
				{Name: "clean water", Kind: ItemWaterClean, Quantity: 1, Condition: ConditionGood, VolumeLiters: 0.5},
			}},
		}
	}
	return DecisionOutcome{
		ImmediateEffect: "The still yields barely a mouthful.",
		MetricsChange:   MetricsDelta{Morale: -2},
	}
}

func resolveSmokeRack(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	return DecisionOutcome{
		ImmediateEffect: "A low rack over coals; anything you catch now will keep.",
		MetricsChange:   MetricsDelta{Morale: 5, FireQuality: -5, SurvivalProbability: 3},
		EquipmentChanges: &EquipmentChanges{Added: []Equipment{
			{Name: "smoked provisions", Kind: ItemFood, Quantity: 2, Condition: ConditionGood, VolumeLiters: 1},
		}},
	}
}

func resolveTreatInjury(s GameState, d Decision, roll float64, src Source) DecisionOutcome {
	out := DecisionOutcome{}
	if i := FindKind(s.Equipment, ItemMedical); i >= 0 {
		out.EquipmentChanges = &EquipmentChanges{Removed: []string{s.Equipment[i].Name}}
	}
	if roll > 0.25 {
		out.ImmediateEffect = "Cleaned, dressed, and properly bound."
		out.Consequences = []string{"It hurts less already."}
		out.MetricsChange = MetricsDelta{InjurySeverity: -20, Morale: 5}
		return out
	}
	out.ImmediateEffect = "Your hands shake too much to do it well."
	out.MetricsChange = MetricsDelta{InjurySeverity: -8, Morale: -1}
	return out
}
