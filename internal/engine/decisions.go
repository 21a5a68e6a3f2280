package engine

// Decision ids. Each maps to exactly one resolution rule in the registry.
const (
	// Environment-specific
	DecisionShelter      DecisionID = "shelter"
	DecisionFindHighGrnd DecisionID = "find-high-ground"
	DecisionFollowRiver  DecisionID = "follow-river"
	DecisionClimbLookout DecisionID = "climb-lookout"
	DecisionDigShade     DecisionID = "dig-shade-trench"
	DecisionCombShore    DecisionID = "comb-shoreline"
	DecisionCutReeds     DecisionID = "cut-reeds"
	DecisionSnowWall     DecisionID = "snow-wall"

	// Equipment-enabled
	DecisionSignalMirror DecisionID = "signal-mirror"
	DecisionLaunchFlare  DecisionID = "launch-flare"
	DecisionTreatInjury  DecisionID = "treat-injury"
	DecisionEatRations   DecisionID = "eat-rations"
	DecisionSetLine      DecisionID = "set-fishing-line"
	DecisionRopeAnchor   DecisionID = "rope-anchor"
	DecisionCarveStakes  DecisionID = "carve-stakes"

	// Fire management
	DecisionGatherTinder   DecisionID = "gather-tinder"
	DecisionGatherFirewood DecisionID = "gather-firewood"
	DecisionStartFire      DecisionID = "start-fire"
	DecisionMaintainFire   DecisionID = "maintain-fire"
	DecisionSignalFire     DecisionID = "signal-fire"

	// Water
	DecisionCollectWater   DecisionID = "collect-water"
	DecisionPurifyWater    DecisionID = "purify-water"
	DecisionDrinkWater     DecisionID = "drink-water"
	DecisionDrinkUntreated DecisionID = "drink-untreated-water"

	// Knowledge-unlocked
	DecisionReadWeather DecisionID = "read-weather"
	DecisionTriangulate DecisionID = "triangulate-position"
	DecisionSolarStill  DecisionID = "build-solar-still"

	// Universal
	DecisionScout   DecisionID = "scout"
	DecisionRest    DecisionID = "rest"
	DecisionFortify DecisionID = "fortify"

	// Morale-gated
	DecisionPanicMove   DecisionID = "panic-move"
	DecisionDespForage  DecisionID = "desperate-forage"
	DecisionSummitPush  DecisionID = "bold-summit-push"

	// Scripted one-offs and cascades
	DecisionDescendCliff DecisionID = "descend-cliff-route"
	DecisionRaftCrossing DecisionID = "raft-crossing"
	DecisionBaseCamp     DecisionID = "establish-base-camp"
	DecisionSmokeRack    DecisionID = "build-smoke-rack"

	// Critical moments
	DecisionBraceStorm  DecisionID = "brace-for-storm"
	DecisionRationWater DecisionID = "ration-water"
)

// maxSurfaced caps how many decisions are offered per turn.
const maxSurfaced = 6

// when is the declarative eligibility predicate attached to a catalog entry.
// Zero values leave a gate unset. Comparisons are strict where the field name
// says so.
type when struct {
	turnAbove    int     // TurnNumber > turnAbove
	turnAtLeast  int     // TurnNumber >= turnAtLeast
	turnExactly  int     // TurnNumber == turnExactly
	energyAbove  float64 // Energy > energyAbove
	moraleBelow  float64 // Morale < moraleBelow
	moraleAbove  float64 // Morale > moraleAbove
	alignAtLeast float64 // AlignmentScore >= alignAtLeast
	fireBelow    float64 // FireQuality < fireBelow
	fireAbove    float64 // FireQuality > fireAbove; use firePositive for a zero bound
	firePositive bool    // FireQuality > 0
	envs         []Environment
	weathers     []Weather
	needs        []ItemKind
	oncePerRun   bool
	cond         func(GameState) bool
}

func (w when) met(s GameState) bool {
	m := s.Metrics
	if w.turnAbove > 0 && s.TurnNumber <= w.turnAbove {
		return false
	}
	if w.turnAtLeast > 0 && s.TurnNumber < w.turnAtLeast {
		return false
	}
	if w.turnExactly > 0 && s.TurnNumber != w.turnExactly {
		return false
	}
	if w.energyAbove > 0 && m.Energy <= w.energyAbove {
		return false
	}
	if w.moraleBelow > 0 && m.Morale >= w.moraleBelow {
		return false
	}
	if w.moraleAbove > 0 && m.Morale <= w.moraleAbove {
		return false
	}
	if w.alignAtLeast > 0 && s.AlignmentScore < w.alignAtLeast {
		return false
	}
	if w.fireBelow > 0 && m.FireQuality >= w.fireBelow {
		return false
	}
	if w.fireAbove > 0 && m.FireQuality <= w.fireAbove {
		return false
	}
	if w.firePositive && m.FireQuality <= 0 {
		return false
	}
	if len(w.envs) > 0 && !contains(w.envs, s.CurrentEnvironment) {
		return false
	}
	if len(w.weathers) > 0 && !contains(w.weathers, s.Scenario.Weather) {
		return false
	}
	for _, kind := range w.needs {
		if !HasKind(s.Equipment, kind) {
			return false
		}
	}
	if w.cond != nil && !w.cond(s) {
		return false
	}
	return true
}

type decisionRule struct {
	decision Decision
	when     when
}

// shelterHints flavor the shelter action per environment.
var shelterHints = map[Environment]string{
	EnvForest:    "Deadfall and pine boughs are everywhere here.",
	EnvMountains: "A rock overhang would break the wind.",
	EnvDesert:    "Shade matters more than walls out here.",
	EnvCoast:     "Stay above the tide line.",
	EnvSwamp:     "Dry ground is the scarce thing; build up, not out.",
	EnvTundra:    "Packed snow insulates better than open air.",
}

func environmentRules(s GameState) []decisionRule {
	rules := []decisionRule{
		{
			decision: Decision{
				ID: DecisionShelter, Text: "Build a shelter", EnergyCost: 18,
				RiskLevel: 2, TimeRequired: 2,
				EnvironmentalHint: shelterHints[s.CurrentEnvironment],
			},
			when: when{cond: func(s GameState) bool { return s.Metrics.Shelter < 85 }},
		},
		{
			decision: Decision{ID: DecisionFindHighGrnd, Text: "Climb to high ground", EnergyCost: 22, RiskLevel: 4, TimeRequired: 2},
			when:     when{envs: []Environment{EnvMountains, EnvCoast}},
		},
		{
			decision: Decision{ID: DecisionFollowRiver, Text: "Follow the water downstream", EnergyCost: 25, RiskLevel: 5, TimeRequired: 3},
			when:     when{envs: []Environment{EnvForest, EnvSwamp, EnvMountains}},
		},
		{
			decision: Decision{ID: DecisionClimbLookout, Text: "Climb a tall tree to survey", EnergyCost: 15, RiskLevel: 4, TimeRequired: 1},
			when:     when{envs: []Environment{EnvForest}},
		},
		{
			decision: Decision{ID: DecisionDigShade, Text: "Dig a shade trench", EnergyCost: 20, RiskLevel: 2, TimeRequired: 2},
			when:     when{envs: []Environment{EnvDesert}},
		},
		{
			decision: Decision{ID: DecisionCombShore, Text: "Comb the shoreline for debris", EnergyCost: 12, RiskLevel: 2, TimeRequired: 2},
			when:     when{envs: []Environment{EnvCoast}},
		},
		{
			decision: Decision{ID: DecisionCutReeds, Text: "Cut reeds for bedding and cover", EnergyCost: 14, RiskLevel: 2, TimeRequired: 1.5},
			when:     when{envs: []Environment{EnvSwamp}},
		},
		{
			decision: Decision{ID: DecisionSnowWall, Text: "Pack a snow windbreak", EnergyCost: 20, RiskLevel: 3, TimeRequired: 2},
			when:     when{envs: []Environment{EnvTundra}},
		},
	}
	return rules
}

func equipmentRules() []decisionRule {
	return []decisionRule{
		{
			decision: Decision{ID: DecisionSignalMirror, Text: "Flash the signal mirror at the horizon", EnergyCost: 6, RiskLevel: 1, TimeRequired: 1},
			when: when{needs: []ItemKind{ItemSignal}, weathers: []Weather{WeatherClear, WeatherOvercast},
				cond: func(s GameState) bool { return s.CurrentTimeOfDay != TimeNight }},
		},
		{
			decision: Decision{ID: DecisionLaunchFlare, Text: "Launch a flare", EnergyCost: 4, RiskLevel: 2, TimeRequired: 0.5},
			when:     when{needs: []ItemKind{ItemFlare}, turnAtLeast: 3},
		},
		{
			decision: Decision{ID: DecisionTreatInjury, Text: "Treat your injuries", EnergyCost: 8, RiskLevel: 1, TimeRequired: 1},
			when: when{needs: []ItemKind{ItemMedical},
				cond: func(s GameState) bool { return s.Metrics.InjurySeverity > 10 }},
		},
		{
			decision: Decision{ID: DecisionEatRations, Text: "Eat an emergency ration", EnergyCost: -10, RiskLevel: 1, TimeRequired: 0.5},
			when:     when{needs: []ItemKind{ItemFood}},
		},
		{
			decision: Decision{ID: DecisionSetLine, Text: "Set a fishing line", EnergyCost: 10, RiskLevel: 2, TimeRequired: 1.5},
			when:     when{needs: []ItemKind{ItemFishing}, envs: []Environment{EnvCoast, EnvSwamp, EnvForest}},
		},
		{
			decision: Decision{ID: DecisionRopeAnchor, Text: "Rig a rope anchor for safer climbing", EnergyCost: 12, RiskLevel: 3, TimeRequired: 1},
			when:     when{needs: []ItemKind{ItemRope}, envs: []Environment{EnvMountains}},
		},
		{
			decision: Decision{ID: DecisionCarveStakes, Text: "Carve stakes and tent pegs", EnergyCost: 10, RiskLevel: 2, TimeRequired: 1},
			when:     when{needs: []ItemKind{ItemKnife}, envs: []Environment{EnvForest, EnvSwamp}},
		},
	}
}

func fireRules() []decisionRule {
	return []decisionRule{
		{
			decision: Decision{ID: DecisionGatherTinder, Text: "Gather dry tinder", EnergyCost: 8, RiskLevel: 1, TimeRequired: 1},
			when:     when{fireBelow: 95},
		},
		{
			decision: Decision{ID: DecisionGatherFirewood, Text: "Gather firewood", EnergyCost: 14, RiskLevel: 2, TimeRequired: 1.5},
			when:     when{fireBelow: 95},
		},
		{
			decision: Decision{ID: DecisionStartFire, Text: "Start a fire", EnergyCost: 15, RiskLevel: 2, TimeRequired: 1.5},
			when:     when{fireBelow: 30},
		},
		{
			decision: Decision{ID: DecisionMaintainFire, Text: "Tend the fire", EnergyCost: 8, RiskLevel: 1, TimeRequired: 1},
			when:     when{firePositive: true, fireBelow: 95},
		},
		{
			decision: Decision{ID: DecisionSignalFire, Text: "Build the fire into a signal blaze", EnergyCost: 16, RiskLevel: 3, TimeRequired: 1.5},
			when:     when{fireAbove: 50},
		},
	}
}

func waterRules() []decisionRule {
	return []decisionRule{
		{
			decision: Decision{ID: DecisionCollectWater, Text: "Collect water", EnergyCost: 12, RiskLevel: 2, TimeRequired: 1.5},
			when:     when{needs: []ItemKind{ItemContainer}},
		},
		{
			decision: Decision{ID: DecisionPurifyWater, Text: "Boil the untreated water", EnergyCost: 6, RiskLevel: 1, TimeRequired: 1},
			when:     when{needs: []ItemKind{ItemWaterUntreated, ItemContainer}, fireAbove: 30},
		},
		{
			decision: Decision{ID: DecisionDrinkWater, Text: "Drink clean water", EnergyCost: -2, RiskLevel: 1, TimeRequired: 0.25},
			when:     when{needs: []ItemKind{ItemWaterClean}},
		},
		{
			decision: Decision{ID: DecisionDrinkUntreated, Text: "Drink the untreated water", EnergyCost: -2, RiskLevel: 6, TimeRequired: 0.25},
			when:     when{needs: []ItemKind{ItemWaterUntreated}},
		},
	}
}

func expertRules() []decisionRule {
	return []decisionRule{
		{
			decision: Decision{ID: DecisionReadWeather, Text: "Read the sky for incoming weather", EnergyCost: 4, RiskLevel: 1, TimeRequired: 0.5},
			when:     when{alignAtLeast: 60},
		},
		{
			decision: Decision{ID: DecisionTriangulate, Text: "Triangulate your position", EnergyCost: 10, RiskLevel: 2, TimeRequired: 1.5},
			when:     when{alignAtLeast: 70, needs: []ItemKind{ItemNavigation}},
		},
		{
			decision: Decision{ID: DecisionSolarStill, Text: "Build a solar still", EnergyCost: 18, RiskLevel: 2, TimeRequired: 2.5},
			when:     when{alignAtLeast: 80, envs: []Environment{EnvDesert, EnvCoast}},
		},
	}
}

func universalRules() []decisionRule {
	return []decisionRule{
		{
			decision: Decision{ID: DecisionScout, Text: "Scout the surroundings", EnergyCost: 12, RiskLevel: 3, TimeRequired: 1.5},
		},
		{
			decision: Decision{ID: DecisionRest, Text: "Rest and recover", EnergyCost: -18, RiskLevel: 1, TimeRequired: 2},
		},
		{
			decision: Decision{ID: DecisionFortify, Text: "Fortify camp against the weather", EnergyCost: 16, RiskLevel: 2, TimeRequired: 1.5},
			when: when{weathers: []Weather{WeatherStorm, WeatherSnow},
				cond: func(s GameState) bool { return s.Metrics.Shelter > 0 }},
		},
	}
}

func moraleRules() []decisionRule {
	return []decisionRule{
		{
			decision: Decision{ID: DecisionPanicMove, Text: "Push hard in a random direction", EnergyCost: 30, RiskLevel: 8, TimeRequired: 3},
			when:     when{turnAbove: 5, moraleBelow: 40, energyAbove: 45},
		},
		{
			decision: Decision{ID: DecisionDespForage, Text: "Eat whatever you can find", EnergyCost: 10, RiskLevel: 7, TimeRequired: 1},
			when:     when{moraleBelow: 35},
		},
		{
			decision: Decision{ID: DecisionSummitPush, Text: "Make a bold push for the summit vantage", EnergyCost: 28, RiskLevel: 7, TimeRequired: 3},
			when:     when{moraleAbove: 75, energyAbove: 55, envs: []Environment{EnvMountains, EnvForest, EnvTundra}},
		},
	}
}

func scriptedRules() []decisionRule {
	return []decisionRule{
		{
			decision: Decision{ID: DecisionDescendCliff, Text: "Rope down the cliff toward the valley", EnergyCost: 26, RiskLevel: 8, TimeRequired: 3},
			when:     when{envs: []Environment{EnvMountains}, turnAtLeast: 6, needs: []ItemKind{ItemRope}, oncePerRun: true},
		},
		{
			decision: Decision{ID: DecisionRaftCrossing, Text: "Lash a raft and cross the channel", EnergyCost: 30, RiskLevel: 9, TimeRequired: 4},
			when:     when{envs: []Environment{EnvCoast, EnvSwamp}, turnAtLeast: 8, needs: []ItemKind{ItemKnife, ItemRope}, oncePerRun: true},
		},
	}
}

func cascadeRules() []decisionRule {
	return []decisionRule{
		{
			decision: Decision{ID: DecisionBaseCamp, Text: "Establish a proper base camp", EnergyCost: 20, RiskLevel: 2, TimeRequired: 2.5},
			when: when{fireAbove: 40, oncePerRun: true,
				cond: func(s GameState) bool { return completed(s, DecisionShelter) }},
		},
		{
			decision: Decision{ID: DecisionSmokeRack, Text: "Build a smoke rack to preserve food", EnergyCost: 14, RiskLevel: 2, TimeRequired: 2},
			when: when{fireAbove: 50, oncePerRun: true,
				cond: func(s GameState) bool { return completed(s, DecisionBaseCamp) }},
		},
	}
}

func criticalRules() []decisionRule {
	return []decisionRule{
		{
			decision: Decision{ID: DecisionBraceStorm, Text: "Drop everything and brace for the storm", EnergyCost: 18, RiskLevel: 5, TimeRequired: 2},
			when:     when{turnExactly: 4, weathers: []Weather{WeatherStorm, WeatherSnow}},
		},
		{
			decision: Decision{ID: DecisionRationWater, Text: "Impose strict water rationing", EnergyCost: 2, RiskLevel: 3, TimeRequired: 0.5},
			when: when{turnExactly: 7,
				cond: func(s GameState) bool { return s.Metrics.Hydration < 35 }},
		},
	}
}

// GenerateDecisions produces the ordered list of currently legal actions,
// composed group by group and truncated to at most six. No action with an
// unmet predicate is ever surfaced.
func GenerateDecisions(s GameState) []Decision {
	if s.Status != StatusActive {
		return nil
	}
	groups := [][]decisionRule{
		// Critical-moment injections lead so truncation can never hide them.
		criticalRules(),
		environmentRules(s),
		equipmentRules(),
		fireRules(),
		waterRules(),
		expertRules(),
		universalRules(),
		moraleRules(),
		scriptedRules(),
		cascadeRules(),
	}
	var out []Decision
	for _, group := range groups {
		for _, rule := range group {
			if rule.when.oncePerRun && completed(s, rule.decision.ID) {
				continue
			}
			if !rule.when.met(s) {
				continue
			}
			out = append(out, rule.decision)
			if len(out) == maxSurfaced {
				return out
			}
		}
	}
	return out
}
