package engine

import (
	"strings"

	"github.com/strandedsim/stranded-tui/internal/knowledge"
)

// Principle is one educational survival lesson. Keywords drive the
// full-text fallback when a category lookup finds nothing specific.
type Principle struct {
	Text     string
	Category knowledge.Category
	Keywords []string
}

var principleDB = []Principle{
	{
		Text:     "Shelter before anything else: exposure kills faster than hunger or thirst.",
		Category: knowledge.CategoryShelter,
		Keywords: []string{"shelter", "tarp", "windbreak", "camp"},
	},
	{
		Text:     "Insulate from the ground; you lose more heat downward than to the air.",
		Category: knowledge.CategoryShelter,
		Keywords: []string{"bedding", "reeds", "ground", "snow"},
	},
	{
		Text:     "Never drink untreated surface water; the illness it carries costs more fluid than it gives.",
		Category: knowledge.CategoryWater,
		Keywords: []string{"untreated", "drink", "boil", "purify"},
	},
	{
		Text:     "Ration sweat, not water: working through heat wastes what you are trying to save.",
		Category: knowledge.CategoryWater,
		Keywords: []string{"ration", "heat", "hydration", "still"},
	},
	{
		Text:     "Prepare your fire completely before striking: tinder, kindling, fuel, in reach.",
		Category: knowledge.CategoryFire,
		Keywords: []string{"fire", "tinder", "firewood", "matches"},
	},
	{
		Text:     "A fire left untended is a fire lost; feed it little and often.",
		Category: knowledge.CategoryFire,
		Keywords: []string{"maintain", "tend", "coals"},
	},
	{
		Text:     "Signal toward where rescuers look: contrast, movement, and threes.",
		Category: knowledge.CategorySignaling,
		Keywords: []string{"signal", "mirror", "flare", "smoke", "whistle"},
	},
	{
		Text:     "Height multiplies a signal; the ridge is worth the climb if the weather allows it.",
		Category: knowledge.CategorySignaling,
		Keywords: []string{"high", "ground", "lookout", "summit"},
	},
	{
		Text:     "Moving water leads to people; follow it downstream, never up.",
		Category: knowledge.CategoryNavigation,
		Keywords: []string{"river", "downstream", "follow"},
	},
	{
		Text:     "Fix your position before you move; a wrong guess compounds with every step.",
		Category: knowledge.CategoryNavigation,
		Keywords: []string{"triangulate", "compass", "map", "bearing"},
	},
	{
		Text:     "Eat what you know; in a survival margin, a gamble on forage is a gamble on everything.",
		Category: knowledge.CategoryFood,
		Keywords: []string{"forage", "rations", "eat", "fishing", "catch"},
	},
	{
		Text:     "Calories are tools: spend them on work that shortens the ordeal.",
		Category: knowledge.CategoryFood,
		Keywords: []string{"energy", "food", "smoke"},
	},
	{
		Text:     "Treat small injuries while they are small; infection does not negotiate.",
		Category: knowledge.CategoryFirstAid,
		Keywords: []string{"injury", "treat", "wound", "first aid"},
	},
	{
		Text:     "Panic is the real predator; the moment you want to run is the moment to sit down.",
		Category: knowledge.CategoryPsychology,
		Keywords: []string{"panic", "desperate", "fear", "rest"},
	},
	{
		Text:     "Routine is morale: small completed tasks keep despair from setting the agenda.",
		Category: knowledge.CategoryPsychology,
		Keywords: []string{"morale", "routine", "rest", "camp"},
	},
}

const genericPrinciple = "Every survival decision trades energy, time, and risk; spend all three deliberately."

// decisionCategories routes each decision id to the principle category it
// teaches.
var decisionCategories = map[DecisionID]knowledge.Category{
	DecisionShelter:        knowledge.CategoryShelter,
	DecisionFortify:        knowledge.CategoryShelter,
	DecisionBraceStorm:     knowledge.CategoryShelter,
	DecisionBaseCamp:       knowledge.CategoryShelter,
	DecisionCutReeds:       knowledge.CategoryShelter,
	DecisionSnowWall:       knowledge.CategoryShelter,
	DecisionDigShade:       knowledge.CategoryShelter,
	DecisionCarveStakes:    knowledge.CategoryShelter,
	DecisionGatherTinder:   knowledge.CategoryFire,
	DecisionGatherFirewood: knowledge.CategoryFire,
	DecisionStartFire:      knowledge.CategoryFire,
	DecisionMaintainFire:   knowledge.CategoryFire,
	DecisionSignalFire:     knowledge.CategorySignaling,
	DecisionSignalMirror:   knowledge.CategorySignaling,
	DecisionLaunchFlare:    knowledge.CategorySignaling,
	DecisionFindHighGrnd:   knowledge.CategorySignaling,
	DecisionClimbLookout:   knowledge.CategorySignaling,
	DecisionSummitPush:     knowledge.CategorySignaling,
	DecisionCollectWater:   knowledge.CategoryWater,
	DecisionPurifyWater:    knowledge.CategoryWater,
	DecisionDrinkWater:     knowledge.CategoryWater,
	DecisionDrinkUntreated: knowledge.CategoryWater,
	DecisionRationWater:    knowledge.CategoryWater,
	DecisionSolarStill:     knowledge.CategoryWater,
	DecisionFollowRiver:    knowledge.CategoryNavigation,
	DecisionTriangulate:    knowledge.CategoryNavigation,
	DecisionDescendCliff:   knowledge.CategoryNavigation,
	DecisionRaftCrossing:   knowledge.CategoryNavigation,
	DecisionReadWeather:    knowledge.CategoryNavigation,
	DecisionRopeAnchor:     knowledge.CategoryNavigation,
	DecisionScout:          knowledge.CategoryNavigation,
	DecisionEatRations:     knowledge.CategoryFood,
	DecisionSetLine:        knowledge.CategoryFood,
	DecisionDespForage:     knowledge.CategoryFood,
	DecisionSmokeRack:      knowledge.CategoryFood,
	DecisionCombShore:      knowledge.CategoryFood,
	DecisionTreatInjury:    knowledge.CategoryFirstAid,
	DecisionRest:           knowledge.CategoryPsychology,
	DecisionPanicMove:      knowledge.CategoryPsychology,
}

func keywordMatch(p Principle, text string) bool {
	for _, kw := range p.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// LookupPrinciple resolves the lesson attached to a decision: first by the
// decision's category (preferring a keyword match within it), then by keyword
// search across the whole database, and finally a generic fallback.
func LookupPrinciple(d Decision) (string, knowledge.Category) {
	haystack := strings.ToLower(string(d.ID) + " " + d.Text)
	if cat, ok := decisionCategories[d.ID]; ok {
		var first *Principle
		for i := range principleDB {
			p := &principleDB[i]
			if p.Category != cat {
				continue
			}
			if first == nil {
				first = p
			}
			if keywordMatch(*p, haystack) {
				return p.Text, cat
			}
		}
		if first != nil {
			return first.Text, cat
		}
	}
	for _, p := range principleDB {
		if keywordMatch(p, haystack) {
			return p.Text, p.Category
		}
	}
	return genericPrinciple, knowledge.CategoryPsychology
}
