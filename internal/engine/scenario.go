package engine

import "github.com/strandedsim/stranded-tui/internal/knowledge"

// environmentCategories maps each environment to the principle categories it
// exercises hardest. The generator weights environments toward the player's
// weak categories so each new ordeal teaches what past ones did not.
var environmentCategories = map[Environment][]knowledge.Category{
	EnvForest:    {knowledge.CategoryShelter, knowledge.CategoryFire, knowledge.CategoryFood},
	EnvMountains: {knowledge.CategoryNavigation, knowledge.CategoryShelter, knowledge.CategorySignaling},
	EnvDesert:    {knowledge.CategoryWater, knowledge.CategoryNavigation},
	EnvCoast:     {knowledge.CategorySignaling, knowledge.CategoryFood, knowledge.CategoryWater},
	EnvSwamp:     {knowledge.CategoryWater, knowledge.CategoryFirstAid, knowledge.CategoryFire},
	EnvTundra:    {knowledge.CategoryFire, knowledge.CategoryShelter, knowledge.CategoryFirstAid},
}

// environmentWeather lists the weather each environment can open with.
var environmentWeather = map[Environment][]Weather{
	EnvForest:    {WeatherClear, WeatherOvercast, WeatherRain, WeatherStorm, WeatherFog},
	EnvMountains: {WeatherClear, WeatherOvercast, WeatherStorm, WeatherSnow, WeatherFog},
	EnvDesert:    {WeatherClear, WeatherClear, WeatherOvercast, WeatherStorm},
	EnvCoast:     {WeatherClear, WeatherOvercast, WeatherRain, WeatherStorm, WeatherFog},
	EnvSwamp:     {WeatherOvercast, WeatherRain, WeatherFog, WeatherStorm, WeatherClear},
	EnvTundra:    {WeatherClear, WeatherOvercast, WeatherSnow, WeatherStorm, WeatherFog},
}

type tempRange struct{ min, max float64 }

var environmentTemps = map[Environment]tempRange{
	EnvForest:    {5, 20},
	EnvMountains: {-10, 10},
	EnvDesert:    {15, 45},
	EnvCoast:     {8, 22},
	EnvSwamp:     {15, 30},
	EnvTundra:    {-25, -5},
}

var environmentBackpack = map[Environment]float64{
	EnvForest:    45,
	EnvMountains: 40,
	EnvDesert:    35,
	EnvCoast:     50,
	EnvSwamp:     40,
	EnvTundra:    55,
}

// EnvironmentWeights computes the selection weight per environment: base 1,
// +2 for every weak category that environment exercises. Pure given its
// input, which keeps scenario bias testable even though selection itself
// draws randomness.
func EnvironmentWeights(weak []knowledge.Category) map[Environment]int {
	weakSet := make(map[knowledge.Category]bool, len(weak))
	for _, c := range weak {
		weakSet[c] = true
	}
	out := make(map[Environment]int, len(AllEnvironments))
	for _, env := range AllEnvironments {
		w := 1
		for _, c := range environmentCategories[env] {
			if weakSet[c] {
				w += 2
			}
		}
		out[env] = w
	}
	return out
}

func pickWeighted(weights map[Environment]int, src Source) Environment {
	total := 0
	for _, env := range AllEnvironments {
		total += weights[env]
	}
	n := src.Intn(total)
	for _, env := range AllEnvironments {
		n -= weights[env]
		if n < 0 {
			return env
		}
	}
	return AllEnvironments[len(AllEnvironments)-1]
}

func pickWeather(env Environment, weak []knowledge.Category, src Source) Weather {
	options := environmentWeather[env]
	craftWeak := false
	for _, c := range weak {
		if c == knowledge.CategoryShelter || c == knowledge.CategoryFire {
			craftWeak = true
			break
		}
	}
	if craftWeak && src.Float64() < 0.6 {
		var harsh []Weather
		for _, w := range options {
			if harshWeather(w) {
				harsh = append(harsh, w)
			}
		}
		if len(harsh) > 0 {
			return harsh[src.Intn(len(harsh))]
		}
	}
	return options[src.Intn(len(options))]
}

func ambientTemperature(env Environment, w Weather, tod TimeOfDay, src Source) float64 {
	r := environmentTemps[env]
	t := r.min + src.Float64()*(r.max-r.min)
	switch w {
	case WeatherSnow:
		t -= 5
	case WeatherStorm:
		t -= 3
	case WeatherRain:
		t -= 2
	case WeatherOvercast, WeatherFog:
		t -= 1
	case WeatherClear:
		t += 2
	}
	switch tod {
	case TimeNight:
		t -= 6
	case TimeDawn, TimeDusk:
		t -= 3
	case TimeMidday:
		t += 4
	}
	return t
}

func ambientWind(env Environment, w Weather, src Source) float64 {
	base := 5 + src.Float64()*15
	if env == EnvMountains || env == EnvCoast || env == EnvTundra {
		base += 10
	}
	if w == WeatherStorm {
		base += 25
	}
	return base
}

// equipmentPool is the full catalog a scenario samples from.
func equipmentPool() []Equipment {
	return []Equipment{
		{Name: "tarp", Kind: ItemShelter, Quantity: 1, Condition: ConditionGood, VolumeLiters: 3},
		{Name: "sleeping bag", Kind: ItemShelter, Quantity: 1, Condition: ConditionGood, VolumeLiters: 8},
		{Name: "flint striker", Kind: ItemFireStarter, Quantity: 1, Condition: ConditionGood, VolumeLiters: 0.2},
		{Name: "waterproof matches", Kind: ItemFireStarter, Quantity: 20, Condition: ConditionGood, VolumeLiters: 0.2},
		{Name: "signal mirror", Kind: ItemSignal, Quantity: 1, Condition: ConditionGood, VolumeLiters: 0.3},
		{Name: "emergency whistle", Kind: ItemSignal, Quantity: 1, Condition: ConditionGood, VolumeLiters: 0.1},
		{Name: "flare", Kind: ItemFlare, Quantity: 2, Condition: ConditionGood, VolumeLiters: 0.5},
		{Name: "first aid kit", Kind: ItemMedical, Quantity: 3, Condition: ConditionGood, VolumeLiters: 2},
		{Name: "emergency rations", Kind: ItemFood, Quantity: 3, Condition: ConditionGood, VolumeLiters: 2},
		{Name: "water bottle", Kind: ItemWaterClean, Quantity: 1, Condition: ConditionGood, VolumeLiters: 1},
		{Name: "metal pot", Kind: ItemContainer, Quantity: 1, Condition: ConditionGood, VolumeLiters: 2},
		{Name: "rope (15m)", Kind: ItemRope, Quantity: 1, Condition: ConditionGood, VolumeLiters: 3},
		{Name: "fixed-blade knife", Kind: ItemKnife, Quantity: 1, Condition: ConditionGood, VolumeLiters: 0.5},
		{Name: "compass", Kind: ItemNavigation, Quantity: 1, Condition: ConditionGood, VolumeLiters: 0.2},
		{Name: "topographic map", Kind: ItemNavigation, Quantity: 1, Condition: ConditionGood, VolumeLiters: 0.3},
		{Name: "fishing line and hooks", Kind: ItemFishing, Quantity: 1, Condition: ConditionGood, VolumeLiters: 0.3},
	}
}

func samplePool(src Source) []Equipment {
	pool := equipmentPool()
	// Fisher-Yates, then take 10-14.
	for i := len(pool) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	n := 10 + src.Intn(5)
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// NewScenario produces the starting situation for a run, biased toward the
// environments that exercise the given weak categories.
func NewScenario(weak []knowledge.Category, src Source) Scenario {
	env := pickWeighted(EnvironmentWeights(weak), src.Child("environment"))
	wsrc := src.Child("weather")
	weather := pickWeather(env, weak, wsrc)
	tod := AllTimesOfDay[src.Child("time").Intn(len(AllTimesOfDay))]
	csrc := src.Child("climate")
	return Scenario{
		Environment:    env,
		Weather:        weather,
		TimeOfDay:      tod,
		TemperatureC:   ambientTemperature(env, weather, tod, csrc),
		WindKPH:        ambientWind(env, weather, csrc),
		EquipmentPool:  samplePool(src.Child("equipment")),
		BackpackLiters: environmentBackpack[env] + float64(src.Child("pack").Intn(11)) - 5,
	}
}
