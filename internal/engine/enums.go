package engine

// String backed enums for DB interoperability.

type Environment string
type Weather string
type TimeOfDay string
type ItemKind string
type ItemCondition string
type DecisionQuality string
type GameStatus string
type GameOutcome string
type Severity string

const (
	EnvForest    Environment = "forest"
	EnvMountains Environment = "mountains"
	EnvDesert    Environment = "desert"
	EnvCoast     Environment = "coast"
	EnvSwamp     Environment = "swamp"
	EnvTundra    Environment = "tundra"
)

var AllEnvironments = []Environment{EnvForest, EnvMountains, EnvDesert, EnvCoast, EnvSwamp, EnvTundra}

const (
	WeatherClear    Weather = "clear"
	WeatherOvercast Weather = "overcast"
	WeatherRain     Weather = "rain"
	WeatherStorm    Weather = "storm"
	WeatherSnow     Weather = "snow"
	WeatherFog      Weather = "fog"
)

var AllWeather = []Weather{WeatherClear, WeatherOvercast, WeatherRain, WeatherStorm, WeatherSnow, WeatherFog}

const (
	TimeDawn      TimeOfDay = "dawn"
	TimeMorning   TimeOfDay = "morning"
	TimeMidday    TimeOfDay = "midday"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeDusk      TimeOfDay = "dusk"
	TimeNight     TimeOfDay = "night"
)

var AllTimesOfDay = []TimeOfDay{TimeDawn, TimeMorning, TimeMidday, TimeAfternoon, TimeDusk, TimeNight}

// ItemKind is the capability an equipment item grants. Decision eligibility
// and resolution look items up by kind, never by name matching.
const (
	ItemShelter        ItemKind = "shelter"
	ItemFireStarter    ItemKind = "fire_starter"
	ItemSignal         ItemKind = "signal"
	ItemFlare          ItemKind = "flare"
	ItemMedical        ItemKind = "medical"
	ItemFood           ItemKind = "food"
	ItemWaterClean     ItemKind = "water_clean"
	ItemWaterUntreated ItemKind = "water_untreated"
	ItemContainer      ItemKind = "container"
	ItemRope           ItemKind = "rope"
	ItemKnife          ItemKind = "knife"
	ItemNavigation     ItemKind = "navigation"
	ItemFishing        ItemKind = "fishing"
)

var AllItemKinds = []ItemKind{
	ItemShelter, ItemFireStarter, ItemSignal, ItemFlare, ItemMedical, ItemFood,
	ItemWaterClean, ItemWaterUntreated, ItemContainer, ItemRope, ItemKnife,
	ItemNavigation, ItemFishing,
}

const (
	ConditionGood    ItemCondition = "good"
	ConditionWorn    ItemCondition = "worn"
	ConditionDamaged ItemCondition = "damaged"
)

var AllItemConditions = []ItemCondition{ConditionGood, ConditionWorn, ConditionDamaged}

const (
	QualityExcellent     DecisionQuality = "excellent"
	QualityGood          DecisionQuality = "good"
	QualityPoor          DecisionQuality = "poor"
	QualityCriticalError DecisionQuality = "critical_error"
)

var AllQualities = []DecisionQuality{QualityExcellent, QualityGood, QualityPoor, QualityCriticalError}

const (
	StatusActive GameStatus = "active"
	StatusEnded  GameStatus = "ended"
)

const (
	OutcomeSurvived       GameOutcome = "survived"
	OutcomeBarelySurvived GameOutcome = "barely_survived"
	OutcomeDied           GameOutcome = "died"
	OutcomeUndefined      GameOutcome = "undefined"
)

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Generic helpers
func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (e Environment) Validate() bool     { return contains(AllEnvironments, e) }
func (w Weather) Validate() bool         { return contains(AllWeather, w) }
func (t TimeOfDay) Validate() bool       { return contains(AllTimesOfDay, t) }
func (k ItemKind) Validate() bool        { return contains(AllItemKinds, k) }
func (c ItemCondition) Validate() bool   { return contains(AllItemConditions, c) }
func (q DecisionQuality) Validate() bool { return contains(AllQualities, q) }

// harshWeather marks conditions that punish poor shelter and fire craft.
func harshWeather(w Weather) bool { return w == WeatherStorm || w == WeatherSnow }
