package engine

// PlayerMetrics holds the survival gauges. All percentage fields live in
// [0,100] after clamping; body temperature is degrees Celsius.
type PlayerMetrics struct {
	Energy              float64
	Hydration           float64
	Morale              float64
	Shelter             float64
	FireQuality         float64
	SignalEffectiveness float64
	SurvivalProbability float64
	BodyTemperature     float64
	InjurySeverity      float64
	CumulativeRisk      float64
}

// MetricsDelta carries per-turn changes, never absolute values.
type MetricsDelta struct {
	Energy              float64
	Hydration           float64
	Morale              float64
	Shelter             float64
	FireQuality         float64
	SignalEffectiveness float64
	SurvivalProbability float64
	BodyTemperature     float64
	InjurySeverity      float64
	CumulativeRisk      float64
}

// Add sums two deltas field-wise.
func (d MetricsDelta) Add(o MetricsDelta) MetricsDelta {
	return MetricsDelta{
		Energy:              d.Energy + o.Energy,
		Hydration:           d.Hydration + o.Hydration,
		Morale:              d.Morale + o.Morale,
		Shelter:             d.Shelter + o.Shelter,
		FireQuality:         d.FireQuality + o.FireQuality,
		SignalEffectiveness: d.SignalEffectiveness + o.SignalEffectiveness,
		SurvivalProbability: d.SurvivalProbability + o.SurvivalProbability,
		BodyTemperature:     d.BodyTemperature + o.BodyTemperature,
		InjurySeverity:      d.InjurySeverity + o.InjurySeverity,
		CumulativeRisk:      d.CumulativeRisk + o.CumulativeRisk,
	}
}

// IsZero reports whether no field changed.
func (d MetricsDelta) IsZero() bool { return d == MetricsDelta{} }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Apply folds a delta into the metrics and re-clamps every bounded field.
func (m PlayerMetrics) Apply(d MetricsDelta) PlayerMetrics {
	out := PlayerMetrics{
		Energy:              clamp(m.Energy+d.Energy, 0, 100),
		Hydration:           clamp(m.Hydration+d.Hydration, 0, 100),
		Morale:              clamp(m.Morale+d.Morale, 0, 100),
		Shelter:             clamp(m.Shelter+d.Shelter, 0, 100),
		FireQuality:         clamp(m.FireQuality+d.FireQuality, 0, 100),
		SignalEffectiveness: clamp(m.SignalEffectiveness+d.SignalEffectiveness, 0, 100),
		SurvivalProbability: clamp(m.SurvivalProbability+d.SurvivalProbability, 0, 100),
		BodyTemperature:     clamp(m.BodyTemperature+d.BodyTemperature, 28, 42),
		InjurySeverity:      clamp(m.InjurySeverity+d.InjurySeverity, 0, 100),
		CumulativeRisk:      clamp(m.CumulativeRisk+d.CumulativeRisk, 0, 100),
	}
	return out
}

// Fatal reports whether the metrics have crossed a lethal threshold and, if
// so, the cause. Death is a terminal game state, not an error.
func (m PlayerMetrics) Fatal() (bool, string) {
	switch {
	case m.BodyTemperature < 30:
		return true, "severe hypothermia"
	case m.Hydration <= 0:
		return true, "dehydration"
	case m.Energy <= 0:
		return true, "exhaustion"
	case m.InjurySeverity >= 95:
		return true, "untreated injuries"
	}
	return false, ""
}

// Equipment is an owned item. Quantity reaching zero removes the item from
// the list entirely; condition degrades with repeated hard use.
type Equipment struct {
	Name         string
	Kind         ItemKind
	Quantity     int
	Condition    ItemCondition
	VolumeLiters float64
}

// FindKind returns the index of the first item of the given kind with a
// positive quantity, or -1.
func FindKind(list []Equipment, kind ItemKind) int {
	for i, e := range list {
		if e.Kind == kind && e.Quantity > 0 {
			return i
		}
	}
	return -1
}

// HasKind reports whether any usable item of the kind is owned.
func HasKind(list []Equipment, kind ItemKind) bool { return FindKind(list, kind) >= 0 }

// Scenario is the immutable starting situation of a run.
type Scenario struct {
	Environment    Environment
	Weather        Weather
	TimeOfDay      TimeOfDay
	TemperatureC   float64
	WindKPH        float64
	EquipmentPool  []Equipment
	BackpackLiters float64
}

// DecisionID is the stable key selecting a resolution rule.
type DecisionID string

// Decision is a player-selectable action with static cost, risk and time
// attributes. Immutable after generation.
type Decision struct {
	ID                DecisionID
	Text              string
	EnergyCost        float64 // negative = recovery
	RiskLevel         int     // 1-10
	TimeRequired      float64 // hours
	EnvironmentalHint string
}

// DelayedEffect is a metric change scheduled to land on a future turn.
type DelayedEffect struct {
	Turn   int
	Effect string
	Change MetricsDelta
}

// EquipmentChanges records item mutations produced by one outcome.
type EquipmentChanges struct {
	Added   []Equipment
	Removed []string // item names, quantity -1 each; removed entirely at zero
	Updated []Equipment
}

// DecisionLogEntry records a notably good or poor call.
type DecisionLogEntry struct {
	Turn        int
	Description string
	Principle   string
}

// DecisionOutcome is the permanent record of one resolved turn. It is
// created once by the resolver and never mutated afterward.
type DecisionOutcome struct {
	Decision             Decision
	Consequences         []string
	MetricsChange        MetricsDelta
	ImmediateEffect      string
	DelayedEffects       []DelayedEffect
	EquipmentChanges     *EquipmentChanges
	EnvironmentChange    Environment
	Quality              DecisionQuality
	PrincipleAlignment   string
	WasSignalAttempt     bool
	WasSuccessfulSignal  bool
	WasNavigationSuccess bool
}

// RescueStatus is derived on demand from history; never persisted.
type RescueStatus struct {
	RescueProbability      float64
	SignalProgress         float64
	NavigateProgress       float64
	EndureProgress         float64
	EstimatedTurnsToRescue int
}

// GameState is the complete situation after a turn. The controller replaces
// it wholesale every turn; callers must treat it as immutable.
type GameState struct {
	TurnNumber         int
	Status             GameStatus
	Outcome            GameOutcome
	Metrics            PlayerMetrics
	Equipment          []Equipment
	Scenario           Scenario
	CurrentEnvironment Environment
	CurrentTimeOfDay   TimeOfDay
	HoursElapsed       float64
	History            []DecisionOutcome
	SignalAttempts     int
	SuccessfulSignals  int
	AlignmentScore     float64
	Discovered         map[string]struct{}
	GoodDecisions      []DecisionLogEntry
	PoorDecisions      []DecisionLogEntry
	DeathCause         string
	SessionID          string
}

// clone deep-copies the mutable parts so the previous state stays intact.
func (s GameState) clone() GameState {
	out := s
	out.Equipment = append([]Equipment(nil), s.Equipment...)
	out.History = append([]DecisionOutcome(nil), s.History...)
	out.GoodDecisions = append([]DecisionLogEntry(nil), s.GoodDecisions...)
	out.PoorDecisions = append([]DecisionLogEntry(nil), s.PoorDecisions...)
	out.Discovered = make(map[string]struct{}, len(s.Discovered))
	for k := range s.Discovered {
		out.Discovered[k] = struct{}{}
	}
	return out
}

// applyEquipmentChanges folds outcome item mutations into the list,
// decrementing removed items and dropping anything that hits zero. Lookups
// that find nothing skip the dependent effect rather than erroring.
func applyEquipmentChanges(list []Equipment, ch *EquipmentChanges) []Equipment {
	if ch == nil {
		return list
	}
	for _, name := range ch.Removed {
		for i := range list {
			if list[i].Name != name {
				continue
			}
			list[i].Quantity--
			if list[i].Quantity <= 0 {
				list = append(list[:i], list[i+1:]...)
			}
			break
		}
	}
	for _, upd := range ch.Updated {
		for i := range list {
			if list[i].Name == upd.Name || (upd.Kind != "" && list[i].Kind == upd.Kind) {
				prev := list[i]
				list[i] = upd
				if upd.Quantity == 0 {
					list[i].Quantity = prev.Quantity
				}
				break
			}
		}
	}
	for _, add := range ch.Added {
		merged := false
		for i := range list {
			if list[i].Name == add.Name {
				list[i].Quantity += add.Quantity
				merged = true
				break
			}
		}
		if !merged {
			list = append(list, add)
		}
	}
	return list
}

// navigationDecisions are the actions that count as navigation-class
// attempts for the escalating success gate.
var navigationDecisions = map[DecisionID]bool{
	DecisionFollowRiver:  true,
	DecisionTriangulate:  true,
	DecisionDescendCliff: true,
}

// navigationAttempts counts prior navigation-class actions in history.
func navigationAttempts(s GameState) int {
	n := 0
	for _, out := range s.History {
		if navigationDecisions[out.Decision.ID] {
			n++
		}
	}
	return n
}

// completed reports whether history holds a resolved outcome for the id.
func completed(s GameState, id DecisionID) bool {
	for _, out := range s.History {
		if out.Decision.ID == id {
			return true
		}
	}
	return false
}
