package engine

import "github.com/strandedsim/stranded-tui/internal/knowledge"

// travelDecisions are actions that move the player across terrain, which is
// what makes them dangerous at night or in a storm.
var travelDecisions = map[DecisionID]bool{
	DecisionFollowRiver:  true,
	DecisionPanicMove:    true,
	DecisionSummitPush:   true,
	DecisionDescendCliff: true,
	DecisionRaftCrossing: true,
	DecisionFindHighGrnd: true,
}

// Evaluate classifies the quality of a resolved decision and attaches the
// principle it teaches. Purely informational; it never alters metrics. The
// state passed in is the one the decision was made FROM.
func Evaluate(d Decision, s GameState, out DecisionOutcome) (DecisionQuality, string, knowledge.Category) {
	principle, cat := LookupPrinciple(d)
	switch {
	case d.ID == DecisionDrinkUntreated:
		return QualityCriticalError, principle, cat
	case d.ID == DecisionShelter && s.TurnNumber <= 3:
		return QualityExcellent, principle, cat
	case d.RiskLevel >= 7 && (s.Metrics.Energy < 50 || s.Metrics.InjurySeverity > 30):
		return QualityPoor, principle, cat
	case travelDecisions[d.ID] && (s.CurrentTimeOfDay == TimeNight || s.Scenario.Weather == WeatherStorm):
		return QualityPoor, principle, cat
	case d.ID == DecisionStartFire && s.TurnNumber <= 4:
		return QualityExcellent, principle, cat
	case d.ID == DecisionTreatInjury && s.Metrics.InjurySeverity > 40:
		return QualityExcellent, principle, cat
	case d.ID == DecisionBraceStorm || d.ID == DecisionRationWater:
		return QualityExcellent, principle, cat
	}
	return QualityGood, principle, cat
}

// Severity derives the notification class for an outcome. Pure function of
// the outcome; the host renders it however it likes.
func SeverityFor(out DecisionOutcome) Severity {
	switch {
	case out.Quality == QualityCriticalError:
		return SeverityDanger
	case out.Quality == QualityPoor || out.Decision.RiskLevel >= 7:
		return SeverityWarning
	case out.Quality == QualityExcellent || out.WasSuccessfulSignal || out.WasNavigationSuccess:
		return SeveritySuccess
	}
	return SeverityInfo
}
