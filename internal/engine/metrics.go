package engine

// EnvironmentalEffects computes the passive drift a turn applies on top of
// whatever the chosen action produced: body temperature pulled toward
// ambient (moderated by shelter and fire), hydration and energy decay, fire
// burn-down, and risk accretion. Deterministic given its inputs; the
// controller sums this with the action delta before clamping.
func EnvironmentalEffects(m PlayerMetrics, sc Scenario, turn int) MetricsDelta {
	var d MetricsDelta

	// Shelter and fire together absorb most of the exposure.
	protection := m.Shelter*0.006 + m.FireQuality*0.004
	if protection > 0.9 {
		protection = 0.9
	}

	ambient := sc.TemperatureC
	switch {
	case ambient < 15:
		drop := (15 - ambient) * 0.05 * (1 - protection)
		if drop > 1.5 {
			drop = 1.5
		}
		d.BodyTemperature = -drop
	case ambient > 32:
		d.BodyTemperature = (ambient - 32) * 0.03
		d.Hydration -= 3
	}

	d.Hydration -= 4
	d.Energy -= 3
	if sc.Environment == EnvDesert {
		d.Hydration -= 1.5
	}
	if ambient < 0 {
		d.Energy -= 1.5
	}

	if harshWeather(sc.Weather) {
		d.Morale -= 2
		d.CumulativeRisk += 1.3
		d.FireQuality -= 6
	}
	if sc.TimeOfDay == TimeNight {
		d.Morale -= 1
	}
	if sc.Weather == WeatherRain {
		d.FireQuality -= 4
	}

	// Fire burns down on its own every turn.
	d.FireQuality -= 5
	d.CumulativeRisk += 1.2

	// The ordeal wears harder the longer it runs.
	if turn > 10 {
		d.Energy -= 0.5
		d.Morale -= 0.5
	}
	return d
}
