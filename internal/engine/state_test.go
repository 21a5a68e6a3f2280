package engine

import "testing"

func TestApplyClampsAllBoundedFields(t *testing.T) {
	m := PlayerMetrics{
		Energy: 95, Hydration: 5, Morale: 50, Shelter: 90,
		FireQuality: 10, SignalEffectiveness: 50, SurvivalProbability: 50,
		BodyTemperature: 37, InjurySeverity: 90, CumulativeRisk: 95,
	}
	out := m.Apply(MetricsDelta{
		Energy: 50, Hydration: -40, Shelter: 30, FireQuality: -60,
		BodyTemperature: 20, InjurySeverity: 40, CumulativeRisk: 40,
	})
	if out.Energy != 100 {
		t.Fatalf("energy not clamped to 100: %v", out.Energy)
	}
	if out.Hydration != 0 {
		t.Fatalf("hydration not clamped to 0: %v", out.Hydration)
	}
	if out.Shelter != 100 {
		t.Fatalf("shelter not clamped to 100: %v", out.Shelter)
	}
	if out.FireQuality != 0 {
		t.Fatalf("fire not clamped to 0: %v", out.FireQuality)
	}
	if out.BodyTemperature != 42 {
		t.Fatalf("body temperature not clamped to 42: %v", out.BodyTemperature)
	}
	if out.InjurySeverity != 100 || out.CumulativeRisk != 100 {
		t.Fatalf("injury/risk not clamped: %v %v", out.InjurySeverity, out.CumulativeRisk)
	}
}

func TestFatalThresholds(t *testing.T) {
	cases := []struct {
		m     PlayerMetrics
		fatal bool
	}{
		{PlayerMetrics{BodyTemperature: 29.5, Hydration: 50, Energy: 50}, true},
		{PlayerMetrics{BodyTemperature: 37, Hydration: 0, Energy: 50}, true},
		{PlayerMetrics{BodyTemperature: 37, Hydration: 50, Energy: 0}, true},
		{PlayerMetrics{BodyTemperature: 37, Hydration: 50, Energy: 50, InjurySeverity: 95}, true},
		{PlayerMetrics{BodyTemperature: 37, Hydration: 50, Energy: 50, InjurySeverity: 40}, false},
	}
	for i, c := range cases {
		got, cause := c.m.Fatal()
		if got != c.fatal {
			t.Fatalf("case %d: fatal=%v want %v (cause %q)", i, got, c.fatal, cause)
		}
		if got && cause == "" {
			t.Fatalf("case %d: fatal without a cause", i)
		}
	}
}

func TestEquipmentRemovedAtZero(t *testing.T) {
	list := []Equipment{
		{Name: "flare", Kind: ItemFlare, Quantity: 1},
		{Name: "emergency rations", Kind: ItemFood, Quantity: 3},
	}
	out := applyEquipmentChanges(list, &EquipmentChanges{Removed: []string{"flare", "emergency rations"}})
	if len(out) != 1 {
		t.Fatalf("expected flare removed entirely, got %v", out)
	}
	if out[0].Name != "emergency rations" || out[0].Quantity != 2 {
		t.Fatalf("rations not decremented: %+v", out[0])
	}
	for _, e := range out {
		if e.Quantity <= 0 {
			t.Fatalf("item left at non-positive quantity: %+v", e)
		}
	}
}

func TestEquipmentAddMergesByName(t *testing.T) {
	list := []Equipment{{Name: "clean water", Kind: ItemWaterClean, Quantity: 1}}
	out := applyEquipmentChanges(list, &EquipmentChanges{
		Added: []Equipment{
			{Name: "clean water", Kind: ItemWaterClean, Quantity: 1},
			{Name: "fresh catch", Kind: ItemFood, Quantity: 1},
		},
	})
	if len(out) != 2 {
		t.Fatalf("expected 2 items, got %d", len(out))
	}
	if out[0].Quantity != 2 {
		t.Fatalf("duplicate add should merge quantities: %+v", out[0])
	}
}

func TestEquipmentRemoveMissingIsNoop(t *testing.T) {
	list := []Equipment{{Name: "tarp", Kind: ItemShelter, Quantity: 1}}
	out := applyEquipmentChanges(list, &EquipmentChanges{Removed: []string{"water bottle"}})
	if len(out) != 1 || out[0].Name != "tarp" {
		t.Fatalf("removing an absent item must not change the list: %v", out)
	}
}

func TestFindKindSkipsExhausted(t *testing.T) {
	list := []Equipment{
		{Name: "spent flare", Kind: ItemFlare, Quantity: 0},
		{Name: "flare", Kind: ItemFlare, Quantity: 2},
	}
	if i := FindKind(list, ItemFlare); i != 1 {
		t.Fatalf("expected index 1, got %d", i)
	}
	if HasKind(list, ItemMedical) {
		t.Fatal("HasKind reported a kind that is not owned")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := GameState{
		Equipment:  []Equipment{{Name: "tarp", Kind: ItemShelter, Quantity: 1}},
		Discovered: map[string]struct{}{"a": {}},
	}
	n := s.clone()
	n.Equipment[0].Quantity = 9
	n.Discovered["b"] = struct{}{}
	if s.Equipment[0].Quantity != 1 {
		t.Fatal("clone shares equipment backing array")
	}
	if _, ok := s.Discovered["b"]; ok {
		t.Fatal("clone shares discovered set")
	}
}

func TestNavigationAttemptsCountsHistory(t *testing.T) {
	s := GameState{History: []DecisionOutcome{
		{Decision: Decision{ID: DecisionFollowRiver}},
		{Decision: Decision{ID: DecisionRest}},
		{Decision: Decision{ID: DecisionTriangulate}},
	}}
	if n := navigationAttempts(s); n != 2 {
		t.Fatalf("expected 2 navigation attempts, got %d", n)
	}
}
