package ranges

import "testing"

func TestPercentileTableCoversAllHands(t *testing.T) {
	if len(handPercentiles) != 169 {
		t.Fatalf("table has %d entries, want 169", len(handPercentiles))
	}
	for _, label := range Labels() {
		if _, ok := Percentile(label); !ok {
			t.Errorf("no percentile for %q", label)
		}
	}
}

func TestPercentileOrdering(t *testing.T) {
	best, _ := Percentile("AA")
	worst, _ := Percentile("72o")
	if best != 1.0 {
		t.Errorf("Percentile(AA) = %v, want 1.0", best)
	}
	if worst != 0.0 {
		t.Errorf("Percentile(72o) = %v, want 0.0", worst)
	}
}

func TestTopPercent(t *testing.T) {
	full := TopPercent(100)
	if got := full.Stats().TotalCombos; got != 1326 {
		t.Errorf("TopPercent(100) combos = %v, want 1326", got)
	}
	onlyBest := TopPercent(0)
	if got := onlyBest.Stats().TotalCombos; got != 6 { // AA alone
		t.Errorf("TopPercent(0) combos = %v, want 6", got)
	}
	if onlyBest.Get("AA") != 1 {
		t.Error("TopPercent(0) should contain AA")
	}
}

func TestTopPercentMonotone(t *testing.T) {
	prev := 0.0
	for _, pct := range []float64{5, 10, 20, 40, 80, 100} {
		got := TopPercent(pct).Stats().TotalCombos
		if got < prev {
			t.Fatalf("TopPercent(%v) combos %v < previous %v", pct, got, prev)
		}
		prev = got
	}
}

func TestTopPercentIsNested(t *testing.T) {
	tight := TopPercent(10)
	loose := TopPercent(30)
	for _, label := range Labels() {
		if tight.Get(label) == 1 && loose.Get(label) != 1 {
			t.Errorf("%q in top 10%% but not top 30%%", label)
		}
	}
}

func TestTopPercentClamps(t *testing.T) {
	if got := TopPercent(150).Stats().TotalCombos; got != 1326 {
		t.Errorf("TopPercent(150) combos = %v, want 1326", got)
	}
	if got := TopPercent(-5).Stats().TotalCombos; got != 6 {
		t.Errorf("TopPercent(-5) combos = %v, want 6", got)
	}
}
