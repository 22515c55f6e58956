package engine

import "testing"

func TestDefaultResourceTableValid(t *testing.T) {
	if err := DefaultResourceTable().Validate(); err != nil {
		t.Fatalf("compiled-in resource table invalid: %v", err)
	}
}

func TestResourceTableValidateRejectsBadShapes(t *testing.T) {
	table := DefaultResourceTable()
	table.Rows[2] = table.Rows[2][:5]
	if err := table.Validate(); err == nil {
		t.Fatal("short row must be rejected")
	}

	table = DefaultResourceTable()
	table.OverMarks[1] = table.OverMarks[2]
	if err := table.Validate(); err == nil {
		t.Fatal("non-ascending over marks must be rejected")
	}

	table = DefaultResourceTable()
	table.Rows[3][4] = table.Rows[3][3] + 1 // resources growing with wickets
	if err := table.Validate(); err == nil {
		t.Fatal("resources growing with wickets lost must be rejected")
	}
}

func TestResourceMonotonic(t *testing.T) {
	table := DefaultResourceTable()
	for w := 0; w <= 9; w++ {
		prev := -1.0
		for overs := 0.0; overs <= 20; overs += 0.5 {
			r := table.Resource(overs, w)
			if r < prev {
				t.Fatalf("resource shrank with more overs remaining: overs=%f wickets=%d (%f < %f)", overs, w, r, prev)
			}
			prev = r
		}
	}
	for overs := 0.0; overs <= 20; overs += 2.5 {
		prev := 101.0
		for w := 0; w <= 9; w++ {
			r := table.Resource(overs, w)
			if r > prev {
				t.Fatalf("resource grew with more wickets lost: overs=%f wickets=%d", overs, w)
			}
			prev = r
		}
	}
}

func TestResourceInterpolatesBetweenMarks(t *testing.T) {
	table := DefaultResourceTable()
	lo := table.Resource(10, 0)
	hi := table.Resource(15, 0)
	mid := table.Resource(12.5, 0)
	want := (lo + hi) / 2
	if diff := mid - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("midpoint resource %f, want interpolated %f", mid, want)
	}
	if table.Resource(25, 0) != table.Resource(20, 0) {
		t.Fatal("overs beyond the last mark must clamp to the last row")
	}
	if table.Resource(5, 10) != 0 {
		t.Fatal("all out means zero resources")
	}
}

func TestRevisedTargetStrictlyBelowOriginal(t *testing.T) {
	table := DefaultResourceTable()
	tests := []struct {
		name            string
		target          int
		remainingBefore float64
		remainingAfter  float64
		wickets         int
	}{
		{name: "early chase loses five", target: 181, remainingBefore: 18, remainingAfter: 13, wickets: 1},
		{name: "mid chase loses three", target: 160, remainingBefore: 10, remainingAfter: 7, wickets: 4},
		{name: "tiny target", target: 2, remainingBefore: 19, remainingAfter: 5, wickets: 0},
		{name: "deep chase heavy loss", target: 200, remainingBefore: 15, remainingAfter: 1, wickets: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revised, err := table.RevisedTarget(tt.target, 20, tt.remainingBefore, tt.remainingAfter, tt.wickets)
			if err != nil {
				t.Fatal(err)
			}
			if revised >= tt.target {
				t.Fatalf("revised target %d not strictly below original %d", revised, tt.target)
			}
			if revised < 1 {
				t.Fatalf("revised target %d below the floor of 1", revised)
			}
		})
	}
}

func TestRevisedTargetRejectsGrowingOvers(t *testing.T) {
	table := DefaultResourceTable()
	if _, err := table.RevisedTarget(150, 20, 10, 12, 2); err == nil {
		t.Fatal("overs remaining cannot grow across an interruption")
	}
	if _, err := table.RevisedTarget(0, 20, 10, 8, 2); err == nil {
		t.Fatal("a target below 1 must be rejected")
	}
}
