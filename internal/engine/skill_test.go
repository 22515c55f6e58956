package engine

import (
	"math"
	"testing"
)

func TestSkillFactorClamped(t *testing.T) {
	tests := []struct {
		name    string
		batting int
		bowling int
		mods    Modifiers
		want    float64
	}{
		{name: "even matchup", batting: 70, bowling: 70, want: 1.0},
		{name: "batter ahead", batting: 90, bowling: 40, want: 1.5},
		{name: "bowler ahead", batting: 40, bowling: 80, want: 0.6},
		{name: "clamped low", batting: 0, bowling: 100, want: MinSkillFactor},
		{name: "clamped high", batting: 100, bowling: 0, mods: Modifiers{PressureBonus: 30}, want: MaxSkillFactor},
		{name: "fatigue shifts toward batter", batting: 70, bowling: 70, mods: Modifiers{FatiguePenalty: 10}, want: 1.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SkillFactor(tt.batting, tt.bowling, tt.mods)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("SkillFactor(%d, %d, %+v) = %f, want %f", tt.batting, tt.bowling, tt.mods, got, tt.want)
			}
		})
	}
}

func TestAdjustRenormalizes(t *testing.T) {
	base := defaultPitchProfiles()[PitchGreen].Outcomes
	for batting := 0; batting <= 100; batting += 20 {
		for bowling := 0; bowling <= 100; bowling += 20 {
			adjusted, err := Adjust(base, batting, bowling, Modifiers{})
			if err != nil {
				t.Fatalf("Adjust(%d, %d) error: %v", batting, bowling, err)
			}
			if math.Abs(adjusted.Total()-100) > 1e-6 {
				t.Fatalf("Adjust(%d, %d) total = %f, want 100", batting, bowling, adjusted.Total())
			}
			for i, v := range adjusted.entries() {
				if v < 0 {
					t.Fatalf("Adjust(%d, %d) entry %d negative: %f", batting, bowling, i, v)
				}
			}
		}
	}
}

func TestAdjustShiftsWicketChance(t *testing.T) {
	base := defaultPitchProfiles()[PitchDead].Outcomes

	strong, err := Adjust(base, 90, 40, Modifiers{})
	if err != nil {
		t.Fatal(err)
	}
	weak, err := Adjust(base, 40, 90, Modifiers{})
	if err != nil {
		t.Fatal(err)
	}

	if strong.Wicket >= base.Wicket {
		t.Fatalf("dominant batter should see wicket chance fall: base %f, got %f", base.Wicket, strong.Wicket)
	}
	if weak.Wicket <= base.Wicket {
		t.Fatalf("dominated batter should see wicket chance rise: base %f, got %f", base.Wicket, weak.Wicket)
	}
	if strong.Six <= weak.Six {
		t.Fatalf("dominant batter should hit more sixes: strong %f, weak %f", strong.Six, weak.Six)
	}
}

func TestAdjustIdentityAtEvenRatings(t *testing.T) {
	base := defaultPitchProfiles()[PitchFlat].Outcomes
	adjusted, err := Adjust(base, 60, 60, Modifiers{})
	if err != nil {
		t.Fatal(err)
	}
	entries := base.entries()
	for i, v := range adjusted.entries() {
		if math.Abs(v-entries[i]) > 1e-9 {
			t.Fatalf("factor 1.0 must be the identity: entry %d base %f got %f", i, entries[i], v)
		}
	}
}
