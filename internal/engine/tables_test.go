package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTablesMissingDirUsesDefaults(t *testing.T) {
	tables, err := LoadTables(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing data dir must fall back to defaults: %v", err)
	}
	if len(tables.Pitches) != len(PitchTypes) {
		t.Fatalf("expected %d pitch profiles, got %d", len(PitchTypes), len(tables.Pitches))
	}
	if err := tables.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadTablesAppliesPitchOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := `pitches:
  green:
    outcomes:
      dot: 40
      single: 20
      two: 8
      three: 2
      four: 10
      six: 5
      wicket: 15
    extras_pct: 9
`
	if err := os.WriteFile(filepath.Join(dir, "pitches.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	tables, err := LoadTables(dir)
	if err != nil {
		t.Fatal(err)
	}
	green, err := tables.Pitch(PitchGreen)
	if err != nil {
		t.Fatal(err)
	}
	if green.Outcomes.Dot != 40 || green.ExtrasPct != 9 {
		t.Fatalf("override not applied: %+v", green)
	}
	// Untouched surfaces keep their defaults.
	flat, err := tables.Pitch(PitchFlat)
	if err != nil {
		t.Fatal(err)
	}
	if flat.Outcomes.Dot != 28 {
		t.Fatalf("flat profile should be untouched, got %+v", flat)
	}
}

func TestLoadTablesRejectsInvalidOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := `pitches:
  flat:
    outcomes:
      dot: 90
      single: 20
      two: 8
      three: 2
      four: 10
      six: 5
      wicket: 15
    extras_pct: 5
`
	if err := os.WriteFile(filepath.Join(dir, "pitches.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTables(dir); err == nil {
		t.Fatal("a distribution not summing to 100 must be rejected")
	}
}

func TestLoadTablesRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "dls.yaml"), []byte(":\n\t- nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTables(dir); err == nil {
		t.Fatal("malformed yaml must be an error, not a silent default")
	}
}

func TestPitchUnknownSurface(t *testing.T) {
	tables := DefaultTables()
	if _, err := tables.Pitch(PitchType("sticky")); err == nil {
		t.Fatal("unknown surface must be rejected")
	}
}
