package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Tables bundles the read-only configuration the simulation core consumes:
// base pitch profiles and the rain-rule resource table. After LoadTables the
// value is immutable and safe to share across concurrent matches.
type Tables struct {
	Pitches map[PitchType]PitchProfile
	DLS     ResourceTable
}

type pitchFile struct {
	Pitches map[PitchType]PitchProfile `yaml:"pitches"`
}

type dlsFile struct {
	Resources ResourceTable `yaml:"resources"`
}

// LoadTables builds the configuration tables: compiled-in defaults, overridden
// by pitches.yaml / dls.yaml under dataDir when present. Missing files are not
// an error; malformed or invalid ones are.
func LoadTables(dataDir string) (*Tables, error) {
	t := &Tables{
		Pitches: defaultPitchProfiles(),
		DLS:     DefaultResourceTable(),
	}

	var pf pitchFile
	found, err := readYAML(filepath.Join(dataDir, "pitches.yaml"), &pf)
	if err != nil {
		return nil, fmt.Errorf("load pitch table: %w", err)
	}
	if found && len(pf.Pitches) > 0 {
		for pt, profile := range pf.Pitches {
			if err := pt.Validate(); err != nil {
				return nil, fmt.Errorf("load pitch table: %w", err)
			}
			t.Pitches[pt] = profile
		}
	}

	var df dlsFile
	found, err = readYAML(filepath.Join(dataDir, "dls.yaml"), &df)
	if err != nil {
		return nil, fmt.Errorf("load resource table: %w", err)
	}
	if found && len(df.Resources.OverMarks) > 0 {
		t.DLS = df.Resources
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// DefaultTables returns the compiled-in configuration, for tests and for
// callers without a data directory.
func DefaultTables() *Tables {
	return &Tables{Pitches: defaultPitchProfiles(), DLS: DefaultResourceTable()}
}

// Validate checks every pitch profile and the resource table.
func (t *Tables) Validate() error {
	for _, pt := range PitchTypes {
		profile, ok := t.Pitches[pt]
		if !ok {
			return fmt.Errorf("pitch table missing %q", pt)
		}
		if err := profile.Validate(); err != nil {
			return fmt.Errorf("pitch %q: %w", pt, err)
		}
	}
	if err := t.DLS.Validate(); err != nil {
		return err
	}
	return nil
}

// Pitch returns the base profile for a surface.
func (t *Tables) Pitch(pt PitchType) (PitchProfile, error) {
	profile, ok := t.Pitches[pt]
	if !ok {
		return PitchProfile{}, fmt.Errorf("%w: %q", ErrUnknownPitch, pt)
	}
	return profile, nil
}

// readYAML loads path into out. A missing file returns found=false, no error.
func readYAML(path string, out any) (bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return true, nil
}
