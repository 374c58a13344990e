// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ErrUnsupportedOrigin reports a country tag with no backing snapshot.
var ErrUnsupportedOrigin = errors.New("unsupported origin")

// Origin tags for the four programme snapshots.
const (
	OriginUK      = "uk"
	OriginUSA     = "usa"
	OriginGermany = "germany"
	OriginFinland = "finland"
)

// Manifest maps origin tags to programme snapshot files and names the two
// scholarship snapshots. Filenames are relative to DataDir.
type Manifest struct {
	DataDir string `yaml:"-"`

	// Programmes maps an origin tag to its snapshot filename.
	Programmes map[string]string `yaml:"programmes"`

	// Scholarships names the main snapshot and the application-steps snapshot.
	Scholarships struct {
		Main  string `yaml:"main"`
		Steps string `yaml:"steps"`
	} `yaml:"scholarships"`
}

// DefaultManifest returns the standard snapshot layout under dataDir.
func DefaultManifest(dataDir string) Manifest {
	m := Manifest{
		DataDir: dataDir,
		Programmes: map[string]string{
			OriginUK:      "uk_programmes.jsonl",
			OriginUSA:     "usa_programmes.jsonl",
			OriginGermany: "germany_programmes.jsonl",
			OriginFinland: "finland_programmes.jsonl",
		},
	}
	m.Scholarships.Main = "scholarships.jsonl"
	m.Scholarships.Steps = "scholarship_steps.jsonl"
	return m
}

// LoadManifest reads a sources.yaml manifest. A missing file is not an
// error: the default layout is returned so a bare data directory still
// serves. Entries absent from the file keep their defaults.
func LoadManifest(path, dataDir string) (Manifest, error) {
	m := DefaultManifest(dataDir)
	if path == "" {
		return m, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var override Manifest
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	for origin, file := range override.Programmes {
		m.Programmes[origin] = file
	}
	if override.Scholarships.Main != "" {
		m.Scholarships.Main = override.Scholarships.Main
	}
	if override.Scholarships.Steps != "" {
		m.Scholarships.Steps = override.Scholarships.Steps
	}
	return m, nil
}

// ProgrammePath resolves an origin tag to its snapshot path.
// Unknown tags return ErrUnsupportedOrigin; the caller surfaces this as a
// client error, not a server failure.
func (m Manifest) ProgrammePath(origin string) (string, error) {
	file, ok := m.Programmes[origin]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOrigin, origin)
	}
	return filepath.Join(m.DataDir, file), nil
}

// ScholarshipPaths returns the main and steps snapshot paths.
func (m Manifest) ScholarshipPaths() (mainPath, stepsPath string) {
	return filepath.Join(m.DataDir, m.Scholarships.Main),
		filepath.Join(m.DataDir, m.Scholarships.Steps)
}

// Origins returns the supported origin tags in no particular order.
func (m Manifest) Origins() []string {
	tags := make([]string, 0, len(m.Programmes))
	for tag := range m.Programmes {
		tags = append(tags, tag)
	}
	return tags
}
