package webidl_test

import (
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/goccy/go-yaml"

	"github.com/goidl/webidl"
	"github.com/goidl/webidl/internal/parser"
)

// fixtureManifest is the shape of testdata/fixtures.yaml: a list of named
// WebIDL sources, each either expected to parse cleanly (snapshotted as
// its sorted definition names) or expected to fail (snapshotted as its
// error message).
type fixtureManifest struct {
	Fixtures []struct {
		Name      string `yaml:"name"`
		Source    string `yaml:"source"`
		WantError bool   `yaml:"wantError"`
	} `yaml:"fixtures"`
}

func loadFixtures(t *testing.T) fixtureManifest {
	t.Helper()
	raw, err := os.ReadFile("testdata/fixtures.yaml")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var manifest fixtureManifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return manifest
}

func TestFixtureSnapshots(t *testing.T) {
	manifest := loadFixtures(t)
	for _, fx := range manifest.Fixtures {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			defs, err := webidl.Parse(fx.Source)
			if fx.WantError {
				if err == nil {
					t.Fatalf("expected a parse error for %q", fx.Name)
				}
				snaps.MatchSnapshot(t, err.Error())
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			names, err := parser.DumpNames(defs)
			if err != nil {
				t.Fatalf("DumpNames: %v", err)
			}
			snaps.MatchSnapshot(t, strings.Join(names, "\n"))
		})
	}
}
