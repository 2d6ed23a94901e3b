package cli

import (
	"testing"

	"devctl/internal/manifest"
	"devctl/internal/testutil"
)

func TestSelectSpecsDefaultsToEverything(t *testing.T) {
	restore := testutil.WithConfigHome(t, t.TempDir())
	defer restore()

	if _, err := manifest.Add("ripgrep"); err != nil {
		t.Fatal(err)
	}
	sel := selectSpecs(nil)
	names := make([]string, 0, len(sel))
	for _, s := range sel {
		names = append(names, s.Name)
	}
	want := []string{"git", "node", "python", "jq", "wget", "ripgrep"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}

func TestSelectSpecsAll(t *testing.T) {
	restore := testutil.WithConfigHome(t, t.TempDir())
	defer restore()

	sel := selectSpecs([]string{"all"})
	if len(sel) != 5 {
		t.Fatalf("all should select the install list, got %v", sel)
	}
}

func TestSelectSpecsKnownNames(t *testing.T) {
	restore := testutil.WithConfigHome(t, t.TempDir())
	defer restore()

	sel := selectSpecs([]string{"python", "docker"})
	if len(sel) != 2 {
		t.Fatalf("sel = %v", sel)
	}
	if sel[0].Binary != "python3" {
		t.Fatalf("python should resolve via the registry, got %+v", sel[0])
	}
	if sel[1].Name != "docker" || sel[1].Package != "" {
		t.Fatalf("docker should resolve to the report-only entry, got %+v", sel[1])
	}
}

func TestSelectSpecsAdHocFormula(t *testing.T) {
	restore := testutil.WithConfigHome(t, t.TempDir())
	defer restore()

	sel := selectSpecs([]string{"ripgrep"})
	if len(sel) != 1 {
		t.Fatalf("sel = %v", sel)
	}
	if sel[0].Package != "ripgrep" || sel[0].Binary != "ripgrep" {
		t.Fatalf("ad-hoc names follow the formula convention, got %+v", sel[0])
	}
}

func TestSelectSpecsDeduplicates(t *testing.T) {
	restore := testutil.WithConfigHome(t, t.TempDir())
	defer restore()

	sel := selectSpecs([]string{"git", "GIT", "git"})
	if len(sel) != 1 {
		t.Fatalf("sel = %v, want a single git entry", sel)
	}
}
