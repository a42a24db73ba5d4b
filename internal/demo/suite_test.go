package demo

import (
	"testing"

	"propcheck/pkg/models"
	"propcheck/pkg/runner"
)

func demoRunner(trials int) *runner.Runner {
	cfg := runner.DefaultConfig()
	cfg.Trials = trials
	cfg.Seed = 1234
	return runner.New(cfg)
}

func TestSuiteNames(t *testing.T) {
	names := SuiteNames()
	if len(names) != 2 || names[0] != "badsort" || names[1] != "sort" {
		t.Errorf("SuiteNames() = %v, want [badsort sort]", names)
	}
	for _, name := range names {
		if _, ok := Suites()[name]; !ok {
			t.Errorf("suite %q is named but not bundled", name)
		}
	}
}

func TestSortSuitePasses(t *testing.T) {
	result := demoRunner(50).RunSuite("sort", SortSuite{})

	if result.Failed() {
		t.Fatalf("sort suite failed: %v", result.Failures())
	}
	if len(result.Properties) != 3 {
		t.Errorf("ran %d properties, want 3", len(result.Properties))
	}
}

func TestBadSortSuiteFalsifiesOnlyTheUnguardedProperty(t *testing.T) {
	result := demoRunner(50).RunSuite("badsort", BadSortSuite{})

	failures := result.Failures()
	if len(failures) != 1 || failures[0] != "PropKeepsLength" {
		t.Fatalf("Failures() = %v, want [PropKeepsLength]", failures)
	}

	var keepsLength models.RunResult
	for _, p := range result.Properties {
		if p.Name == "PropKeepsLength" {
			keepsLength = p.Result
		}
	}
	if keepsLength.Status != models.StatusFalsified {
		t.Fatalf("PropKeepsLength status = %s", keepsLength.Status)
	}

	shrunk := keepsLength.Shrunk.MustGet("xs")
	if len(shrunk.Elems) != 2 || !shrunk.Elems[0].Equal(shrunk.Elems[1]) {
		t.Errorf("shrunk to %s, want a two-element list of equal values", shrunk)
	}
}

func TestUniqueGeneratorPropertyNeverDiscards(t *testing.T) {
	result := demoRunner(50).RunSuite("badsort", BadSortSuite{})

	for _, p := range result.Properties {
		switch p.Name {
		case "PropKeepsLengthUniqueInput":
			if p.Result.Status != models.StatusPassed {
				t.Errorf("%s status = %s", p.Name, p.Result.Status)
			}
		case "PropKeepsLengthUniqueGenerator":
			if p.Result.Status != models.StatusPassed {
				t.Errorf("%s status = %s", p.Name, p.Result.Status)
			}
			if p.Result.Discards != 0 {
				t.Errorf("%s discarded %d trials, want 0", p.Name, p.Result.Discards)
			}
		}
	}
}

func TestDedupSortDropsDuplicates(t *testing.T) {
	got := dedupSort([]int64{3, 1, 3, 2, 1})
	want := []int64{1, 2, 3}
	if !intsEqual(got, want) {
		t.Errorf("dedupSort() = %v, want %v", got, want)
	}
}

func TestDedupTermKeepsFirstOccurrences(t *testing.T) {
	term := models.NewList(
		models.NewInt(3), models.NewInt(1), models.NewInt(3), models.NewInt(1),
	)
	got := dedupTerm(term)

	want := models.NewList(models.NewInt(3), models.NewInt(1))
	if !got.Equal(want) {
		t.Errorf("dedupTerm(%s) = %s, want %s", term, got, want)
	}

	// Non-list terms pass through untouched
	atom := models.NewAtom("ok")
	if dedupTerm(atom) != atom {
		t.Error("dedupTerm changed a non-list term")
	}
}
