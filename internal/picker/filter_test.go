package picker

import (
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/grovetools/pick/internal/project"
)

func projectCandidates(names ...string) []Candidate {
	out := make([]Candidate, len(names))
	for i, n := range names {
		out[i] = Candidate{Kind: KindProject, Project: project.Project{Name: n, Path: "/tmp/" + n}}
	}
	return out
}

func matchLabels(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Candidate.Label()
	}
	return out
}

// isSubsequence is the reference matching rule: query characters appear in
// label in order, case-insensitively, not necessarily contiguous.
func isSubsequence(query, label string) bool {
	query = strings.ToLower(query)
	label = strings.ToLower(label)
	qi := 0
	for li := 0; li < len(label) && qi < len(query); li++ {
		if label[li] == query[qi] {
			qi++
		}
	}
	return qi == len(query)
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	cands := Candidates([]project.Project{{Name: "b"}, {Name: "a"}})

	matches := Filter(cands, "")
	if len(matches) != len(cands) {
		t.Fatalf("len = %d, want %d", len(matches), len(cands))
	}
	for i, m := range matches {
		if m.Candidate.Label() != cands[i].Label() {
			t.Errorf("order changed at %d: got %q, want %q", i, m.Candidate.Label(), cands[i].Label())
		}
		if m.Score != 0 {
			t.Errorf("score at %d = %d, want uniform 0", i, m.Score)
		}
	}
}

func TestFilterExcludesNonSubsequences(t *testing.T) {
	cands := projectCandidates("test1", "test2", "project")

	got := matchLabels(Filter(cands, "tes"))
	want := []string{"test1", "test2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visible = %v, want %v", got, want)
	}

	// The action labels don't contain "tes" as a subsequence either.
	withActions := Candidates([]project.Project{{Name: "test1"}, {Name: "test2"}, {Name: "project"}})
	got = matchLabels(Filter(withActions, "tes"))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visible with actions = %v, want %v", got, want)
	}
}

func TestFilterRanksPrefixAboveSubstringAboveScattered(t *testing.T) {
	cands := projectCandidates("parrot-hub", "my-project", "project")

	got := matchLabels(Filter(cands, "pro"))
	want := []string{"project", "my-project", "parrot-hub"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visible = %v, want %v", got, want)
	}
}

func TestFilterTieBreakKeepsOriginalOrder(t *testing.T) {
	got := matchLabels(Filter(projectCandidates("alpha-two", "alpha-one"), "alpha"))
	want := []string{"alpha-two", "alpha-one"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visible = %v, want %v", got, want)
	}

	// Reversing the input reverses the tie order: stability, not name order.
	got = matchLabels(Filter(projectCandidates("alpha-one", "alpha-two"), "alpha"))
	want = []string{"alpha-one", "alpha-two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visible = %v, want %v", got, want)
	}
}

func TestFilterMatchesActionLabels(t *testing.T) {
	got := matchLabels(Filter(Candidates(nil), "edit"))
	if !reflect.DeepEqual(got, []string{LabelEdit}) {
		t.Errorf("visible = %v, want [%s]", got, LabelEdit)
	}

	got = matchLabels(Filter(Candidates(nil), "new"))
	if !reflect.DeepEqual(got, []string{LabelNewProject, LabelNewDir}) {
		t.Errorf("visible = %v, want the two new-* actions", got)
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	if Score("Test1", "TES") != Score("test1", "tes") {
		t.Errorf("case changed the score: %d vs %d", Score("Test1", "TES"), Score("test1", "tes"))
	}
	if Score("Test1", "TES") == 0 {
		t.Error("uppercase query should match")
	}
}

func TestScoreIncompleteSubsequenceIsZero(t *testing.T) {
	if got := Score("api", "apx"); got != 0 {
		t.Errorf("Score = %d, want 0", got)
	}
}

func TestFilterSubsequenceLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9-]{1,12}`), 0, 8).Draw(t, "names")
		query := rapid.StringMatching(`[a-z0-9]{0,5}`).Draw(t, "query")

		projects := make([]project.Project, len(names))
		for i, n := range names {
			projects[i] = project.Project{Name: n}
		}
		cands := Candidates(projects)
		got := Filter(cands, query)

		// Everything returned matches; everything matching is returned.
		want := map[string]int{}
		for _, c := range cands {
			if isSubsequence(query, c.Label()) {
				want[c.Label()]++
			}
		}
		have := map[string]int{}
		for _, m := range got {
			if !isSubsequence(query, m.Candidate.Label()) {
				t.Fatalf("returned %q, which does not contain %q as a subsequence", m.Candidate.Label(), query)
			}
			have[m.Candidate.Label()]++
		}
		if !reflect.DeepEqual(want, have) {
			t.Fatalf("matched set = %v, want %v (query %q)", have, want, query)
		}
	})
}

func TestFilterDeterminism(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9-]{1,12}`), 0, 8).Draw(t, "names")
		query := rapid.StringMatching(`[a-z0-9]{0,5}`).Draw(t, "query")

		projects := make([]project.Project, len(names))
		for i, n := range names {
			projects[i] = project.Project{Name: n}
		}
		cands := Candidates(projects)

		first := Filter(cands, query)
		second := Filter(cands, query)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("two identical calls disagreed:\n%v\n%v", first, second)
		}
	})
}
