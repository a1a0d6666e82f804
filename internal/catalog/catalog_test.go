package catalog

import (
	"reflect"
	"testing"

	"github.com/outline-tools/outline-critic/internal/models"
)

func TestCriteriaForScope_Deterministic(t *testing.T) {
	for _, scope := range Scopes() {
		first := CriteriaForScope(scope)
		second := CriteriaForScope(scope)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("CriteriaForScope(%s) not deterministic: %v vs %v", scope, first, second)
		}
	}
}

func TestCriteriaForScope_UnknownScopeIsEmpty(t *testing.T) {
	if got := CriteriaForScope(models.Scope("paragraph_pairs")); len(got) != 0 {
		t.Errorf("expected no criteria for unknown scope, got %v", got)
	}
}

func TestAllCriteria_TwelveDistinct(t *testing.T) {
	all := AllCriteria()
	if len(all) != 12 {
		t.Fatalf("expected 12 criteria, got %d: %v", len(all), all)
	}

	seen := make(map[models.Criterion]models.Scope)
	for _, scope := range Scopes() {
		for _, criterion := range CriteriaForScope(scope) {
			if prev, ok := seen[criterion]; ok {
				t.Errorf("criterion %s bound to both %s and %s", criterion, prev, scope)
			}
			seen[criterion] = scope
		}
	}
	if len(seen) != 12 {
		t.Errorf("expected 12 distinct criteria across scopes, got %d", len(seen))
	}
}

func TestCriteriaForScope_Bindings(t *testing.T) {
	tests := []struct {
		scope models.Scope
		want  int
	}{
		{models.ScopeDocumentWide, 1},
		{models.ScopeAllSummaries, 3},
		{models.ScopeSummaryPairs, 3},
		{models.ScopeSummaryWithMessages, 1},
		{models.ScopeMessagesUnderSummary, 3},
		{models.ScopeMessageWithBodies, 1},
	}

	for _, tc := range tests {
		if got := CriteriaForScope(tc.scope); len(got) != tc.want {
			t.Errorf("scope %s: expected %d criteria, got %d", tc.scope, tc.want, len(got))
		}
	}
}
