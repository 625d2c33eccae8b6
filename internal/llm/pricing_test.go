package llm

import (
	"testing"
)

func TestLookupCostCoversResolveTargets(t *testing.T) {
	// Every model a provider can resolve a friendly name to must stay
	// priced, so the default configurations never show up as "?" in the
	// cost table.
	for _, models := range []map[string]string{anthropicModels, openaiModels, geminiModels} {
		for friendly, id := range models {
			if LookupCost(id) == nil {
				t.Errorf("no pricing for %q (resolved from %q)", id, friendly)
			}
		}
	}
}

func TestLookupCostUnknownModel(t *testing.T) {
	if LookupCost("some-future-model") != nil {
		t.Error("expected nil for unknown model")
	}
}

func TestModelCostArithmetic(t *testing.T) {
	c := ModelCost{InputPerMTok: 2, OutputPerMTok: 10}
	got := c.Cost(500_000, 100_000)
	if got != 2.0 {
		t.Errorf("cost = %v, want 2.0", got)
	}
}
