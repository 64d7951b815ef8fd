package seed

import "testing"

func TestCoaches_AreValidAndUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for _, c := range Coaches() {
		if err := c.Validate(); err != nil {
			t.Errorf("seed coach %s invalid: %v", c.ID, err)
		}
		if _, ok := seen[c.ID]; ok {
			t.Errorf("duplicate seed id %s", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	if len(seen) == 0 {
		t.Fatal("empty catalogue")
	}
}

func TestCoaches_ReturnsFreshCopy(t *testing.T) {
	first := Coaches()
	first[0].Expertise[0] = "mutated"
	if Coaches()[0].Expertise[0] == "mutated" {
		t.Error("catalogue shared between calls")
	}
}
