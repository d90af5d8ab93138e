package tribe

import "testing"

func TestGenerateTribe_SizeAndUniqueNames(t *testing.T) {
	mates := GenerateTribe(DefaultTraitTable(), NewRand(42))
	if len(mates) != TribeSize {
		t.Fatalf("expected %d mates, got %d", TribeSize, len(mates))
	}
	seen := map[string]bool{}
	for _, mate := range mates {
		if seen[mate.Name] {
			t.Fatalf("duplicate mate name %q", mate.Name)
		}
		seen[mate.Name] = true
		if len(mate.Attributes) != 3 || len(mate.Flaws) != 3 {
			t.Fatalf("mate %q has %d attributes / %d flaws, want 3/3",
				mate.Name, len(mate.Attributes), len(mate.Flaws))
		}
		if mate.Vitality < 0 || mate.Vitality > mate.VitalityMax || mate.Standing < 0 {
			t.Fatalf("mate %q violates stat invariants: %+v", mate.Name, mate)
		}
		if mate.IsPlayer {
			t.Fatalf("generated mate %q must not be the player", mate.Name)
		}
	}
}

func TestGenerateTribe_SeededReproducibility(t *testing.T) {
	a := GenerateTribe(DefaultTraitTable(), NewRand(99))
	b := GenerateTribe(DefaultTraitTable(), NewRand(99))
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Standing != b[i].Standing {
			t.Fatalf("same seed produced different tribes at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestNewGame_RoundZero(t *testing.T) {
	preset, err := PresetByName("Evvie")
	if err != nil {
		t.Fatalf("PresetByName error: %v", err)
	}
	state := NewGame("game-1", preset, DefaultTraitTable(), NewRand(1))

	if state.Day != 1 || state.Phase != PhaseCamp {
		t.Fatalf("expected day 1 in camp, got day %d phase %s", state.Day, state.Phase)
	}
	if len(state.Tribe) != TribeSize || len(state.Jury) != 0 {
		t.Fatalf("expected %d mates and empty jury", TribeSize)
	}
	if !state.Player.IsPlayer {
		t.Fatalf("expected exactly one controlled agent")
	}
	for _, mate := range state.Tribe {
		if mate.Name == state.Player.Name {
			t.Fatalf("tribe mate shares the player's name")
		}
	}
}

func TestPresetByName_Unknown(t *testing.T) {
	if _, err := PresetByName("Nobody"); err != ErrUnknownPreset {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}
