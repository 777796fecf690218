package component

import (
	"testing"

	"pgregory.net/rapid"
)

func TestToggleAccessory(t *testing.T) {
	a := NewAppearance()

	if !a.ToggleAccessory(AccessoryHat) {
		t.Fatal("Expected adding hat to change the set")
	}
	a.ToggleAccessory(AccessoryCrown)
	a.ToggleAccessory(AccessoryCape)

	if len(a.Accessories) != 3 {
		t.Fatalf("Expected 3 accessories, got %d", len(a.Accessories))
	}

	// Fourth accessory is rejected at the cap
	if a.ToggleAccessory(AccessorySword) {
		t.Error("Expected fourth accessory to be rejected")
	}
	if a.HasAccessory(AccessorySword) {
		t.Error("Sword should not be worn")
	}

	// Toggling a worn accessory removes it and keeps order of the rest
	if !a.ToggleAccessory(AccessoryCrown) {
		t.Error("Expected removing crown to change the set")
	}
	want := []Accessory{AccessoryHat, AccessoryCape}
	if len(a.Accessories) != len(want) {
		t.Fatalf("Accessories = %v, want %v", a.Accessories, want)
	}
	for i := range want {
		if a.Accessories[i] != want[i] {
			t.Errorf("Accessories[%d] = %v, want %v", i, a.Accessories[i], want[i])
		}
	}

	// None clears unconditionally
	a.ToggleAccessory(AccessoryNone)
	if len(a.Accessories) != 0 {
		t.Errorf("Expected empty set after none, got %v", a.Accessories)
	}
	if a.ToggleAccessory(AccessoryNone) {
		t.Error("Clearing an empty set should report no change")
	}
}

func TestToggleAccessoryInvalid(t *testing.T) {
	a := NewAppearance()
	if a.ToggleAccessory(AccessoryCount) {
		t.Error("Expected out-of-range accessory to be ignored")
	}
}

func TestAccessoryCapProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := NewAppearance()
		ops := rapid.SliceOf(rapid.IntRange(0, int(AccessoryCount)-1)).Draw(t, "ops")

		for _, op := range ops {
			a.ToggleAccessory(Accessory(op))

			if len(a.Accessories) > MaxAccessories {
				t.Fatalf("accessory set grew to %d", len(a.Accessories))
			}
			if Accessory(op) == AccessoryNone && len(a.Accessories) != 0 {
				t.Fatalf("none did not clear the set: %v", a.Accessories)
			}

			seen := make(map[Accessory]bool)
			for _, worn := range a.Accessories {
				if worn == AccessoryNone {
					t.Fatalf("none stored as a worn accessory")
				}
				if seen[worn] {
					t.Fatalf("duplicate accessory %v", worn)
				}
				seen[worn] = true
			}
		}
	})
}

func TestAppearanceClone(t *testing.T) {
	a := NewAppearance()
	a.ToggleAccessory(AccessoryHalo)

	c := a.Clone()
	c.ToggleAccessory(AccessoryWings)

	if a.HasAccessory(AccessoryWings) {
		t.Error("Clone shares accessory storage with original")
	}
}

func TestBodyColorSpecial(t *testing.T) {
	for c := BodyColor(0); c < ColorCount; c++ {
		special := c == ColorRainbow || c == ColorDarkMatter
		if c.IsSpecial() != special {
			t.Errorf("%v.IsSpecial() = %v, want %v", c, c.IsSpecial(), special)
		}
		if !special && c.Hex() == 0 {
			t.Errorf("%v has no palette value", c)
		}
	}
	if DefaultBodyColor.Hex() != 0x4CAF50 {
		t.Errorf("Default color = %06X, want 4CAF50", DefaultBodyColor.Hex())
	}
}

func TestMagnetRadius(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{0, 0},
		{1, 80},
		{2, 150},
	}
	for _, tt := range tests {
		if got := (Magnet{Level: tt.level}).Radius(); got != tt.want {
			t.Errorf("Magnet level %d radius = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestBombStateDisplay(t *testing.T) {
	b := BombState{Owned: true, Cooldown: 45}
	if b.Ready() {
		t.Error("Bomb on cooldown should not be ready")
	}
	if b.Progress() != 0 {
		t.Errorf("Progress at full cooldown = %v, want 0", b.Progress())
	}
	if b.SecondsRemaining() != 45 {
		t.Errorf("SecondsRemaining = %d, want 45", b.SecondsRemaining())
	}

	b.Cooldown = 44.95
	if b.SecondsRemaining() != 45 {
		t.Errorf("SecondsRemaining rounds up: got %d, want 45", b.SecondsRemaining())
	}

	b.Cooldown = 0
	if !b.Ready() || b.Progress() != 1 || b.SecondsRemaining() != 0 {
		t.Errorf("Ready bomb state wrong: ready=%v progress=%v secs=%d", b.Ready(), b.Progress(), b.SecondsRemaining())
	}
}
