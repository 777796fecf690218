package ledger

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestNewLedgerDefaults(t *testing.T) {
	l := New()

	if l.Coins != 0 || l.Level != 1 {
		t.Errorf("New ledger coins=%d level=%d, want 0 and 1", l.Coins, l.Level)
	}
	if got := l.SpeedMultiplier(); got != 1 {
		t.Errorf("SpeedMultiplier() = %v, want 1", got)
	}
	if got := l.CoinTarget(); got != 10 {
		t.Errorf("CoinTarget() = %d, want 10", got)
	}
	if l.MagnetLevel() != 0 || l.BombOwned() {
		t.Error("Expected no magnet and no bomb at start")
	}

	costs := map[Track]int{
		TrackSpeed:      10,
		TrackMagnet:     120,
		TrackMoreCoins:  50,
		TrackBomb:       400,
		TrackRainbow:    200,
		TrackDarkMatter: 300,
	}
	for track, want := range costs {
		if got := l.Track(track).Cost; got != want {
			t.Errorf("%v cost = %d, want %d", track, got, want)
		}
	}
}

func TestSpeedPurchaseEscalation(t *testing.T) {
	l := New()
	l.Coins = 10_000

	wantCosts := []int{18, 32, 57, 102}
	for i, want := range wantCosts {
		p := l.TryPurchase(TrackSpeed)
		if !p.Accepted {
			t.Fatalf("Purchase %d rejected", i+1)
		}
		if got := l.Track(TrackSpeed).Cost; got != want {
			t.Errorf("After %d purchases cost = %d, want %d", i+1, got, want)
		}
	}

	if got := l.Track(TrackSpeed).Level; got != 5 {
		t.Errorf("Speed level = %d, want 5", got)
	}
	if got := l.SpeedMultiplier(); got != 3 {
		t.Errorf("SpeedMultiplier at level 5 = %v, want 3", got)
	}

	// Max level reached, further purchase rejected without charge
	before := l.Coins
	if p := l.TryPurchase(TrackSpeed); p.Accepted {
		t.Error("Expected purchase at max level to be rejected")
	}
	if l.Coins != before {
		t.Errorf("Rejected purchase changed coins: %d -> %d", before, l.Coins)
	}
}

func TestCostEscalationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 4).Draw(t, "purchases")

		l := New()
		l.Coins = 1_000_000

		want := 10
		for i := 0; i < n; i++ {
			if !l.TryPurchase(TrackSpeed).Accepted {
				t.Fatalf("purchase %d rejected", i)
			}
			want = int(math.Floor(float64(want) * 1.8))
		}
		if got := l.Track(TrackSpeed).Cost; got != want {
			t.Fatalf("cost after %d purchases = %d, want %d", n, got, want)
		}
	})
}

func TestMagnetPurchase(t *testing.T) {
	l := New()
	l.Coins = 1000

	if p := l.TryPurchase(TrackMagnet); !p.Accepted || p.Cost != 120 || p.Level != 1 {
		t.Fatalf("First magnet purchase = %+v", p)
	}
	if got := l.Track(TrackMagnet).Cost; got != 240 {
		t.Errorf("Magnet cost after first purchase = %d, want 240", got)
	}
	if !l.TryPurchase(TrackMagnet).Accepted {
		t.Fatal("Second magnet purchase rejected")
	}
	if l.MagnetLevel() != 2 {
		t.Errorf("MagnetLevel() = %d, want 2", l.MagnetLevel())
	}
	if l.TryPurchase(TrackMagnet).Accepted {
		t.Error("Third magnet purchase should exceed max level")
	}
	if got := l.Coins; got != 1000-120-240 {
		t.Errorf("Coins = %d, want %d", got, 1000-120-240)
	}
}

func TestMoreCoinsPurchaseGrowsTarget(t *testing.T) {
	l := New()
	l.Coins = 50

	p := l.TryPurchase(TrackMoreCoins)
	if !p.Accepted {
		t.Fatal("moreCoins purchase rejected")
	}
	if p.GrowCoins != 5 {
		t.Errorf("GrowCoins = %d, want 5", p.GrowCoins)
	}
	if got := l.CoinTarget(); got != 15 {
		t.Errorf("CoinTarget() = %d, want 15", got)
	}
	if got := l.Track(TrackMoreCoins).Cost; got != 75 {
		t.Errorf("moreCoins cost = %d, want 75", got)
	}
}

func TestOneTimePurchases(t *testing.T) {
	tests := []struct {
		track Track
		cost  int
	}{
		{TrackBomb, 400},
		{TrackRainbow, 200},
		{TrackDarkMatter, 300},
	}

	for _, tt := range tests {
		t.Run(tt.track.String(), func(t *testing.T) {
			l := New()
			l.Coins = tt.cost - 1
			if l.TryPurchase(tt.track).Accepted {
				t.Fatal("Expected rejection one coin short")
			}

			l.Coins = tt.cost * 2
			p := l.TryPurchase(tt.track)
			if !p.Accepted || p.Cost != tt.cost {
				t.Fatalf("Purchase = %+v, want accepted at %d", p, tt.cost)
			}
			if !l.Owned(tt.track) {
				t.Error("Expected track to be owned")
			}

			// Second purchase is rejected even when affordable
			if l.TryPurchase(tt.track).Accepted {
				t.Error("Expected one-time track to reject a second purchase")
			}
			if l.Coins != tt.cost {
				t.Errorf("Coins = %d, want %d", l.Coins, tt.cost)
			}
		})
	}
}

func TestRejectionLeavesLedgerUnchanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := New()
		l.Coins = rapid.IntRange(0, 500).Draw(t, "coins")

		// Put the ledger in an arbitrary reachable state
		for _, tr := range rapid.SliceOfN(rapid.IntRange(0, int(TrackCount)-1), 0, 8).Draw(t, "setup") {
			l.TryPurchase(Track(tr))
		}

		// Either an unknown track, a maxed track, or a balance one coin short at most
		track := Track(rapid.IntRange(0, int(TrackCount)).Draw(t, "track"))
		if track < TrackCount {
			s := l.Track(track)
			if !s.Maxed(track) {
				l.Coins = rapid.IntRange(0, s.Cost-1).Draw(t, "short")
			}
		}

		before := *l
		p := l.TryPurchase(track)
		if p.Accepted {
			t.Fatalf("purchase accepted although CanPurchase was false")
		}
		if *l != before {
			t.Fatalf("rejected purchase changed ledger: %+v -> %+v", before, *l)
		}
	})
}

func TestSummary(t *testing.T) {
	l := New()
	l.Coins = 15

	sum := l.Summary()
	if sum.Coins != 15 || sum.Level != 1 || sum.CoinTarget != 10 {
		t.Errorf("Summary = %+v", sum)
	}
	if !sum.Tracks[TrackSpeed].Affordable {
		t.Error("Speed should be affordable at 15 coins")
	}
	if sum.Tracks[TrackMagnet].Affordable {
		t.Error("Magnet should not be affordable at 15 coins")
	}
	if sum.Tracks[TrackMagnet].MaxLevel != 2 {
		t.Errorf("Magnet MaxLevel = %d, want 2", sum.Tracks[TrackMagnet].MaxLevel)
	}
}
