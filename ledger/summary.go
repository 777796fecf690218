package ledger

// TrackSummary is the read-only view of one track for presentation
type TrackSummary struct {
	Track      Track
	Level      int
	MaxLevel   int
	Cost       int
	Owned      bool
	Maxed      bool
	Affordable bool
}

// Summary is the read-only ledger view exposed each frame
type Summary struct {
	Coins           int
	Level           int
	SpeedMultiplier float64
	CoinTarget      int
	Tracks          [TrackCount]TrackSummary
}

// Summary copies the ledger into a presentation view
func (l *Ledger) Summary() Summary {
	sum := Summary{
		Coins:           l.Coins,
		Level:           l.Level,
		SpeedMultiplier: l.SpeedMultiplier(),
		CoinTarget:      l.CoinTarget(),
	}
	for t := Track(0); t < TrackCount; t++ {
		s := &l.tracks[t]
		sum.Tracks[t] = TrackSummary{
			Track:      t,
			Level:      s.Level,
			MaxLevel:   s.MaxLevel,
			Cost:       s.Cost,
			Owned:      s.Owned,
			Maxed:      s.Maxed(t),
			Affordable: l.CanPurchase(t),
		}
	}
	return sum
}
