package sim

import "testing"

func TestTierTable_StrictlyIncreasing(t *testing.T) {
	for i := 0; i < TierCount; i++ {
		for j := i + 1; j < TierCount; j++ {
			a, b := TierAt(i), TierAt(j)
			if a.Radius >= b.Radius {
				t.Fatalf("radius not increasing: t%d=%.0f t%d=%.0f", i, a.Radius, j, b.Radius)
			}
			if a.Mass >= b.Mass {
				t.Fatalf("mass not increasing: t%d=%.0f t%d=%.0f", i, a.Mass, j, b.Mass)
			}
			if a.Score >= b.Score {
				t.Fatalf("score not increasing: t%d=%d t%d=%d", i, a.Score, j, b.Score)
			}
		}
	}
}

func TestTierTable_AllPositive(t *testing.T) {
	for i := 0; i < TierCount; i++ {
		tier := TierAt(i)
		if tier.Radius <= 0 || tier.Mass <= 0 || tier.Score <= 0 {
			t.Fatalf("tier %d has non-positive field: %+v", i, tier)
		}
	}
}

func TestTierAt_ClampsOutOfRange(t *testing.T) {
	if TierAt(-3) != TierAt(0) {
		t.Fatal("negative index should clamp to tier 0")
	}
	if TierAt(TierCount+5) != TierAt(TerminalTier) {
		t.Fatal("large index should clamp to the terminal tier")
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(TerminalTier - 1) {
		t.Fatal("tier below terminal reported terminal")
	}
	if !IsTerminal(TerminalTier) {
		t.Fatal("terminal tier not reported terminal")
	}
}
