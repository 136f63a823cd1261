package sim

// Tier is a discrete body class. Radius, mass and score strictly increase with
// the tier index.
type Tier struct {
	Radius float64
	Mass   float64
	Score  int
}

const (
	// TierCount is the number of tiers in the table.
	TierCount = 10
	// TerminalTier is the largest tier; two terminal bodies never merge.
	TerminalTier = TierCount - 1
	// SpawnableTiers is how many of the smallest tiers the launcher hands out.
	SpawnableTiers = 4
)

var tierTable = [TierCount]Tier{
	{Radius: 12, Mass: 10, Score: 2},
	{Radius: 18, Mass: 20, Score: 4},
	{Radius: 24, Mass: 35, Score: 8},
	{Radius: 32, Mass: 50, Score: 16},
	{Radius: 40, Mass: 80, Score: 32},
	{Radius: 50, Mass: 120, Score: 64},
	{Radius: 60, Mass: 180, Score: 128},
	{Radius: 72, Mass: 250, Score: 256},
	{Radius: 85, Mass: 350, Score: 512},
	{Radius: 100, Mass: 500, Score: 1024},
}

// TierAt returns the tier at index i. Out-of-range indices clamp to the table.
func TierAt(i int) Tier {
	return tierTable[clampTier(i)]
}

// IsTerminal reports whether tier index i is the terminal tier.
func IsTerminal(i int) bool {
	return i >= TerminalTier
}

func clampTier(i int) int {
	if i < 0 {
		return 0
	}
	if i > TerminalTier {
		return TerminalTier
	}
	return i
}
