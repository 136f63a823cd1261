package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Garsondee/Sputnik/internal/sim"
)

// A run is considered jammed when the field holds at least jamBodies bodies
// and nothing has merged for jamQuietTicks.
const (
	jamBodies     = 30
	jamQuietTicks = 600
)

type runStats struct {
	runIndex int
	seed     int64
	ticks    int

	launches    int
	merges      [sim.TierCount]int
	firstTierAt [sim.TierCount]int // tick a tier first appeared by merging, -1 if never
	lastMerge   int

	finalScore  int
	finalBodies int
	peakBodies  int
	maxTier     int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var launchEvery int

	flag.IntVar(&runs, "runs", 5, "number of headless games")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per game")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&launchEvery, "launch-every", 45, "ticks between random launches")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if launchEvery <= 0 {
		fmt.Println("error: -launch-every must be > 0")
		return
	}

	fmt.Printf("=== Headless Sputnik Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d launch_every=%d\n\n", runs, ticks, seedBase, seedStep, launchEvery)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runGame(i+1, seed, ticks, launchEvery)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

// runGame plays one game with random slingshot launches. The same seed drives
// both the next-tier draws and the launches, so a run is reproducible.
func runGame(index int, seed int64, ticks, launchEvery int) runStats {
	ts := sim.NewTestSim(sim.WithSeed(seed))
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic test input

	rs := runStats{runIndex: index, seed: seed, ticks: ticks, lastMerge: -1, maxTier: -1}
	for i := range rs.firstTierAt {
		rs.firstTierAt[i] = -1
	}

	ts.Sched.OnLaunch = func(*sim.Body) { rs.launches++ }
	ts.Sched.OnMerge = func(ev sim.MergeEvent) {
		tick := ts.Sched.Snapshot().Tick
		rs.merges[ev.Tier]++
		rs.lastMerge = tick
		if rs.firstTierAt[ev.Tier] < 0 {
			rs.firstTierAt[ev.Tier] = tick
		}
	}

	for tick := 0; tick < ticks; tick++ {
		if tick%launchEvery == 0 {
			ts.Sched.Submit(sim.LaunchIntent{Request: randomLaunch(rng, ts.Tuning)})
		}
		ts.RunTicks(1)
		if n := len(ts.Snapshot().Bodies); n > rs.peakBodies {
			rs.peakBodies = n
		}
	}

	snap := ts.Snapshot()
	rs.finalScore = snap.Score
	rs.finalBodies = len(snap.Bodies)
	rs.maxTier = snap.MaxTier()
	return rs
}

// randomLaunch picks an anchor in the lower band of the field and a pull-back
// that sends the body roughly upward, as a player would.
func randomLaunch(rng *rand.Rand, t sim.Tuning) sim.LaunchRequest {
	anchor := mgl64.Vec2{
		40 + rng.Float64()*(t.Width-80),
		t.Height - 30 - rng.Float64()*50,
	}
	angle := math.Pi/2 + (rng.Float64()-0.5)*math.Pi*0.8 // downward pull, +/-72 degrees
	pull := 40 + rng.Float64()*120
	release := anchor.Add(mgl64.Vec2{math.Cos(angle) * pull, math.Sin(angle) * pull})
	return sim.LaunchRequest{Pos: anchor, Vel: sim.LaunchVelocity(anchor, release, t.PullMultiplier)}
}

// detectJam reports whether a run ended with a crowded field that had stopped
// merging.
func detectJam(rs runStats) (bool, string) {
	quiet := rs.ticks
	if rs.lastMerge >= 0 {
		quiet = rs.ticks - 1 - rs.lastMerge
	}
	reason := fmt.Sprintf("bodies=%d quiet_ticks=%d", rs.finalBodies, quiet)
	if rs.finalBodies < jamBodies {
		return false, "sparse_field " + reason
	}
	if quiet < jamQuietTicks {
		return false, "still_merging " + reason
	}
	return true, "crowded_and_quiet " + reason
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("launches=%d final_bodies=%d peak_bodies=%d max_tier=%s\n",
		rs.launches, rs.finalBodies, rs.peakBodies, tierName(rs.maxTier))
	fmt.Printf("score=%d merges_total=%d merges_by_tier: %s\n", rs.finalScore, sum(rs.merges[:]), formatCounts(rs.merges[:]))
	fmt.Printf("first_tier_ticks: %s\n", formatFirstTicks(rs.firstTierAt[:]))
	jammed, reason := detectJam(rs)
	fmt.Printf("jammed=%v (%s)\n", jammed, reason)
	fmt.Println()
}

func printAggregate(all []runStats) {
	var merges [sim.TierCount]int
	firstTicks := make([][]int, sim.TierCount)
	totalScore := 0
	totalLaunches := 0
	jams := 0
	bestScore := 0
	bestSeed := int64(0)
	reached := make([]int, sim.TierCount)

	for _, rs := range all {
		totalScore += rs.finalScore
		totalLaunches += rs.launches
		for tier := range merges {
			merges[tier] += rs.merges[tier]
			if rs.firstTierAt[tier] >= 0 {
				firstTicks[tier] = append(firstTicks[tier], rs.firstTierAt[tier])
			}
		}
		if rs.maxTier >= 0 {
			reached[rs.maxTier]++
		}
		if jammed, _ := detectJam(rs); jammed {
			jams++
		}
		if rs.finalScore > bestScore {
			bestScore = rs.finalScore
			bestSeed = rs.seed
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d avg_score=%.1f avg_launches=%.1f jammed_runs=%d\n",
		len(all), avg(totalScore, len(all)), avg(totalLaunches, len(all)), jams)
	fmt.Printf("best_score=%d (seed=%d)\n", bestScore, bestSeed)

	fmt.Println("\n--- Per Tier ---")
	for tier := 1; tier < sim.TierCount; tier++ {
		fmt.Printf("  t%d (r=%.0f)  merges/run=%.2f  first_tick_avg=%s  runs_ending_here=%d\n",
			tier, sim.TierAt(tier).Radius, avg(merges[tier], len(all)), avgTickString(firstTicks[tier]), reached[tier])
	}
}

func tierName(tier int) string {
	if tier < 0 {
		return "none"
	}
	return fmt.Sprintf("t%d(r=%.0f)", tier, sim.TierAt(tier).Radius)
}

func formatCounts(counts []int) string {
	parts := make([]string, 0, len(counts))
	for tier, n := range counts {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("t%d=%d", tier, n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

func formatFirstTicks(ticks []int) string {
	parts := make([]string, 0, len(ticks))
	for tier, tick := range ticks {
		if tick >= 0 {
			parts = append(parts, fmt.Sprintf("t%d@%d", tier, tick))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

func sum(vals []int) int {
	total := 0
	for _, v := range vals {
		total += v
	}
	return total
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	total := 0
	for _, v := range vals {
		total += v
	}
	return fmt.Sprintf("%.1f", float64(total)/float64(len(vals)))
}
