package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/Portal-Snake/internal/game"
)

type runStats struct {
	runIndex int
	seed     uint64

	frames    int
	length    int
	foodEaten int
	wraps     int
	turns     int
	cause     game.DeathCause

	firstFoodFrame int
	firstWrapFrame int
	spawns         int
}

func main() {
	var runs int
	var frames int
	var seedBase uint64
	var seedStep uint64

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&frames, "frames", 3000, "frame limit per run")
	flag.Uint64Var(&seedBase, "seed-base", 42, "food RNG seed for run 1")
	flag.Uint64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}

	fmt.Printf("=== Headless Snake Report ===\n")
	fmt.Printf("runs=%d frames=%d seed_base=%d seed_step=%d\n\n", runs, frames, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + uint64(i)*seedStep
		stats := runAutopilot(i+1, seed, frames)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runAutopilot(runIndex int, seed uint64, frames int) runStats {
	sim := game.NewSim(game.WithSeed(seed))
	played := sim.RunDriven(autopilot, frames)

	run := sim.Session.Run()
	entries := sim.Log.Entries()
	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		frames:         played,
		length:         sim.Session.Length(),
		foodEaten:      run.FoodEaten,
		wraps:          run.Wraps,
		turns:          run.Turns,
		cause:          run.Cause,
		firstFoodFrame: firstFrame(entries, game.CatFood, game.KeyEat),
		firstWrapFrame: firstFrame(entries, game.CatMove, game.KeyWrap),
		spawns:         sim.Log.CountCategory(game.CatFood, game.KeySpawn),
	}
}

// autopilot heads for the food by Manhattan distance and refuses any move
// whose landing cell is a wall or the body. Turning costs an extra step in
// the same frame, so a turn is judged two cells out.
func autopilot(v game.View) []game.Event {
	if len(v.Segments) == 0 {
		return nil
	}
	head := v.Segments[0]

	best, bestScore := v.Dir, -1
	for _, d := range []game.Direction{v.Dir, game.Right, game.Left, game.Down, game.Up} {
		steps := 2
		if d == v.Dir {
			steps = 1
		} else if !game.CanTurn(v.Dir, d) {
			continue
		}
		next, ok := landing(v, head, d, steps)
		if !ok {
			continue
		}
		score := 1 << 20
		if v.HasFood {
			score -= manhattan(next, v.Food)
		}
		if d == v.Dir {
			score++ // prefer going straight on ties
		}
		if score > bestScore {
			best, bestScore = d, score
		}
	}
	if best == v.Dir {
		return nil
	}
	return []game.Event{game.KeyDownEvent(directionKey(best))}
}

// landing walks steps cells from head and reports where the head commits,
// or false if that is fatal.
func landing(v game.View, head game.Position, d game.Direction, steps int) (game.Position, bool) {
	p := head
	for i := 0; i < steps; i++ {
		p = p.Add(d, v.Arena.Cell)
	}
	p, out := v.Arena.ResolveWalls(p)
	if out == game.OutcomeWall {
		return p, false
	}
	// The tail vacates one cell per step.
	keep := len(v.Segments) - steps
	for i := 1; i < keep; i++ {
		if v.Segments[i] == p {
			return p, false
		}
	}
	return p, true
}

func directionKey(d game.Direction) game.Key {
	switch d {
	case game.Right:
		return game.KeyRight
	case game.Left:
		return game.KeyLeft
	case game.Down:
		return game.KeyDown
	}
	return game.KeyUp
}

func manhattan(a, b game.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func firstFrame(entries []game.LogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome: frames=%d length=%d ended_by=%s\n", rs.frames, rs.length, outcomeLabel(rs.cause))
	fmt.Printf("event_totals: food_spawned=%d food_eaten=%d wraps=%d turns=%d\n",
		rs.spawns, rs.foodEaten, rs.wraps, rs.turns)
	fmt.Printf("phase_markers: first_food=%d first_wrap=%d\n", rs.firstFoodFrame, rs.firstWrapFrame)
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalFrames := 0
	totalLength := 0
	totalFood := 0
	totalWraps := 0
	maxLength := 0
	foodFrames := make([]int, 0, len(all))
	causes := map[string]int{}

	for _, rs := range all {
		totalFrames += rs.frames
		totalLength += rs.length
		totalFood += rs.foodEaten
		totalWraps += rs.wraps
		if rs.length > maxLength {
			maxLength = rs.length
		}
		if rs.firstFoodFrame >= 0 {
			foodFrames = append(foodFrames, rs.firstFoodFrame)
		}
		causes[outcomeLabel(rs.cause)]++
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_per_run: frames=%.1f length=%.1f food=%.1f wraps=%.1f\n",
		avg(totalFrames, len(all)), avg(totalLength, len(all)), avg(totalFood, len(all)), avg(totalWraps, len(all)))
	fmt.Printf("max_length=%d first_food_avg_frame=%s\n", maxLength, avgFrameString(foodFrames))
	fmt.Printf("ended_by: %s\n", joinCounts(causes))
}

// outcomeLabel names how a run ended; runs still alive at the frame limit
// report "limit".
func outcomeLabel(c game.DeathCause) string {
	if c == game.DeathNone {
		return "limit"
	}
	return c.String()
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(counts))
	for k := range counts {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	parts := make([]string, 0, len(labels))
	for _, k := range labels {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, ",")
}
