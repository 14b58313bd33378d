package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/night-shift/internal/game"
	"github.com/Garsondee/night-shift/internal/night"
	"github.com/Garsondee/night-shift/internal/reportstore"
)

type runStats struct {
	runIndex int
	seed     int64
	summary  night.RunSummary

	firstDoorTick      int
	firstCameraTick    int
	firstOfficeTick    int
	firstJumpscareTick int

	affected map[string]struct{}

	windowSummary *night.WindowReport
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var nightSeconds float64
	var dbPath string

	flag.IntVar(&runs, "runs", 5, "number of headless nights")
	flag.IntVar(&ticks, "ticks", 0, "tick cap per night (0 = full night)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&nightSeconds, "night-seconds", 0, "night length in seconds (0 = default)")
	flag.StringVar(&dbPath, "db", "", "sqlite file to archive run summaries in")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks < 0 {
		fmt.Println("error: -ticks must be >= 0")
		return
	}
	if nightSeconds < 0 {
		fmt.Println("error: -night-seconds must be >= 0")
		return
	}

	var store *reportstore.Store
	if dbPath != "" {
		s, err := reportstore.Open(dbPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			_ = s.Close()
		}()
		store = s
	}

	cfg := game.LoadConfigFromEnv()
	opts := night.DefaultOptions()
	if nightSeconds > 0 {
		opts.NightSeconds = nightSeconds
	}

	fmt.Printf("=== Headless Night Report ===\n")
	fmt.Printf("runs=%d ticks=%d night_seconds=%.0f seed_base=%d seed_step=%d\n\n",
		runs, ticks, opts.NightSeconds, seedBase, seedStep)

	ctx := context.Background()
	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runNight(i+1, seed, cfg, opts, ticks)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		all = append(all, stats)
		printRun(stats)
		if store != nil {
			if _, err := store.Save(ctx, stats.summary); err != nil {
				fmt.Printf("error: %v\n", err)
				os.Exit(1)
			}
		}
	}

	printAggregate(all)

	if store != nil {
		totals, err := store.Totals(ctx)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\n--- Archive (%s) ---\n", dbPath)
		fmt.Print(formatTotals(totals))
	}
}

func runNight(runIndex int, seed int64, cfg game.Config, opts night.Options, ticks int) (runStats, error) {
	opts.Seed = seed
	w, err := night.RunNight(cfg, opts, ticks)
	if err != nil {
		return runStats{}, fmt.Errorf("run %d: %w", runIndex, err)
	}
	entries := w.Session().Log.Entries()
	affected := map[string]struct{}{}
	for _, e := range entries {
		if e.Category == night.CatAgent && (e.Key == "enter" || e.Key == "retreat") {
			affected[e.Actor] = struct{}{}
		}
	}
	return runStats{
		runIndex:           runIndex,
		seed:               seed,
		summary:            w.Summary(),
		firstDoorTick:      firstTick(entries, game.CatDoor, "toggle", ""),
		firstCameraTick:    firstTick(entries, game.CatCamera, "enter", ""),
		firstOfficeTick:    firstTick(entries, night.CatAgent, "enter", ""),
		firstJumpscareTick: firstTick(entries, game.CatJumpscare, "trigger", ""),
		affected:           affected,
		windowSummary:      w.Reporter().WindowSummary(),
	}, nil
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains != "" && !strings.Contains(e.Value, contains) {
			continue
		}
		return e.Tick
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("first_tick: door=%d camera=%d office=%d jumpscare=%d\n",
		rs.firstDoorTick, rs.firstCameraTick, rs.firstOfficeTick, rs.firstJumpscareTick)
	fmt.Print(rs.summary.Format())
	fmt.Printf("visitors_reached_office=%s\n", joinSet(rs.affected))
	if rs.windowSummary != nil {
		fmt.Print(rs.windowSummary.Format())
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	summaries := make([]night.RunSummary, len(all))
	doorTicks := make([]int, 0, len(all))
	jumpTicks := make([]int, 0, len(all))
	for i, rs := range all {
		summaries[i] = rs.summary
		if rs.firstDoorTick >= 0 {
			doorTicks = append(doorTicks, rs.firstDoorTick)
		}
		if rs.firstJumpscareTick >= 0 {
			jumpTicks = append(jumpTicks, rs.firstJumpscareTick)
		}
	}
	fmt.Printf("=== Aggregate ===\n")
	fmt.Print(night.FormatAggregate(summaries))
	fmt.Printf("avg_first_door=%s avg_first_jumpscare=%s\n", avgTickString(doorTicks), avgTickString(jumpTicks))
}

func formatTotals(t reportstore.Totals) string {
	if t.Runs == 0 {
		return "archive is empty\n"
	}
	return fmt.Sprintf("archived=%d survived=%d (%.0f%%) blackouts=%d avg_score=%.1f (%s)\n",
		t.Runs, t.Survived, float64(t.Survived)/float64(t.Runs)*100, t.Blackouts,
		t.AvgScore, night.LetterGrade(t.AvgScore))
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}
