// Command pathbench runs a multi-agent pathfinding benchmark described by a
// TOML file and stores the resulting report.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/pathbench/config"
	"github.com/katalvlaran/pathbench/simulation"
	"github.com/katalvlaran/pathbench/store"
	"github.com/katalvlaran/pathbench/terrain"
)

func main() {
	configPath := flag.String("config", "", "path to a pathbench TOML file (default: built-in settings)")
	algorithmFlag := flag.String("algorithm", "", "algorithm override: Greedy, BFS, A*, JPSW")
	storeFlag := flag.String("store", "", "store backend override: memory, json, sqlite")
	storePathFlag := flag.String("store-path", "", "report directory (json) or database file (sqlite) override")
	iterations := flag.Int("iterations", 0, "iteration count override")
	seed := flag.Int64("seed", 0, "terrain and greedy seed override")
	list := flag.Bool("list", false, "list stored runs and exit")
	quiet := flag.Bool("quiet", false, "suppress progress logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Simulation.Algorithm = firstNonEmpty(*algorithmFlag, cfg.Simulation.Algorithm)
	cfg.Store.Kind = firstNonEmpty(*storeFlag, cfg.Store.Kind, store.KindMemory)
	cfg.Store.Path = firstNonEmpty(*storePathFlag, cfg.Store.Path)
	if *iterations > 0 {
		cfg.Simulation.Iterations = *iterations
	}
	if *seed != 0 {
		cfg.Terrain.Seed = *seed
		cfg.Simulation.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer func() {
		_ = st.Close()
	}()

	if *list {
		if err := printRuns(ctx, os.Stdout, st); err != nil {
			log.Fatalf("list runs: %v", err)
		}
		return
	}

	logger := log.Default()
	if *quiet {
		logger = log.New(io.Discard, "", 0)
	}
	rep, err := run(ctx, cfg, st, logger)
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	printReport(os.Stdout, rep)
}

func run(ctx context.Context, cfg config.Config, st store.Store, logger *log.Logger) (simulation.Report, error) {
	gen, err := terrain.NewGenerator(cfg.Terrain.Width, cfg.Terrain.Height, cfg.Terrain.Seed)
	if err != nil {
		return simulation.Report{}, fmt.Errorf("terrain generator: %w", err)
	}
	simCfg := cfg.SimulatorConfig()
	starts, goals := cfg.Endpoints()

	// Fixed-terrain runs draw their single snapshot up front.
	var grid *terrain.Grid
	if !simCfg.Regenerates() {
		grid, err = gen.Generate(terrain.GenerateRequest{
			Obstacles:   int(simCfg.ObstacleCount),
			Weighted:    int(simCfg.WeightedTileCount),
			WeightRange: max(simCfg.WeightRange, 1),
			Agents:      len(starts),
			Reserved:    append(append([]terrain.Point(nil), starts...), goals...),
		})
		if err != nil {
			return simulation.Report{}, fmt.Errorf("initial terrain: %w", err)
		}
	}

	sim := simulation.New(simCfg, gen,
		simulation.WithLogger(logger),
		simulation.WithSink(store.NewSink(st)),
		simulation.WithOnTransition(func(from, to simulation.State) {
			if to == simulation.Complete || to == simulation.Aborted {
				logger.Printf("state=%s from=%s", to, from)
			}
		}),
	)

	started := time.Now()
	logger.Printf(
		"pathbench started algorithm=%q terrain=%dx%d agents=%d iterations=%d store=%s",
		simCfg.Algorithm, cfg.Terrain.Width, cfg.Terrain.Height, len(starts), simCfg.Iterations, cfg.Store.Kind,
	)
	rep, err := sim.Run(ctx, grid, starts, goals)
	if err != nil {
		return rep, err
	}
	logger.Printf("pathbench finished run=%s elapsed=%s", rep.RunID, time.Since(started).Round(time.Millisecond))
	return rep, nil
}

func openStore(ctx context.Context, sc config.StoreConfig) (store.Store, error) {
	path := sc.Path
	if path != "" {
		var err error
		if path, err = config.ExpandPath(path); err != nil {
			return nil, err
		}
		if strings.EqualFold(sc.Kind, store.KindSQLite) {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("create db directory: %w", err)
			}
		}
	}
	st, err := store.NewStore(sc.Kind, path)
	if err != nil {
		return nil, err
	}
	if err := st.Init(ctx); err != nil {
		return nil, err
	}
	return st, nil
}

func printReport(w io.Writer, rep simulation.Report) {
	fmt.Fprintf(w, "run %s  %s  %d iterations, %d regenerations, %s ticks\n",
		rep.RunID, rep.Algorithm, rep.Iterations, rep.Regenerations, humanize.Comma(int64(rep.Ticks)))
	if c := rep.JumpCache; c.SuccessorHits+c.SuccessorMisses+c.JumpHits+c.JumpMisses > 0 {
		fmt.Fprintf(w, "jump cache: successors %s hit / %s miss, jumps %s hit / %s miss\n",
			humanize.Comma(int64(c.SuccessorHits)), humanize.Comma(int64(c.SuccessorMisses)),
			humanize.Comma(int64(c.JumpHits)), humanize.Comma(int64(c.JumpMisses)))
	}

	ids := make([]int, 0, len(rep.Agents))
	for i := range rep.Agents {
		ids = append(ids, i)
	}
	sort.Ints(ids)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "agent\tavg wcf\tavg time\ttotal memory\ttotal steps\tavg path cost")
	for _, i := range ids {
		d := rep.Agents[i]
		fmt.Fprintf(tw, "%d\t%.4f\t%s\t%s\t%s\t%s\n",
			i,
			d.AvgWCF(),
			d.AvgTime(),
			humanize.Bytes(d.TotalMemory()),
			humanize.Comma(int64(d.TotalSteps())),
			humanize.CommafWithDigits(d.AvgPathCost(), 2),
		)
	}
	_ = tw.Flush()
}

func printRuns(ctx context.Context, w io.Writer, st store.Store) error {
	runs, err := st.ListReports(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "no stored runs")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "run\talgorithm\tagents\titerations\tstarted")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", r.RunID, r.Algorithm, r.Agents, r.Iterations, humanize.Time(r.StartedAt))
	}
	return tw.Flush()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
