package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/diamondstats/gameday/internal/app"
	"github.com/diamondstats/gameday/internal/config"
	"github.com/diamondstats/gameday/internal/infrastructure/repository/postgres"
	"github.com/diamondstats/gameday/internal/observability"
	"github.com/diamondstats/gameday/internal/platform/logging"
	"github.com/diamondstats/gameday/internal/usecase"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		startArg = flag.String("start", "", "first day to import, inclusive (YYYY-MM-DD)")
		endArg   = flag.String("end", "", "day to stop at, exclusive (YYYY-MM-DD)")
		modeArg  = flag.String("mode", "", "reconciliation mode: replace or merge (default from IMPORT_MODE)")
		parallel = flag.Bool("parallel", false, "dispatch games concurrently (queue when configured, worker pool otherwise)")
		workers  = flag.Int("workers", 0, "worker pool size for -parallel (default from IMPORT_MAX_WORKERS)")
		discover = flag.Bool("discover", false, "only list discovered games, import nothing")
		profile  = flag.Bool("profile", false, "expose pprof endpoints while the import runs")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 2
	}
	if *modeArg != "" {
		cfg.ImportMode = *modeArg
	}
	if *workers > 0 {
		cfg.ImportMaxWorkers = *workers
	}
	if *profile {
		cfg.PprofEnabled = true
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	start, err := time.Parse("2006-01-02", *startArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -start %q: expected YYYY-MM-DD\n", *startArg)
		return 2
	}
	end, err := time.Parse("2006-01-02", *endArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -end %q: expected YYYY-MM-DD\n", *endArg)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdownUptrace(shutdownCtx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		return 1
	}
	defer func() {
		if err := stopProfiler(); err != nil {
			logger.Warn("stop pyroscope", "error", err)
		}
	}()

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof server", "error", err)
		return 1
	}
	defer func() {
		if err := observability.StopPprofServer(pprofSrv, logger, 5*time.Second); err != nil {
			logger.Warn("stop pprof server", "error", err)
		}
	}()

	application, cleanup, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}
	defer cleanup()

	if err := postgres.BootstrapSeed(ctx, application.DB); err != nil {
		logger.Error("bootstrap team registry", "error", err)
		return 1
	}

	if *discover {
		return runDiscover(ctx, application, start, end)
	}

	report, err := application.Importer.ImportRange(ctx, usecase.ImportRangeInput{
		Start:    start,
		End:      end,
		Parallel: *parallel,
	})
	if err != nil {
		logger.Error("import range", "error", err)
		return 1
	}

	printReport(report)

	// Individual game failures are expected operational noise; only a range
	// where no day could be discovered at all is a hard failure.
	if report.Days > 0 && len(report.DayFailures) == report.Days {
		return 1
	}
	return 0
}

func runDiscover(ctx context.Context, application *app.App, start, end time.Time) int {
	byDay, failures, err := application.Importer.DiscoverRange(ctx, start, end)
	if err != nil {
		application.Logger.Error("discover range", "error", err)
		return 1
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		fmt.Printf("%s: %d game(s)\n", day, len(byDay[day]))
		for _, link := range byDay[day] {
			fmt.Printf("  %s\n", link)
		}
	}
	for _, failure := range failures {
		fmt.Fprintf(os.Stderr, "%s: discovery failed: %s\n", failure.Day.Format("2006-01-02"), failure.Cause)
	}

	if len(byDay) == 0 && len(failures) > 0 {
		return 1
	}
	return 0
}

func printReport(report usecase.ImportRangeReport) {
	fmt.Printf("days=%d games=%d imported=%d skipped=%d queued=%d failed=%d day_failures=%d\n",
		report.Days,
		report.Games,
		report.Imported,
		report.Skipped,
		report.Queued,
		report.Failed,
		len(report.DayFailures),
	)
	for _, failure := range report.DayFailures {
		fmt.Fprintf(os.Stderr, "day %s: %s\n", failure.Day.Format("2006-01-02"), failure.Cause)
	}
	for _, failure := range report.Failures {
		fmt.Fprintf(os.Stderr, "game %s: %s\n", failure.Link, failure.Cause)
	}
}
