package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/diamondstats/gameday/internal/gameday"
)

// ImportRangeInput describes one import run. Start is inclusive, End is
// exclusive, and days on or after today are never fetched because their
// documents are still changing.
type ImportRangeInput struct {
	Start    time.Time `validate:"required"`
	End      time.Time `validate:"required"`
	Parallel bool
}

type DayFailure struct {
	Day   time.Time
	Cause string
}

type GameFailure struct {
	Link  string
	Cause string
}

// ImportRangeReport is the per-range outcome summary. A day failure means the
// index for that day could not be read at all; game failures are individual
// and never stop the rest of the range.
type ImportRangeReport struct {
	Days        int
	Games       int
	Imported    int
	Skipped     int
	Queued      int
	Failed      int
	DayFailures []DayFailure
	Failures    []GameFailure
}

type dayDiscovery struct {
	day   time.Time
	links []string
	err   error
}

var dedupUnsafeCharRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// ImportRange discovers every published game in the half-open date range and
// imports or queues each one. Per-game failures are collected, not fatal.
func (s *ImportService) ImportRange(ctx context.Context, input ImportRangeInput) (ImportRangeReport, error) {
	ctx, span := startUsecaseSpan(ctx, "ImportService.ImportRange")
	defer span.End()

	if err := s.validator.StructCtx(ctx, input); err != nil {
		return ImportRangeReport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.End.Before(input.Start) {
		return ImportRangeReport{}, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	days := s.enumerateDays(input.Start, input.End)
	report := ImportRangeReport{Days: len(days)}
	if len(days) == 0 {
		return report, nil
	}

	var links []string
	for _, discovery := range s.discoverDays(ctx, days) {
		if discovery.err != nil {
			s.logger.WarnContext(ctx, "day discovery failed",
				"day", discovery.day.Format("2006-01-02"),
				"error", discovery.err.Error(),
			)
			report.DayFailures = append(report.DayFailures, DayFailure{
				Day:   discovery.day,
				Cause: discovery.err.Error(),
			})
			continue
		}
		links = append(links, discovery.links...)
	}
	report.Games = len(links)
	if len(links) == 0 {
		return report, nil
	}

	switch {
	case input.Parallel && s.queue != nil:
		s.queueGames(ctx, links, &report)
	case input.Parallel:
		if err := s.importGamesPooled(ctx, links, &report); err != nil {
			return report, err
		}
	default:
		for _, link := range links {
			s.importOne(ctx, link, &report, nil)
		}
	}

	s.logger.InfoContext(ctx, "import range finished",
		"days", report.Days,
		"games", report.Games,
		"imported", report.Imported,
		"skipped", report.Skipped,
		"queued", report.Queued,
		"failed", report.Failed,
		"day_failures", len(report.DayFailures),
	)
	return report, nil
}

// DiscoverRange enumerates the range and lists every game link per day
// without importing anything.
func (s *ImportService) DiscoverRange(ctx context.Context, start, end time.Time) (map[string][]string, []DayFailure, error) {
	ctx, span := startUsecaseSpan(ctx, "ImportService.DiscoverRange")
	defer span.End()

	days := s.enumerateDays(start, end)
	out := make(map[string][]string, len(days))
	var failures []DayFailure
	for _, discovery := range s.discoverDays(ctx, days) {
		if discovery.err != nil {
			failures = append(failures, DayFailure{Day: discovery.day, Cause: discovery.err.Error()})
			continue
		}
		out[discovery.day.Format("2006-01-02")] = discovery.links
	}

	return out, failures, nil
}

// enumerateDays yields start <= d < end, clamped so that today and the future
// are never included.
func (s *ImportService) enumerateDays(start, end time.Time) []time.Time {
	today := truncateToDay(s.now().UTC())
	start = truncateToDay(start)
	end = truncateToDay(end)

	var days []time.Time
	for d := start; d.Before(end) && d.Before(today); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return days
}

// discoverDays fans the index fetches out over a bounded pool. Results come
// back in day order regardless of completion order.
func (s *ImportService) discoverDays(ctx context.Context, days []time.Time) []dayDiscovery {
	p := pool.NewWithResults[dayDiscovery]().WithMaxGoroutines(s.cfg.MaxWorkers)
	for _, day := range days {
		day := day
		p.Go(func() dayDiscovery {
			links, err := s.fetcher.DayGameLinks(ctx, day)
			return dayDiscovery{day: day, links: links, err: err}
		})
	}

	return p.Wait()
}

func (s *ImportService) importOne(ctx context.Context, link string, report *ImportRangeReport, mu *sync.Mutex) {
	result, err := s.ImportGame(ctx, link)

	if mu != nil {
		mu.Lock()
		defer mu.Unlock()
	}
	switch {
	case err != nil:
		s.logger.ErrorContext(ctx, "game import failed", "link", link, "error", err.Error())
		report.Failed++
		report.Failures = append(report.Failures, GameFailure{Link: link, Cause: err.Error()})
	case result.Skipped:
		report.Skipped++
	default:
		report.Imported++
	}
}

// importGamesPooled runs the in-process parallel path on a bounded worker
// pool. Failure isolation is identical to the sequential path.
func (s *ImportService) importGamesPooled(ctx context.Context, links []string, report *ImportRangeReport) error {
	workers := s.cfg.MaxWorkers
	if workers > len(links) {
		workers = len(links)
	}

	workerPool, err := s.newWorkerPool(workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, link := range links {
		link := link
		wg.Add(1)
		if err := workerPool.Submit(func() {
			defer wg.Done()
			s.importOne(ctx, link, report, &mu)
		}); err != nil {
			wg.Done()
			// Already submitted imports are still writing to the report;
			// they must finish before the caller may read it.
			wg.Wait()
			return fmt.Errorf("submit game import to worker pool: %w", err)
		}
	}
	wg.Wait()

	return nil
}

// queueGames publishes one fire-and-forget job per game. The deduplication id
// is derived from the gid so a game cannot sit in the queue twice.
func (s *ImportService) queueGames(ctx context.Context, links []string, report *ImportRangeReport) {
	for _, link := range links {
		gid := link
		if identity, err := gameday.ParseGameLink(link); err == nil {
			gid = identity.GID
		}

		payload := map[string]string{"gid": gid, "link": link}
		if err := s.queue.Enqueue(ctx, s.cfg.JobPath, payload, 0, dedupID(gid)); err != nil {
			s.logger.ErrorContext(ctx, "queue game import failed", "link", link, "error", err.Error())
			report.Failed++
			report.Failures = append(report.Failures, GameFailure{Link: link, Cause: err.Error()})
			continue
		}
		report.Queued++
	}
}

func dedupID(link string) string {
	return dedupUnsafeCharRegex.ReplaceAllString(link, "_")
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
