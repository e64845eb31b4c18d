package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"
)

func day(yearMonthDay string) time.Time {
	t, err := time.Parse("2006-01-02", yearMonthDay)
	if err != nil {
		panic(err)
	}
	return t
}

func gameLinkFor(dayPath, gid string) string {
	return "http://gd2.example.com/components/game/mlb/" + dayPath + "/" + gid
}

func TestImportRangeEnumeratesHalfOpenRangeBeforeToday(t *testing.T) {
	h := newTestHarness(t, ImportModeReplace, nil)

	// Harness clock is pinned to 2011-07-05, so the 5th through the 8th
	// must be clamped away even though the range asks for them.
	report, err := h.svc.ImportRange(context.Background(), ImportRangeInput{
		Start: day("2011-07-01"),
		End:   day("2011-07-09"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Days != 4 {
		t.Fatalf("expected 4 fetchable days, got %d", report.Days)
	}

	wantDays := map[string]bool{
		"year_2011/month_07/day_01": true,
		"year_2011/month_07/day_02": true,
		"year_2011/month_07/day_03": true,
		"year_2011/month_07/day_04": true,
	}
	if len(h.fetcher.fetchedDays) != len(wantDays) {
		t.Fatalf("expected %d day fetches, got %v", len(wantDays), h.fetcher.fetchedDays)
	}
	for _, fetched := range h.fetcher.fetchedDays {
		if !wantDays[fetched] {
			t.Fatalf("unexpected day fetched: %s", fetched)
		}
	}
}

func TestImportRangeEmptyWhenStartEqualsEnd(t *testing.T) {
	h := newTestHarness(t, ImportModeReplace, nil)

	report, err := h.svc.ImportRange(context.Background(), ImportRangeInput{
		Start: day("2011-07-02"),
		End:   day("2011-07-02"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Days != 0 || report.Games != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
	if len(h.fetcher.fetchedDays) != 0 {
		t.Fatalf("no index fetch expected for an empty range")
	}
}

func TestImportRangeRejectsInvertedRange(t *testing.T) {
	h := newTestHarness(t, ImportModeReplace, nil)

	_, err := h.svc.ImportRange(context.Background(), ImportRangeInput{
		Start: day("2011-07-04"),
		End:   day("2011-07-01"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
}

func TestImportRangeRejectsMissingDates(t *testing.T) {
	h := newTestHarness(t, ImportModeReplace, nil)

	_, err := h.svc.ImportRange(context.Background(), ImportRangeInput{End: day("2011-07-04")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero start date, got: %v", err)
	}
}

func TestImportRangeIsolatesGameFailures(t *testing.T) {
	h := newTestHarness(t, ImportModeReplace, nil)

	dayPath := "year_2011/month_07/day_02"
	good := gameLinkFor(dayPath, "gid_2011_07_02_nyamlb_wasmlb_1")
	bad := gameLinkFor(dayPath, "gid_2011_07_02_bosmlb_phimlb_1")
	h.fetcher.dayLinks[dayPath] = []string{bad, good}
	h.fetcher.docs[good] = docXML(atbatXML(1, "ab-guid-1", pitchXML(1, "B", "p1")))
	h.fetcher.docs[bad] = []byte(`not xml at all`)

	report, err := h.svc.ImportRange(context.Background(), ImportRangeInput{
		Start: day("2011-07-02"),
		End:   day("2011-07-03"),
	})
	if err != nil {
		t.Fatalf("per-game failures must not fail the range: %v", err)
	}
	if report.Imported != 1 || report.Failed != 1 {
		t.Fatalf("expected 1 imported and 1 failed, got %+v", report)
	}
	if len(report.Failures) != 1 || report.Failures[0].Link != bad {
		t.Fatalf("expected failure recorded for %s, got %+v", bad, report.Failures)
	}
	if got := len(h.store.Games()); got != 1 {
		t.Fatalf("the good game must still land, got %d games", got)
	}
}

func TestImportRangeRecordsDayFailures(t *testing.T) {
	h := newTestHarness(t, ImportModeReplace, nil)

	brokenDay := "year_2011/month_07/day_01"
	workingDay := "year_2011/month_07/day_02"
	link := gameLinkFor(workingDay, "gid_2011_07_02_nyamlb_wasmlb_1")
	h.fetcher.dayErrs[brokenDay] = fmt.Errorf("day index %s returned status 500", brokenDay)
	h.fetcher.dayLinks[workingDay] = []string{link}
	h.fetcher.docs[link] = docXML(atbatXML(1, "ab-guid-1", pitchXML(1, "B", "p1")))

	report, err := h.svc.ImportRange(context.Background(), ImportRangeInput{
		Start: day("2011-07-01"),
		End:   day("2011-07-03"),
	})
	if err != nil {
		t.Fatalf("a failed day must not fail the range: %v", err)
	}
	if len(report.DayFailures) != 1 {
		t.Fatalf("expected 1 day failure, got %+v", report.DayFailures)
	}
	if !report.DayFailures[0].Day.Equal(day("2011-07-01")) {
		t.Fatalf("unexpected failed day: %v", report.DayFailures[0].Day)
	}
	if report.Imported != 1 {
		t.Fatalf("the other day must still import, got %+v", report)
	}
}

func TestImportRangeSkipsCountedSeparately(t *testing.T) {
	h := newTestHarness(t, ImportModeReplace, nil)

	dayPath := "year_2011/month_07/day_02"
	published := gameLinkFor(dayPath, "gid_2011_07_02_nyamlb_wasmlb_1")
	pending := gameLinkFor(dayPath, "gid_2011_07_02_bosmlb_phimlb_1")
	h.fetcher.dayLinks[dayPath] = []string{published, pending}
	h.fetcher.docs[published] = docXML(atbatXML(1, "ab-guid-1", pitchXML(1, "B", "p1")))
	h.fetcher.notPublished[pending] = true

	report, err := h.svc.ImportRange(context.Background(), ImportRangeInput{
		Start: day("2011-07-02"),
		End:   day("2011-07-03"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Imported != 1 || report.Skipped != 1 || report.Failed != 0 {
		t.Fatalf("expected 1 imported and 1 skipped, got %+v", report)
	}
}

func TestImportRangeParallelPoolImportsEverything(t *testing.T) {
	h := newTestHarness(t, ImportModeReplace, nil)

	dayPath := "year_2011/month_07/day_02"
	links := []string{
		gameLinkFor(dayPath, "gid_2011_07_02_nyamlb_wasmlb_1"),
		gameLinkFor(dayPath, "gid_2011_07_02_bosmlb_phimlb_1"),
		gameLinkFor(dayPath, "gid_2011_07_02_lanmlb_sfnmlb_1"),
	}
	h.fetcher.dayLinks[dayPath] = links
	for i, link := range links {
		h.fetcher.docs[link] = docXML(atbatXML(i+1, fmt.Sprintf("ab-guid-%d", i+1), pitchXML(1, "B", "")))
	}

	report, err := h.svc.ImportRange(context.Background(), ImportRangeInput{
		Start:    day("2011-07-02"),
		End:      day("2011-07-03"),
		Parallel: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Imported != 3 || report.Failed != 0 {
		t.Fatalf("expected 3 imports, got %+v", report)
	}
	if got := len(h.store.Games()); got != 3 {
		t.Fatalf("expected 3 games stored, got %d", got)
	}
}

func TestImportRangeParallelDrainsInFlightImportsOnSubmitFailure(t *testing.T) {
	h := newTestHarness(t, ImportModeReplace, nil)

	// A single-slot nonblocking pool accepts the first game and rejects the
	// second submit while the first import is still running.
	h.svc.newWorkerPool = func(int) (*ants.Pool, error) {
		return ants.NewPool(1, ants.WithNonblocking(true))
	}

	dayPath := "year_2011/month_07/day_02"
	slow := gameLinkFor(dayPath, "gid_2011_07_02_nyamlb_wasmlb_1")
	rejected := gameLinkFor(dayPath, "gid_2011_07_02_bosmlb_phimlb_1")
	h.fetcher.dayLinks[dayPath] = []string{slow, rejected}
	h.fetcher.docs[slow] = docXML(atbatXML(1, "ab-guid-1", pitchXML(1, "B", "p1")))
	h.fetcher.docs[rejected] = docXML(atbatXML(2, "ab-guid-2", pitchXML(1, "B", "p2")))
	h.fetcher.slowLink = slow
	h.fetcher.started = make(chan struct{}, 1)
	h.fetcher.release = make(chan struct{})

	type outcome struct {
		report ImportRangeReport
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		report, err := h.svc.ImportRange(context.Background(), ImportRangeInput{
			Start:    day("2011-07-02"),
			End:      day("2011-07-03"),
			Parallel: true,
		})
		done <- outcome{report: report, err: err}
	}()

	<-h.fetcher.started
	select {
	case got := <-done:
		t.Fatalf("ImportRange returned while an import was still in flight: %+v, err=%v", got.report, got.err)
	case <-time.After(50 * time.Millisecond):
	}

	close(h.fetcher.release)
	got := <-done
	if got.err == nil {
		t.Fatal("expected the submit failure to surface as an error")
	}
	if got.report.Imported != 1 {
		t.Fatalf("the in-flight game must finish and be counted, got %+v", got.report)
	}
	if len(h.store.Games()) != 1 {
		t.Fatalf("expected exactly the in-flight game stored, got %d", len(h.store.Games()))
	}
}

func TestImportRangeQueuesWhenPublisherConfigured(t *testing.T) {
	queue := &fakeQueue{}
	h := newTestHarness(t, ImportModeReplace, queue)

	dayPath := "year_2011/month_07/day_02"
	h.fetcher.dayLinks[dayPath] = []string{
		gameLinkFor(dayPath, "gid_2011_07_02_nyamlb_wasmlb_1"),
		gameLinkFor(dayPath, "gid_2011_07_02_bosmlb_phimlb_1"),
	}

	report, err := h.svc.ImportRange(context.Background(), ImportRangeInput{
		Start:    day("2011-07-02"),
		End:      day("2011-07-03"),
		Parallel: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Queued != 2 || report.Imported != 0 {
		t.Fatalf("expected 2 queued and nothing imported in-process, got %+v", report)
	}

	wantDedup := map[string]bool{
		"gid_2011_07_02_nyamlb_wasmlb_1": true,
		"gid_2011_07_02_bosmlb_phimlb_1": true,
	}
	if len(queue.enqueued) != 2 {
		t.Fatalf("expected 2 jobs, got %v", queue.enqueued)
	}
	for _, id := range queue.enqueued {
		if !wantDedup[id] {
			t.Fatalf("deduplication id must be the gid, got %q", id)
		}
	}
	if len(h.store.Games()) != 0 {
		t.Fatalf("queued dispatch must not write locally")
	}
}

func TestDiscoverRangeListsLinksByDay(t *testing.T) {
	h := newTestHarness(t, ImportModeReplace, nil)

	dayPath := "year_2011/month_07/day_02"
	link := gameLinkFor(dayPath, "gid_2011_07_02_nyamlb_wasmlb_1")
	h.fetcher.dayLinks[dayPath] = []string{link}
	h.fetcher.dayErrs["year_2011/month_07/day_03"] = fmt.Errorf("day index returned status 503")

	byDay, failures, err := h.svc.DiscoverRange(context.Background(), day("2011-07-02"), day("2011-07-04"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byDay["2011-07-02"]) != 1 || byDay["2011-07-02"][0] != link {
		t.Fatalf("unexpected discovery result: %+v", byDay)
	}
	if len(failures) != 1 || !failures[0].Day.Equal(day("2011-07-03")) {
		t.Fatalf("expected the broken day recorded, got %+v", failures)
	}
}
