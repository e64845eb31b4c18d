package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/panjf2000/ants/v2"

	"github.com/diamondstats/gameday/internal/domain/atbat"
	"github.com/diamondstats/gameday/internal/domain/game"
	"github.com/diamondstats/gameday/internal/domain/pitch"
	"github.com/diamondstats/gameday/internal/domain/team"
	"github.com/diamondstats/gameday/internal/gameday"
	"github.com/diamondstats/gameday/internal/platform/logging"
)

// ImportMode selects how an already-imported game is reconciled on a re-run.
type ImportMode string

const (
	// ImportModeReplace drops the stored game and rebuilds it from the
	// freshly fetched document. The whole tree is assembled in memory before
	// the first write, so a fetch or parse failure leaves storage untouched.
	ImportModeReplace ImportMode = "replace"

	// ImportModeMerge finds each record by its natural key and overwrites
	// every field, creating what is missing. Last writer wins.
	ImportModeMerge ImportMode = "merge"
)

func ParseImportMode(raw string) (ImportMode, error) {
	switch ImportMode(raw) {
	case ImportModeReplace, "":
		return ImportModeReplace, nil
	case ImportModeMerge:
		return ImportModeMerge, nil
	default:
		return "", fmt.Errorf("%w: unknown import mode %q", ErrInvalidInput, raw)
	}
}

// GameFetcher is the slice of the gameday client the importer needs.
type GameFetcher interface {
	DayGameLinks(ctx context.Context, day time.Time) ([]string, error)
	FetchInnings(ctx context.Context, gameLink string) ([]byte, error)
}

// JobQueue hands a game off to an external worker instead of importing it
// in-process.
type JobQueue interface {
	Enqueue(ctx context.Context, path string, payload any, delay time.Duration, deduplicationID string) error
}

type ImportServiceConfig struct {
	Mode       ImportMode
	MaxWorkers int
	JobPath    string
}

type ImportService struct {
	teamRepo  team.Repository
	gameRepo  game.Repository
	atbatRepo atbat.Repository
	pitchRepo pitch.Repository
	fetcher   GameFetcher
	queue     JobQueue
	cfg       ImportServiceConfig
	validator *validator.Validate
	logger    *logging.Logger
	now       func() time.Time

	newWorkerPool func(size int) (*ants.Pool, error)
}

func NewImportService(
	teamRepo team.Repository,
	gameRepo game.Repository,
	atbatRepo atbat.Repository,
	pitchRepo pitch.Repository,
	fetcher GameFetcher,
	queue JobQueue,
	cfg ImportServiceConfig,
	logger *logging.Logger,
) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Mode == "" {
		cfg.Mode = ImportModeReplace
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 4
	}
	if cfg.JobPath == "" {
		cfg.JobPath = "/jobs/import-game"
	}

	return &ImportService{
		teamRepo:  teamRepo,
		gameRepo:  gameRepo,
		atbatRepo: atbatRepo,
		pitchRepo: pitchRepo,
		fetcher:   fetcher,
		queue:     queue,
		cfg:       cfg,
		validator: validator.New(),
		logger:    logger,
		now:       time.Now,
		newWorkerPool: func(size int) (*ants.Pool, error) {
			return ants.NewPool(size)
		},
	}
}

// ImportGameResult reports what one game import actually did.
type ImportGameResult struct {
	GID     string
	Skipped bool
	Atbats  int
	Pitches int
}

// ImportGame fetches, parses and reconciles a single game document. A detail
// document the host has not published yet is a skip, not an error; the game
// will be picked up by a later run.
func (s *ImportService) ImportGame(ctx context.Context, gameLink string) (ImportGameResult, error) {
	ctx, span := startUsecaseSpan(ctx, "ImportService.ImportGame")
	defer span.End()

	identity, err := gameday.ParseGameLink(gameLink)
	if err != nil {
		return ImportGameResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	body, err := s.fetcher.FetchInnings(ctx, gameLink)
	if err != nil {
		if crerr.Is(err, gameday.ErrNotPublished) {
			s.logger.InfoContext(ctx, "game detail not yet published, skipping", "gid", identity.GID)
			return ImportGameResult{GID: identity.GID, Skipped: true}, nil
		}
		return ImportGameResult{}, fmt.Errorf("fetch game %s: %w", identity.GID, err)
	}

	doc, err := gameday.ParseDocument(body)
	if err != nil {
		return ImportGameResult{}, fmt.Errorf("parse game %s: %w", identity.GID, err)
	}

	g, err := s.resolveGame(ctx, identity)
	if err != nil {
		return ImportGameResult{}, err
	}

	records := collectAtbats(doc)

	switch s.cfg.Mode {
	case ImportModeMerge:
		err = s.mergeGame(ctx, g, records)
	default:
		err = s.replaceGame(ctx, g, records)
	}
	if err != nil {
		return ImportGameResult{}, err
	}

	result := ImportGameResult{GID: identity.GID}
	for _, record := range records {
		result.Atbats++
		result.Pitches += len(record.pitches)
	}

	s.logger.InfoContext(ctx, "game imported",
		"gid", identity.GID,
		"mode", string(s.cfg.Mode),
		"atbats", result.Atbats,
		"pitches", result.Pitches,
	)
	return result, nil
}

// resolveGame maps both short codes through the registry. The registry is
// pre-populated; an unknown code means the caller is importing a league the
// deployment was never set up for.
func (s *ImportService) resolveGame(ctx context.Context, identity gameday.GameLink) (game.Game, error) {
	away, found, err := s.teamRepo.GetByShort(ctx, identity.AwayShort)
	if err != nil {
		return game.Game{}, fmt.Errorf("resolve away team %q: %w", identity.AwayShort, err)
	}
	if !found {
		return game.Game{}, fmt.Errorf("%w: away short %q (gid %s)", ErrTeamNotRegistered, identity.AwayShort, identity.GID)
	}

	home, found, err := s.teamRepo.GetByShort(ctx, identity.HomeShort)
	if err != nil {
		return game.Game{}, fmt.Errorf("resolve home team %q: %w", identity.HomeShort, err)
	}
	if !found {
		return game.Game{}, fmt.Errorf("%w: home short %q (gid %s)", ErrTeamNotRegistered, identity.HomeShort, identity.GID)
	}

	return game.Game{
		GID:        identity.GID,
		Date:       identity.Date,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
	}, nil
}

type atbatRecord struct {
	atbat   atbat.Atbat
	pitches []pitch.Pitch
}

// collectAtbats flattens the document tree into at-bat records, injecting the
// positional inning context and stamping the derived pre-pitch count. Each
// pitch carries the balls/strikes the batter faced before it was thrown; a
// ball advances the ball count, anything else advances strikes up to two.
// Foul balls with two strikes keep the count where it is.
func collectAtbats(doc gameday.Document) []atbatRecord {
	var out []atbatRecord
	for _, inning := range doc.Innings {
		num, _ := strconv.Atoi(inning.Num)
		for _, half := range []struct {
			elem      *gameday.HalfInningElement
			topBottom int
		}{
			{inning.Top, 1},
			{inning.Bottom, 0},
		} {
			if half.elem == nil {
				continue
			}
			for _, elem := range half.elem.Atbats {
				record := atbatRecord{
					atbat:   gameday.MapAtbat(elem, num, half.topBottom),
					pitches: make([]pitch.Pitch, 0, len(elem.Pitches)),
				}

				balls, strikes := 0, 0
				for _, pitchElem := range elem.Pitches {
					p := gameday.MapPitch(pitchElem)
					p.Balls, p.Strikes = balls, strikes
					if p.PitchType == gameday.PitchTypeBall {
						balls++
					} else if strikes < 2 {
						strikes++
					}
					record.pitches = append(record.pitches, p)
				}

				out = append(out, record)
			}
		}
	}

	return out
}

// replaceGame rebuilds the stored game from scratch. The tree is already
// fully assembled in memory, so the destructive part only starts once
// everything needed to rewrite it is at hand.
func (s *ImportService) replaceGame(ctx context.Context, g game.Game, records []atbatRecord) error {
	ctx, span := startUsecaseSpan(ctx, "ImportService.replaceGame")
	defer span.End()

	if err := s.gameRepo.DeleteByGID(ctx, g.GID); err != nil {
		return fmt.Errorf("delete game %s: %w", g.GID, err)
	}

	created, err := s.gameRepo.Create(ctx, g)
	if err != nil {
		return fmt.Errorf("create game %s: %w", g.GID, err)
	}

	if len(records) == 0 {
		return nil
	}

	atbats := make([]atbat.Atbat, 0, len(records))
	for _, record := range records {
		a := record.atbat
		a.GameID = created.ID
		atbats = append(atbats, a)
	}

	createdAtbats, err := s.atbatRepo.BulkCreate(ctx, atbats)
	if err != nil {
		return fmt.Errorf("bulk create atbats for %s: %w", g.GID, err)
	}
	if len(createdAtbats) != len(records) {
		return fmt.Errorf("bulk create atbats for %s returned %d rows, expected %d", g.GID, len(createdAtbats), len(records))
	}

	var pitches []pitch.Pitch
	for i, record := range records {
		for _, p := range record.pitches {
			p.AtbatID = createdAtbats[i].ID
			pitches = append(pitches, p)
		}
	}
	if len(pitches) == 0 {
		return nil
	}

	if err := s.pitchRepo.BulkCreate(ctx, pitches); err != nil {
		return fmt.Errorf("bulk create pitches for %s: %w", g.GID, err)
	}

	return nil
}

// mergeGame reconciles record by record against storage. Natural keys decide
// identity; every matched row is fully overwritten with the incoming values.
func (s *ImportService) mergeGame(ctx context.Context, g game.Game, records []atbatRecord) error {
	ctx, span := startUsecaseSpan(ctx, "ImportService.mergeGame")
	defer span.End()

	stored, found, err := s.gameRepo.FindByGID(ctx, g.GID)
	if err != nil {
		return fmt.Errorf("find game %s: %w", g.GID, err)
	}
	if !found {
		stored, err = s.gameRepo.Create(ctx, g)
		if err != nil {
			return fmt.Errorf("create game %s: %w", g.GID, err)
		}
	}

	for _, record := range records {
		a := record.atbat
		a.GameID = stored.ID

		existing, found, err := s.atbatRepo.FindByNaturalKey(ctx, stored.ID, a.PlayGUID, a.Num)
		if err != nil {
			return fmt.Errorf("find atbat %d of %s: %w", a.Num, g.GID, err)
		}
		if found {
			a.ID = existing.ID
			if err := s.atbatRepo.Update(ctx, a); err != nil {
				return fmt.Errorf("update atbat %d of %s: %w", a.Num, g.GID, err)
			}
		} else {
			a, err = s.atbatRepo.Create(ctx, a)
			if err != nil {
				return fmt.Errorf("create atbat %d of %s: %w", a.Num, g.GID, err)
			}
		}

		for _, p := range record.pitches {
			p.AtbatID = a.ID

			existingPitch, found, err := s.pitchRepo.FindByNaturalKey(ctx, a.ID, p.PlayGUID, p.ExternalIDValue())
			if err != nil {
				return fmt.Errorf("find pitch in atbat %d of %s: %w", a.Num, g.GID, err)
			}
			if found {
				p.ID = existingPitch.ID
				if err := s.pitchRepo.Update(ctx, p); err != nil {
					return fmt.Errorf("update pitch in atbat %d of %s: %w", a.Num, g.GID, err)
				}
			} else {
				if _, err := s.pitchRepo.Create(ctx, p); err != nil {
					return fmt.Errorf("create pitch in atbat %d of %s: %w", a.Num, g.GID, err)
				}
			}
		}
	}

	return nil
}
