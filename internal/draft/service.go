package draft

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/store"
	"github.com/nfl-analytics/dynasty-core/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// Service runs draft-class generation and draft-day simulation for one
// dynasty. Heavily adapted from the teacher's session/pick/state triad:
// the teacher's draft is a fantasy snake draft with undo/redo; this one
// is NFL pick ownership plus needs-based AI evaluation, grounded on
// original_source/src/offseason/draft_manager.py.simulate_draft.
type Service struct {
	repo      Repository
	dynasties *store.DynastyRepository
	evaluator *Evaluator
	generator *Generator
	redis     *redis.Client
	log       *logger.Logger
}

// NewService constructs a Service.
func NewService(repo Repository, dynasties *store.DynastyRepository, redisClient *redis.Client, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		dynasties: dynasties,
		evaluator: NewEvaluator(),
		generator: NewGenerator(),
		redis:     redisClient,
		log:       log,
	}
}

// PrepareDraftClass generates and persists the prospect pool for a
// season. If a class already exists for the season it is returned as is
// rather than regenerated, so the call is safe to repeat.
func (s *Service) PrepareDraftClass(ctx context.Context, txn *store.Txn, dynastyID string, season int, size int) (*models.DraftClass, error) {
	exists, err := s.repo.ClassExistsForSeason(ctx, dynastyID, season)
	if err != nil {
		return nil, fmt.Errorf("check existing draft class for season %d: %w", season, err)
	}
	if exists {
		s.log.Info("draft class already generated, reusing", "dynasty_id", dynastyID, "season", season)
		return s.repo.GetClassForSeason(ctx, dynastyID, season)
	}

	class := &models.DraftClass{
		DraftClassID: uuid.New().String(),
		DynastyID:    dynastyID,
		Season:       season,
		Status:       models.DraftClassStatusGenerated,
	}
	prospects := s.generator.Generate(class.DraftClassID, size)
	class.TotalProspects = len(prospects)

	if err := s.repo.CreateClass(ctx, txn, class, prospects); err != nil {
		return nil, fmt.Errorf("prepare draft class for season %d: %w", season, err)
	}
	s.log.Info("draft class generated", "dynasty_id", dynastyID, "season", season, "prospects", len(prospects))
	return class, nil
}

// CreateOrder persists the draft order ledger for a season.
func (s *Service) CreateOrder(ctx context.Context, txn *store.Txn, picks []*models.DraftPick) error {
	if err := s.repo.CreateOrder(ctx, txn, picks); err != nil {
		return fmt.Errorf("create draft order: %w", err)
	}
	return nil
}

// NeedsProvider supplies a team's positional needs at evaluation time;
// callers without a roster subsystem wired up may return a fixed board.
type NeedsProvider func(teamID int) []models.TeamNeed

// SimulateDraft iterates the draft order in overall_pick order exactly
// like draft_manager.py.simulate_draft: already-executed picks are
// skipped (resume support), a user-supplied selection is honored first,
// otherwise the evaluator chooses from the available pool. The
// dynasty-state draft cursor (current_draft_pick, draft_in_progress) is
// advanced after every pick, so a crash or an interactive pause mid-draft
// resumes exactly where it left off (spec.md §4.8 step 8, §4.6 "cursor &
// resume").
func (s *Service) SimulateDraft(ctx context.Context, txn *store.Txn, dynastyID string, season int, userTeamID int, userPicks map[int]string, needs NeedsProvider) ([]*models.DraftPick, error) {
	order, err := s.repo.ListOrder(ctx, dynastyID, season)
	if err != nil {
		return nil, fmt.Errorf("list draft order: %w", err)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("no draft order for dynasty %s season %d: generate draft order first", dynastyID, season)
	}

	state, err := s.dynasties.GetState(ctx, dynastyID, season)
	if err != nil {
		return nil, fmt.Errorf("load dynasty state for draft cursor: %w", err)
	}
	if !state.DraftInProgress {
		state.DraftInProgress = true
		if err := s.dynasties.SaveState(ctx, txn, state); err != nil {
			return nil, fmt.Errorf("mark draft in progress: %w", err)
		}
		state.Version++
	}

	var executed []*models.DraftPick
	for _, pick := range order {
		if pick.IsExecuted {
			continue
		}

		playerID, ok := userPicks[pick.OverallPick]
		if !ok {
			pool, err := s.availablePool(ctx, dynastyID, season)
			if err != nil {
				return nil, err
			}
			if len(pool) == 0 {
				return nil, fmt.Errorf("no draft class for dynasty %s season %d: generate draft class first", dynastyID, season)
			}
			teamNeeds := needs(pick.CurrentTeamID)
			idx := s.evaluator.Best(pool, teamNeeds, pick.OverallPick)
			if idx < 0 {
				return nil, fmt.Errorf("evaluator could not select a prospect for pick %d", pick.OverallPick)
			}
			playerID = pool[idx].PlayerID
		}

		rosterID, err := s.executePick(ctx, txn, dynastyID, pick, playerID)
		if err != nil {
			return nil, err
		}
		pick.IsExecuted = true
		pick.SelectedPlayerID = &rosterID
		executed = append(executed, pick)

		state.CurrentDraftPick = pick.OverallPick
		if err := s.dynasties.SaveState(ctx, txn, state); err != nil {
			return nil, fmt.Errorf("advance draft cursor to pick %d: %w", pick.OverallPick, err)
		}
		state.Version++

		if pick.CurrentTeamID == userTeamID {
			s.log.Info("user team pick executed", "dynasty_id", dynastyID, "overall_pick", pick.OverallPick, "player_id", playerID)
		}
	}

	if state.DraftInProgress {
		state.DraftInProgress = false
		if err := s.dynasties.SaveState(ctx, txn, state); err != nil {
			return nil, fmt.Errorf("mark draft complete: %w", err)
		}
	}
	return executed, nil
}

func (s *Service) availablePool(ctx context.Context, dynastyID string, season int) ([]*models.Prospect, error) {
	prospects, err := s.repo.ListAvailableForSeason(ctx, dynastyID, season)
	if err != nil {
		return nil, fmt.Errorf("list available prospects: %w", err)
	}
	return prospects, nil
}

// executePick records one pick: mark the prospect drafted, mint the new
// roster id, record that roster id (not the prospect's temporary id) on
// the ledger row, and back-fill the prospect with it — a back-fill
// failure is logged and does not abort the pick (spec.md §9 Open
// Question 5). It does not validate the prospect or insert a roster
// player row; the caller advances the draft cursor. Returns the minted
// roster id.
func (s *Service) executePick(ctx context.Context, txn *store.Txn, dynastyID string, pick *models.DraftPick, playerID string) (string, error) {
	if err := s.repo.MarkDrafted(ctx, txn, playerID, pick.CurrentTeamID, pick.Round, pick.OverallPick); err != nil {
		return "", fmt.Errorf("mark prospect %s drafted: %w", playerID, err)
	}

	rosterID := uuid.New().String()
	if err := s.repo.ExecutePick(ctx, txn, pick.PickID, rosterID); err != nil {
		return "", fmt.Errorf("execute pick %s: %w", pick.PickID, err)
	}

	if err := s.repo.BackfillRosterID(ctx, txn, playerID, rosterID); err != nil {
		s.log.Warn("failed to backfill roster id for drafted prospect", "dynasty_id", dynastyID, "player_id", playerID, "error", err)
	}
	return rosterID, nil
}

// Progress reports how many picks have been executed for a season.
func (s *Service) Progress(ctx context.Context, dynastyID string, season int) (models.Progress, error) {
	return s.repo.Progress(ctx, dynastyID, season)
}
