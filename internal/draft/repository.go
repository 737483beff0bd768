package draft

import (
	"context"

	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/store"
)

// Repository is the draft subsystem's storage dependency, kept as an
// interface (the teacher's pattern) so Service can be tested against a
// fake. PostgresRepository below is the production implementation,
// backed by internal/store's draft_order/draft_classes/draft_prospects
// tables rather than the teacher's fantasy draft_sessions/draft_picks.
type Repository interface {
	CreateClass(ctx context.Context, txn *store.Txn, class *models.DraftClass, prospects []*models.Prospect) error
	ClassExistsForSeason(ctx context.Context, dynastyID string, season int) (bool, error)
	GetClassForSeason(ctx context.Context, dynastyID string, season int) (*models.DraftClass, error)
	ListAvailable(ctx context.Context, draftClassID string) ([]*models.Prospect, error)
	ListAvailableForSeason(ctx context.Context, dynastyID string, season int) ([]*models.Prospect, error)
	GetProspect(ctx context.Context, playerID string) (*models.Prospect, error)
	MarkDrafted(ctx context.Context, txn *store.Txn, playerID string, teamID, round, pick int) error
	BackfillRosterID(ctx context.Context, txn *store.Txn, playerID, rosterPlayerID string) error

	CreateOrder(ctx context.Context, txn *store.Txn, picks []*models.DraftPick) error
	ListOrder(ctx context.Context, dynastyID string, season int) ([]*models.DraftPick, error)
	NextPick(ctx context.Context, dynastyID string, season int) (*models.DraftPick, error)
	ExecutePick(ctx context.Context, txn *store.Txn, pickID, playerID string) error
	Progress(ctx context.Context, dynastyID string, season int) (models.Progress, error)
}

// PostgresRepository adapts internal/store's DraftRepository to the
// Repository interface.
type PostgresRepository struct {
	*store.DraftRepository
}

// NewPostgresRepository returns a Repository backed by a store.DraftRepository.
func NewPostgresRepository(repo *store.DraftRepository) Repository {
	return &PostgresRepository{DraftRepository: repo}
}
