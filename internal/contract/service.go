// Package contract handles per-season contract expiration sweeps,
// directly grounded on
// original_source/src/services/contract_transition_service.py.
package contract

import (
	"context"
	"fmt"

	"github.com/nfl-analytics/dynasty-core/internal/store"
	"github.com/nfl-analytics/dynasty-core/pkg/logger"
)

// Service evaluates and expires contracts at a season boundary. It never
// increments a per-contract "years remaining" counter — expiration is
// always end_year < season_year, since contract years are absolute, not
// relative (spec.md §3).
type Service struct {
	contracts *store.ContractRepository
	log       *logger.Logger
}

// New returns a Service backed by repo.
func New(repo *store.ContractRepository, log *logger.Logger) *Service {
	return &Service{contracts: repo, log: log}
}

// ExpirationSummary reports the outcome of one expiration sweep.
type ExpirationSummary struct {
	TotalContracts int
	StillActive    int
	ExpiredCount   int
}

// RunExpirations evaluates every active contract for dynastyID against
// seasonYear and deactivates the ones that have expired, writing an audit
// row for each (spec.md §4.7.4 step 2).
func (s *Service) RunExpirations(ctx context.Context, txn *store.Txn, dynastyID string, seasonYear int) (ExpirationSummary, error) {
	s.log.Info("starting contract expiration sweep", "dynasty_id", dynastyID, "season", seasonYear)

	active, err := s.contracts.ListActiveForSeason(ctx, dynastyID, seasonYear)
	if err != nil {
		return ExpirationSummary{}, fmt.Errorf("list active contracts: %w", err)
	}

	expired := 0
	for _, c := range active {
		if !c.IsExpiredFor(seasonYear) {
			continue
		}
		if err := s.contracts.Expire(ctx, txn, c, seasonYear); err != nil {
			return ExpirationSummary{}, fmt.Errorf("expire contract %s: %w", c.ContractID, err)
		}
		expired++
	}

	summary := ExpirationSummary{
		TotalContracts: len(active),
		StillActive:    len(active) - expired,
		ExpiredCount:   expired,
	}
	s.log.Info("contract expiration sweep complete",
		"dynasty_id", dynastyID, "total", summary.TotalContracts,
		"still_active", summary.StillActive, "expired", summary.ExpiredCount,
	)
	return summary, nil
}
