package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nfl-analytics/dynasty-core/internal/models"
)

// ContractRepository persists player contracts and their expiration audit
// trail (spec.md §4.7.4, grounded on
// original_source/src/services/contract_transition_service.py).
type ContractRepository struct {
	db *sql.DB
}

// NewContractRepository returns a ContractRepository backed by db.
func NewContractRepository(db *sql.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// Create inserts a new contract.
func (r *ContractRepository) Create(ctx context.Context, txn *Txn, c *models.Contract) error {
	query := `
		INSERT INTO contracts (contract_id, dynasty_id, player_id, team_id, start_year, end_year, contract_years, total_value, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := txn.tx.ExecContext(ctx, query,
		c.ContractID, txn.dynastyID, c.PlayerID, c.TeamID, c.StartYear, c.EndYear, c.ContractYears, c.TotalValue, c.IsActive,
	)
	if err != nil {
		return fmt.Errorf("create contract: %w", err)
	}
	return nil
}

// ListActiveForSeason retrieves every active contract for a dynasty, used
// by the expiration sweep to find candidates. seasonYear is not used in
// the query; the caller compares each contract's end year itself.
func (r *ContractRepository) ListActiveForSeason(ctx context.Context, dynastyID string, seasonYear int) ([]*models.Contract, error) {
	query := `
		SELECT contract_id, dynasty_id, player_id, team_id, start_year, end_year, contract_years, total_value, is_active
		FROM contracts WHERE dynasty_id = $1 AND is_active = true
	`
	rows, err := r.db.QueryContext(ctx, query, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("list active contracts: %w", err)
	}
	defer rows.Close()

	var out []*models.Contract
	for rows.Next() {
		c := &models.Contract{}
		if err := rows.Scan(&c.ContractID, &c.DynastyID, &c.PlayerID, &c.TeamID, &c.StartYear, &c.EndYear, &c.ContractYears, &c.TotalValue, &c.IsActive); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Expire marks a contract inactive and writes its audit row, within txn.
func (r *ContractRepository) Expire(ctx context.Context, txn *Txn, c *models.Contract, seasonYear int) error {
	if _, err := txn.tx.ExecContext(ctx, `UPDATE contracts SET is_active = false WHERE contract_id = $1 AND dynasty_id = $2`, c.ContractID, txn.dynastyID); err != nil {
		return fmt.Errorf("expire contract %s: %w", c.ContractID, err)
	}

	audit := `
		INSERT INTO contract_expiration_audit
			(dynasty_id, contract_id, team_id, player_id, contract_years, total_value, expired_season, recorded_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7, now())
	`
	_, err := txn.tx.ExecContext(ctx, audit, txn.dynastyID, c.ContractID, c.TeamID, c.PlayerID, c.ContractYears, c.TotalValue, seasonYear)
	if err != nil {
		return fmt.Errorf("record expiration audit for %s: %w", c.ContractID, err)
	}
	return nil
}
