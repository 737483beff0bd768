package models

// Contract is a per-player record using absolute start/end years, not a
// relative "years remaining" counter — expiration is always determined by
// comparing EndYear against the current season year (spec.md §3,
// grounded on original_source/src/services/contract_transition_service.py's
// explicit note that contract_year_details uses absolute years).
type Contract struct {
	ContractID    string `json:"contract_id" db:"contract_id"`
	DynastyID     string `json:"dynasty_id" db:"dynasty_id"`
	PlayerID      string `json:"player_id" db:"player_id"`
	TeamID        int    `json:"team_id" db:"team_id"`
	StartYear     int    `json:"start_year" db:"start_year"`
	EndYear       int    `json:"end_year" db:"end_year"`
	ContractYears int    `json:"contract_years" db:"contract_years"`
	TotalValue    int64  `json:"total_value" db:"total_value"`
	IsActive      bool   `json:"is_active" db:"is_active"`
}

// IsExpiredFor reports whether this contract has expired as of seasonYear —
// true when EndYear < seasonYear, never by decrementing a counter.
func (c *Contract) IsExpiredFor(seasonYear int) bool {
	return c.EndYear < seasonYear
}

// ContractExpirationAudit is one row of the expiration audit trail written
// during the offseason→preseason transition (spec.md §4.7.4 step 2).
type ContractExpirationAudit struct {
	DynastyID     string `json:"dynasty_id" db:"dynasty_id"`
	ContractID    string `json:"contract_id" db:"contract_id"`
	TeamID        int    `json:"team_id" db:"team_id"`
	PlayerID      string `json:"player_id" db:"player_id"`
	ContractYears int    `json:"contract_years" db:"contract_years"`
	TotalValue    int64  `json:"total_value" db:"total_value"`
	ExpiredSeason int    `json:"expired_season" db:"expired_season"`
}
