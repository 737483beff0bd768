package models

// ScoutingConfidence is the observable confidence tag attached to a
// prospect's scouted overall rating (spec.md §4.8).
type ScoutingConfidence string

const (
	ConfidenceLow    ScoutingConfidence = "low"
	ConfidenceMedium ScoutingConfidence = "medium"
	ConfidenceHigh   ScoutingConfidence = "high"
)

// DevelopmentCurve describes how a prospect's attributes are expected to
// trend once on a roster. Grounded on original_source's draft class
// generator (draft_class_api.py); spec.md's distillation only gestures at
// an "attribute map" so this is named concretely here.
type DevelopmentCurve string

const (
	DevelopmentEarly    DevelopmentCurve = "early"
	DevelopmentStandard DevelopmentCurve = "standard"
	DevelopmentLate     DevelopmentCurve = "late"
)

// DraftClassStatus tracks whether a class has already been generated for a
// (dynasty, season) pair — the result-type replacement for the original's
// "raise if already generated" control flow (spec.md §9).
type DraftClassStatus string

const (
	DraftClassStatusGenerated DraftClassStatus = "generated"
)

// DraftClass is the collection of prospects generated for one
// (dynasty, season).
type DraftClass struct {
	DraftClassID   string           `json:"draft_class_id" db:"draft_class_id"`
	DynastyID      string           `json:"dynasty_id" db:"dynasty_id"`
	Season         int              `json:"season" db:"season"`
	TotalProspects int              `json:"total_prospects" db:"total_prospects"`
	Status         DraftClassStatus `json:"status" db:"status"`
}

// Prospect is a pre-draft player record. PlayerID is a temporary id,
// disjoint from any active-roster player id (spec.md invariant 7); on
// selection a roster id is minted elsewhere and back-filled into
// RosterPlayerID.
type Prospect struct {
	PlayerID           string             `json:"player_id" db:"player_id"`
	DraftClassID       string             `json:"draft_class_id" db:"draft_class_id"`
	FirstName          string             `json:"first_name" db:"first_name"`
	LastName           string             `json:"last_name" db:"last_name"`
	Position           string             `json:"position" db:"position"`
	Age                int                `json:"age" db:"age"`
	College            string             `json:"college" db:"college"`
	Archetype          string             `json:"archetype" db:"archetype"`
	DevelopmentCurve   DevelopmentCurve   `json:"development_curve" db:"development_curve"`
	TrueOverall        int                `json:"-" db:"true_overall"`
	ScoutedOverall     int                `json:"scouted_overall" db:"scouted_overall"`
	ScoutingConfidence ScoutingConfidence `json:"scouting_confidence" db:"scouting_confidence"`
	ProjectedPickMin   int                `json:"projected_pick_min" db:"projected_pick_min"`
	ProjectedPickMax   int                `json:"projected_pick_max" db:"projected_pick_max"`
	Attributes         map[string]int     `json:"attributes" db:"attributes"`
	IsDrafted          bool               `json:"is_drafted" db:"is_drafted"`
	DraftedByTeam      *int               `json:"drafted_by_team,omitempty" db:"drafted_by_team"`
	DraftedRound       *int               `json:"drafted_round,omitempty" db:"drafted_round"`
	DraftedPick        *int               `json:"drafted_pick,omitempty" db:"drafted_pick"`
	RosterPlayerID     *string            `json:"roster_player_id,omitempty" db:"roster_player_id"`
}

// Overall is the rating evaluation uses: the true overall, since the core
// plays the role of the league office rather than a scout with imperfect
// information. A human-facing projection surface would use ScoutedOverall
// instead.
func (p *Prospect) Overall() int {
	return p.TrueOverall
}

// DraftPick is the ownership ledger row for one slot in the draft order —
// distinct from the Prospect ultimately selected with it (spec.md §3).
type DraftPick struct {
	PickID           string  `json:"pick_id" db:"pick_id"`
	DynastyID        string  `json:"dynasty_id" db:"dynasty_id"`
	Season           int     `json:"season" db:"season"`
	Round            int     `json:"round" db:"round_number"`
	PickInRound      int     `json:"pick_in_round" db:"pick_in_round"`
	OverallPick      int     `json:"overall_pick" db:"overall_pick"`
	OriginalTeamID   int     `json:"original_owner_team" db:"original_team_id"`
	CurrentTeamID    int     `json:"current_owner_team" db:"current_team_id"`
	IsCompensatory   bool    `json:"is_compensatory" db:"is_compensatory"`
	AcquiredViaTrade bool    `json:"acquired_via_trade" db:"acquired_via_trade"`
	TradeID          *string `json:"trade_id,omitempty" db:"trade_id"`
	TradeDate        *Date   `json:"trade_date,omitempty" db:"-"`
	IsExecuted       bool    `json:"is_executed" db:"is_executed"`
	SelectedPlayerID *string `json:"selected_player_id,omitempty" db:"selected_player_id"`
}

// ApplyTrade transfers ownership of the pick. OriginalTeamID never changes
// (spec.md invariant 4) — only CurrentTeamID and trade metadata do.
func (p *DraftPick) ApplyTrade(newOwner int, tradeID string, tradeDate Date) {
	p.CurrentTeamID = newOwner
	p.AcquiredViaTrade = true
	p.TradeID = &tradeID
	p.TradeDate = &tradeDate
}

// TeamNeed is one entry of a team's positional-need board (spec.md §4.8).
type TeamNeed struct {
	Position string
	Urgency  int // 1..5, 5 = critical
}

// Progress reports how far a draft has advanced. Total is surfaced rather
// than assumed because the pick count is configurable (spec.md §9 Open
// Question 1).
type Progress struct {
	Total    int `json:"total"`
	Executed int `json:"executed"`
}

// IsComplete reports whether every pick in the draft has been executed.
func (p Progress) IsComplete() bool {
	return p.Total > 0 && p.Executed >= p.Total
}
