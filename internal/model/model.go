// Package model contains the plain records the simulation core consumes and produces.
// I keep it lean and focused on data shapes; behavior lives in the formula packages.
package model

// Position is a player's on-pitch role.
type Position string

const (
	Goalkeeper          Position = "GK"
	FullbackLeft        Position = "LB"
	FullbackRight       Position = "RB"
	CentreBack          Position = "CB"
	WingerLeft          Position = "LW"
	WingerRight         Position = "RW"
	CentralMidfielder   Position = "CM"
	AttackingMidfielder Position = "CAM"
	Striker             Position = "ST"
)

// Positions lists every known position in formation order.
var Positions = []Position{
	Goalkeeper, FullbackLeft, FullbackRight, CentreBack,
	WingerLeft, WingerRight, CentralMidfielder, AttackingMidfielder, Striker,
}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

// SquadStatus is a coarse role tag feeding the wage multiplier.
type SquadStatus string

const (
	StatusStar      SquadStatus = "STAR"
	StatusImportant SquadStatus = "IMPORTANT"
	StatusFirstXI   SquadStatus = "FIRST_XI"
	StatusRotation  SquadStatus = "ROTATION"
	StatusImpact    SquadStatus = "IMPACT"
	StatusJoker     SquadStatus = "JOKER"
	StatusSurplus   SquadStatus = "SURPLUS"
)

// Stat bounds shared by the generators and the invariant checks.
const (
	MinStat  = 20
	MaxStat  = 99
	MinSkill = 40
	MaxSkill = 99
)

// PlayerStats is the position-conditioned attribute block.
type PlayerStats struct {
	Pace      int `json:"pace" validate:"min=20,max=99"`
	Shooting  int `json:"shooting" validate:"min=20,max=99"`
	Passing   int `json:"passing" validate:"min=20,max=99"`
	Dribbling int `json:"dribbling" validate:"min=20,max=99"`
	Defending int `json:"defending" validate:"min=20,max=99"`
	Physical  int `json:"physical" validate:"min=20,max=99"`
	Finishing int `json:"finishing" validate:"min=20,max=99"`
	Heading   int `json:"heading" validate:"min=20,max=99"`
	Corners   int `json:"corners" validate:"min=20,max=99"`
	Stamina   int `json:"stamina" validate:"min=20,max=99"`
}

// Injury is a currently active injury.
type Injury struct {
	Type          string `json:"type"`
	TotalDays     int    `json:"total_days" validate:"min=0"`
	RemainingDays int    `json:"remaining_days" validate:"min=0,ltefield=TotalDays"`
	Description   string `json:"description"`
}

// InjuryRecord is one entry of a player's injury history.
type InjuryRecord struct {
	Type     string `json:"type"`
	Week     int    `json:"week"`
	Duration int    `json:"duration"`
}

// Face is the cosmetic appearance descriptor; it never affects gameplay.
type Face struct {
	Skin      int  `json:"skin"`
	Hair      int  `json:"hair"`
	HairColor int  `json:"hair_color"`
	Beard     int  `json:"beard"`  // 0 = none
	Tattoo    int  `json:"tattoo"` // 0 = none
	Freckles  bool `json:"freckles"`
}

// PlayerSeasonStats holds per-season counters, zero at creation.
type PlayerSeasonStats struct {
	Appearances   int     `json:"appearances"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	AverageRating float64 `json:"average_rating"`
}

// Player is a footballer owned by exactly one team.
type Player struct {
	ID                string            `json:"id" validate:"required"`
	Name              string            `json:"name" validate:"required"`
	Position          Position          `json:"position" validate:"required"`
	SecondaryPosition *Position         `json:"secondary_position,omitempty"`
	Skill             int               `json:"skill" validate:"min=40,max=99"`
	Stats             PlayerStats       `json:"stats"`
	Age               int               `json:"age" validate:"min=17"`
	Value             float64           `json:"value" validate:"min=0"`
	Nationality       string            `json:"nationality" validate:"required"`
	TeamID            string            `json:"team_id"`
	Jersey            string            `json:"jersey,omitempty"`
	Morale            int               `json:"morale" validate:"min=0,max=100"`
	Condition         int               `json:"condition" validate:"min=0,max=100"`
	InjuryProneness   int               `json:"injury_susceptibility" validate:"min=1,max=100"`
	Injury            *Injury           `json:"injury,omitempty"`
	InjuryHistory     []InjuryRecord    `json:"injury_history"`
	SquadStatus       *SquadStatus      `json:"squad_status,omitempty"`
	Wage              *float64          `json:"wage,omitempty"`
	Face              Face              `json:"face"`
	Season            PlayerSeasonStats `json:"season_stats"`
}

// HasSecondary reports whether the player carries a secondary position.
func (p Player) HasSecondary() bool {
	return p.SecondaryPosition != nil
}

// TeamSeasonStats holds league-table counters.
type TeamSeasonStats struct {
	Played       int `json:"played"`
	Won          int `json:"won"`
	Drawn        int `json:"drawn"`
	Lost         int `json:"lost"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
	LastRank     int `json:"last_rank,omitempty"`
}

// Points uses three for a win and one for a draw.
func (s TeamSeasonStats) Points() int {
	return 3*s.Won + s.Drawn
}

// GoalDifference is goals for minus goals against.
func (s TeamSeasonStats) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

// TrophyCounters counts the honours a club has won.
type TrophyCounters struct {
	League      int `json:"league"`
	DomesticCup int `json:"domestic_cup"`
	Continental int `json:"continental"`
	SuperCup    int `json:"super_cup"`
}

// Total is the sum of all trophy counters.
func (t TrophyCounters) Total() int {
	return t.League + t.DomesticCup + t.Continental + t.SuperCup
}

// FinanceRecords accumulates income and expense per category.
type FinanceRecords struct {
	Income  map[string]float64 `json:"income"`
	Expense map[string]float64 `json:"expense"`
}

// PendingTransfer is an agreed but not yet executed transfer.
type PendingTransfer struct {
	PlayerID string  `json:"player_id"`
	FromTeam string  `json:"from_team"`
	ToTeam   string  `json:"to_team"`
	Fee      float64 `json:"fee"`
	Week     int     `json:"week"`
}

// Team is a club together with the roster it exclusively owns.
type Team struct {
	ID               string            `json:"id" validate:"required"`
	Name             string            `json:"name" validate:"required"`
	Players          []Player          `json:"players"`
	Strength         int               `json:"strength"`
	RawStrength      float64           `json:"raw_strength"`
	StrengthDelta    float64           `json:"strength_delta"`
	Reputation       float64           `json:"reputation" validate:"min=0.1,max=5"`
	Budget           float64           `json:"budget"`
	WageBudget       float64           `json:"wage_budget"`
	FanBase          int               `json:"fan_base" validate:"min=0"`
	StadiumCapacity  int               `json:"stadium_capacity" validate:"min=0"`
	Stats            TeamSeasonStats   `json:"stats"`
	Trophies         TrophyCounters    `json:"trophies"`
	Finance          FinanceRecords    `json:"finance"`
	PendingTransfers []PendingTransfer `json:"pending_transfers"`
}

// ManagerStats breaks down a manager's career.
type ManagerStats struct {
	LeagueTitles    int     `json:"league_titles"`
	DomesticCups    int     `json:"domestic_cups"`
	ContinentalCups int     `json:"continental_cups"`
	TransferSpend   float64 `json:"transfer_spend"`
	TransferIncome  float64 `json:"transfer_income"`
	CareerEarnings  float64 `json:"career_earnings"`
	MatchesManaged  int     `json:"matches_managed"`
}

// ManagerContract is the manager's wage/contract record.
type ManagerContract struct {
	TeamID    string  `json:"team_id"`
	Wage      float64 `json:"wage"`
	ExpiresIn int     `json:"expires_in"` // seasons
}

// Trust holds the board and fan trust scores.
type Trust struct {
	Board   int `json:"board" validate:"min=0,max=100"`
	Fans    int `json:"fans" validate:"min=0,max=100"`
	Players int `json:"players" validate:"min=0,max=100"`
}

// Relation is a manager's rapport with a staff member or player.
type Relation struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// LedgerEntry is one month of the manager's transfer activity.
type LedgerEntry struct {
	TransferIncome float64 `json:"transfer_income"`
	TransferSpend  float64 `json:"transfer_spend"`
}

// ManagerProfile is the human manager's career record.
type ManagerProfile struct {
	Name            string                 `json:"name" validate:"required"`
	Age             int                    `json:"age"`
	Nationality     string                 `json:"nationality"`
	Power           int                    `json:"power"`
	Stats           ManagerStats           `json:"stats"`
	Contract        ManagerContract        `json:"contract"`
	Trust           Trust                  `json:"trust"`
	StaffRelations  []Relation             `json:"staff_relations"`
	PlayerRelations []Relation             `json:"player_relations"`
	MonthlyLedger   map[string]LedgerEntry `json:"monthly_ledger"`
}
