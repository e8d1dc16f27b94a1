// Package finance projects a club's monthly income and expense.
//
// All amounts are in millions. Nothing here mutates a team except Apply.
package finance

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/ardakvanc11/fmtest-sub003/internal/model"
	"github.com/ardakvanc11/fmtest-sub003/internal/random"
	"github.com/ardakvanc11/fmtest-sub003/internal/wage"
)

// Income categories.
const (
	Sponsor     = "sponsor"
	Merchandise = "merchandise"
	Trade       = "trade"
	Television  = "tv"
	Gate        = "gate"
	Transfers   = "transfers"
)

// Expense categories.
const (
	Wages       = "wages"
	Staff       = "staff"
	Upkeep      = "stadium_upkeep"
	Academy     = "academy"
	DebtService = "debt_service"
	Admin       = "admin"
)

// Tuning constants.
const (
	sponsorBase       = 2.0
	sponsorPerTrophy  = 0.5
	sponsorPerMFans   = 3.0
	merchPerMFans     = 0.8
	merchSwingLow     = 0.9
	merchSwingHigh    = 1.1
	EliteSkill        = 86
	eliteMerchBonus   = 0.15
	tradeShare        = 0.20
	tvBase            = 0.4
	tvPerPoint        = 0.02
	tvPivot           = 50
	tvFloor           = 0.1
	gateBase          = 0.05
	gatePerMFans      = 0.2
	staffShare        = 0.15
	upkeepPerKSeats   = 0.01
	academyPerPoint   = 0.005
	debtServiceShare  = 0.002
	AdminCost         = 0.25
	millionFans       = 1_000_000.0
	thousandSeats     = 1000.0
	ledgerKeyTemplate = "%04d-%02d"
)

// Input is everything a monthly projection reads.
type Input struct {
	Team        *model.Team
	Year        int
	Month       time.Month
	Day         int // sponsor income accrues through this day; <=0 or past month end means the whole month
	Matches     int
	HomeMatches int
	HomeNation  string

	Manager        *model.ManagerProfile
	IsManagersClub bool
}

// Flow is one month's projection.
type Flow struct {
	Income       map[string]float64 `json:"income"`
	Expense      map[string]float64 `json:"expense"`
	TotalIncome  float64            `json:"total_income"`
	TotalExpense float64            `json:"total_expense"`
	Net          float64            `json:"net"`
}

// LedgerKey is the manager ledger key for a month.
func LedgerKey(year int, month time.Month) string {
	return fmt.Sprintf(ledgerKeyTemplate, year, int(month))
}

// DaysIn returns the number of days in month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Monthly projects the flow for in.Team. A nil team yields an empty flow.
func Monthly(in Input) Flow {
	f := Flow{Income: map[string]float64{}, Expense: map[string]float64{}}
	t := in.Team
	if t == nil {
		return f
	}
	fans := float64(t.FanBase) / millionFans

	f.Income[Sponsor] = SponsorAnnual(t.Trophies.Total(), t.FanBase) / 12 * monthShare(in.Year, in.Month, in.Day)
	merch := fans*merchPerMFans*MerchandiseSwing(t.ID, in.Year, in.Month) + eliteMerchBonus*float64(eliteCount(t.Players))
	f.Income[Merchandise] = merch
	f.Income[Trade] = tradeShare * merch
	f.Income[Television] = float64(max(in.Matches, 0)) * TVPerMatch(t.Strength)
	f.Income[Gate] = float64(max(in.HomeMatches, 0)) * (gateBase + fans*gatePerMFans)

	wages := wage.Total(t.Players, in.HomeNation) / 12
	f.Expense[Wages] = wages
	f.Expense[Staff] = staffShare * wages
	f.Expense[Upkeep] = float64(t.StadiumCapacity) / thousandSeats * upkeepPerKSeats
	f.Expense[Academy] = float64(max(t.Strength, 0)) * academyPerPoint
	f.Expense[DebtService] = squadValue(t.Players) * debtServiceShare
	f.Expense[Admin] = AdminCost

	if in.IsManagersClub && in.Manager != nil {
		if e, ok := in.Manager.MonthlyLedger[LedgerKey(in.Year, in.Month)]; ok {
			f.Income[Transfers] = e.TransferIncome
			f.Expense[Transfers] = e.TransferSpend
		}
	}

	for _, v := range f.Income {
		f.TotalIncome += v
	}
	for _, v := range f.Expense {
		f.TotalExpense += v
	}
	f.Net = f.TotalIncome - f.TotalExpense
	return f
}

// SponsorAnnual is the yearly sponsorship for a club's trophy count and fan base.
func SponsorAnnual(trophies, fanBase int) float64 {
	return sponsorBase + sponsorPerTrophy*float64(max(trophies, 0)) + sponsorPerMFans*float64(max(fanBase, 0))/millionFans
}

// TVPerMatch is the broadcast fee for one match at the given visible strength.
func TVPerMatch(strength int) float64 {
	return max(tvFloor, tvBase+tvPerPoint*float64(strength-tvPivot))
}

// MerchandiseSwing is the monthly merchandise multiplier in [0.9, 1.1],
// stable for a given team and month.
func MerchandiseSwing(teamID string, year int, month time.Month) float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(teamID))
	seed := int64(h.Sum64()>>1) ^ int64(year*100+int(month))
	if seed == 0 {
		seed = 1
	}
	src, _ := random.New(seed)
	return random.Uniform(src, merchSwingLow, merchSwingHigh)
}

func monthShare(year int, month time.Month, day int) float64 {
	days := DaysIn(year, month)
	if day <= 0 || day >= days {
		return 1
	}
	return float64(day) / float64(days)
}

func eliteCount(players []model.Player) int {
	n := 0
	for _, p := range players {
		if p.Skill >= EliteSkill {
			n++
		}
	}
	return n
}

func squadValue(players []model.Player) float64 {
	var v float64
	for _, p := range players {
		v += p.Value
	}
	return v
}

// Apply books a flow into the team's records and budget.
func Apply(t *model.Team, f Flow) {
	if t.Finance.Income == nil {
		t.Finance.Income = map[string]float64{}
	}
	if t.Finance.Expense == nil {
		t.Finance.Expense = map[string]float64{}
	}
	for k, v := range f.Income {
		t.Finance.Income[k] += v
	}
	for k, v := range f.Expense {
		t.Finance.Expense[k] += v
	}
	t.Budget += f.Net
}
