package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardakvanc11/fmtest-sub003/internal/finance"
	"github.com/ardakvanc11/fmtest-sub003/internal/model"
)

func wagePtr(v float64) *float64 { return &v }

func sampleTeam() *model.Team {
	return &model.Team{
		ID:              "club-1",
		Name:            "Deniz Spor",
		Strength:        75,
		FanBase:         2_000_000,
		StadiumCapacity: 40_000,
		Budget:          50,
		Trophies:        model.TrophyCounters{League: 2, DomesticCup: 2},
		Players: []model.Player{
			{ID: "p1", Skill: 88, Value: 20, Wage: wagePtr(12)},
			{ID: "p2", Skill: 70, Value: 10, Wage: wagePtr(6)},
		},
	}
}

func sampleInput() finance.Input {
	return finance.Input{
		Team:        sampleTeam(),
		Year:        2025,
		Month:       time.June,
		Day:         15,
		Matches:     4,
		HomeMatches: 2,
		HomeNation:  "Türkiye",
	}
}

func TestMonthly_Categories(t *testing.T) {
	f := finance.Monthly(sampleInput())

	assert.InDelta(t, 10.0/12*0.5, f.Income[finance.Sponsor], 1e-9)
	assert.InDelta(t, 3.6, f.Income[finance.Television], 1e-9)
	assert.InDelta(t, 0.9, f.Income[finance.Gate], 1e-9)
	assert.InDelta(t, 0.2*f.Income[finance.Merchandise], f.Income[finance.Trade], 1e-9)

	swing := finance.MerchandiseSwing("club-1", 2025, time.June)
	assert.InDelta(t, 1.6*swing+0.15, f.Income[finance.Merchandise], 1e-9)

	assert.InDelta(t, 1.5, f.Expense[finance.Wages], 1e-9)
	assert.InDelta(t, 0.225, f.Expense[finance.Staff], 1e-9)
	assert.InDelta(t, 0.4, f.Expense[finance.Upkeep], 1e-9)
	assert.InDelta(t, 0.375, f.Expense[finance.Academy], 1e-9)
	assert.InDelta(t, 0.06, f.Expense[finance.DebtService], 1e-9)
	assert.InDelta(t, finance.AdminCost, f.Expense[finance.Admin], 1e-9)
	assert.InDelta(t, 2.81, f.TotalExpense, 1e-9)

	assert.InDelta(t, f.TotalIncome-f.TotalExpense, f.Net, 1e-9)
	_, hasTransfers := f.Income[finance.Transfers]
	assert.False(t, hasTransfers)
}

func TestMonthly_SponsorProration(t *testing.T) {
	in := sampleInput()
	in.Day = 0
	full := finance.Monthly(in).Income[finance.Sponsor]
	in.Day = 31
	assert.InDelta(t, full, finance.Monthly(in).Income[finance.Sponsor], 1e-9)
	in.Day = 10
	assert.InDelta(t, full/3, finance.Monthly(in).Income[finance.Sponsor], 1e-9)
}

func TestMerchandiseSwing(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		s := finance.MerchandiseSwing("club-1", 2025, m)
		assert.GreaterOrEqual(t, s, 0.9)
		assert.Less(t, s, 1.1)
		assert.Equal(t, s, finance.MerchandiseSwing("club-1", 2025, m))
	}
}

func TestMonthly_TransfersOnlyForManagersClub(t *testing.T) {
	mgr := &model.ManagerProfile{
		Name: "Hoca",
		MonthlyLedger: map[string]model.LedgerEntry{
			"2025-06": {TransferIncome: 5, TransferSpend: 3},
		},
	}
	in := sampleInput()
	in.Manager = mgr

	other := finance.Monthly(in)
	in.IsManagersClub = true
	own := finance.Monthly(in)

	assert.InDelta(t, 5.0, own.Income[finance.Transfers], 1e-9)
	assert.InDelta(t, 3.0, own.Expense[finance.Transfers], 1e-9)
	assert.InDelta(t, other.Net+2, own.Net, 1e-9)

	in.Month = time.July
	_, ok := finance.Monthly(in).Income[finance.Transfers]
	assert.False(t, ok)
}

func TestMonthly_NilTeam(t *testing.T) {
	f := finance.Monthly(finance.Input{})
	assert.Empty(t, f.Income)
	assert.Zero(t, f.Net)
}

func TestTVPerMatch_Floor(t *testing.T) {
	assert.InDelta(t, 0.1, finance.TVPerMatch(20), 1e-9)
	assert.InDelta(t, 1.2, finance.TVPerMatch(90), 1e-9)
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, finance.DaysIn(2024, time.February))
	assert.Equal(t, 28, finance.DaysIn(2025, time.February))
	assert.Equal(t, 31, finance.DaysIn(2025, time.December))
}

func TestApply(t *testing.T) {
	team := sampleTeam()
	f := finance.Monthly(sampleInput())
	finance.Apply(team, f)
	finance.Apply(team, f)

	require.NotNil(t, team.Finance.Income)
	assert.InDelta(t, 2*f.Income[finance.Television], team.Finance.Income[finance.Television], 1e-9)
	assert.InDelta(t, 2*f.Expense[finance.Wages], team.Finance.Expense[finance.Wages], 1e-9)
	assert.InDelta(t, 50+2*f.Net, team.Budget, 1e-9)
}

func TestLedgerKey(t *testing.T) {
	assert.Equal(t, "2025-06", finance.LedgerKey(2025, time.June))
}
