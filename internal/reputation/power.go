package reputation

import (
	"math"

	"github.com/ardakvanc11/fmtest-sub003/internal/model"
)

// Manager power constants.
const (
	BasePower       = 50.0
	leagueTitleBase = 3.0
	domesticCupBase = 1.0
)

// tieredMultipliers damp repeated titles; occurrences past the list use tailMultiplier.
var tieredMultipliers = []float64{1.50, 1.20, 1.00, 0.80, 0.60, 0.45, 0.35}

const tailMultiplier = 0.25

// continentalSchedule is the fixed gain for the 1st, 2nd, 3rd continental cup.
var continentalSchedule = []float64{9, 3, 2}

const continentalTail = 1.0

func tiered(n int, base float64) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		m := tailMultiplier
		if i < len(tieredMultipliers) {
			m = tieredMultipliers[i]
		}
		sum += base * m
	}
	return sum
}

// ManagerPower scores a career from its trophy breakdown.
func ManagerPower(s model.ManagerStats) int {
	power := BasePower
	power += tiered(s.LeagueTitles, leagueTitleBase)
	power += tiered(s.DomesticCups, domesticCupBase)
	for i := 0; i < s.ContinentalCups; i++ {
		if i < len(continentalSchedule) {
			power += continentalSchedule[i]
		} else {
			power += continentalTail
		}
	}
	return int(math.Round(power))
}

// RefreshManagerPower recomputes and stores the manager's power.
func RefreshManagerPower(m *model.ManagerProfile) int {
	m.Power = ManagerPower(m.Stats)
	return m.Power
}
