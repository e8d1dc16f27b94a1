// Package odds converts two team strengths into three-way match probabilities
// and bookmaker prices.
package odds

import "math"

// Pricing constants.
const (
	HomeAdvantage = 5.0
	Overround     = 1.12
	MinPrice      = 1.01
	MaxPrice      = 999.99
	baseDraw      = 0.15
	drawSpread    = 0.15
)

// Odds holds the implied probabilities and the prices offered.
type Odds struct {
	HomeProb float64 `json:"home_prob"`
	DrawProb float64 `json:"draw_prob"`
	AwayProb float64 `json:"away_prob"`
	Home     float64 `json:"home"`
	Draw     float64 `json:"draw"`
	Away     float64 `json:"away"`
}

// Calculate prices a fixture. Negative strengths count as zero.
func Calculate(homeStrength, awayStrength float64) Odds {
	h := math.Max(homeStrength, 0) + HomeAdvantage
	a := math.Max(awayStrength, 0)

	ratio := 1.0
	if hi := math.Max(h, a); hi > 0 {
		ratio = math.Min(h, a) / hi
	}
	draw := baseDraw + drawSpread*ratio
	rest := 1 - draw

	homeP, awayP := rest/2, rest/2
	if h+a > 0 {
		homeP = rest * h / (h + a)
		awayP = rest * a / (h + a)
	}
	return Odds{
		HomeProb: homeP,
		DrawProb: draw,
		AwayProb: awayP,
		Home:     Price(homeP),
		Draw:     Price(draw),
		Away:     Price(awayP),
	}
}

// Price turns a probability into a decimal price with the bookmaker margin.
func Price(p float64) float64 {
	if p <= 0 {
		return MaxPrice
	}
	price := Overround / p
	price = math.Max(MinPrice, math.Min(MaxPrice, price))
	return math.Round(price*100) / 100
}
