package attributes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardakvanc11/fmtest-sub003/internal/attributes"
	"github.com/ardakvanc11/fmtest-sub003/internal/model"
	"github.com/ardakvanc11/fmtest-sub003/internal/random"
	"github.com/ardakvanc11/fmtest-sub003/internal/random/randomtest"
)

func allStats(s model.PlayerStats) []int {
	return []int{s.Pace, s.Shooting, s.Passing, s.Dribbling, s.Defending,
		s.Physical, s.Finishing, s.Heading, s.Corners, s.Stamina}
}

func TestGenerate_StatsWithinBounds(t *testing.T) {
	src, _ := random.New(11)
	positions := append([]model.Position{"XX"}, model.Positions...)
	for _, pos := range positions {
		for skill := 40; skill <= 99; skill++ {
			for _, v := range allStats(attributes.Generate(src, pos, skill)) {
				if v < model.MinStat || v > model.MaxStat {
					t.Fatalf("pos=%s skill=%d produced out-of-range stat %d", pos, skill, v)
				}
			}
		}
	}
}

func TestGenerate_ExtremeSkillIsClamped(t *testing.T) {
	src, _ := random.New(5)
	for _, v := range allStats(attributes.Generate(src, model.Striker, 500)) {
		assert.Equal(t, model.MaxStat, v)
	}
	for _, v := range allStats(attributes.Generate(src, model.Striker, -10)) {
		assert.Equal(t, model.MinStat, v)
	}
}

func TestGenerate_StrikerMultipliers(t *testing.T) {
	// Intn always returns the midpoint of the band, so the offset is zero.
	src := midpoint{}
	stats := attributes.Generate(src, model.Striker, 80)
	assert.Equal(t, 92, stats.Finishing) // 80 * 1.15
	assert.Equal(t, 24, stats.Defending) // 80 * 0.3
}

func TestGenerate_UnknownPositionIsNeutral(t *testing.T) {
	stats := attributes.Generate(midpoint{}, model.Position("??"), 70)
	for _, v := range allStats(stats) {
		assert.Equal(t, 70, v)
	}
}

func TestGenerate_VarianceBand(t *testing.T) {
	low := attributes.Generate(randomtest.Fixed{Int: 0}, model.Striker, 80)
	high := attributes.Generate(randomtest.Fixed{Int: 1 << 20}, model.Striker, 80)
	assert.Equal(t, 92-8, low.Finishing)
	assert.Equal(t, 99, high.Finishing)
	assert.Equal(t, 20, low.Defending) // 24-5 clamped up
	assert.Equal(t, 29, high.Defending)
}

// midpoint returns the centre of every [-v, v] band.
type midpoint struct{}

func (midpoint) Intn(n int) int   { return n / 2 }
func (midpoint) Float64() float64 { return 0.5 }
