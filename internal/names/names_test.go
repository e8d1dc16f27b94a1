package names_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardakvanc11/fmtest-sub003/internal/names"
	"github.com/ardakvanc11/fmtest-sub003/internal/random"
)

func TestDefault_Loads(t *testing.T) {
	p := names.Default()
	assert.Equal(t, "Türkiye", p.HomeNation)
	assert.NotEmpty(t, p.FirstNames)
	assert.NotEmpty(t, p.LastNames)
	assert.NotEmpty(t, p.Foreign)
	for _, f := range p.Foreign {
		assert.NotEqual(t, p.HomeNation, f.Nation, "foreign pool must not hold home players: %s", f.Name)
	}
}

func TestParse_RejectsEmptyPools(t *testing.T) {
	_, err := names.Parse([]byte("home_nation: X\nfirst_names: [A]\n"))
	require.ErrorIs(t, err, names.ErrEmptyPool)

	_, err = names.Parse([]byte(":::not yaml"))
	require.Error(t, err)
}

func TestHome_ComposesFirstAndLast(t *testing.T) {
	p, err := names.Parse([]byte(`
home_nation: Testland
first_names: [Ali]
last_names: [Veli]
foreign:
  - {name: John Doe, nation: Nowhere}
`))
	require.NoError(t, err)
	src, _ := random.New(1)
	assert.Equal(t, "Ali Veli", p.Home(src))
	assert.Equal(t, names.Foreigner{Name: "John Doe", Nation: "Nowhere"}, p.Abroad(src))
	assert.True(t, strings.Contains(p.Home(src), " "))
}
