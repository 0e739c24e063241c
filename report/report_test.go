package report_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvroute/report"
	"github.com/katalvlaran/lvroute/symbol"
	"github.com/katalvlaran/lvroute/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abcSymbols(t *testing.T) *symbol.Table {
	t.Helper()
	syms := symbol.NewTable()
	for _, n := range []string{"A", "B", "C"} {
		_, err := syms.Intern(n)
		require.NoError(t, err)
	}

	return syms
}

func TestText(t *testing.T) {
	res := tsp.Result{
		Minimum:   50,
		Winners:   [][]symbol.Location{{1, 0, 2}, {2, 0, 1}},
		Evaluated: 6,
	}
	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, res, abcSymbols(t)))
	assert.Equal(t, "Lowest cost 50, journeys [[B A C] [C A B]]\n", buf.String())
}

func TestTable(t *testing.T) {
	res := tsp.Result{
		Minimum:   50,
		Winners:   [][]symbol.Location{{1, 0, 2}},
		Evaluated: 6,
	}
	var buf bytes.Buffer
	require.NoError(t, report.Table(&buf, res, abcSymbols(t)))
	assert.Equal(t, "cost 50, 1 optimal journey(s), 6 evaluated\n  1. B → A → C\n", buf.String())
}

func TestFormat_UnknownLocation(t *testing.T) {
	res := tsp.Result{Winners: [][]symbol.Location{{9}}}
	_, err := report.Format(res, abcSymbols(t))
	require.ErrorIs(t, err, symbol.ErrUnknownLocation)

	var buf bytes.Buffer
	require.ErrorIs(t, report.Table(&buf, res, abcSymbols(t)), symbol.ErrUnknownLocation)
}

func TestFormat_Trivial(t *testing.T) {
	syms := symbol.NewTable()
	s, err := report.Format(tsp.Result{Minimum: 0, Winners: [][]symbol.Location{{}}}, syms)
	require.NoError(t, err)
	assert.Equal(t, "Lowest cost 0, journeys [[]]", s)
}
