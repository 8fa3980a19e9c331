package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/builder"
)

// TestIDFns verifies each IDFn implementation both for correct outputs on valid inputs
// and for panics on invalid inputs.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},

		{"ExcelColumnIDFn_zero", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_endSingle", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_startDouble", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},

		{"SymbolNumberIDFn_v0", builder.SymbolNumberIDFn("v"), 0, "v0", false},
		{"SymbolNumberIDFn_page", builder.SymbolNumberIDFn("page-"), 17, "page-17", false},
		{"SymbolNumberIDFn_neg", builder.SymbolNumberIDFn("v"), -1, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				require.Panics(t, func() { _ = tc.fn(tc.input) })
				return
			}
			require.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestOptions_PanicOnNil checks that option constructors surface programmer
// errors immediately.
func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.NotPanics(t, func() { builder.WithRand(rand.New(rand.NewSource(1))) })
}

// TestOptions_LastWins verifies that later options override earlier ones.
func TestOptions_LastWins(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{
		builder.WithIDScheme(builder.SymbolIDFn),
		builder.WithIDScheme(builder.SymbolNumberIDFn("n")),
	}
	g, err := builder.BuildGraph(opts, builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, []string{"n0", "n1", "n2"}, g.Vertices())
}
