package numgen

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RogueDynamite/Justine/pkg/cmd"
)

func TestBounds_Validation(t *testing.T) {
	cases := []struct {
		name     string
		min, max int64
		ok       bool
	}{
		{"ordinary", 0, 6, true},
		{"negative", -10, -1, true},
		{"safe edges", cmd.MinSafeInteger, cmd.MaxSafeInteger, true},
		{"reversed", 6, 1, false},
		{"equal", 6, 6, false},
		{"max past safe range", cmd.MaxSafeInteger, cmd.MaxSafeInteger + 1, false},
		{"min past safe range", cmd.MinSafeInteger - 1, cmd.MinSafeInteger, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, uerr := NewUniform(tc.min, tc.max)
			_, cerr := NewCyclic(tc.min, tc.max)
			if tc.ok {
				assert.NoError(t, uerr)
				assert.NoError(t, cerr)
				return
			}
			var argErr *cmd.ArgumentError
			assert.ErrorAs(t, uerr, &argErr)
			assert.ErrorAs(t, cerr, &argErr)
		})
	}
}

func TestCyclic_CyclesThroughInclusiveRange(t *testing.T) {
	g, err := NewCyclic(0, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(0), g.Min())
	assert.Equal(t, int64(6), g.Max())

	for i := 0; i < 12; i++ {
		assert.Equal(t, int64(i%7), g.Next())
	}
}

func TestCyclic_SequenceFormula(t *testing.T) {
	const min, max = int64(-3), int64(4)
	g, err := NewCyclic(min, max)
	require.NoError(t, err)

	width := max - min + 1
	for i := int64(0); i < 50; i++ {
		assert.Equal(t, min+i%width, g.Next())
	}
}

func TestCyclic_WrapsAtSafeIntegerBoundary(t *testing.T) {
	start := cmd.MaxSafeInteger - 2
	g, err := NewCyclic(start, cmd.MaxSafeInteger)
	require.NoError(t, err)

	assert.Equal(t, start, g.Next())
	assert.Equal(t, start+1, g.Next())
	assert.Equal(t, start+2, g.Next())
	assert.Equal(t, start, g.Next())
}

func TestGenerate(t *testing.T) {
	g, err := NewCyclic(0, 6)
	require.NoError(t, err)

	nums, err := Generate(50, g)
	require.NoError(t, err)
	require.Len(t, nums, 50)
	for i, n := range nums {
		assert.Equal(t, int64(i%7), n)
	}
}

func TestGenerate_RejectsNonPositiveCount(t *testing.T) {
	g, err := NewCyclic(0, 6)
	require.NoError(t, err)

	for _, n := range []int{0, -1} {
		_, err := Generate(n, g)
		var argErr *cmd.ArgumentError
		assert.ErrorAs(t, err, &argErr)
	}
}

func TestUniform_StaysInHalfOpenRange(t *testing.T) {
	g, err := NewUniform(0, 6)
	require.NoError(t, err)

	nums, err := Generate(100, g)
	require.NoError(t, err)
	for _, n := range nums {
		assert.GreaterOrEqual(t, n, int64(0))
		assert.Less(t, n, int64(6))
	}
}

func TestUniform_HitsEveryValue(t *testing.T) {
	g, err := NewUniform(0, 6, WithSource(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)

	seen := map[int64]int{}
	for i := 0; i < 10000; i++ {
		seen[g.Next()]++
	}
	assert.Len(t, seen, 6)
	for v := int64(0); v < 6; v++ {
		assert.Positive(t, seen[v], "value %d never drawn", v)
	}
}

func TestUniform_SameSeedSameSequence(t *testing.T) {
	a, err := NewUniform(-50, 50, WithSource(rand.New(rand.NewPCG(7, 7))))
	require.NoError(t, err)
	b, err := NewUniform(-50, 50, WithSource(rand.New(rand.NewPCG(7, 7))))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestUniform_WideRangeDoesNotOverflow(t *testing.T) {
	g, err := NewUniform(cmd.MinSafeInteger, cmd.MaxSafeInteger)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		n := g.Next()
		assert.GreaterOrEqual(t, n, cmd.MinSafeInteger)
		assert.Less(t, n, cmd.MaxSafeInteger)
	}
}
