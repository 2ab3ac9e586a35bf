package numbering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stamps(start, n int) []Decision {
	out := make([]Decision, n)
	for i := range out {
		out[i] = Stamp(start + i)
	}
	return out
}

func TestSequence_NoExclusions(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 100} {
		for _, start := range []int{1, 0, -3, 42} {
			got := Decisions(Indices(n), Config{Start: start})
			assert.Equal(t, stamps(start, n), got, "n=%d start=%d", n, start)
		}
	}
}

func TestSequence_Scenario(t *testing.T) {
	cfg := Config{
		Start:  1,
		Ignore: NewPageSet(2),
		Skip:   NewPageSet(4),
	}

	got := Decisions(Indices(5), cfg)
	assert.Equal(t, []Decision{Stamp(1), Stamp(2), Skip(), Stamp(3), Skip()}, got)
}

func TestSequence_IgnoreDoesNotConsume(t *testing.T) {
	base := Decisions(Indices(6), Config{Start: 1})
	got := Decisions(Indices(6), Config{Start: 1, Ignore: NewPageSet(1, 3)})

	assert.True(t, got[1].IsSkip())
	assert.True(t, got[3].IsSkip())
	assert.Equal(t, Stamp(2), got[2])
	assert.Equal(t, Stamp(3), got[4])
	assert.Equal(t, Stamp(4), got[5])
	assert.Equal(t, base[0], got[0])
}

func TestSequence_SkipConsumes(t *testing.T) {
	got := Decisions(Indices(4), Config{Start: 10, Skip: NewPageSet(1)})

	assert.Equal(t, []Decision{Stamp(10), Skip(), Stamp(12), Stamp(13)}, got)
}

func TestSequence_IgnoreWinsOverSkip(t *testing.T) {
	cfg := Config{
		Start:  1,
		Ignore: NewPageSet(0),
		Skip:   NewPageSet(0),
	}

	got := Decisions(Indices(3), cfg)
	assert.Equal(t, []Decision{Skip(), Stamp(1), Stamp(2)}, got)
}

func TestSequence_OutOfRangeIndicesAreIgnored(t *testing.T) {
	cfg := Config{
		Start:  1,
		Ignore: NewPageSet(-1, 99),
		Skip:   NewPageSet(3, -7),
	}

	got := Decisions(Indices(3), cfg)
	assert.Equal(t, stamps(1, 3), got)
}

func TestSequence_MatchesByIndexNotPosition(t *testing.T) {
	pages := []Index{5, 6, 7}
	got := Decisions(pages, Config{Start: 1, Ignore: NewPageSet(0, 6)})

	assert.Equal(t, []Decision{Stamp(1), Skip(), Stamp(2)}, got)
}

func TestSequence_Restartable(t *testing.T) {
	pages := Indices(5)
	seq := Sequence(pages, Config{Start: 3, Skip: NewPageSet(1), Ignore: NewPageSet(3)})

	var first, second []Decision
	for _, d := range seq {
		first = append(first, d)
	}
	for _, d := range seq {
		second = append(second, d)
	}

	require.Len(t, first, len(pages))
	assert.Equal(t, first, second)
}

func TestSequence_EarlyBreak(t *testing.T) {
	var seen []Index
	for page := range Sequence(Indices(10), Config{Start: 1}) {
		seen = append(seen, page)
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []Index{0, 1, 2}, seen)
}

func TestDecision_Accessors(t *testing.T) {
	n, ok := Stamp(7).Number()
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	assert.Equal(t, "Stamp(7)", Stamp(7).String())

	_, ok = Skip().Number()
	assert.False(t, ok)
	assert.True(t, Skip().IsSkip())
	assert.Equal(t, "Skip", Skip().String())
}

func TestPageSet(t *testing.T) {
	s := PagesFromOneBased(3, 1, 3)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(3))
	assert.Equal(t, []int{0, 2}, s.Sorted())

	var empty PageSet
	assert.False(t, empty.Contains(0))
	assert.Empty(t, empty.Sorted())
}
