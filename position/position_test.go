package position_test

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundayezeilo/positions/position"
)

func TestBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		opts     []position.Option
		expected string
	}{
		{name: "single digit between", start: "b", end: "d", expected: "c"},
		{name: "digit directly between", start: "b", end: "f", expected: "d"},
		{name: "fixed factor", start: "b", end: "f", opts: []position.Option{position.WithFactor(0.2)}, expected: "c"},
		{name: "factor function", start: "b", end: "f", opts: []position.Option{position.WithFactorFunc(func() float64 { return 0.2 })}, expected: "c"},
		{name: "random factor with one candidate", start: "b", end: "d", opts: []position.Option{position.WithFactorFunc(rand.Float64)}, expected: "c"},
		{name: "leftmost with factor zero", start: "b", end: "f", opts: []position.Option{position.WithFactorFunc(func() float64 { return 0 })}, expected: "c"},
		{name: "rightmost with factor function one", start: "b", end: "f", opts: []position.Option{position.WithFactorFunc(func() float64 { return 1 })}, expected: "e"},
		{name: "rightmost with fixed factor one", start: "b", end: "f", opts: []position.Option{position.WithFactor(1)}, expected: "e"},
		{name: "end digit when end continues", start: "b", end: "fb", opts: []position.Option{position.WithFactorFunc(func() float64 { return 1 })}, expected: "f"},
		{name: "rightmost with factor just under one", start: "b", end: "f", opts: []position.Option{position.WithFactorFunc(func() float64 { return 0.9999 })}, expected: "e"},
		{name: "open start", start: "", end: "c", expected: "b"},
		{name: "open end", start: "y", end: "", expected: "z"},
		{name: "both open", start: "", end: "", expected: "n"},
		{name: "shorter result", start: "aab", end: "cab", expected: "b"},
		{name: "never ends in a", start: "", end: "b", expected: "an"},
		{name: "adds digits after z", start: "z", end: "", expected: "zn"},
		{name: "keeps equal digits", start: "aab", end: "acb", expected: "ab"},
		{name: "uses leading digits of start", start: "ab", end: "b", expected: "an"},
		{name: "uses leading digits of end when shorter", start: "az", end: "bc", expected: "b"},
		{name: "start longer than end", start: "zzzz", end: "", expected: "zzzzn"},
		{name: "end longer than start", start: "", end: "aaab", expected: "aaaan"},
		{name: "default blocklist", start: "asr", end: "ast", expected: "asrn"},
		{name: "blocked while recursing", start: "test", end: "tesu", opts: []position.Option{position.WithBlocked(position.Words("testn"))}, expected: "testm"},
		{name: "shorter extension below end", start: "az", end: "bc", opts: []position.Option{position.WithBlocked(position.Words("b"))}, expected: "bb"},
		{name: "no room below an a-only remainder", start: "a", end: "ba", opts: []position.Option{position.WithBlocked(position.Words("b"))}, expected: "an"},
		{name: "nil blocklist blocks nothing", start: "asr", end: "ast", opts: []position.Option{position.WithBlocked(nil)}, expected: "ass"},
		{name: "exclusive of one overrides fixed factor", start: "b", end: "f", opts: []position.Option{position.WithFactor(0.5), position.WithInclusiveOfOne(false)}, expected: "d"},
		{name: "inclusive of one overrides factor function", start: "b", end: "f", opts: []position.Option{position.WithFactorFunc(func() float64 { return 0.5 }), position.WithInclusiveOfOne(true)}, expected: "d"},
		{name: "end with trailing a", start: "b", end: "ca", expected: "bn"},
		{name: "open start, end with trailing a", start: "", end: "ba", expected: "an"},
		{name: "end padded past start", start: "az", end: "baa", expected: "azn"},
		{name: "adjacent digits before trailing a", start: "vj", end: "wa", expected: "vr"},
		{name: "factor above one is clamped", start: "b", end: "f", opts: []position.Option{position.WithFactor(7)}, expected: "e"},
		{name: "negative factor is clamped", start: "b", end: "f", opts: []position.Option{position.WithFactor(-1)}, expected: "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := position.Between(tt.start, tt.end, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBetween_BlockedForms(t *testing.T) {
	forms := map[string]position.Blocklist{
		"words":  position.Words("potty"),
		"keys":   position.Keys(map[string]int{"potty": 1}),
		"func":   position.BlockFunc(func(v string) bool { return v == "potty" }),
		"regexp": position.Pattern(regexp.MustCompile(`potty`)),
	}

	for name, blocked := range forms {
		t.Run(name, func(t *testing.T) {
			got, err := position.Between("pottx", "pottz", position.WithBlocked(blocked))
			require.NoError(t, err)
			assert.Equal(t, "pottxn", got)
		})
	}
}

func TestBetween_EndRemainderOfOnlyA(t *testing.T) {
	// Nothing fits below "caaa" within "c", so every candidate extends start.
	for _, opts := range [][]position.Option{
		nil,
		{position.WithFactor(0)},
		{position.WithFactor(1)},
		{position.WithBlocked(position.Words("bn"))},
	} {
		got, err := position.Between("b", "caaa", opts...)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "b"), "Between(b, caaa) = %q", got)
		assert.Negative(t, position.Compare("b", got))
		assert.Negative(t, position.Compare(got, "caaa"))
	}
}

func TestBetween_InvalidArguments(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "start after end", start: "d", end: "b"},
		{name: "equal bounds", start: "b", end: "b"},
		{name: "equal after padding", start: "baa", end: "b"},
		{name: "illegal character in start", start: "A", end: "b"},
		{name: "illegal character in end", start: "b", end: "{"},
		{name: "digits in start", start: "a1", end: ""},
		{name: "end of only a", start: "", end: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, opts := range [][]position.Option{
				nil,
				{position.WithFactor(1)},
				{position.WithFactorFunc(rand.Float64), position.WithBlocked(position.None)},
			} {
				_, err := position.Between(tt.start, tt.end, opts...)
				require.ErrorIs(t, err, position.ErrInvalidArguments)
			}
		})
	}
}

func TestBetween_Ordering(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	randomPosition := func() string {
		var b strings.Builder
		for range 1 + rng.IntN(5) {
			b.WriteByte(byte('a' + rng.IntN(26)))
		}
		return b.String()
	}

	for i := 0; i < 2000; i++ {
		start, end := randomPosition(), randomPosition()
		switch position.Compare(start, end) {
		case 0:
			continue
		case 1:
			start, end = end, start
		}
		if i%5 == 0 {
			start = ""
		}
		if i%7 == 0 {
			end = ""
		}
		if end != "" && position.Compare(start, end) >= 0 {
			continue
		}

		got, err := position.Between(start, end, position.WithFactorFunc(rng.Float64))
		require.NoError(t, err, "Between(%q, %q)", start, end)

		assert.Negative(t, position.Compare(start, got), "Between(%q, %q) = %q", start, end, got)
		if end != "" {
			assert.Negative(t, position.Compare(got, end), "Between(%q, %q) = %q", start, end, got)
		}
		assert.False(t, strings.HasSuffix(got, "a"), "Between(%q, %q) = %q ends in a", start, end, got)
		assert.False(t, position.DefaultBlocklist().Contains(got), "Between(%q, %q) = %q is blocked", start, end, got)
		assert.NoError(t, position.Validate(got))
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"b", "baa", 0},
		{"", "a", 0},
		{"ab", "b", -1},
		{"zz", "z", 1},
		{"abc", "abd", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, position.Compare(tt.a, tt.b))
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, position.Validate("abc"))
	assert.ErrorIs(t, position.Validate(""), position.ErrInvalidArguments)
	assert.ErrorIs(t, position.Validate("aB"), position.ErrInvalidArguments)
	assert.ErrorIs(t, position.Validate("a-b"), position.ErrInvalidArguments)
}

func TestGenerator(t *testing.T) {
	gen := position.New(position.WithFactor(0), position.WithBlocked(position.Words("c")))

	got, err := gen.Between("b", "f")
	require.NoError(t, err)
	assert.Equal(t, "d", got)

	got, err = gen.Between("b", "f", position.WithFactor(1))
	require.NoError(t, err, "per-call options apply after generator options")
	assert.Equal(t, "e", got)

	list, err := gen.N(2, "b", "e")
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NotContains(t, list, "c")

	assert.True(t, gen.Blocklist().Contains("c"))
	assert.False(t, gen.Blocklist().Contains("ass"), "WithBlocked replaces the default list")
}

func BenchmarkBetween(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := position.Between("pottx", "potu"); err != nil {
			b.Fatalf("Between() error: %v", err)
		}
	}
}

func BenchmarkBetween_Random(b *testing.B) {
	opt := position.WithFactorFunc(rand.Float64)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := position.Between("", "", opt); err != nil {
			b.Fatalf("Between() error: %v", err)
		}
	}
}
