package cnj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSegments(t *testing.T) {
	c, err := Parse("0001234-55.2023.8.26.0100")
	require.NoError(t, err)

	assert.Equal(t, "0001234", c.Sequential)
	assert.Equal(t, "55", c.CheckDigits)
	assert.Equal(t, "2023", c.Year)
	assert.Equal(t, "8", c.Branch)
	assert.Equal(t, "26", c.Tribunal)
	assert.Equal(t, "0100", c.OriginUnit)
	assert.Equal(t, "00012345520238260100", c.Digits)
	assert.Equal(t, "0001234-55.2023.8.26.0100", c.Raw)
}

func TestParseSegmentsConcatenateToDigits(t *testing.T) {
	c, err := Parse("1000001-05.2024.5.02.0001")
	require.NoError(t, err)

	joined := c.Sequential + c.CheckDigits + c.Year + c.Branch + c.Tribunal + c.OriginUnit
	assert.Equal(t, c.Digits, joined)
	assert.Len(t, c.Digits, Length)
}

func TestParseWrongLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "nineteen digits", input: "0001234-55.2023.8.26.010"},
		{name: "twenty one digits", input: "0001234-55.2023.8.26.01000"},
		{name: "letters", input: "processo sem numero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			assert.ErrorIs(t, err, ErrWrongLength)
			assert.Equal(t, CaseNumber{}, c)
			assert.False(t, IsStructurallyValid(tt.input))
		})
	}
}

func TestIsStructurallyValid(t *testing.T) {
	assert.True(t, IsStructurallyValid("0001234-55.2023.8.26.0100"))
	assert.True(t, IsStructurallyValid("00012345520238260100"))
	assert.True(t, IsStructurallyValid("Proc. nº 0001234 55 2023 8 26 0100"))
}

func TestCanonicalRoundTrip(t *testing.T) {
	inputs := []string{
		"0001234-55.2023.8.26.0100",
		"00012345520238260100",
		" 0000832-35.2018.4.01.3202 ",
		"1000001/05/2024/5/02/0001",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Parse(input)
			require.NoError(t, err)

			canonical := Canonical(first)
			second, err := Parse(canonical)
			require.NoError(t, err)

			assert.True(t, first.Equal(second))
			assert.Equal(t, canonical, second.Raw)
			assert.Equal(t, canonical, second.String())

			// Every derived field matches; only Raw differs
			second.Raw = first.Raw
			assert.Equal(t, first, second)
		})
	}
}

func TestCanonicalFormat(t *testing.T) {
	c, err := Parse("00012345520238260100")
	require.NoError(t, err)
	assert.Equal(t, "0001234-55.2023.8.26.0100", c.String())
}

func TestNumericAccessors(t *testing.T) {
	c, err := Parse("0001234-55.2023.8.26.0100")
	require.NoError(t, err)

	assert.Equal(t, 8, c.BranchCode())
	assert.Equal(t, 26, c.TribunalCode())
	assert.Equal(t, 2023, c.YearValue())
	assert.Equal(t, "Justiça Estadual", c.BranchName())
}

func TestCheckDigits(t *testing.T) {
	valid, err := Parse("0000832-35.2018.4.01.3202")
	require.NoError(t, err)
	assert.Equal(t, "35", ComputeCheckDigits(valid))
	assert.True(t, valid.HasValidCheckDigits())

	// Structurally valid but with wrong DV: Parse still accepts it
	wrong, err := Parse("0001234-55.2023.8.26.0100")
	require.NoError(t, err)
	assert.Equal(t, "08", ComputeCheckDigits(wrong))
	assert.False(t, wrong.HasValidCheckDigits())

	assert.False(t, CaseNumber{}.HasValidCheckDigits())
}

func TestEqualIgnoresRaw(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"masked and bare", "0000832-35.2018.4.01.3202", "00008323520184013202", true},
		{"same text", "00008323520184013202", "00008323520184013202", true},
		{"different case", "0000832-35.2018.4.01.3202", "0001234-55.2023.8.26.0100", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.a)
			require.NoError(t, err)
			b, err := Parse(tt.b)
			require.NoError(t, err)

			assert.Equal(t, tt.want, a.Equal(b))
			assert.Equal(t, tt.want, b.Equal(a))
		})
	}
}
