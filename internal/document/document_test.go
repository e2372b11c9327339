package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{name: "masked cpf", input: "529.982.247-25", want: KindCPF},
		{name: "bare cpf", input: "52998224725", want: KindCPF},
		{name: "masked cnpj", input: "11.222.333/0001-81", want: KindCNPJ},
		{name: "cnpj with spaces", input: " 11 222 333 0001 81 ", want: KindCNPJ},
		{name: "ten digits", input: "123.456.789-0", want: KindUnknown},
		{name: "empty", input: "", want: KindUnknown},
		{name: "letters only", input: "abc", want: KindUnknown},
		{name: "invalid checksum still classified", input: "12345678901", want: KindCPF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
		})
	}
}

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		valid     bool
		reason    Reason
		formatted string
	}{
		{name: "valid masked", input: "529.982.247-25", valid: true, formatted: "529.982.247-25"},
		{name: "valid bare", input: "52998224725", valid: true, formatted: "529.982.247-25"},
		{name: "valid with remainder ten", input: "123.456.789-09", valid: true, formatted: "123.456.789-09"},
		{name: "first check digit flipped", input: "529.982.247-35", reason: ReasonInvalidCheckDigit, formatted: "529.982.247-35"},
		{name: "second check digit flipped", input: "529.982.247-26", reason: ReasonInvalidCheckDigit, formatted: "529.982.247-26"},
		{name: "repeated digits", input: "111.111.111-11", reason: ReasonRepeatedDigits, formatted: "111.111.111-11"},
		{name: "all zeros", input: "00000000000", reason: ReasonRepeatedDigits, formatted: "000.000.000-00"},
		{name: "ten digits", input: "123.456.789-0", reason: ReasonWrongLength},
		{name: "twelve digits", input: "123456789012", reason: ReasonWrongLength},
		{name: "cnpj given to cpf validator", input: "11.222.333/0001-81", reason: ReasonWrongLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCPF(tt.input)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Equal(t, tt.reason, result.Reason)
			assert.Equal(t, tt.formatted, result.Formatted)
			assert.Equal(t, KindCPF, result.Kind)
			assert.Equal(t, tt.input, result.Raw)
		})
	}
}

func TestValidateCPFScenario(t *testing.T) {
	result := ValidateCPF("12345678901")

	assert.False(t, result.Valid)
	assert.Equal(t, "123.456.789-01", result.Formatted)
	assert.Equal(t, ReasonInvalidCheckDigit, result.Reason)
	assert.Equal(t, "12345678901", result.Digits)
}

func TestValidateCNPJ(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		valid     bool
		reason    Reason
		formatted string
	}{
		{name: "valid masked", input: "11.222.333/0001-81", valid: true, formatted: "11.222.333/0001-81"},
		{name: "valid bare", input: "11444777000161", valid: true, formatted: "11.444.777/0001-61"},
		{name: "second check digit flipped", input: "11.222.333/0001-82", reason: ReasonInvalidCheckDigit, formatted: "11.222.333/0001-82"},
		{name: "repeated digits", input: "00.000.000/0000-00", reason: ReasonRepeatedDigits, formatted: "00.000.000/0000-00"},
		{name: "thirteen digits", input: "1122233300018", reason: ReasonWrongLength},
		{name: "cpf given to cnpj validator", input: "529.982.247-25", reason: ReasonWrongLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCNPJ(tt.input)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Equal(t, tt.reason, result.Reason)
			assert.Equal(t, tt.formatted, result.Formatted)
			assert.Equal(t, KindCNPJ, result.Kind)
		})
	}
}

func TestValidateCNPJSingleDigitChanges(t *testing.T) {
	const valid = "11222333000181"
	require.True(t, ValidateCNPJ(valid).Valid)

	for i := 0; i < len(valid); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if d == valid[i] {
				continue
			}
			altered := valid[:i] + string(d) + valid[i+1:]
			assert.False(t, ValidateCNPJ(altered).Valid, "altered %s should be invalid", altered)
		}
	}
}

func TestValidateCPFSingleDigitChanges(t *testing.T) {
	const valid = "52998224725"
	require.True(t, ValidateCPF(valid).Valid)

	for i := 0; i < len(valid); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if d == valid[i] {
				continue
			}
			altered := valid[:i] + string(d) + valid[i+1:]
			assert.False(t, ValidateCPF(altered).Valid, "altered %s should be invalid", altered)
		}
	}
}

func TestValidateDispatch(t *testing.T) {
	assert.True(t, Validate("529.982.247-25").Valid)
	assert.Equal(t, KindCPF, Validate("529.982.247-25").Kind)
	assert.True(t, Validate("11.222.333/0001-81").Valid)
	assert.Equal(t, KindCNPJ, Validate("11.222.333/0001-81").Kind)

	unknown := Validate("123")
	assert.False(t, unknown.Valid)
	assert.Equal(t, ReasonWrongLength, unknown.Reason)
	assert.Equal(t, KindUnknown, unknown.Kind)
	assert.Empty(t, unknown.Formatted)
}

func TestValidateAs(t *testing.T) {
	assert.Equal(t, ReasonWrongLength, ValidateAs(KindCNPJ, "52998224725").Reason)
	assert.True(t, ValidateAs(KindCPF, "52998224725").Valid)
	assert.True(t, ValidateAs(KindUnknown, "11222333000181").Valid)
}

func TestFormat(t *testing.T) {
	formatted, err := Format("12345678901", KindCPF)
	require.NoError(t, err)
	assert.Equal(t, "123.456.789-01", formatted)

	formatted, err = Format("11222333000181", KindCNPJ)
	require.NoError(t, err)
	assert.Equal(t, "11.222.333/0001-81", formatted)

	_, err = Format("1234567890", KindCPF)
	assert.ErrorIs(t, err, ErrWrongLength)

	_, err = Format("52998224725", KindCNPJ)
	assert.ErrorIs(t, err, ErrWrongLength)
}

func TestFormatPanicsOnUnknownKind(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = Format("52998224725", KindUnknown)
	})
	assert.Panics(t, func() {
		_, _ = Format("52998224725", Kind(42))
	})
}

func TestCheckDigits(t *testing.T) {
	d1, d2, err := CheckDigitsCPF("529982247")
	require.NoError(t, err)
	assert.Equal(t, 2, d1)
	assert.Equal(t, 5, d2)

	d1, d2, err = CheckDigitsCNPJ("112223330001")
	require.NoError(t, err)
	assert.Equal(t, 8, d1)
	assert.Equal(t, 1, d2)

	_, _, err = CheckDigitsCPF("12345")
	assert.ErrorIs(t, err, ErrWrongLength)
}

func TestKindHelpers(t *testing.T) {
	assert.Equal(t, "CPF", KindCPF.String())
	assert.Equal(t, "CNPJ", KindCNPJ.String())
	assert.Equal(t, "UNKNOWN", KindUnknown.String())
	assert.Equal(t, KindCPF, ParseKind("cpf"))
	assert.Equal(t, KindCNPJ, ParseKind(" CNPJ "))
	assert.Equal(t, KindUnknown, ParseKind("rg"))
}

func TestCNPJHelpers(t *testing.T) {
	assert.Equal(t, "11222333", Root("11.222.333/0001-81"))
	assert.Equal(t, "0001", Branch("11.222.333/0001-81"))
	assert.True(t, IsHeadOffice("11.222.333/0001-81"))
	assert.False(t, IsHeadOffice("11.222.333/0002-62"))
	assert.True(t, SameRoot("11.222.333/0001-81", "11222333000262"))
	assert.False(t, SameRoot("11.222.333/0001-81", "123"))
	assert.Empty(t, Root("123"))
}

func TestExtractFromText(t *testing.T) {
	text := "Autor CPF 529.982.247-25, ré 11.222.333/0001-81 e 11444777000161. " +
		"Inválido 123.456.789-01, repetido 52998224725."

	numbers := ExtractFromText(text)
	require.Len(t, numbers, 3)
	assert.Equal(t, "52998224725", numbers[0].Digits)
	assert.Equal(t, KindCPF, numbers[0].Kind)
	assert.Equal(t, "11222333000181", numbers[1].Digits)
	assert.Equal(t, KindCNPJ, numbers[1].Kind)
	assert.Equal(t, "11444777000161", numbers[2].Digits)

	assert.Empty(t, ExtractFromText("nenhum documento aqui"))
}

func TestExtractFromTextDigitBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"cpf mask inside digit run", "conta 91529.982.247-2577 agencia", nil},
		{"cnpj mask after digit", "ref 911.222.333/0001-81", nil},
		{"cnpj mask before digit", "ref 11.222.333/0001-810", nil},
		{"whole text", "529.982.247-25", []string{"52998224725"}},
		{"punctuation around", "cpf:529.982.247-25.", []string{"52998224725"}},
		{"adjacent masks", "529.982.247-25/111.444.777-35", []string{"52998224725", "11144477735"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, n := range ExtractFromText(tt.text) {
				got = append(got, n.Digits)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
