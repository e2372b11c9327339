// Package cnj parses the unified case number defined by the National Council
// of Justice (CNJ Resolution 65/2008): NNNNNNN-DD.AAAA.J.TR.OOOO.
package cnj

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
)

// Length is the number of digits in a case number
const Length = 20

// ErrWrongLength is returned when the input does not carry exactly 20 digits
var ErrWrongLength = errors.New("case number must have 20 digits")

var nonDigit = regexp.MustCompile(`\D`)

// CaseNumber is a case number split into its positional segments.
// Values are immutable once returned by Parse.
//
// Raw keeps the text handed to Parse, so two values for the same case can
// differ in Raw alone. Compare with Equal rather than ==.
type CaseNumber struct {
	Raw         string `json:"original"`
	Digits      string `json:"digits"`
	Sequential  string `json:"sequencial"`
	CheckDigits string `json:"digito_verificador"`
	Year        string `json:"ano"`
	Branch      string `json:"segmento"`
	Tribunal    string `json:"tribunal"`
	OriginUnit  string `json:"origem"`
}

// Parse strips punctuation and slices the 20 digits into segments.
// The check digits are not verified; see HasValidCheckDigits.
func Parse(input string) (CaseNumber, error) {
	digits := nonDigit.ReplaceAllString(input, "")
	if len(digits) != Length {
		return CaseNumber{}, fmt.Errorf("got %d: %w", len(digits), ErrWrongLength)
	}

	return CaseNumber{
		Raw:         input,
		Digits:      digits,
		Sequential:  digits[0:7],
		CheckDigits: digits[7:9],
		Year:        digits[9:13],
		Branch:      digits[13:14],
		Tribunal:    digits[14:16],
		OriginUnit:  digits[16:20],
	}, nil
}

// IsStructurallyValid reports whether Parse would succeed
func IsStructurallyValid(input string) bool {
	_, err := Parse(input)
	return err == nil
}

// String renders the canonical NNNNNNN-DD.AAAA.J.TR.OOOO form
func (c CaseNumber) String() string {
	return c.Sequential + "-" + c.CheckDigits + "." + c.Year + "." + c.Branch + "." + c.Tribunal + "." + c.OriginUnit
}

// Canonical is the function form of String. Parsing its output yields a
// value that is Equal to c; Raw then holds the canonical text.
func Canonical(c CaseNumber) string {
	return c.String()
}

// Equal reports whether both values denote the same case, ignoring Raw
func (c CaseNumber) Equal(other CaseNumber) bool {
	return c.Digits == other.Digits
}

// BranchCode returns the judicial segment (J) as an integer
func (c CaseNumber) BranchCode() int {
	n, _ := strconv.Atoi(c.Branch)
	return n
}

// TribunalCode returns the tribunal (TR) as an integer
func (c CaseNumber) TribunalCode() int {
	n, _ := strconv.Atoi(c.Tribunal)
	return n
}

// YearValue returns the filing year as an integer
func (c CaseNumber) YearValue() int {
	n, _ := strconv.Atoi(c.Year)
	return n
}

var branchNames = map[string]string{
	"1": "Supremo Tribunal Federal",
	"2": "Conselho Nacional de Justiça",
	"3": "Superior Tribunal de Justiça",
	"4": "Justiça Federal",
	"5": "Justiça do Trabalho",
	"6": "Justiça Eleitoral",
	"7": "Justiça Militar da União",
	"8": "Justiça Estadual",
	"9": "Justiça Militar Estadual",
}

// BranchName returns the name of the judicial segment, or "" for code 0
func (c CaseNumber) BranchName() string {
	return branchNames[c.Branch]
}

var ninetySeven = big.NewInt(97)

// ComputeCheckDigits returns the ISO 7064 mod 97-10 digits for the other
// segments of c, as published by the CNJ
func ComputeCheckDigits(c CaseNumber) string {
	value, ok := new(big.Int).SetString(c.Sequential+c.Year+c.Branch+c.Tribunal+c.OriginUnit+"00", 10)
	if !ok {
		return ""
	}

	remainder := new(big.Int).Mod(value, ninetySeven).Int64()
	return fmt.Sprintf("%02d", 98-remainder)
}

// HasValidCheckDigits reports whether the DD segment matches ComputeCheckDigits.
// Parse never calls it.
func (c CaseNumber) HasValidCheckDigits() bool {
	return c.CheckDigits != "" && ComputeCheckDigits(c) == c.CheckDigits
}
