// Package document validates and formats Brazilian taxpayer registry numbers
// (CPF for individuals, CNPJ for companies).
package document

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies which registry a number belongs to
type Kind int

const (
	KindUnknown Kind = iota
	KindCPF
	KindCNPJ
)

const (
	cpfLength  = 11
	cnpjLength = 14
)

// String returns the registry name
func (k Kind) String() string {
	switch k {
	case KindCPF:
		return "CPF"
	case KindCNPJ:
		return "CNPJ"
	default:
		return "UNKNOWN"
	}
}

// Length returns the digit count of the kind, or 0 for KindUnknown
func (k Kind) Length() int {
	switch k {
	case KindCPF:
		return cpfLength
	case KindCNPJ:
		return cnpjLength
	default:
		return 0
	}
}

// ParseKind maps "cpf"/"cnpj" (any case) to a Kind
func ParseKind(s string) Kind {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CPF":
		return KindCPF
	case "CNPJ":
		return KindCNPJ
	default:
		return KindUnknown
	}
}

// Reason is the failure code attached to an invalid Result
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonWrongLength       Reason = "WRONG_LENGTH"
	ReasonRepeatedDigits    Reason = "REPEATED_DIGITS"
	ReasonInvalidCheckDigit Reason = "INVALID_CHECK_DIGIT"
)

// ErrWrongLength is returned by Format when the digit count does not match the kind
var ErrWrongLength = errors.New("wrong number of digits")

// Number is a registry number as typed by the user and its digit-only form
type Number struct {
	Raw    string `json:"original"`
	Digits string `json:"digits"`
	Kind   Kind   `json:"kind"`
}

// Result is the outcome of a validation call
type Result struct {
	Number
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted,omitempty"`
	Reason    Reason `json:"reason,omitempty"`
}

var nonDigit = regexp.MustCompile(`\D`)

// Clean removes all non-numeric characters
func Clean(input string) string {
	return nonDigit.ReplaceAllString(input, "")
}

// Classify decides the kind from the digit count alone. Checksums are not computed.
func Classify(input string) Kind {
	switch len(Clean(input)) {
	case cpfLength:
		return KindCPF
	case cnpjLength:
		return KindCNPJ
	default:
		return KindUnknown
	}
}

// Validate classifies the input and runs the matching validator.
// Inputs that are neither 11 nor 14 digits long fail with ReasonWrongLength.
func Validate(input string) Result {
	switch Classify(input) {
	case KindCPF:
		return ValidateCPF(input)
	case KindCNPJ:
		return ValidateCNPJ(input)
	default:
		return Result{
			Number: Number{Raw: input, Digits: Clean(input), Kind: KindUnknown},
			Reason: ReasonWrongLength,
		}
	}
}

// ValidateAs runs the validator for an explicit kind
func ValidateAs(kind Kind, input string) Result {
	switch kind {
	case KindCPF:
		return ValidateCPF(input)
	case KindCNPJ:
		return ValidateCNPJ(input)
	default:
		return Validate(input)
	}
}

// Format applies the display mask for kind: 000.000.000-00 or 00.000.000/0000-00.
// Validity is not checked. Format panics if kind is not KindCPF or KindCNPJ.
func Format(digits string, kind Kind) (string, error) {
	if kind != KindCPF && kind != KindCNPJ {
		panic(fmt.Sprintf("document: cannot format kind %d", int(kind)))
	}

	cleaned := Clean(digits)
	if len(cleaned) != kind.Length() {
		return "", fmt.Errorf("%s with %d digits: %w", kind, len(cleaned), ErrWrongLength)
	}

	if kind == KindCPF {
		return cleaned[:3] + "." + cleaned[3:6] + "." + cleaned[6:9] + "-" + cleaned[9:11], nil
	}
	return cleaned[:2] + "." + cleaned[2:5] + "." + cleaned[5:8] + "/" + cleaned[8:12] + "-" + cleaned[12:14], nil
}

// MarshalText lets Kind render as its name in JSON payloads
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
