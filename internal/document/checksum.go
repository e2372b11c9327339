package document

var (
	cpfFirstWeights   = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfSecondWeights  = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidateCPF validates an individual taxpayer number (11 digits)
func ValidateCPF(input string) Result {
	return validate(input, KindCPF, cpfFirstWeights, cpfSecondWeights)
}

// ValidateCNPJ validates a company registry number (14 digits)
func ValidateCNPJ(input string) Result {
	return validate(input, KindCNPJ, cnpjFirstWeights, cnpjSecondWeights)
}

func validate(input string, kind Kind, first, second []int) Result {
	cleaned := Clean(input)
	result := Result{Number: Number{Raw: input, Digits: cleaned, Kind: kind}}

	if len(cleaned) != kind.Length() {
		result.Reason = ReasonWrongLength
		return result
	}

	// Length already checked, Format cannot fail here
	result.Formatted, _ = Format(cleaned, kind)

	// Repeated sequences such as 111.111.111-11 satisfy the algebra but are never issued
	if isAllSameDigit(cleaned) {
		result.Reason = ReasonRepeatedDigits
		return result
	}

	digits := toInts(cleaned)
	base := len(first)
	if checkDigit(digits[:base], first) != digits[base] ||
		checkDigit(digits[:base+1], second) != digits[base+1] {
		result.Reason = ReasonInvalidCheckDigit
		return result
	}

	result.Valid = true
	return result
}

// CheckDigitsCPF returns the two check digits for a 9-digit CPF base
func CheckDigitsCPF(base string) (int, int, error) {
	return checkDigits(base, cpfFirstWeights, cpfSecondWeights)
}

// CheckDigitsCNPJ returns the two check digits for a 12-digit CNPJ base
func CheckDigitsCNPJ(base string) (int, int, error) {
	return checkDigits(base, cnpjFirstWeights, cnpjSecondWeights)
}

func checkDigits(base string, first, second []int) (int, int, error) {
	cleaned := Clean(base)
	if len(cleaned) != len(first) {
		return 0, 0, ErrWrongLength
	}

	digits := toInts(cleaned)
	d1 := checkDigit(digits, first)
	d2 := checkDigit(append(digits, d1), second)
	return d1, d2, nil
}

// checkDigit computes a modulo-11 check digit; remainders 10 and 11 become 0
func checkDigit(digits []int, weights []int) int {
	sum := 0
	for i, digit := range digits {
		sum += digit * weights[i]
	}

	remainder := (sum * 10) % 11
	if remainder >= 10 {
		return 0
	}
	return remainder
}

func isAllSameDigit(s string) bool {
	if len(s) == 0 {
		return false
	}

	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}

func toInts(s string) []int {
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		digits[i] = int(s[i] - '0')
	}
	return digits
}
