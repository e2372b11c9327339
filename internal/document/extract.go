package document

import (
	"regexp"
	"sort"
)

var (
	maskedCNPJ = regexp.MustCompile(`\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}`)
	maskedCPF  = regexp.MustCompile(`\d{3}\.\d{3}\.\d{3}-\d{2}`)
	bareNumber = regexp.MustCompile(`\b(\d{14}|\d{11})\b`)
)

// ExtractFromText finds CPF and CNPJ numbers in free text, masked or not.
// Only numbers that pass validation are returned, once each, in order of appearance.
func ExtractFromText(text string) []Number {
	type match struct {
		start int
		value string
	}

	var matches []match
	for _, re := range []*regexp.Regexp{maskedCNPJ, maskedCPF, bareNumber} {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			// A mask inside a longer digit run is not a number of its own
			if touchesDigit(text, loc[0], loc[1]) {
				continue
			}
			matches = append(matches, match{start: loc[0], value: text[loc[0]:loc[1]]})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	seen := make(map[string]bool)
	var numbers []Number
	for _, m := range matches {
		result := Validate(m.value)
		if !result.Valid || seen[result.Digits] {
			continue
		}
		seen[result.Digits] = true
		numbers = append(numbers, result.Number)
	}
	return numbers
}

func touchesDigit(text string, start, end int) bool {
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }
	return (start > 0 && isDigit(text[start-1])) || (end < len(text) && isDigit(text[end]))
}
