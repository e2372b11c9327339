package document

// Root returns the company root (first 8 digits) of a CNPJ, or "" when the
// input is not 14 digits long
func Root(cnpj string) string {
	cleaned := Clean(cnpj)
	if len(cleaned) != cnpjLength {
		return ""
	}
	return cleaned[:8]
}

// Branch returns the establishment number (digits 8-11) of a CNPJ
func Branch(cnpj string) string {
	cleaned := Clean(cnpj)
	if len(cleaned) != cnpjLength {
		return ""
	}
	return cleaned[8:12]
}

// IsHeadOffice reports whether the CNPJ identifies the head office (branch 0001)
func IsHeadOffice(cnpj string) bool {
	return Branch(cnpj) == "0001"
}

// SameRoot reports whether two CNPJs belong to the same company
func SameRoot(a, b string) bool {
	rootA, rootB := Root(a), Root(b)
	return rootA != "" && rootA == rootB
}
