package tribunal

import (
	"fmt"
	"strings"
)

// DataJudBaseURL is the public DataJud search API of the CNJ
const DataJudBaseURL = "https://api-publica.datajud.cnj.jus.br"

// Judicial branch codes (J segment)
const (
	BranchSTF           = 1
	BranchCNJ           = 2
	BranchSTJ           = 3
	BranchFederal       = 4
	BranchLabor         = 5
	BranchElectoral     = 6
	BranchMilitaryUnion = 7
	BranchState         = 8
	BranchStateMilitary = 9
)

// States in TR order for the state and electoral branches
var states = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS", "MG", "PA",
	"PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC", "SE", "SP", "TO",
}

// DataJudEndpoint builds the search URL for a DataJud index alias, e.g. "tjsp"
func DataJudEndpoint(alias string) string {
	return fmt.Sprintf("%s/api_publica_%s/_search", DataJudBaseURL, strings.ToLower(alias))
}

// DefaultEntries returns the built-in court table
func DefaultEntries() []Entry {
	entries := []Entry{
		// The STF does not publish its cases on DataJud
		{Key: Key{BranchSTF, 0}, Identifier: "STF"},
		{Key: Key{BranchSTJ, 0}, Identifier: "STJ", Endpoint: DataJudEndpoint("stj")},
		{Key: Key{BranchLabor, 0}, Identifier: "TST", Endpoint: DataJudEndpoint("tst")},
		{Key: Key{BranchElectoral, 0}, Identifier: "TSE", Endpoint: DataJudEndpoint("tse")},
		{Key: Key{BranchMilitaryUnion, 0}, Identifier: "STM", Endpoint: DataJudEndpoint("stm")},
		{Key: Key{BranchStateMilitary, 13}, Identifier: "TJMMG", Endpoint: DataJudEndpoint("tjmmg")},
		{Key: Key{BranchStateMilitary, 21}, Identifier: "TJMRS", Endpoint: DataJudEndpoint("tjmrs")},
		{Key: Key{BranchStateMilitary, 26}, Identifier: "TJMSP", Endpoint: DataJudEndpoint("tjmsp")},
	}

	for tr := 1; tr <= 6; tr++ {
		id := fmt.Sprintf("TRF%d", tr)
		entries = append(entries, Entry{Key: Key{BranchFederal, tr}, Identifier: id, Endpoint: DataJudEndpoint(id)})
	}

	for tr := 1; tr <= 24; tr++ {
		id := fmt.Sprintf("TRT%d", tr)
		entries = append(entries, Entry{Key: Key{BranchLabor, tr}, Identifier: id, Endpoint: DataJudEndpoint(id)})
	}

	for i, uf := range states {
		tr := i + 1

		tj := "TJ" + uf
		if uf == "DF" {
			tj = "TJDFT"
		}
		entries = append(entries, Entry{Key: Key{BranchState, tr}, Identifier: tj, Endpoint: DataJudEndpoint(tj)})

		tre := "TRE-" + uf
		entries = append(entries, Entry{Key: Key{BranchElectoral, tr}, Identifier: tre, Endpoint: DataJudEndpoint(tre)})
	}

	return entries
}
