package extractor

import (
	"strings"

	"github.com/samber/lo"
)

type bankTokens struct {
	name   string
	tokens []string
}

// Declaration order matters: the first bank whose token is found in the
// uppercased address wins.
var bankTable = []bankTokens{
	{name: "HDFC", tokens: []string{"HDFC", "HDFCBK"}},
	{name: "AXIS", tokens: []string{"AXIS", "AXISBK"}},
	{name: "SBI", tokens: []string{"SBI", "SBIIN"}},
	{name: "ICICI", tokens: []string{"ICICI", "ICICIB"}},
	{name: "KOTAK", tokens: []string{"KOTAK", "KOTAKB"}},
	{name: "PNB", tokens: []string{"PNB", "PNBIN"}},
	{name: "BOB", tokens: []string{"BOB", "BOBCARD"}},
	{name: "CANARA", tokens: []string{"CANARA", "CANBK"}},
	{name: "UNION", tokens: []string{"UNION", "UBIN"}},
	{name: "IDBI", tokens: []string{"IDBI", "IDBIB"}},
}

func (e *Extractor) Bank(address string) *string {
	if address == "" {
		return nil
	}

	upper := strings.ToUpper(address)

	for _, bank := range bankTable {
		for _, token := range bank.tokens {
			if strings.Contains(upper, token) {
				return lo.ToPtr(bank.name)
			}
		}
	}

	return nil
}
