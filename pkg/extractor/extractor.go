package extractor

import "strings"

type Extractor struct {
}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(body string, address string) Fields {
	return Fields{
		Bank:         e.Bank(address),
		Amount:       e.Amount(body),
		Direction:    e.Direction(body),
		Counterparty: e.Counterparty(body),
	}
}

func toLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	return strings.Split(input, "\n")
}
