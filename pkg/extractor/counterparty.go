package extractor

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var (
	trailingDateRegex = regexp.MustCompile(`(?i)\s+on\s+\d+/\d+/\d+.*`)
	// UPI/P2A/839457076434/BADAL MEH/ICICI Ban -> counterparty is the
	// fourth slash-delimited segment.
	upiRegex        = regexp.MustCompile(`(?i)UPI/[^/]+/[^/]+/([^/]+)/`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

func (e *Extractor) Counterparty(body string) *string {
	for _, line := range toLines(body) {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(strings.ToLower(line), "to ") {
			counterparty := strings.TrimSpace(line[3:])
			counterparty = trailingDateRegex.ReplaceAllString(counterparty, "")

			return lo.ToPtr(counterparty)
		}

		if matches := upiRegex.FindStringSubmatch(line); len(matches) == 2 {
			counterparty := whitespaceRegex.ReplaceAllString(strings.TrimSpace(matches[1]), " ")

			return lo.ToPtr(counterparty)
		}

		if strings.Contains(strings.ToLower(line), "merchant") {
			parts := strings.Split(line, ":")
			if len(parts) > 1 {
				return lo.ToPtr(strings.TrimSpace(parts[1]))
			}
		}
	}

	return nil
}
