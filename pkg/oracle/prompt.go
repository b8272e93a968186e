package oracle

import "fmt"

const promptTemplate = `
Extract financial transaction information from this SMS:

Address: %s
Message: %s

Return ONLY a JSON object with these fields:
{
    "bank": "bank name (HDFC, AXIS, SBI, etc.)",
    "amount": "numeric amount without currency symbols",
    "transaction_type": "debited, credited, or other",
    "merchant": "other party involved in the transaction (shop, business, service, or individual), or null if not a transaction"
}

Rules:
- Extract bank from address patterns (AX-HDFCBK-S means HDFC, VM-HDFCBK-S means HDFC)
- Amount should be just the number (36.00 not Rs.36.00)
- "transaction_type" rules:
    * "debited" ONLY if the message clearly confirms money was sent, paid, withdrawn, deducted, or spent from the account.
    * "credited" ONLY if the message clearly confirms money was received, deposited, or added to the account.
    * "other" if ANY of these are true:
        - The message is promotional, informational, or about future/potential transactions.
        - The message contains any of these keywords (case-insensitive):
          ["invest", "FD", "fixed deposit", "loan offer", "book now", "apply now", "mandate created", "mandate has been created", "towards", "scheduled", "will be", "authorization", "pre-approved", "OTP", "reminder"].
        - The message does not explicitly confirm that money has already moved.
- Merchant should only be extracted if the message is a confirmed debit or credit transaction. For non-transaction messages, set merchant to null.
- Use null for missing data
- Return ONLY valid JSON, no other text

Example: {"bank": "HDFC", "amount": 36.00, "transaction_type": "debited", "merchant": "BMTC BUS KA57F2456"}
`

// BuildPrompt renders the extraction prompt for a single message. The
// direction rules intentionally mirror the rule-based exclusion
// vocabulary so both layers agree on what counts as a transaction.
func BuildPrompt(body string, address string) string {
	return fmt.Sprintf(promptTemplate, address, body)
}
