package processor

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RunSummary aggregates the outcome of a single conversion run.
type RunSummary struct {
	Status             string `json:"status"`
	Message            string `json:"message"`
	TotalMessages      int    `json:"totalMessages"`
	ProcessedCount     int    `json:"processedCount"`
	FailedCount        int    `json:"failedCount"`
	OracleCallsMade    int    `json:"oracleCallsMade"`
	OracleCallsSkipped int    `json:"oracleCallsSkipped"`
}
