package main

import "time"

type configuration struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	APIKey     string `envconfig:"API_KEY" required:"true"`

	StoreBackend             string `envconfig:"STORE_BACKEND" default:"postgres"`
	PostgresConnectionString string `envconfig:"POSTGRES_CONNECTION_STRING"`
	CosmoConnectionString    string `envconfig:"COSMO_DB_CONNECTION_STRING"`
	CosmoDbName              string `envconfig:"COSMO_DB_NAME" default:"smssync"`

	GeminiApiKey string `envconfig:"GEMINI_APIKEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`

	OpenAiApiKey  string `envconfig:"OPENAI_APIKEY"`
	OpenAiBaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com"`
	OpenAiModel   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`

	OracleRequestTimeout  time.Duration `envconfig:"ORACLE_REQUEST_TIMEOUT" default:"30s"`
	OracleMinRequestDelay time.Duration `envconfig:"ORACLE_MIN_REQUEST_DELAY" default:"2s"`
	OracleMaxAttempts     int           `envconfig:"ORACLE_MAX_ATTEMPTS" default:"2"`
	OracleBackoffBase     time.Duration `envconfig:"ORACLE_BACKOFF_BASE" default:"5s"`
}

type smsData struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
	Body    string `json:"body"`
	Date    int64  `json:"date"`
	Type    int    `json:"type"`
}

type smsSyncRequest struct {
	UserName string    `json:"user_name"`
	Messages []smsData `json:"messages"`
}

type syncResponse struct {
	Accepted int `json:"accepted"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
