package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/gorilla/mux"
	"github.com/imroc/req/v3"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skynet2/sms-transaction-importer/pkg/extractor"
	"github.com/skynet2/sms-transaction-importer/pkg/oracle"
	"github.com/skynet2/sms-transaction-importer/pkg/processor"
	"github.com/skynet2/sms-transaction-importer/pkg/repo"
)

func main() {
	var cfg configuration
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse configuration")
	}

	dataRepo := buildRepo(cfg)
	oracleSvc := buildOracle(cfg)

	processorSvc := processor.NewProcessor(
		dataRepo,
		extractor.NewExtractor(),
		oracleSvc,
	)

	handler := NewHandler(processorSvc, dataRepo, cfg.APIKey)

	r := mux.NewRouter()
	r.Use(loggerMiddleware)
	r.HandleFunc("/api/sms/sync", handler.SyncMessages).Methods(http.MethodPost)
	r.HandleFunc("/api/convert", handler.Convert).Methods(http.MethodPost)
	r.HandleFunc("/api/messages", handler.GetMessages).Methods(http.MethodGet)
	r.HandleFunc("/api/transactions", handler.GetTransactions).Methods(http.MethodGet)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.ListenAddr,
		WriteTimeout: 120 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("listening")

	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

func buildRepo(cfg configuration) DataRepo {
	switch strings.ToLower(cfg.StoreBackend) {
	case "cosmos":
		client, err := azcosmos.NewClientFromConnectionString(cfg.CosmoConnectionString, nil)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create cosmos client")
		}

		cosmoRepo, err := repo.NewCosmo(client, cfg.CosmoDbName)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create cosmos repo")
		}

		return cosmoRepo
	default:
		db, err := gorm.Open(postgres.Open(cfg.PostgresConnectionString), &gorm.Config{})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}

		pgRepo, err := repo.NewPostgres(db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create postgres repo")
		}

		return pgRepo
	}
}

func buildOracle(cfg configuration) *oracle.Adapter {
	var clients []oracle.Client

	if cfg.GeminiApiKey != "" {
		gemini, err := oracle.NewGemini(context.Background(), cfg.GeminiApiKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create gemini client")
		}

		clients = append(clients, gemini)
	}

	if cfg.OpenAiApiKey != "" {
		clients = append(clients, oracle.NewOpenAI(
			cfg.OpenAiApiKey,
			cfg.OpenAiBaseURL,
			cfg.OpenAiModel,
			req.DefaultClient(),
		))
	}

	if len(clients) == 0 {
		log.Warn().Msg("no oracle configured, running rule-based extraction only")
	}

	return oracle.NewAdapter(
		oracle.NewRateLimiter(cfg.OracleMinRequestDelay),
		oracle.RetryPolicy{
			MaxAttempts: cfg.OracleMaxAttempts,
			BackoffBase: cfg.OracleBackoffBase,
		},
		cfg.OracleRequestTimeout,
		clients...,
	)
}

func loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(log.Logger.WithContext(r.Context())))
	})
}
