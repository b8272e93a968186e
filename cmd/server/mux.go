package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/skynet2/sms-transaction-importer/pkg/database"
	"github.com/skynet2/sms-transaction-importer/pkg/processor"
)

type Handler struct {
	converter Converter
	repo      DataRepo
	apiKey    string
}

func NewHandler(
	converter Converter,
	repo DataRepo,
	apiKey string,
) *Handler {
	return &Handler{
		converter: converter,
		repo:      repo,
		apiKey:    apiKey,
	}
}

func (h *Handler) authorized(r *http.Request) bool {
	return h.apiKey == r.URL.Query().Get("api_key")
}

func (h *Handler) SyncMessages(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var request smsSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Status:  processor.StatusError,
			Message: err.Error(),
		})
		return
	}

	if request.UserName == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Status:  processor.StatusError,
			Message: "user_name is required",
		})
		return
	}

	messages := make([]database.Message, 0, len(request.Messages))
	for _, sms := range request.Messages {
		messages = append(messages, database.Message{
			UserName:     request.UserName,
			SmsID:        sms.ID,
			Address:      sms.Address,
			Body:         sms.Body,
			DateReceived: sms.Date,
			CreatedAt:    time.Now().UTC(),
		})
	}

	if err := h.repo.AddMessages(r.Context(), messages); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to add messages")

		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Status:  processor.StatusError,
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, syncResponse{
		Accepted: len(messages),
	})
}

func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	summary, err := h.converter.ConvertAll(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("conversion run failed")

		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Status:  processor.StatusError,
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	messages, err := h.repo.GetMessages(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Status:  processor.StatusError,
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	transactions, err := h.repo.GetTransactions(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Status:  processor.StatusError,
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, transactions)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
