package oracle_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/imroc/req/v3"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/skynet2/sms-transaction-importer/pkg/common"
	"github.com/skynet2/sms-transaction-importer/pkg/oracle"
)

func TestOpenAIGenerate(t *testing.T) {
	cl := req.DefaultClient()
	httpmock.ActivateNonDefault(cl.GetClient())
	defer httpmock.DeactivateAndReset()

	apiKey := "test-api-key"
	client := oracle.NewOpenAI(apiKey, "https://example.com", "gpt-4o-mini", cl)

	httpmock.RegisterResponder(
		"POST",
		"https://example.com/v1/chat/completions",
		func(request *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer "+apiKey, request.Header.Get("Authorization"))

			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"choices": []map[string]interface{}{
					{
						"message": map[string]interface{}{
							"role":    "assistant",
							"content": `{"bank": "HDFC"}`,
						},
					},
				},
			})
		})

	text, err := client.Generate(context.TODO(), "prompt")
	assert.NoError(t, err)
	assert.Equal(t, `{"bank": "HDFC"}`, text)
}

func TestOpenAIGenerateRateLimited(t *testing.T) {
	cl := req.DefaultClient()
	httpmock.ActivateNonDefault(cl.GetClient())
	defer httpmock.DeactivateAndReset()

	client := oracle.NewOpenAI("key", "https://example.com", "gpt-4o-mini", cl)

	httpmock.RegisterResponder(
		"POST",
		"https://example.com/v1/chat/completions",
		httpmock.NewStringResponder(429, `{"error": "rate limit"}`))

	_, err := client.Generate(context.TODO(), "prompt")
	assert.ErrorIs(t, err, common.ErrRateLimited)
	assert.Equal(t, oracle.KindRateLimited, oracle.ClassifyError(err))
}

func TestOpenAIGenerateEmptyChoices(t *testing.T) {
	cl := req.DefaultClient()
	httpmock.ActivateNonDefault(cl.GetClient())
	defer httpmock.DeactivateAndReset()

	client := oracle.NewOpenAI("key", "https://example.com", "gpt-4o-mini", cl)

	httpmock.RegisterResponder(
		"POST",
		"https://example.com/v1/chat/completions",
		httpmock.NewStringResponder(200, `{"choices": []}`))

	_, err := client.Generate(context.TODO(), "prompt")
	assert.ErrorIs(t, err, common.ErrEmptyResponse)
}
