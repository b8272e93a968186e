package oracle

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"

	"github.com/skynet2/sms-transaction-importer/pkg/common"
)

// OpenAI talks to any OpenAI-compatible chat-completions endpoint and is
// used as the secondary oracle when the primary exhausts its retries.
type OpenAI struct {
	cl      *req.Client
	apiKey  string
	baseURL string
	model   string
}

func NewOpenAI(
	apiKey string,
	baseURL string,
	model string,
	cl *req.Client,
) *OpenAI {
	return &OpenAI{
		cl:      cl,
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
	}
}

func (o *OpenAI) Name() string {
	return "openai"
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	var apiResp chatResponse

	resp, err := o.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(o.apiKey).
		SetBody(chatRequest{
			Model: o.model,
			Messages: []chatMessage{
				{Role: "user", Content: prompt},
			},
			Temperature: 0.1,
			MaxTokens:   700,
		}).
		SetSuccessResult(&apiResp).
		Post(o.baseURL + "/v1/chat/completions")
	if err != nil {
		return "", errors.WithStack(err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", errors.Wrapf(common.ErrRateLimited, "body=%s", resp.String())
	}

	if resp.IsErrorState() {
		return "", errors.Newf("got error response: %s", resp.String())
	}

	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		return "", errors.WithStack(common.ErrEmptyResponse)
	}

	return apiResp.Choices[0].Message.Content, nil
}
