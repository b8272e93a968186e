package oracle

import (
	"context"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"

	"github.com/skynet2/sms-transaction-importer/pkg/common"
)

type Gemini struct {
	cl    *genai.Client
	model string
}

func NewGemini(
	ctx context.Context,
	apiKey string,
	model string,
) (*Gemini, error) {
	cl, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	return &Gemini{
		cl:    cl,
		model: model,
	}, nil
}

func (g *Gemini) Name() string {
	return "gemini"
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := g.cl.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.1),
		MaxOutputTokens: 1000,
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.WithStack(common.ErrEmptyResponse)
	}

	return text, nil
}
