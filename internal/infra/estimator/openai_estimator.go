// Package estimator implements the nutrition estimator against an
// OpenAI-compatible chat completions endpoint.
package estimator

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"nutriledger/config"
	"nutriledger/internal/domain/nutrition"
	"nutriledger/internal/domain/service"

	"github.com/sashabaranov/go-openai"
)

const defaultImageType = "image/jpeg"

// OpenAIEstimator never returns a transport error: failures are reported in
// band with the ERROR_* sentinels the validator recognises.
type OpenAIEstimator struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAIEstimator creates the estimator. Without an API key the client is
// left nil and every call answers ERROR_NO_KEY.
func NewOpenAIEstimator(cfg *config.Config, logger *slog.Logger) service.Estimator {
	est := &OpenAIEstimator{
		model:  cfg.Estimator.Model,
		logger: logger,
	}

	apiKey := strings.TrimSpace(cfg.Estimator.APIKey)
	if apiKey == "" {
		logger.Warn("Estimator API key not set; meal logging is disabled")

		return est
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.Estimator.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.Estimator.BaseURL, "/")
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Estimator.Timeout}
	est.client = openai.NewClientWithConfig(clientCfg)

	logger.Info("Initializing estimator client", slog.String("model", est.model))

	return est
}

// Estimate implements service.Estimator.
func (e *OpenAIEstimator) Estimate(ctx context.Context, req *service.EstimateRequest) (string, error) {
	if e.client == nil {
		return nutrition.SentinelNoKey, nil
	}

	chatReq := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			userMessage(req),
		},
	}
	if req.StrictJSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := e.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		e.logger.Error("Estimator call failed", slog.Any("error", err))

		return nutrition.SentinelErrorDetails + " " + err.Error(), nil
	}
	if len(resp.Choices) == 0 {
		e.logger.Warn("Estimator returned no choices")

		return nutrition.SentinelErrorDetails + " no choices returned", nil
	}

	e.logger.Debug("Received estimator response", slog.String("finish_reason", string(resp.Choices[0].FinishReason)))

	return resp.Choices[0].Message.Content, nil
}

func userMessage(req *service.EstimateRequest) openai.ChatCompletionMessage {
	prompt := BuildPrompt(req.Description, len(req.Image) > 0)
	if len(req.Image) == 0 {
		return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt}
	}

	imageType := req.ImageType
	if imageType == "" {
		imageType = defaultImageType
	}

	return openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    "data:" + imageType + ";base64," + base64.StdEncoding.EncodeToString(req.Image),
					Detail: openai.ImageURLDetailAuto,
				},
			},
			{Type: openai.ChatMessagePartTypeText, Text: prompt},
		},
	}
}
