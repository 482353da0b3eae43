// Package openai はOpenAI Chat Completions APIを使用した補完クライアントを提供します。
package openai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/meguminnnnnnnnn/go-openai"

	"content_backend/internal/feature/factcheck/usecase"
)

const (
	// DefaultModel はOpenAI APIのデフォルトモデルです。
	DefaultModel = openai.GPT4o
)

// OpenAICompleter はOpenAI Chat Completions APIを使用してJSON形式の補完を生成します。
type OpenAICompleter struct {
	client *openai.Client
	model  string
}

// OpenAICompleterがCompleterを実装していることをコンパイル時に検証します。
var _ usecase.Completer = (*OpenAICompleter)(nil)

// NewOpenAICompleter は指定されたAPIキーでOpenAICompleterの新しいインスタンスを生成します。
func NewOpenAICompleter(apiKey string) (*OpenAICompleter, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	config := openai.DefaultConfig(apiKey)
	client := openai.NewClientWithConfig(config)
	return &OpenAICompleter{client: client, model: DefaultModel}, nil
}

// Complete はシステム指示と入力テキストからJSONレスポンスを生成します。
// response_formatでJSONオブジェクト形式のレスポンスを要求します。
func (o *OpenAICompleter) Complete(ctx context.Context, instruction, input string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: input},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai API returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
