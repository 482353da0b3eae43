// Package gemini はGoogle Gemini APIを使用した補完クライアントを提供します。
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"content_backend/internal/feature/factcheck/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// GeminiCompleter はGoogle Gemini APIを使用してJSON形式の補完を生成します。
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

// GeminiCompleterがCompleterを実装していることをコンパイル時に検証します。
var _ usecase.Completer = (*GeminiCompleter)(nil)

// NewGeminiCompleter はADCを使用してGeminiCompleterの新しいインスタンスを生成します。
// 環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION が必要です。
func NewGeminiCompleter(ctx context.Context) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiCompleter{client: client, model: DefaultModel}, nil
}

// Complete はシステム指示と入力テキストからJSONレスポンスを生成します。
// ResponseMIMETypeでJSON形式のレスポンスを要求します。
func (g *GeminiCompleter) Complete(ctx context.Context, instruction, input string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(input), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
