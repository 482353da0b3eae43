// Package usecase はfactcheckフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"content_backend/internal/feature/factcheck/domain/entity"
	"content_backend/internal/shared/ratelimiter"
)

const (
	// factCheckInstruction はファクトチェック用の固定システム指示です。
	factCheckInstruction = "You are a fact-checking expert. Analyze the given content for factual accuracy " +
		"and provide a score from 0-100, explanation, and suggestions for improvement. " +
		"Return the results in JSON format with keys \"score\", \"explanation\" and \"suggestions\"."

	// improveInstruction はコンテンツ改善提案用の固定システム指示です。
	improveInstruction = "You are a content improvement expert. Analyze the given content and suggest " +
		"improvements for clarity, engagement, and impact. " +
		"Return the results in JSON format with a \"suggestions\" array of strings."
)

// Completer は外部の補完サービスを抽象化します。
// 役割付きプロンプト（システム指示＋ユーザーテキスト）を受け取り、
// JSON形式のレスポンステキストを返します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type Completer interface {
	Complete(ctx context.Context, instruction, input string) (string, error)
}

// FactCheckUsecase は補完サービスへの委譲と、信頼できないレスポンスの
// 検証・正規化を実装します。呼び出し間で状態は保持しません。
type FactCheckUsecase struct {
	completer   Completer
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewFactCheckUsecase は新しい FactCheckUsecase を作成します。
func NewFactCheckUsecase(completer Completer, rateLimiter ratelimiter.RateLimiterInterface) *FactCheckUsecase {
	return &FactCheckUsecase{completer: completer, rateLimiter: rateLimiter}
}

// factCheckPayload はファクトチェックレスポンスの期待形状です。
// 必須フィールドの欠落を検出するためポインタで受けます。
type factCheckPayload struct {
	Score       *float64  `json:"score"`
	Explanation *string   `json:"explanation"`
	Suggestions *[]string `json:"suggestions"`
}

// suggestionsPayload は改善提案レスポンスの期待形状です。
type suggestionsPayload struct {
	Suggestions *[]string `json:"suggestions"`
}

// clampScore はスコアを[0,100]に丸め込みます。
// 範囲外の上流値を拒否せず補正するのは意図された観測可能な挙動です。
func clampScore(v float64) int {
	score := int(math.Round(v))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// complete はレートリミットを適用して補完サービスを1回呼び出します。
// リトライは行わず、失敗は即座にErrUpstreamとして返します。
func (u *FactCheckUsecase) complete(ctx context.Context, instruction, input string) (string, error) {
	u.rateLimiter.WaitIfNeeded()
	raw, err := u.completer.Complete(ctx, instruction, input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return raw, nil
}

// FactCheck は指定されたテキストのファクトチェックを実行し、
// 検証済みの結果を返します。
// レスポンスが期待形状でない場合はErrUpstreamFormat、
// 補完サービスの呼び出し自体が失敗した場合はErrUpstreamを返します。
func (u *FactCheckUsecase) FactCheck(ctx context.Context, text string) (*entity.FactCheckResult, error) {
	raw, err := u.complete(ctx, factCheckInstruction, text)
	if err != nil {
		return nil, err
	}

	var payload factCheckPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFormat, err)
	}
	if payload.Score == nil || payload.Explanation == nil || payload.Suggestions == nil {
		return nil, fmt.Errorf("%w: missing score, explanation or suggestions", ErrUpstreamFormat)
	}

	return &entity.FactCheckResult{
		Score:       clampScore(*payload.Score),
		Explanation: *payload.Explanation,
		Suggestions: *payload.Suggestions,
	}, nil
}

// SuggestImprovements は指定されたテキストに対する改善提案のリストを返します。
// エラーの変換規則はFactCheckと同様です。
func (u *FactCheckUsecase) SuggestImprovements(ctx context.Context, text string) ([]string, error) {
	raw, err := u.complete(ctx, improveInstruction, text)
	if err != nil {
		return nil, err
	}

	var payload suggestionsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFormat, err)
	}
	if payload.Suggestions == nil {
		return nil, fmt.Errorf("%w: missing suggestions", ErrUpstreamFormat)
	}

	return *payload.Suggestions, nil
}
