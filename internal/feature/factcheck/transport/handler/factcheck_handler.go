// Package handler はfactcheckフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"content_backend/internal/api"
	contententity "content_backend/internal/feature/content/domain/entity"
	contentusecase "content_backend/internal/feature/content/usecase"
	"content_backend/internal/feature/factcheck/domain/entity"
	"content_backend/internal/feature/factcheck/transport/http/dto"
	"content_backend/internal/feature/factcheck/usecase"
	jwtmw "content_backend/internal/platform/jwt"
)

// FactCheckUsecase はファクトチェック操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type FactCheckUsecase interface {
	FactCheck(ctx context.Context, text string) (*entity.FactCheckResult, error)
	SuggestImprovements(ctx context.Context, text string) ([]string, error)
}

// ScoreAttacher はファクトチェック結果のスコアをコンテンツに保存する操作を定義します。
// スコアの保存は呼び出し元レベルの付加機能であり、所有者チェックはcontentフィーチャー側で行われます。
type ScoreAttacher interface {
	AttachFactCheckScore(ctx context.Context, id, callerID uint, score int) (*contententity.Content, error)
}

// FactCheckHandler はファクトチェックのHTTPリクエストを処理します。
type FactCheckHandler struct {
	uc     FactCheckUsecase
	scores ScoreAttacher
}

// NewFactCheckHandler は指定されたusecaseでFactCheckHandlerの新しいインスタンスを生成します。
func NewFactCheckHandler(uc FactCheckUsecase, scores ScoreAttacher) *FactCheckHandler {
	return &FactCheckHandler{uc: uc, scores: scores}
}

// writeUpstreamError は上流エラーをHTTPステータスに対応付けます。
// 上流の失敗はリクエスト単位の回復可能なエラーであり、プロセスを停止させません。
func writeUpstreamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUpstreamFormat):
		slog.Warn("completion response unparseable", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrUpstream):
		slog.Warn("completion request failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("fact check failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

// FactCheck はテキストのファクトチェックAPIエンドポイントを処理します。
//
// エンドポイント例:
// POST /fact-check {"content": "...", "content_id": 1}
//
// content_idが指定された場合、スコアを該当コンテンツに保存します。
// 保存時の存在・所有者チェックはコンテンツ取得と同じ規則（404→403の順）です。
func (h *FactCheckHandler) FactCheck(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	var req dto.FactCheckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "content is required"})
		return
	}

	result, err := h.uc.FactCheck(c.Request.Context(), req.Content)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	// スコアの保存は任意の付加機能。対象コンテンツの検証は content 側の規則に従う。
	if req.ContentID != nil {
		if _, err := h.scores.AttachFactCheckScore(c.Request.Context(), *req.ContentID, userID, result.Score); err != nil {
			switch {
			case errors.Is(err, contentusecase.ErrContentNotFound):
				c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "content not found"})
			case errors.Is(err, contentusecase.ErrForbidden):
				c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "forbidden"})
			default:
				slog.Error("failed to attach fact check score", "error", err, "content_id", *req.ContentID)
				c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
			}
			return
		}
		slog.Info("fact check score attached", "content_id", *req.ContentID, "score", result.Score, "user_id", userID)
	}

	c.JSON(http.StatusOK, api.FactCheckResponse{
		Score:       result.Score,
		Explanation: result.Explanation,
		Suggestions: result.Suggestions,
	})
}

// Suggest はコンテンツ改善提案APIエンドポイントを処理します。
//
// エンドポイント例:
// POST /suggest {"content": "..."}
func (h *FactCheckHandler) Suggest(c *gin.Context) {
	var req dto.SuggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "content is required"})
		return
	}

	suggestions, err := h.uc.SuggestImprovements(c.Request.Context(), req.Content)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.SuggestionsResponse{Suggestions: suggestions})
}
