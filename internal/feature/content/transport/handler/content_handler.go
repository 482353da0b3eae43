// Package handler はcontentフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"content_backend/internal/api"
	"content_backend/internal/feature/content/domain/entity"
	"content_backend/internal/feature/content/transport/http/dto"
	"content_backend/internal/feature/content/usecase"
	jwtmw "content_backend/internal/platform/jwt"
)

// ContentUsecase はコンテンツ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ContentUsecase interface {
	Create(ctx context.Context, authorID uint, title, body, status string) (*entity.Content, error)
	Get(ctx context.Context, id, callerID uint) (*entity.Content, error)
	List(ctx context.Context, callerID uint) ([]entity.Content, error)
	Update(ctx context.Context, id, callerID uint, fields usecase.UpdateFields) (*entity.Content, error)
	Delete(ctx context.Context, id, callerID uint) error
}

// ContentHandler はコンテンツのHTTPリクエストを処理します。
type ContentHandler struct {
	uc ContentUsecase
}

// NewContentHandler は指定されたusecaseでContentHandlerの新しいインスタンスを生成します。
func NewContentHandler(uc ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// toResponse はドメインエンティティをAPIレスポンス型に変換します。
func toResponse(c *entity.Content) api.ContentResponse {
	return api.ContentResponse{
		ID:             c.ID,
		Title:          c.Title,
		Content:        c.Body,
		AuthorID:       c.AuthorID,
		Status:         c.Status,
		FactCheckScore: c.FactCheckScore,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// writeError はusecaseのセンチネルエラーをHTTPステータスに対応付けます。
// 存在チェックが所有者チェックより先に行われるため、存在しないIDは常に404、
// 他人の既存コンテンツは403になります。
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrContentNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "content not found"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "forbidden"})
	default:
		slog.Error("content operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

// parseID はパスパラメータのコンテンツIDをパースします。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid content id"})
		return 0, false
	}
	return uint(id), true
}

// List は認証済みユーザーが所有するコンテンツの一覧を返します。
//
// エンドポイント例:
// GET /contents
func (h *ContentHandler) List(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	contents, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]api.ContentResponse, 0, len(contents))
	for i := range contents {
		out = append(out, toResponse(&contents[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create は認証済みユーザーを所有者として新しいコンテンツを作成します。
// バリデーションエラー時は400、成功時は201を返却します。
func (h *ContentHandler) Create(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	var req dto.CreateContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create content validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "title and content are required"})
		return
	}
	created, err := h.uc.Create(c.Request.Context(), userID, req.Title, req.Content, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	slog.Info("content created", "content_id", created.ID, "user_id", userID)
	c.JSON(http.StatusCreated, toResponse(created))
}

// Get はIDで指定されたコンテンツを返します。
// 存在しない場合は404、他人のコンテンツの場合は403を返却します。
func (h *ContentHandler) Get(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := parseID(c)
	if !ok {
		return
	}
	content, err := h.uc.Get(c.Request.Context(), id, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(content))
}

// Update はIDで指定されたコンテンツを部分更新します。
// リクエストに含まれるフィールドのみが適用されます。
func (h *ContentHandler) Update(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update content validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	updated, err := h.uc.Update(c.Request.Context(), id, userID, usecase.UpdateFields{
		Title:  req.Title,
		Body:   req.Content,
		Status: req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	slog.Info("content updated", "content_id", id, "user_id", userID)
	c.JSON(http.StatusOK, toResponse(updated))
}

// Delete はIDで指定されたコンテンツを完全に削除します。
// 成功時は204を返却します。存在しないIDの削除は404で失敗します。
func (h *ContentHandler) Delete(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id, userID); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("content deleted", "content_id", id, "user_id", userID)
	c.Status(http.StatusNoContent)
}
