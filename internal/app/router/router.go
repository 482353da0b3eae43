package router

import (
	authhandler "content_backend/internal/feature/auth/transport/handler"
	contenthandler "content_backend/internal/feature/content/transport/handler"
	factcheckhandler "content_backend/internal/feature/factcheck/transport/handler"
	"content_backend/internal/platform/http/handler"
	jwtmw "content_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(auth *authhandler.AuthHandler, contents *contenthandler.ContentHandler,
	factcheck *factcheckhandler.FactCheckHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	authGroup := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	authGroup.Use(jwtmw.AuthRequired())
	{
		authGroup.GET("/me", auth.Me)

		authGroup.GET("/contents", contents.List)
		authGroup.POST("/contents", contents.Create)
		authGroup.GET("/contents/:id", contents.Get)
		authGroup.PATCH("/contents/:id", contents.Update)
		authGroup.DELETE("/contents/:id", contents.Delete)

		authGroup.POST("/fact-check", factcheck.FactCheck)
		authGroup.POST("/suggest", factcheck.Suggest)
	}

	return r
}
