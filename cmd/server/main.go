package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"content_backend/internal/app/router"
	authadapters "content_backend/internal/feature/auth/adapters"
	authhandler "content_backend/internal/feature/auth/transport/handler"
	authusecase "content_backend/internal/feature/auth/usecase"
	contentadapters "content_backend/internal/feature/content/adapters"
	contenthandler "content_backend/internal/feature/content/transport/handler"
	contentusecase "content_backend/internal/feature/content/usecase"
	factcheckcache "content_backend/internal/feature/factcheck/adapters/cache"
	"content_backend/internal/feature/factcheck/adapters/gemini"
	"content_backend/internal/feature/factcheck/adapters/openai"
	factcheckhandler "content_backend/internal/feature/factcheck/transport/handler"
	factcheckusecase "content_backend/internal/feature/factcheck/usecase"
	infradb "content_backend/internal/platform/db"
	jwtmw "content_backend/internal/platform/jwt"
	infraredis "content_backend/internal/platform/redis"
	"content_backend/internal/shared/ratelimiter"
)

func main() {
	// ローカル開発用に.envがあれば読み込む（なければ環境変数のみ）
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without completion cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	contentRepo := contentadapters.NewContentRepository(db)

	// 補完クライアント（LLM_PROVIDERで選択、デフォルトはgemini）
	completer := newCompleter()
	// Redisキャッシュでラップ（同一プロンプトの再課金を防ぐ）
	cachedCompleter := factcheckcache.NewCachingCompleter(rdb, llmCacheTTL(), completer, "factcheck")
	// 補完APIのレートリミット（1分あたり）
	limiter := ratelimiter.NewRateLimiter(llmRateLimit(), time.Minute)

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	contentUC := contentusecase.NewContentUsecase(contentRepo)
	factCheckUC := factcheckusecase.NewFactCheckUsecase(cachedCompleter, limiter)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	contentH := contenthandler.NewContentHandler(contentUC)
	factCheckH := factcheckhandler.NewFactCheckHandler(factCheckUC, contentUC)

	// ルータ生成
	router := router.NewRouter(authH, contentH, factCheckH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}

// newCompleter はLLM_PROVIDERに応じた補完クライアントを生成します。
// 起動時の設定不備は即座に失敗させます（リクエスト時の上流障害とは区別）。
func newCompleter() factcheckusecase.Completer {
	switch os.Getenv("LLM_PROVIDER") {
	case "openai":
		c, err := openai.NewOpenAICompleter(os.Getenv("OPENAI_API_KEY"))
		if err != nil {
			log.Fatalf("failed to create openai completer: %v", err)
		}
		return c
	default:
		c, err := gemini.NewGeminiCompleter(context.Background())
		if err != nil {
			log.Fatalf("failed to create gemini completer: %v", err)
		}
		return c
	}
}

// llmCacheTTL はLLM_CACHE_TTL（time.ParseDuration形式）を読み取ります。
func llmCacheTTL() time.Duration {
	if v := os.Getenv("LLM_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("[WARN] invalid LLM_CACHE_TTL, using default: %s", v)
	}
	return 10 * time.Minute
}

// llmRateLimit はLLM_RATE_LIMIT（1分あたりの呼び出し上限）を読み取ります。
func llmRateLimit() int {
	if v := os.Getenv("LLM_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("[WARN] invalid LLM_RATE_LIMIT, using default: %s", v)
	}
	return 30
}
