// Package db はGORMによるデータベース接続の初期化を提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "content_backend/internal/feature/auth/domain/entity"
	contententity "content_backend/internal/feature/content/domain/entity"
)

// OpenDB はDB_DRIVERに応じてデータベース接続を開きます。
// "postgres"（デフォルト）は永続バックエンド、"sqlite"はテストや
// ローカル実行用の揮発バックエンドです。バックエンドの選択は
// プロセス起動時の一度きりで、呼び出し側で分岐することはありません。
func OpenDB() *gorm.DB {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "postgres"
	}

	// TranslateError を有効にすると、重複キーやレコード未検出が
	// ドライバに依らず gorm のセンチネルエラーに変換される
	cfg := &gorm.Config{TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)

	switch driver {
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "file::memory:?cache=shared"
		}
		db, err = gorm.Open(gsqlite.Open(path), cfg)
		if err != nil {
			log.Fatalf("sqlite open failed: %v", err)
		}
	default:
		dsn := postgresDSN()
		// 起動直後はDBコンテナの準備待ちでつながらないことがあるためリトライする
		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(gpostgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				log.Fatalf("DB connect failed after 60s: %v", err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Content）
		if err := db.AutoMigrate(
			&authentity.User{},
			&contententity.Content{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// postgresDSN は環境変数からPostgreSQL接続文字列を組み立てます。
func postgresDSN() string {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)
}
