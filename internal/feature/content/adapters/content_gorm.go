// Package adapters はcontentフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"content_backend/internal/feature/content/domain/entity"
	"content_backend/internal/feature/content/usecase"
)

// contentGorm はContentRepositoryインターフェースのGORM実装です。
type contentGorm struct {
	db *gorm.DB
}

// contentGormがContentRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ContentRepository = (*contentGorm)(nil)

// NewContentRepository は指定されたDB接続でcontentGormリポジトリの新しいインスタンスを生成します。
func NewContentRepository(db *gorm.DB) *contentGorm {
	return &contentGorm{db: db}
}

// Create はコンテンツをデータベースに追加します。
// CreatedAtとUpdatedAtはGORMにより同一時刻で設定されます。
func (r *contentGorm) Create(ctx context.Context, c *entity.Content) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// FindByID はIDでコンテンツを取得します。
// 存在しない場合、usecase.ErrContentNotFoundを返します。
func (r *contentGorm) FindByID(ctx context.Context, id uint) (*entity.Content, error) {
	var c entity.Content
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrContentNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByAuthor は指定された所有者のコンテンツをID順に返します。
// 該当がない場合は空のスライスを返します。
func (r *contentGorm) FindByAuthor(ctx context.Context, authorID uint) ([]entity.Content, error) {
	contents := make([]entity.Content, 0)
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("id ASC").
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// Update はnilでないフィールドのみを単一行UPDATEで適用し、更新後のレコードを返します。
// 同一IDへの並行更新はlast-writer-winsです（単一行UPDATEの原子性で十分）。
// 存在しない場合、usecase.ErrContentNotFoundを返します。
func (r *contentGorm) Update(ctx context.Context, id uint, fields usecase.UpdateFields) (*entity.Content, error) {
	values := map[string]any{}
	if fields.Title != nil {
		values["title"] = *fields.Title
	}
	if fields.Body != nil {
		values["content"] = *fields.Body
	}
	if fields.Status != nil {
		values["status"] = *fields.Status
	}
	if fields.FactCheckScore != nil {
		values["fact_check_score"] = *fields.FactCheckScore
	}
	// 変更の有無にかかわらずUpdatedAtは必ず更新する
	values["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).
		Model(&entity.Content{}).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrContentNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete はコンテンツを完全に削除します。
// 対象行が存在しない場合、usecase.ErrContentNotFoundを返します。
func (r *contentGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Content{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrContentNotFound
	}
	return nil
}
