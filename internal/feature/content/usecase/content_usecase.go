// Package usecase はcontentフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"content_backend/internal/feature/content/domain/entity"
)

// UpdateFields は部分更新で適用するフィールドを表します。
// nilのフィールドは変更されません。AuthorIDとIDは更新対象外です。
type UpdateFields struct {
	Title          *string
	Body           *string
	Status         *string
	FactCheckScore *int
}

// ContentRepository はコンテンツエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ContentRepository interface {
	// Create は新しいコンテンツをストレージに永続化します。
	Create(ctx context.Context, c *entity.Content) error

	// FindByID はIDでコンテンツを取得します。所有者チェックは行いません。
	// 存在しない場合、ErrContentNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Content, error)

	// FindByAuthor は指定された所有者のコンテンツをすべて返します。
	// 該当がない場合は空のスライスを返します（エラーではありません）。
	FindByAuthor(ctx context.Context, authorID uint) ([]entity.Content, error)

	// Update はnilでないフィールドのみを適用し、更新後のレコードを返します。
	// UpdatedAtは現在時刻に更新されます。存在しない場合、ErrContentNotFoundを返します。
	Update(ctx context.Context, id uint, fields UpdateFields) (*entity.Content, error)

	// Delete はコンテンツを完全に削除します。
	// 存在しない場合、ErrContentNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// ContentUsecase はコンテンツのライフサイクルと所有者ベースの認可を実装します。
type ContentUsecase struct {
	repo ContentRepository
}

// NewContentUsecase は新しい ContentUsecase を作成します。
func NewContentUsecase(repo ContentRepository) *ContentUsecase {
	return &ContentUsecase{repo: repo}
}

// authorizeOwner は取得済みレコードに対する所有者チェックを行います。
// IDを指定するすべての操作が、存在チェックの後に必ずこの関数を通ります。
// 存在しないIDは「not found」、他人の既存コンテンツは「forbidden」という
// 順序が外部から観測可能な契約です。
func authorizeOwner(callerID uint, c *entity.Content) error {
	if c.AuthorID != callerID {
		return ErrForbidden
	}
	return nil
}

// fetchOwned はIDでコンテンツを取得し、所有者チェックを適用します。
func (u *ContentUsecase) fetchOwned(ctx context.Context, id, callerID uint) (*entity.Content, error) {
	c, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(callerID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Create は認証済みユーザーを所有者として新しいコンテンツを作成します。
// AuthorIDは必ず認証済み呼び出し元のIDから設定し、クライアント入力からは受け取りません。
// statusが空の場合はデフォルト値を使用します。
func (u *ContentUsecase) Create(ctx context.Context, authorID uint, title, body, status string) (*entity.Content, error) {
	if status == "" {
		status = entity.DefaultStatus
	}
	c := &entity.Content{
		Title:    title,
		Body:     body,
		Status:   status,
		AuthorID: authorID,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get は呼び出し元が所有するコンテンツを1件取得します。
func (u *ContentUsecase) Get(ctx context.Context, id, callerID uint) (*entity.Content, error) {
	return u.fetchOwned(ctx, id, callerID)
}

// List は呼び出し元が所有するすべてのコンテンツを返します。
func (u *ContentUsecase) List(ctx context.Context, callerID uint) ([]entity.Content, error) {
	return u.repo.FindByAuthor(ctx, callerID)
}

// Update は呼び出し元が所有するコンテンツを部分更新します。
// nilでないフィールドのみ適用されます。
func (u *ContentUsecase) Update(ctx context.Context, id, callerID uint, fields UpdateFields) (*entity.Content, error) {
	if _, err := u.fetchOwned(ctx, id, callerID); err != nil {
		return nil, err
	}
	// 所有者とIDは更新対象外（UpdateFieldsに含まれない）
	return u.repo.Update(ctx, id, fields)
}

// Delete は呼び出し元が所有するコンテンツを完全に削除します。
// 存在しないIDの削除はErrContentNotFoundで失敗します。
func (u *ContentUsecase) Delete(ctx context.Context, id, callerID uint) error {
	if _, err := u.fetchOwned(ctx, id, callerID); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

// AttachFactCheckScore はファクトチェック結果のスコアをコンテンツに保存します。
// スコアは[0,100]の範囲内でなければなりません。
func (u *ContentUsecase) AttachFactCheckScore(ctx context.Context, id, callerID uint, score int) (*entity.Content, error) {
	if score < 0 || score > 100 {
		return nil, ErrInvalidScore
	}
	if _, err := u.fetchOwned(ctx, id, callerID); err != nil {
		return nil, err
	}
	return u.repo.Update(ctx, id, UpdateFields{FactCheckScore: &score})
}
