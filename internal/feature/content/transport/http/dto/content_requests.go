package dto

// CreateContentReqは/contentsへのPOSTリクエストボディを表す構造体です。
// タイトルと本文は必須、statusは省略時にサーバー側でデフォルト値が入ります。
type CreateContentReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Status  string `json:"status"`
}

// UpdateContentReqは/contents/:idへのPATCHリクエストボディを表す構造体です。
// nilのフィールドは変更されません。所有者とIDはリクエストから変更できません。
type UpdateContentReq struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}
