package dto

// FactCheckReqは/fact-checkのリクエストボディを表す構造体です。
// contentは必須です。content_idを指定すると、結果のスコアが
// 呼び出し元が所有する該当コンテンツに保存されます。
type FactCheckReq struct {
	Content   string `json:"content" binding:"required"`
	ContentID *uint  `json:"content_id"`
}

// SuggestReqは/suggestのリクエストボディを表す構造体です。
type SuggestReq struct {
	Content string `json:"content" binding:"required"`
}
