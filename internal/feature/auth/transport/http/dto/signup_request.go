package dto

// SignupReqは/signupのリクエストボディを表す構造体です。
// Ginのbindingタグで入力チェック（必須・パスワード長）を行います。
type SignupReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
