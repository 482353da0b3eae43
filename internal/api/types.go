// Package api defines the JSON payload types shared by the HTTP handlers.
package api

import "time"

// ErrorResponse is the common error payload returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries the JWT issued on a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the public view of a user. The password hash is never serialized.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ContentResponse is the public view of a content record.
type ContentResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorID       uint      `json:"authorId"`
	Status         string    `json:"status"`
	FactCheckScore *int      `json:"factCheckScore"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FactCheckResponse carries the normalized result of a fact-check request.
type FactCheckResponse struct {
	Score       int      `json:"score"`
	Explanation string   `json:"explanation"`
	Suggestions []string `json:"suggestions"`
}

// SuggestionsResponse carries improvement suggestions for a content body.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
