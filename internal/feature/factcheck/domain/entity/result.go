// Package entity defines the domain models for the factcheck feature.
package entity

// FactCheckResult is the normalized outcome of an AI fact-check.
// Score is always within [0,100]; out-of-range upstream values are
// clamped before a result is handed to callers.
type FactCheckResult struct {
	Score       int      // factual accuracy score in [0,100]
	Explanation string   // model explanation of the score
	Suggestions []string // concrete improvement suggestions
}
