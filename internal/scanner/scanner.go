// Package scanner implements fraud-risk classification for payment handles.
//
// Every scanned handle is resolved in two stages: a registry lookup (the
// "bank verification" path) and, on a miss, a keyword heuristic over the
// normalized text. Miss outcomes are written back to the registry so the
// service short-circuits the heuristic on every later sighting.
package scanner

import (
	"context"
	"strings"
)

// Verdict is the classifier's answer for a handle.
type Verdict string

const (
	VerdictSafe  Verdict = "SAFE"
	VerdictFraud Verdict = "FRAUD"
)

// Decision sources, reported in results and metrics.
const (
	SourceRegistry  = "registry"  // resolved from a stored reputation record
	SourceHeuristic = "heuristic" // fraud keyword match on a first sighting
	SourceUnknown   = "unknown"   // first sighting with no keyword match
)

// Result is the outcome of classifying one handle.
type Result struct {
	Status  Verdict `json:"status"`
	Score   int     `json:"score"`
	Message string  `json:"message"`
	Source  string  `json:"-"` // decision provenance, not part of the wire response
}

// fraudKeywords is the fixed heuristic table. First match wins; there is no
// weighting or match counting. Kept lowercase because input is normalized
// before the scan.
var fraudKeywords = []string{
	"scam",
	"free",
	"lottery",
	"winner",
	"prize",
	"urgent",
	"claim",
	"gift",
	"doubler",
	"investment",
}

// matchKeyword returns the first fraud keyword contained in the normalized
// text, or "" when the text looks clean.
func matchKeyword(normalized string) string {
	for _, kw := range fraudKeywords {
		if strings.Contains(normalized, kw) {
			return kw
		}
	}
	return ""
}

// EventEmitter receives scan outcomes for live streaming. Implementations
// must not block.
type EventEmitter interface {
	ScanCompleted(ctx context.Context, handle string, res *Result)
	MerchantRegistered(ctx context.Context, handle, category string)
}
