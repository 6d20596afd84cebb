package state

import (
	"strings"

	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterOptions narrows options to those matching query, preserving input
// order. Fuzzy label matches win; when none exist a case-insensitive
// substring match on label or value is used instead.
func FilterOptions(options []multiselect.Option, query string) []multiselect.Option {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneOptions(options)
	}
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]multiselect.Option, 0, len(matches))
		for i, opt := range options {
			if _, ok := matches[i]; ok {
				filtered = append(filtered, opt)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]multiselect.Option, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), lower) || strings.Contains(strings.ToLower(opt.Value), lower) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

// CloneOptions produces a shallow copy of the provided options.
func CloneOptions(options []multiselect.Option) []multiselect.Option {
	if options == nil {
		return nil
	}
	dup := make([]multiselect.Option, len(options))
	copy(dup, options)
	return dup
}

// HighlightSpan locates the first case-sensitive occurrence of needle in
// label and returns its byte range.
func HighlightSpan(label, needle string) (int, int, bool) {
	if needle == "" {
		return 0, 0, false
	}
	idx := strings.Index(label, needle)
	if idx < 0 {
		return 0, 0, false
	}
	return idx, idx + len(needle), true
}
