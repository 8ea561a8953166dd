// Package search holds the predicate and facet helpers shared by the log
// browser and the client list.
package search

import (
	"cmp"
	"slices"
	"strings"
)

// ContainsFold reports whether query is a case-insensitive substring of any
// field. An empty query matches everything.
func ContainsFold(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Equal is the exact-match predicate for optional filters: an empty want
// imposes no constraint.
func Equal(want, got string) bool {
	return want == "" || want == got
}

// Predicate is one independent filter over T.
type Predicate[T any] func(T) bool

// All composes predicates conjunctively.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Filter keeps the items matching pred, preserving order. The input is not modified.
func Filter[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// Distinct returns the distinct keys of items in first-seen order.
func Distinct[T any, K comparable](items []T, key func(T) K) []K {
	seen := make(map[K]struct{}, len(items))
	out := make([]K, 0)
	for _, it := range items {
		k := key(it)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// DistinctSorted returns the distinct keys of items in ascending order.
func DistinctSorted[T any, K cmp.Ordered](items []T, key func(T) K) []K {
	out := Distinct(items, key)
	slices.Sort(out)
	return out
}
