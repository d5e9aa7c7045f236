// Package listing orders and filters record lists for the list endpoints
package listing

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/mcubed/cubed/internal/model"
)

// Key extracts a sortable value from a record. Present reports whether the record has a
// value for the key at all.
type Key[T any] func(item T) (value any, present bool)

// Compare orders two optional values. Absent values come first when ascending and last when
// descending; present values compare naturally.
func Compare(a any, aPresent bool, b any, bPresent bool, ascending bool) int {
	sign := 1
	if !ascending {
		sign = -1
	}

	switch {
	case !aPresent && !bPresent:
		return 0
	case !aPresent:
		return -sign
	case !bPresent:
		return sign
	}
	return sign * compareValues(a, b)
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		return cmp.Compare(av, b.(string))
	case int:
		return cmp.Compare(av, b.(int))
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case time.Time:
		return av.Compare(b.(time.Time))
	case model.Sport:
		return cmp.Compare(av, b.(model.Sport))
	}
	panic(fmt.Sprintf("listing: unsupported key type %T", a))
}

// SortStable sorts items in place by key. Items with equal keys keep their order.
func SortStable[T any](items []T, key Key[T], ascending bool) {
	slices.SortStableFunc(items, func(a, b T) int {
		av, ap := key(a)
		bv, bp := key(b)
		return Compare(av, ap, bv, bp, ascending)
	})
}

// Duplicates returns the records whose key was already seen. The first record of each
// duplicated key is emitted when its second occurrence is found, and every later occurrence
// is emitted as it appears. Keys are compared exactly.
func Duplicates[T any, K comparable](items []T, key func(T) K) []T {
	type seen struct {
		first   T
		emitted bool
	}

	found := make(map[K]*seen, len(items))
	var out []T
	for _, item := range items {
		k := key(item)
		prior, ok := found[k]
		if !ok {
			found[k] = &seen{first: item}
			continue
		}
		if !prior.emitted {
			out = append(out, prior.first)
			prior.emitted = true
		}
		out = append(out, item)
	}
	return out
}
