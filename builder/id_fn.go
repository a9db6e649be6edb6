// SPDX-License-Identifier: MIT
// Package: gdwg/builder
//
// id_fn.go - node ID schemes for index-based constructors.
//
// Every scheme is a pure function idx -> string. Schemes that cannot encode
// an index panic: that is a configuration error, not a build error.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node identifier from its zero-based index.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// AlphanumericIDFn returns idx in base 36, e.g. 10→"a", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	mustNonNegative("AlphanumericIDFn", idx)

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn returns the spreadsheet column name for idx:
// 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	mustNonNegative("ExcelColumnIDFn", idx)

	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append([]byte{byte('A' + i%26)}, buf...)
	}

	return string(buf)
}

// HexIDFn returns lowercase hexadecimal, e.g. 255→"ff". Panics if idx < 0.
func HexIDFn(idx int) string {
	mustNonNegative("HexIDFn", idx)

	return strconv.FormatInt(int64(idx), 16)
}

// PrefixedIDFn returns prefix + decimal index, e.g. "v0", "v1".
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string {
		mustNonNegative("PrefixedIDFn", idx)

		return prefix + strconv.Itoa(idx)
	}
}

func mustNonNegative(fn string, idx int) {
	if idx < 0 {
		panic(fmt.Sprintf("%s: idx must be ≥ 0, got %d", fn, idx))
	}
}

// WithPrefixedIDs sets the ID scheme to PrefixedIDFn(prefix).
func WithPrefixedIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixedIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithHexIDs sets the ID scheme to HexIDFn.
func WithHexIDs() BuilderOption {
	return WithIDScheme(HexIDFn)
}

// WithAlphanumericIDs sets the ID scheme to AlphanumericIDFn.
func WithAlphanumericIDs() BuilderOption {
	return WithIDScheme(AlphanumericIDFn)
}
