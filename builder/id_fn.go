package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the stop at a zero-based index. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn names stops by their decimal index: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// StopIDFn names stops prefix+index, e.g. "S0", "S1". Panics on idx < 0.
func StopIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: stop index %d < 0", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// PaddedStopIDFn is StopIDFn with the index zero-padded to the width of n-1,
// so stop IDs of an n-stop network sort in index order ("S00" … "S11").
// Panics unless n ≥ 1; indices beyond n-1 simply grow wider.
func PaddedStopIDFn(prefix string, n int) IDFn {
	if n < 1 {
		panic(fmt.Sprintf("builder: PaddedStopIDFn(n=%d)", n))
	}
	width := len(strconv.Itoa(n - 1))
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: stop index %d < 0", idx))
		}
		return fmt.Sprintf("%s%0*d", prefix, width, idx)
	}
}

// WithStopPrefix sets the ID scheme to StopIDFn(prefix).
func WithStopPrefix(prefix string) BuilderOption {
	return WithIDScheme(StopIDFn(prefix))
}

// WithPaddedStops sets the ID scheme to PaddedStopIDFn(prefix, n).
func WithPaddedStops(prefix string, n int) BuilderOption {
	return WithIDScheme(PaddedStopIDFn(prefix, n))
}
