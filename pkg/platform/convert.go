package platform

import (
	"encoding/json"
	"math"
	"strconv"
)

// argInt reads a signal argument as an int. Values decoded by JSONCodec
// arrive as json.Number; values built in-process keep their Go type.
func argInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// argHandle reads a native handle. Handles use the full 64 bits, so
// json.Number is parsed as unsigned.
func argHandle(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint64:
		return n, true
	case json.Number:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		return u, err == nil
	case int:
		return uint64(n), n >= 0
	case float64:
		return uint64(n), n >= 0
	}
	return 0, false
}

func argString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
