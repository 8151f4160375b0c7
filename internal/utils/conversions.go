package utils

import "encoding/json"

// Int64FromClaim converts a decoded JWT claim value to an int64. JSON
// numbers arrive from MapClaims as float64 (or json.Number when the
// decoder is configured that way); anything else is rejected.
func Int64FromClaim(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
