package aggregator

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"go-mrf/internal/workflow"
)

// CountsFromRaw reads counts produced elsewhere (for example a decoded JSON
// body). Missing or non-numeric entries become 0.
func CountsFromRaw(raw map[string]any) Counts {
	counts := Counts{}
	for _, s := range workflow.All {
		counts[s] = Coerce(raw[string(s)])
	}
	return counts
}

// Coerce converts v to a non-negative int, defaulting to 0.
func Coerce(v any) int {
	switch n := v.(type) {
	case int:
		return clamp(float64(n))
	case int32:
		return clamp(float64(n))
	case int64:
		return clamp(float64(n))
	case uint:
		return clamp(float64(n))
	case uint32:
		return clamp(float64(n))
	case uint64:
		return clamp(float64(n))
	case float32:
		return clamp(float64(n))
	case float64:
		return clamp(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return clamp(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return clamp(f)
	default:
		return 0
	}
}

func clamp(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
