package leaderboard

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/pkg/models"
)

// ParseOrZero converts a loosely typed JSON value to a finite number.
// Missing, malformed and non-finite values all become 0.
func ParseOrZero(v interface{}) float64 {
	var f float64

	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case int32:
		f = float64(val)
	case json.Number:
		f = parseString(val.String())
	case string:
		f = parseString(val)
	case bool:
		if val {
			f = 1
		}
	default:
		return 0
	}

	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// stringify renders an identifier or name field as display text
func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// asRecord returns v as a record, or an empty record when v is not an object
func asRecord(v interface{}) models.Record {
	switch val := v.(type) {
	case map[string]interface{}:
		return models.Record(val)
	case models.Record:
		return val
	default:
		return models.Record{}
	}
}

// asList returns v as a list of raw elements, or nil when v is not a list
func asList(v interface{}) []interface{} {
	switch val := v.(type) {
	case []interface{}:
		return val
	case []map[string]interface{}:
		out := make([]interface{}, len(val))
		for i, r := range val {
			out[i] = r
		}
		return out
	case []models.Record:
		out := make([]interface{}, len(val))
		for i, r := range val {
			out[i] = r
		}
		return out
	default:
		return nil
	}
}
