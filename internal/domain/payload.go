package domain

import (
	"encoding/json"
	"math"
)

// Helpers for reading loosely typed upstream payloads. Values may arrive from
// encoding/json (float64) or from the database driver (int32, int64).

func objectAt(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	obj, _ := m[key].(map[string]any)
	return obj
}

func firstObject(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	list, ok := m[key].([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	obj, _ := list[0].(map[string]any)
	return obj
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func floatAt(m map[string]any, key string) *float64 {
	if m == nil {
		return nil
	}
	f, ok := toFloat(m[key])
	if !ok {
		return nil
	}
	return &f
}

func intAt(m map[string]any, key string) *int {
	f := floatAt(m, key)
	if f == nil {
		return nil
	}
	i := int(math.Round(*f))
	return &i
}

func stringAt(m map[string]any, key string) *string {
	if m == nil {
		return nil
	}
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &s
}
