package service

import "encoding/json"

// Request bodies arrive as decoded JSON objects so each validation step
// can tell an absent key from a null or mistyped value, and partial
// updates only touch the keys that were sent.
type input map[string]any

func (in input) has(key string) bool {
	_, ok := in[key]
	return ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// asInt accepts the shapes a JSON decoder produces for integers and
// rejects fractional values.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		i := int64(n)
		if float64(i) != n {
			return 0, false
		}
		return i, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// asIntList coerces a JSON array of integers. listOK reports the value
// was a list at all; elemsOK reports every element coerced.
func asIntList(v any) (ids []int64, listOK bool, elemsOK bool) {
	raw, ok := v.([]any)
	if !ok {
		return nil, false, false
	}
	ids = make([]int64, 0, len(raw))
	elemsOK = true
	for _, e := range raw {
		i, ok := asInt(e)
		if !ok {
			elemsOK = false
			continue
		}
		ids = append(ids, i)
	}
	return ids, true, elemsOK
}

// dedupe keeps first occurrence order.
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
