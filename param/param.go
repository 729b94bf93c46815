package param

import (
	"net/url"
	"strings"
)

// Separator joins multiple values collapsed under one key.
const Separator = ","

// Pair is a single key/value unit destined for a URL query string.
// Both fields are raw (unescaped); Encode applies query escaping.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// MergeByKey collapses pairs that share a key into one pair whose value is
// the Separator-join of the individual values, in input order. Output key
// order is the order of first appearance in the input.
//
// Complexity: O(n) time, O(k) space for k distinct keys.
func MergeByKey(pairs []Pair) []Pair {
	if len(pairs) == 0 {
		return nil
	}

	order := make([]string, 0, len(pairs))
	values := make(map[string][]string, len(pairs))
	for _, p := range pairs {
		if _, seen := values[p.Key]; !seen {
			order = append(order, p.Key)
		}
		values[p.Key] = append(values[p.Key], p.Value)
	}

	merged := make([]Pair, 0, len(order))
	for _, key := range order {
		merged = append(merged, Pair{Key: key, Value: strings.Join(values[key], Separator)})
	}

	return merged
}

// Encode renders pairs as a query string: each key and value query-escaped,
// units joined with "&". Pairs render in input order; an empty value renders
// as "key=". An empty input yields the empty string.
//
// Complexity: O(total bytes).
func Encode(pairs []Pair) string {
	if len(pairs) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}

	return sb.String()
}
