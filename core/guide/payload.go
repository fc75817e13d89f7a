package guide

import (
	"sort"
	"strconv"
	"strings"
)

// StripSystemPayload removes system messages from a stored chat payload
// before the conversation is resubmitted to the model; the server's own
// prompt is injected fresh on every call. Payloads arrive in two shapes:
// a plain array of messages, or a {"0": {...}, "1": {...}} index map left
// behind by older clients. Map shapes are flattened to an ordered array.
// Unknown shapes pass through untouched.
func StripSystemPayload(chatData any) any {
	isSystem := func(m any) bool {
		msg, ok := m.(map[string]any)
		if !ok {
			return false
		}
		role, _ := msg["role"].(string)
		return strings.EqualFold(role, "system")
	}

	switch data := chatData.(type) {
	case []any:
		out := make([]any, 0, len(data))
		for _, m := range data {
			if !isSystem(m) {
				out = append(out, m)
			}
		}
		return out

	case map[string]any:
		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			a, _ := strconv.Atoi(keys[i])
			b, _ := strconv.Atoi(keys[j])
			return a < b
		})
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			if !isSystem(data[k]) {
				out = append(out, data[k])
			}
		}
		return out
	}

	return chatData
}
