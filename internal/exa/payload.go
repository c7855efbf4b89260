package exa

const SearchDefaultLimit = 10

// BuildSearchPayload assembles the wire body for a search request. The
// defaulted fields are set first, every caller option is merged on top, and
// the contents block is rebuilt as the last step so it only ever holds the
// text/highlights/summary features the caller actually asked for. A raw
// top-level 'text' or 'contents' key supplied by the caller never survives
// into the payload unprocessed.
func BuildSearchPayload(query string, opts SearchOptions) map[string]any {
	payload := map[string]any{
		"query":         query,
		"type":          SearchTypeNeural,
		"useAutoprompt": true,
		"numResults":    SearchDefaultLimit,
	}

	for k, v := range opts {
		payload[k] = v
	}

	// 'useAutoprompt' defaults on absence only, which the merge above
	// already handles: an explicit false occupies the key and survives.
	// 'type' and 'numResults' additionally fall back on falsy values, so
	// numResults: 0 still yields the default limit.
	if isFalsy(payload["type"]) {
		payload["type"] = SearchTypeNeural
	}
	if isFalsy(payload["numResults"]) {
		payload["numResults"] = SearchDefaultLimit
	}

	delete(payload, "text")
	delete(payload, "highlights")
	delete(payload, "summary")

	contents := map[string]any{}
	if t, ok := opts["text"]; ok {
		text := map[string]any{"enabled": true}
		if fields, ok := t.(map[string]any); ok {
			for k, v := range fields {
				text[k] = v
			}
		}
		contents["text"] = text
	}
	if h, ok := opts["highlights"]; ok {
		contents["highlights"] = h
	}
	if s, ok := opts["summary"]; ok {
		contents["summary"] = s
	}
	payload["contents"] = contents

	return payload
}

func isFalsy(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case bool:
		return !n
	case string:
		return n == ""
	case int:
		return n == 0
	case int32:
		return n == 0
	case int64:
		return n == 0
	case uint:
		return n == 0
	case uint64:
		return n == 0
	case float32:
		return n == 0
	case float64:
		return n == 0
	}
	return false
}
