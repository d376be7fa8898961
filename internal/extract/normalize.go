package extract

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/sow-cli/internal/model"
)

// pagesSuffix marks response keys that annotate a value key with the page
// numbers it was found on. Such keys never become standalone field records.
const pagesSuffix = "_pages"

// Normalize turns one raw LLM extraction response into field records for
// the given source document. Every non-empty value key is paired with its
// optional "<key>_pages" annotation; empty answers are dropped entirely so
// no FieldRecord ever carries an empty value.
//
// An unparseable response yields an empty extraction and an error. Callers
// log it and keep processing the remaining documents and categories.
func Normalize(raw, docID string) (model.Extraction, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &payload); err != nil {
		return model.Extraction{}, eris.Wrap(err, "extract: parse response")
	}

	ex := make(model.Extraction, len(payload))
	for key, v := range payload {
		if strings.HasSuffix(key, pagesSuffix) {
			continue
		}
		value := stringify(v)
		if value == "" {
			continue
		}
		var pages string
		if pv, ok := payload[key+pagesSuffix]; ok {
			pages = stringify(pv)
		}
		ex[key] = model.FieldRecord{
			Key:    key,
			Value:  value,
			Source: docID,
			Pages:  pages,
		}
	}
	return ex, nil
}

// cleanJSONResponse strips markdown code fences and surrounding whitespace
// that models sometimes wrap around JSON output.
func cleanJSONResponse(s string) string {
	cleaned := strings.TrimSpace(s)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}

// stringify renders a decoded JSON value as the textual form used in
// narratives. Arrays are comma-joined (page lists arrive both ways), nulls
// become empty.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := stringify(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
