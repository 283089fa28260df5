package extract

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"idscan/internal/models"
)

// decodeImage turns a raw base64 string or a data URL into image bytes plus
// the format name Gemini expects ("jpeg", "png", ...). jpeg is assumed when
// the payload carries no MIME type.
func decodeImage(image string) (string, []byte, error) {
	image = strings.TrimSpace(image)
	format := "jpeg"

	if strings.HasPrefix(image, "data:") {
		comma := strings.Index(image, ",")
		if comma == -1 {
			return "", nil, fmt.Errorf("malformed data URL")
		}
		header := image[len("data:"):comma]
		image = image[comma+1:]
		// header looks like "image/png;base64"
		if semi := strings.Index(header, ";"); semi != -1 {
			header = header[:semi]
		}
		if slash := strings.Index(header, "/"); slash != -1 && header[slash+1:] != "" {
			format = header[slash+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(image)
	if err != nil {
		// some front-ends strip padding
		data, err = base64.RawStdEncoding.DecodeString(image)
	}
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 image: %w", err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("empty image payload")
	}
	return format, data, nil
}

// parseFields reads the model's JSON into ExtractedFields. Absent or falsy
// values become null; keys beyond the five recognized names are discarded.
func parseFields(jsonStr string) (models.ExtractedFields, error) {
	var out models.ExtractedFields

	var tmp map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &tmp); err != nil {
		return out, fmt.Errorf("failed to parse Gemini JSON: %w", err)
	}
	get := func(k string) *string {
		v, ok := tmp[k]
		if !ok || v == nil {
			return nil
		}
		var s string
		switch t := v.(type) {
		case string:
			s = strings.TrimSpace(t)
		default:
			b, _ := json.Marshal(t)
			s = strings.TrimSpace(string(b))
		}
		if s == "" {
			return nil
		}
		return &s
	}

	out.FullName = get("fullName")
	out.IDNumber = get("idNumber")
	out.DateOfBirth = get("dateOfBirth")
	out.ExpiryDate = get("expiryDate")
	out.Address = get("address")
	return out, nil
}

// stripCodeFences removes surrounding Markdown code fences like ```json ... ```.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		// drop leading backticks and optional language tag
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
		// remove a possible language tag at the start of the fence
		if i := strings.IndexByte(s, '\n'); i != -1 {
			first := strings.TrimSpace(s[:i])
			if len(first) > 0 && len(first) < 20 { // likely a language tag like json
				s = s[i+1:]
			}
		}
		// strip trailing fence if present
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// extractFirstJSON attempts to extract the first balanced JSON object or array.
func extractFirstJSON(s string) (string, bool) {
	if obj, ok := extractBalanced(s, '{', '}'); ok {
		return obj, true
	}
	if arr, ok := extractBalanced(s, '[', ']'); ok {
		return arr, true
	}
	return "", false
}

func extractBalanced(s string, open, close rune) (string, bool) {
	start := -1
	depth := 0
	for i, r := range s {
		if r == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if r == close {
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
