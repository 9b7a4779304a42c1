package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// FlexID is an entity identifier that upstream systems serialize
// inconsistently as either a JSON string or a JSON number. It normalizes to
// one canonical textual form at decode time so lookups never have to care
// about the source encoding.
type FlexID string

var hexIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

func (id *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode identifier: %w", err)
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("failed to decode identifier: %w", err)
	}
	*id = FlexID(canonicalNumber(n.String()))
	return nil
}

func (id FlexID) String() string {
	return string(id)
}

func (id FlexID) IsZero() bool {
	return id == ""
}

// NormalizeID coerces any supported identifier representation (string,
// FlexID, json.Number, integer, float) into the canonical textual form used
// as the key of every index.
func NormalizeID(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case FlexID:
		return string(t)
	case string:
		return t
	case json.Number:
		return canonicalNumber(t.String())
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return canonicalFloat(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// IsHexID reports whether s looks like a 24-character hexadecimal object
// identifier.
func IsHexID(s string) bool {
	return hexIDPattern.MatchString(s)
}

// canonicalNumber strips a redundant fractional part so "42" and "42.0"
// land on the same key.
func canonicalNumber(s string) string {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return canonicalFloat(f)
	}
	return s
}

func canonicalFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
