package definition

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Decode parses raw JSON into one or more definitions. The payload may be a
// single definition object or an array of them; the distinction is sniffed
// before decoding so callers do not need to know which form they were handed.
func Decode(data []byte) ([]*Definition, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("input is not valid JSON")
	}
	parsed := gjson.ParseBytes(data)
	switch {
	case parsed.IsArray():
		var defs []*Definition
		if err := json.Unmarshal(data, &defs); err != nil {
			return nil, fmt.Errorf("failed to decode definition batch: %w", err)
		}
		return defs, nil
	case parsed.IsObject():
		var def Definition
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to decode definition: %w", err)
		}
		return []*Definition{&def}, nil
	default:
		return nil, fmt.Errorf("input is neither a definition object nor an array")
	}
}
