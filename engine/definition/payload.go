package definition

import "strings"

// -----------------------------------------------------------------------------
// Payload variants
// -----------------------------------------------------------------------------

// PayloadKind tags the resolved shape of a parameter's data payload.
type PayloadKind int

const (
	PayloadUnknown PayloadKind = iota
	PayloadOptions
	PayloadNestedOptions
	PayloadResource
	PayloadText
)

// Payload is the tagged-variant view over a parameter's data field. The raw
// payload arrives in one of several shapes depending on the parameter type;
// resolving it here keeps shape checks out of every synthesizer.
type Payload struct {
	Kind           PayloadKind
	Options        []Option
	Filter         *ResourceFilter
	Text           string
	ObjectTypeName string
}

// ResourceFilter restricts which objects a resource parameter may select.
type ResourceFilter struct {
	Op     string
	Fields []FilterField
}

type FilterField struct {
	Key                   string
	FieldType             string
	Op                    string
	Selector              string
	Values                []any
	ReferencedParameterID string
	PropertyDisplayName   string
	PropertyExternalID    string
}

// PropertyIDFromFilterKey extracts the property identifier a filter field key
// embeds. Keys come either as "<prefix>.<id>" (any prefix, one indirection
// hop) or as a bare 24-character hex identifier.
func PropertyIDFromFilterKey(key string) (string, bool) {
	if idx := strings.LastIndex(key, "."); idx >= 0 {
		if candidate := key[idx+1:]; IsHexID(candidate) {
			return candidate, true
		}
		return "", false
	}
	if IsHexID(key) {
		return key, true
	}
	return "", false
}

// Payload resolves the parameter's data field into its tagged variant. It is
// a pure function of the parameter and total over malformed input: anything
// unrecognized comes back as PayloadUnknown.
func (p *Parameter) Payload() Payload {
	switch data := p.Data.(type) {
	case []any:
		if opts := optionsFromList(data); len(opts) > 0 {
			return Payload{Kind: PayloadOptions, Options: opts}
		}
	case map[string]any:
		if list, ok := data["choices"].([]any); ok {
			return Payload{Kind: PayloadNestedOptions, Options: optionsFromList(list)}
		}
		if list, ok := data["options"].([]any); ok {
			return Payload{Kind: PayloadNestedOptions, Options: optionsFromList(list)}
		}
		objectType := stringField(data, "objectTypeDisplayName")
		if pf, ok := data["propertyFilters"].(map[string]any); ok {
			return Payload{
				Kind:           PayloadResource,
				Filter:         filterFromMap(pf),
				ObjectTypeName: objectType,
			}
		}
		if objectType != "" || stringField(data, "objectTypeId") != "" {
			return Payload{Kind: PayloadResource, ObjectTypeName: objectType}
		}
		if text := stringField(data, "text"); text != "" {
			return Payload{Kind: PayloadText, Text: text}
		}
	case string:
		if data != "" {
			return Payload{Kind: PayloadText, Text: data}
		}
	}
	return Payload{Kind: PayloadUnknown}
}

func optionsFromList(list []any) []Option {
	opts := make([]Option, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		opts = append(opts, Option{
			ID:          FlexID(NormalizeID(m["id"])),
			Name:        stringField(m, "name"),
			Label:       stringField(m, "label"),
			DisplayName: stringField(m, "displayName"),
			Value:       FlexID(NormalizeID(m["value"])),
		})
	}
	return opts
}

func filterFromMap(m map[string]any) *ResourceFilter {
	filter := &ResourceFilter{Op: stringField(m, "op")}
	fields, ok := m["fields"].([]any)
	if !ok {
		return filter
	}
	for _, item := range fields {
		fm, ok := item.(map[string]any)
		if !ok {
			continue
		}
		field := FilterField{
			Key:                   stringField(fm, "field"),
			FieldType:             stringField(fm, "fieldType"),
			Op:                    stringField(fm, "op"),
			Selector:              stringField(fm, "selector"),
			ReferencedParameterID: NormalizeID(fm["referencedParameterId"]),
			PropertyDisplayName:   stringField(fm, "propertyDisplayName"),
			PropertyExternalID:    stringField(fm, "propertyExternalId"),
		}
		if values, ok := fm["values"].([]any); ok {
			field.Values = values
		}
		filter.Fields = append(filter.Fields, field)
	}
	return filter
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
