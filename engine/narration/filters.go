package narration

import (
	"strings"

	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/definition"
	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/format"
)

// Filters renders the resource-filter descriptor of a parameter as one block
// of lines per filter field, blocks separated by a blank line.
func (s *Synthesizer) Filters(p *definition.Parameter) string {
	payload := p.Payload()
	if payload.Filter == nil || len(payload.Filter.Fields) == 0 {
		return Placeholder
	}
	blocks := make([]string, 0, len(payload.Filter.Fields))
	for i := range payload.Filter.Fields {
		if block := s.filterBlock(&payload.Filter.Fields[i]); block != "" {
			blocks = append(blocks, block)
		}
	}
	if len(blocks) == 0 {
		return Placeholder
	}
	return strings.Join(blocks, "\n\n")
}

func (s *Synthesizer) filterBlock(field *definition.FilterField) string {
	var lines []string
	if name := s.filterPropertyName(field); name != "" {
		lines = append(lines, "Property: "+name)
	}
	if field.FieldType != "" {
		lines = append(lines, "Type: "+format.Humanize(field.FieldType))
	}
	if field.Op != "" {
		lines = append(lines, "Condition: "+format.Constraint(field.Op))
	}
	if field.Selector != "" {
		lines = append(lines, "Selector: "+format.Selector(field.Selector))
	}
	if !strings.EqualFold(field.Selector, "PARAMETER") {
		if values := s.resolveFilterValues(field.Values); len(values) > 0 {
			lines = append(lines, "Values: "+strings.Join(values, ", "))
		}
	}
	if field.ReferencedParameterID != "" {
		lines = append(lines, "Referenced parameter: "+s.parameterLabel(field.ReferencedParameterID))
	}
	return strings.Join(lines, "\n")
}

// filterPropertyName resolves the filter key to a property display name. An
// identifier-shaped key that does not resolve yields nothing; a key that is
// not identifier-shaped is shown verbatim.
func (s *Synthesizer) filterPropertyName(field *definition.FilterField) string {
	if id, ok := definition.PropertyIDFromFilterKey(field.Key); ok {
		return s.refs.PropertyNames[id]
	}
	if field.Key != "" && !definition.IsHexID(field.Key) {
		return field.Key
	}
	return ""
}

// resolveFilterValues maps raw filter values to display text. Values that
// look like identifiers but fail to resolve are dropped rather than shown
// raw; plain literals pass through.
func (s *Synthesizer) resolveFilterValues(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		raw := definition.NormalizeID(v)
		if raw == "" {
			continue
		}
		if name, ok := s.refs.OptionNames[raw]; ok && name != "" {
			out = append(out, name)
			continue
		}
		if name, ok := s.refs.PropertyNames[raw]; ok && name != "" {
			out = append(out, name)
			continue
		}
		if definition.IsHexID(raw) {
			continue
		}
		out = append(out, raw)
	}
	return out
}
