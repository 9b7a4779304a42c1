package narration

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/definition"
	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/format"
)

// Validations renders every validation group of a parameter. The five typed
// item lists are walked in a fixed order (date/time, criteria, property,
// resource, relation), one block per item, blocks separated by blank lines.
func (s *Synthesizer) Validations(p *definition.Parameter) string {
	var blocks []string
	for gi := range p.Validations {
		group := &p.Validations[gi]
		for _, items := range [][]definition.ValidationItem{
			group.DateTimeValidations,
			group.CriteriaValidations,
			group.PropertyValidations,
			group.ResourceValidations,
			group.RelationValidations,
		} {
			for i := range items {
				if block := s.validationBlock(group.ExceptionApprovalType, &items[i]); block != "" {
					blocks = append(blocks, block)
				}
			}
		}
		if block := customValidationBlock(group.CustomValidation); block != "" {
			blocks = append(blocks, block)
		}
	}
	if len(blocks) == 0 {
		return Placeholder
	}
	return strings.Join(blocks, "\n\n")
}

func (s *Synthesizer) validationBlock(severity string, item *definition.ValidationItem) string {
	var lines []string
	if severity != "" {
		lines = append(lines, "Exception: "+format.Severity(severity))
	}
	if item.Constraint != "" {
		lines = append(lines, "Condition: "+format.Constraint(item.Constraint))
	}
	if item.Selector != "" {
		lines = append(lines, "Selector: "+format.Selector(item.Selector))
	}
	if value, ok := s.validationValue(item); ok {
		lines = append(lines, "Value: "+value)
	}
	if item.DateUnit != "" {
		lines = append(lines, "Date unit: "+format.DateUnit(item.DateUnit))
	}
	if item.ErrorMessage != "" {
		lines = append(lines, fmt.Sprintf("Error message: %q", item.ErrorMessage))
	}
	if !item.ReferencedParameterID.IsZero() {
		lines = append(lines, "Referenced parameter: "+s.parameterLabel(item.ReferencedParameterID))
	}
	if name := s.validationPropertyName(item); name != "" {
		lines = append(lines, "Property: "+name)
	}
	if item.ParameterLabel != "" {
		lines = append(lines, "Parameter: "+item.ParameterLabel)
	}
	if item.MinValue != nil {
		lines = append(lines, "Min: "+formatNumber(*item.MinValue))
	}
	if item.MaxValue != nil {
		lines = append(lines, "Max: "+formatNumber(*item.MaxValue))
	}
	return strings.Join(lines, "\n")
}

// validationValue resolves the literal or referenced value of an item.
// Identifier-shaped constant values are resolved through the option and
// property tables and silently dropped when neither resolves.
func (s *Synthesizer) validationValue(item *definition.ValidationItem) (string, bool) {
	if item.Value == nil {
		return "", false
	}
	raw := definition.NormalizeID(item.Value)
	if raw == "" {
		return "", false
	}
	if strings.EqualFold(item.Selector, "CONSTANT") && definition.IsHexID(raw) {
		if name, ok := s.refs.OptionNames[raw]; ok && name != "" {
			return name, true
		}
		if name, ok := s.refs.PropertyNames[raw]; ok && name != "" {
			return name, true
		}
		return "", false
	}
	return raw, true
}

// validationPropertyName prefers the item's own display name, then the
// property table. Identifier-shaped unresolved references are omitted.
func (s *Synthesizer) validationPropertyName(item *definition.ValidationItem) string {
	if item.PropertyDisplayName != "" {
		return item.PropertyDisplayName
	}
	if id := definition.NormalizeID(item.PropertyID); id != "" {
		return s.refs.PropertyNames[id]
	}
	return ""
}

// customValidationBlock renders a free-form custom validation payload as one
// block, one humanized field per line, or as raw text when the payload is
// not a structured map.
func customValidationBlock(v any) string {
	switch payload := v.(type) {
	case nil:
		return ""
	case map[string]any:
		if len(payload) == 0 {
			return ""
		}
		keys := make([]string, 0, len(payload))
		for k := range payload {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines := make([]string, 0, len(keys))
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s: %v", format.Humanize(k), payload[k]))
		}
		return strings.Join(lines, "\n")
	default:
		return fmt.Sprintf("%v", payload)
	}
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
