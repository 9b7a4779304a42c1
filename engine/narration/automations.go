package narration

import (
	"strings"

	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/definition"
)

// Automations summarizes every automation rule on a task, one block per
// rule, blocks separated by blank lines. A task with no rules yields empty
// text, not the placeholder: the automation column alone may stay empty.
func (s *Synthesizer) Automations(task *definition.Task, def *definition.Definition) string {
	blocks := make([]string, 0, len(task.Automations))
	for i := range task.Automations {
		if block := s.automationBlock(&task.Automations[i], def); block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func (s *Synthesizer) automationBlock(rule *definition.AutomationRule, def *definition.Definition) string {
	var lines []string
	if rule.DisplayName != "" {
		lines = append(lines, rule.DisplayName)
	}
	if rule.TriggerType != "" {
		lines = append(lines, "Trigger: "+lowerCode(rule.TriggerType))
	}
	if rule.ActionType != "" {
		lines = append(lines, "Action: "+lowerCode(rule.ActionType))
	}
	if objectType := s.automationObjectType(rule, def); objectType != "" {
		lines = append(lines, "Object type: "+objectType)
	}
	for i := range rule.ActionDetails.Configuration {
		if name := s.mappingName(&rule.ActionDetails.Configuration[i]); name != "" {
			lines = append(lines, "• "+name)
		}
	}
	return strings.Join(lines, "\n")
}

// automationObjectType prefers the explicitly declared target object type,
// then falls back to the declared collection of the parameter the action
// references, searched among top-level parameters first and then among every
// task-nested parameter.
func (s *Synthesizer) automationObjectType(rule *definition.AutomationRule, def *definition.Definition) string {
	if rule.ActionDetails.ObjectTypeDisplayName != "" {
		return rule.ActionDetails.ObjectTypeDisplayName
	}
	ref := definition.NormalizeID(rule.ActionDetails.ReferencedParameterID)
	if ref == "" || def == nil {
		return ""
	}
	if p := findParameter(def, ref); p != nil {
		return p.Payload().ObjectTypeName
	}
	return ""
}

func findParameter(def *definition.Definition, id string) *definition.Parameter {
	for i := range def.Parameters {
		if definition.NormalizeID(def.Parameters[i].ID) == id {
			return &def.Parameters[i]
		}
	}
	for si := range def.Stages {
		for ti := range def.Stages[si].Tasks {
			task := &def.Stages[si].Tasks[ti]
			for pi := range task.Parameters {
				if definition.NormalizeID(task.Parameters[pi].ID) == id {
					return &task.Parameters[pi]
				}
			}
		}
	}
	return nil
}

// mappingName names one field-mapping entry: explicit label, then display
// name, then the property table; entries that resolve to nothing are
// skipped.
func (s *Synthesizer) mappingName(cfg *definition.FieldMapping) string {
	if cfg.Label != "" {
		return cfg.Label
	}
	if cfg.DisplayName != "" {
		return cfg.DisplayName
	}
	if id := definition.NormalizeID(cfg.ParameterID); id != "" {
		if name := s.refs.PropertyNames[id]; name != "" {
			return name
		}
	}
	if id := definition.NormalizeID(cfg.PropertyID); id != "" {
		if name := s.refs.PropertyNames[id]; name != "" {
			return name
		}
	}
	return ""
}

func lowerCode(code string) string {
	return strings.ToLower(strings.ReplaceAll(code, "_", " "))
}
