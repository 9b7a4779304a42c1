// Package index builds the per-definition lookup tables the narration
// synthesizers resolve identifier references through. Tables are rebuilt from
// scratch for every definition and never shared across them.
package index

import (
	"fmt"
	"strings"

	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/definition"
)

// ReferenceIndex holds the four lookup tables built in one traversal of a
// definition. Registration is last-write-wins: later traversal order
// overwrites earlier entries for the same key. That is the stated contract,
// not an accident of iteration order.
type ReferenceIndex struct {
	ParameterLabels map[string]string
	PropertyNames   map[string]string
	OptionNames     map[string]string
	Branching       map[string]string

	// pending holds visibility rules collected during the walk. They are
	// resolved only after every option is registered, so traversal order
	// cannot change which tokens resolve.
	pending []pendingRule
}

type pendingRule struct {
	label string
	rule  *definition.Rule
}

// BuildReferenceIndex traverses every parameter reachable from the
// definition, top-level and task-nested, plus all object type declarations.
func BuildReferenceIndex(def *definition.Definition) *ReferenceIndex {
	idx := &ReferenceIndex{
		ParameterLabels: make(map[string]string),
		PropertyNames:   make(map[string]string),
		OptionNames:     make(map[string]string),
		Branching:       make(map[string]string),
	}
	if def == nil {
		return idx
	}
	for i := range def.Parameters {
		idx.registerParameter(&def.Parameters[i])
	}
	for si := range def.Stages {
		stage := &def.Stages[si]
		for ti := range stage.Tasks {
			task := &stage.Tasks[ti]
			for pi := range task.Parameters {
				idx.registerParameter(&task.Parameters[pi])
			}
		}
	}
	for oi := range def.ObjectTypes {
		idx.registerObjectType(&def.ObjectTypes[oi])
	}
	for _, pr := range idx.pending {
		idx.registerRule(pr.label, pr.rule)
	}
	idx.pending = nil
	return idx
}

// ResolveOption maps a raw value token through the option table, falling
// back to the token itself when nothing matches.
func (idx *ReferenceIndex) ResolveOption(token any) string {
	raw := definition.NormalizeID(token)
	if name, ok := idx.OptionNames[raw]; ok {
		return name
	}
	return raw
}

func (idx *ReferenceIndex) registerParameter(p *definition.Parameter) {
	id := definition.NormalizeID(p.ID)
	if id != "" {
		idx.ParameterLabels[id] = p.Label
		// Parameters may act as properties at later reference sites.
		idx.PropertyNames[id] = p.Label
	}
	payload := p.Payload()
	for i := range payload.Options {
		idx.registerOption(&payload.Options[i])
	}
	if payload.Filter != nil {
		idx.registerFilterProperties(payload.Filter)
	}
	for gi := range p.Validations {
		idx.registerValidationGroup(&p.Validations[gi])
	}
	// Rules resolve against the full option table, so they are only
	// collected here and registered once the walk completes.
	for ri := range p.Rules {
		idx.pending = append(idx.pending, pendingRule{label: p.Label, rule: &p.Rules[ri]})
	}
}

func (idx *ReferenceIndex) registerOption(o *definition.Option) {
	text := o.DisplayText()
	if id := definition.NormalizeID(o.ID); id != "" {
		idx.OptionNames[id] = text
	}
	if value := definition.NormalizeID(o.Value); value != "" {
		idx.OptionNames[value] = text
	}
}

func (idx *ReferenceIndex) registerFilterProperties(filter *definition.ResourceFilter) {
	for i := range filter.Fields {
		field := &filter.Fields[i]
		propID, ok := definition.PropertyIDFromFilterKey(field.Key)
		if !ok {
			continue
		}
		name := field.PropertyDisplayName
		if name == "" {
			name = field.PropertyExternalID
		}
		if name != "" {
			idx.PropertyNames[propID] = name
		}
	}
}

func (idx *ReferenceIndex) registerValidationGroup(group *definition.ValidationGroup) {
	for i := range group.PropertyValidations {
		item := &group.PropertyValidations[i]
		for oi := range item.Options {
			idx.registerOption(&item.Options[oi])
		}
		if id := definition.NormalizeID(item.PropertyID); id != "" && item.PropertyDisplayName != "" {
			idx.PropertyNames[id] = item.PropertyDisplayName
		}
	}
}

func (idx *ReferenceIndex) registerRule(label string, rule *definition.Rule) {
	if len(rule.Show.Parameters) == 0 {
		return
	}
	values := make([]string, 0, len(rule.Input))
	for _, token := range rule.Input {
		values = append(values, idx.ResolveOption(token))
	}
	sentence := fmt.Sprintf("Visible when %q is %q", label, strings.Join(values, ", "))
	for _, target := range rule.Show.Parameters {
		if id := definition.NormalizeID(target); id != "" {
			idx.Branching[id] = sentence
		}
	}
}

func (idx *ReferenceIndex) registerObjectType(obj *definition.ObjectType) {
	idx.registerProperties(obj.Properties)
	idx.registerProperties(obj.Relations)
}

func (idx *ReferenceIndex) registerProperties(props []definition.Property) {
	for i := range props {
		prop := &props[i]
		if id := definition.NormalizeID(prop.ID); id != "" && prop.DisplayText() != "" {
			idx.PropertyNames[id] = prop.DisplayText()
		}
		for oi := range prop.Options {
			idx.registerOption(&prop.Options[oi])
		}
		for ci := range prop.Choices {
			idx.registerOption(&prop.Choices[ci])
		}
	}
}
