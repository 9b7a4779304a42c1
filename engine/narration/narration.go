// Package narration synthesizes the human-readable text fragments of a flat
// record: filters, validations, dependencies, executor locks, branching and
// automation summaries. Every synthesizer is a total function: absent fields
// contribute nothing and unresolvable references degrade per field-specific
// rules, but nothing here returns an error.
package narration

import (
	"fmt"

	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/definition"
	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/index"
)

// Placeholder marks a column with no applicable value.
const Placeholder = "-"

// Synthesizer resolves identifier references through the per-definition
// lookup tables while building field text.
type Synthesizer struct {
	refs  *index.ReferenceIndex
	tasks index.TaskIndex
}

func New(refs *index.ReferenceIndex, tasks index.TaskIndex) *Synthesizer {
	return &Synthesizer{refs: refs, tasks: tasks}
}

// Branching returns the visibility sentence registered for the parameter,
// or the placeholder when it is unconditionally visible.
func (s *Synthesizer) Branching(p *definition.Parameter) string {
	if text, ok := s.refs.Branching[definition.NormalizeID(p.ID)]; ok && text != "" {
		return text
	}
	return Placeholder
}

// parameterLabel resolves a parameter reference to its label, falling back
// to the raw identifier.
func (s *Synthesizer) parameterLabel(ref any) string {
	id := definition.NormalizeID(ref)
	if label, ok := s.refs.ParameterLabels[id]; ok && label != "" {
		return label
	}
	return id
}

// taskRef resolves a task reference to its stage-qualified position and
// name, or names the raw identifier with an explicit marker when the task
// is absent from the index.
func (s *Synthesizer) taskRef(ref any) string {
	if pos, ok := s.tasks.Lookup(ref); ok {
		return fmt.Sprintf("Task %d.%d: %s", pos.StageOrder, pos.TaskOrder, pos.TaskName)
	}
	return fmt.Sprintf("Task %s (not found)", definition.NormalizeID(ref))
}
