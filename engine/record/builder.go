package record

import (
	"fmt"
	"strings"

	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/definition"
	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/narration"
)

// CreationFormStageName is the synthetic stage the top-level parameters are
// reported under. The assembler partitions on this exact name.
const CreationFormStageName = "Create Job Form"

const roleLabel = "Operator"

// Builder turns the parameters of one definition into flat records.
type Builder struct {
	def *definition.Definition
	syn *narration.Synthesizer
}

func NewBuilder(def *definition.Definition, syn *narration.Synthesizer) *Builder {
	return &Builder{def: def, syn: syn}
}

// Records builds every record of the definition: the creation form first,
// then each stage's tasks in declared order.
func (b *Builder) Records() []Record {
	records := b.creationFormRecords()
	for si := range b.def.Stages {
		stage := &b.def.Stages[si]
		for ti := range stage.Tasks {
			records = append(records, b.taskRecords(stage, &stage.Tasks[ti])...)
		}
	}
	return records
}

func (b *Builder) taskRecords(stage *definition.Stage, task *definition.Task) []Record {
	records := make([]Record, 0, len(task.Parameters))
	for pi := range task.Parameters {
		isLast := pi == len(task.Parameters)-1
		records = append(records, b.buildRecord(stage.Name, task.Name, task, &task.Parameters[pi], isLast))
	}
	return records
}

// creationFormRecords treats the top-level parameters as a synthetic task
// carrying no dependencies, executor lock, or automation.
func (b *Builder) creationFormRecords() []Record {
	synthetic := &definition.Task{Name: CreationFormStageName}
	records := make([]Record, 0, len(b.def.Parameters))
	for pi := range b.def.Parameters {
		isLast := pi == len(b.def.Parameters)-1
		records = append(records, b.buildRecord(CreationFormStageName, CreationFormStageName, synthetic, &b.def.Parameters[pi], isLast))
	}
	return records
}

// buildRecord fills the fixed column set for one parameter. The task-level
// columns are attached only when isLast holds, so each task contributes its
// dependencies, executor lock, and automation summary exactly once.
func (b *Builder) buildRecord(
	stageName string,
	taskName string,
	task *definition.Task,
	p *definition.Parameter,
	isLast bool,
) Record {
	rec := Record{
		ColStage:            stageName,
		ColTask:             taskName,
		ColRole:             roleLabel,
		ColDescription:      fmt.Sprintf("Record the value for %q.", p.Label),
		ColInstructionTitle: p.Label,
		ColValues:           valuesSummary(p),
		ColRequired:         requiredText(p.Mandatory),
		ColFieldType:        p.Type,
		ColSelfVerification: enabledText(p.SelfVerified()),
		ColPeerVerification: enabledText(p.PeerVerified()),
		ColBranching:        b.syn.Branching(p),
		ColFilters:          b.syn.Filters(p),
		ColValidations:      b.syn.Validations(p),
	}
	if isLast {
		rec[ColDependencies] = b.syn.Dependencies(task)
		rec[ColExecutorLock] = b.syn.ExecutorLock(task)
		rec[ColAutomations] = b.syn.Automations(task, b.def)
	} else {
		rec[ColDependencies] = narration.Placeholder
		rec[ColExecutorLock] = narration.Placeholder
		rec[ColAutomations] = ""
	}
	return rec
}

// valuesSummary renders the options or payload marker for the values
// column: a direct option list first, then a nested list, then a bracketed
// resource marker, then a bracketed instruction marker.
func valuesSummary(p *definition.Parameter) string {
	payload := p.Payload()
	switch payload.Kind {
	case definition.PayloadOptions, definition.PayloadNestedOptions:
		names := make([]string, 0, len(payload.Options))
		for i := range payload.Options {
			if text := payload.Options[i].DisplayText(); text != "" {
				names = append(names, text)
			}
		}
		if len(names) > 0 {
			return strings.Join(names, " • ")
		}
	case definition.PayloadResource:
		if payload.ObjectTypeName != "" {
			return fmt.Sprintf("[Resource: %s]", payload.ObjectTypeName)
		}
		return "[Resource]"
	case definition.PayloadText:
		return "[Instruction]"
	}
	return narration.Placeholder
}

func requiredText(mandatory bool) string {
	if mandatory {
		return "Mandatory"
	}
	return "Optional"
}

func enabledText(enabled bool) string {
	if enabled {
		return "Enabled"
	}
	return "Disabled"
}
