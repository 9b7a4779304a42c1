package index

import (
	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/definition"
)

// TaskPosition is the resolved location of one task: its own and its stage's
// display names plus 1-based ordering positions.
type TaskPosition struct {
	TaskName   string
	StageName  string
	StageOrder int
	TaskOrder  int
}

// TaskIndex maps canonical task identifiers to their positions. Keys are
// normalized once at build time, so lookups are representation-agnostic for
// string and numeric identifier encodings.
type TaskIndex map[string]TaskPosition

// BuildTaskIndex walks every stage and task of the definition. Explicit
// ordering hints win; traversal position is the fallback.
func BuildTaskIndex(def *definition.Definition) TaskIndex {
	idx := make(TaskIndex)
	if def == nil {
		return idx
	}
	for si := range def.Stages {
		stage := &def.Stages[si]
		stageOrder := stage.OrderTree
		if stageOrder <= 0 {
			stageOrder = si + 1
		}
		for ti := range stage.Tasks {
			task := &stage.Tasks[ti]
			taskOrder := task.OrderTree
			if taskOrder <= 0 {
				taskOrder = ti + 1
			}
			id := definition.NormalizeID(task.ID)
			if id == "" {
				continue
			}
			idx[id] = TaskPosition{
				TaskName:   task.Name,
				StageName:  stage.Name,
				StageOrder: stageOrder,
				TaskOrder:  taskOrder,
			}
		}
	}
	return idx
}

// Lookup resolves a task reference in any identifier representation.
func (idx TaskIndex) Lookup(ref any) (TaskPosition, bool) {
	pos, ok := idx[definition.NormalizeID(ref)]
	return pos, ok
}
