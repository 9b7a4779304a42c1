package narration

import (
	"fmt"
	"strings"

	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/definition"
)

// Dependencies renders one block per prerequisite task. Resolved references
// name the prerequisite's stage and its stage-qualified position; unresolved
// references cite the raw identifier with an explicit marker.
func (s *Synthesizer) Dependencies(task *definition.Task) string {
	if len(task.PrerequisiteTaskIDs) == 0 {
		return Placeholder
	}
	blocks := make([]string, 0, len(task.PrerequisiteTaskIDs))
	for _, ref := range task.PrerequisiteTaskIDs {
		if pos, ok := s.tasks.Lookup(ref); ok {
			blocks = append(blocks, fmt.Sprintf(
				"Stage %d: %s\nTask %d.%d: %s",
				pos.StageOrder, pos.StageName, pos.StageOrder, pos.TaskOrder, pos.TaskName,
			))
			continue
		}
		blocks = append(blocks, s.taskRef(ref))
	}
	return strings.Join(blocks, "\n\n")
}

// ExecutorLock renders the same-executor and different-executor halves of a
// task's executor lock. Both halves are independent and may coexist.
func (s *Synthesizer) ExecutorLock(task *definition.Task) string {
	lock := task.ExecutorLock
	if lock.IsZero() {
		return Placeholder
	}
	var lines []string
	if !lock.SameAsTaskID.IsZero() {
		lines = append(lines, "Must be completed by the same executor as "+s.taskRef(lock.SameAsTaskID))
	}
	for _, ref := range lock.NotSameAsTaskIDs {
		if ref.IsZero() {
			continue
		}
		lines = append(lines, "Must not be completed by the same executor as "+s.taskRef(ref))
	}
	if len(lines) == 0 {
		return Placeholder
	}
	return strings.Join(lines, "\n")
}
