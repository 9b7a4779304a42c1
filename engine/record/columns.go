// Package record assembles flat narration records, one per (stage, task,
// parameter) triple, and orders them for export.
package record

// Column names one cell of a flat record. The set and its order are fixed;
// serializers emit cells in exactly this order.
type Column string

const (
	ColStage            Column = "Stage"
	ColTask             Column = "Task"
	ColRole             Column = "Role"
	ColDescription      Column = "Description"
	ColInstructionTitle Column = "Instruction Title"
	ColValues           Column = "Values/Options"
	ColRequired         Column = "Required"
	ColFieldType        Column = "Field Type"
	ColSelfVerification Column = "Self Verification"
	ColPeerVerification Column = "Peer Verification"
	ColDependencies     Column = "Dependencies"
	ColExecutorLock     Column = "Executor Lock"
	ColBranching        Column = "Branching Logic"
	ColFilters          Column = "Filters"
	ColValidations      Column = "Validations"
	ColAutomations      Column = "Automations"
)

// Columns is the fixed column order of every record.
var Columns = []Column{
	ColStage,
	ColTask,
	ColRole,
	ColDescription,
	ColInstructionTitle,
	ColValues,
	ColRequired,
	ColFieldType,
	ColSelfVerification,
	ColPeerVerification,
	ColDependencies,
	ColExecutorLock,
	ColBranching,
	ColFilters,
	ColValidations,
	ColAutomations,
}

// Record maps every column to its text value. Cells are never absent:
// inapplicable fields carry the placeholder (or empty text for automations).
type Record map[Column]string

// Row returns the record's cells in fixed column order.
func (r Record) Row() []string {
	row := make([]string, len(Columns))
	for i, col := range Columns {
		row[i] = r[col]
	}
	return row
}

// Header returns the column names in fixed order.
func Header() []string {
	header := make([]string, len(Columns))
	for i, col := range Columns {
		header[i] = string(col)
	}
	return header
}
