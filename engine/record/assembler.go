package record

import (
	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/definition"
	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/index"
	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/narration"
)

// Assemble runs the full pipeline over a batch of definitions. Indexes are
// rebuilt from scratch per definition, so nothing leaks between them. The
// combined list is stable-partitioned so creation-form records come first,
// preserving relative order within both partitions.
func Assemble(defs []*definition.Definition) []Record {
	var records []Record
	for _, def := range defs {
		if def == nil {
			continue
		}
		refs := index.BuildReferenceIndex(def)
		tasks := index.BuildTaskIndex(def)
		builder := NewBuilder(def, narration.New(refs, tasks))
		records = append(records, builder.Records()...)
	}
	return partitionCreationFormFirst(records)
}

func partitionCreationFormFirst(records []Record) []Record {
	front := make([]Record, 0, len(records))
	rest := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec[ColStage] == CreationFormStageName {
			front = append(front, rec)
		} else {
			rest = append(rest, rec)
		}
	}
	return append(front, rest...)
}
