package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/record"
)

func sampleRecords() []record.Record {
	first := record.Record{}
	for _, col := range record.Columns {
		first[col] = "-"
	}
	first[record.ColStage] = "Intake"
	first[record.ColTask] = "Collect Info"
	first[record.ColInstructionTitle] = "Operator Name"
	first[record.ColDescription] = `Record the value, please`
	return []record.Record{first}
}

func TestWriteDelimited(t *testing.T) {
	t.Run("Should emit a header row and one row per record", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDelimited(&buf, sampleRecords(), DefaultSeparator))
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "Stage|Task|Role|"))
		assert.Contains(t, lines[1], "Intake|Collect Info")
	})

	t.Run("Should tolerate embedded commas without quoting", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDelimited(&buf, sampleRecords(), DefaultSeparator))
		assert.Contains(t, buf.String(), "Record the value, please")
	})
}

func TestWriteXLSX(t *testing.T) {
	t.Run("Should produce a readable single-sheet workbook", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteXLSX(&buf, sampleRecords()))

		workbook, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		defer workbook.Close()
		rows, err := workbook.GetRows(sheetName)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, record.Header(), rows[0])
		assert.Equal(t, "Intake", rows[1][0])
		assert.Equal(t, "Collect Info", rows[1][1])
	})

	t.Run("Should carry markup characters through intact", func(t *testing.T) {
		recs := sampleRecords()
		recs[0][record.ColDescription] = `Keep <tags> & "quotes"`
		var buf bytes.Buffer
		require.NoError(t, WriteXLSX(&buf, recs))

		workbook, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		defer workbook.Close()
		value, err := workbook.GetCellValue(sheetName, "D2")
		require.NoError(t, err)
		assert.Equal(t, `Keep <tags> & "quotes"`, value)
	})
}
