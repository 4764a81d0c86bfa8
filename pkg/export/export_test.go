package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Title:   "Interns Overview",
		Columns: []string{"Name", "Unit", "Status"},
		Rows: [][]string{
			{"John Doe", "Research", "ongoing"},
			{"Mike Johnson", "Finance", "completed"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleTable())
	require.NoError(t, err)

	assert.Equal(t, "Name,Unit,Status\nJohn Doe,Research,ongoing\nMike Johnson,Finance,completed\n", string(out))
}

func TestCSVExporterRejectsRaggedRows(t *testing.T) {
	table := sampleTable()
	table.Rows = append(table.Rows, []string{"only-one"})

	_, err := NewCSVExporter().Render(table)
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleTable())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestExportersRequireColumns(t *testing.T) {
	_, err := NewPDFExporter().Render(Table{})
	assert.Error(t, err)
	_, err = NewCSVExporter().Render(Table{})
	assert.Error(t, err)
}
