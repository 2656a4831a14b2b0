package pdfdoc

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ProducesPDF(t *testing.T) {
	doc := New().
		Text("UNIBOOKS", TextStyle{Size: 22, Bold: true, Align: AlignCenter}).
		Spacer(5).
		Text("Invoice #: INV-20240601-0001", TextStyle{})

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output must start with PDF magic")
	assert.Greater(t, buf.Len(), 500)
}

func TestRender_MissingImageFails(t *testing.T) {
	doc := New().Image("/nonexistent/logo.png", 30, AlignCenter)

	var buf bytes.Buffer
	err := doc.Render(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logo.png")
}

func TestRender_TableSingleRow(t *testing.T) {
	columns := []Column{
		{Header: "Code", Width: 0.4, Align: AlignLeft},
		{Header: "Qty", Width: 0.2, Align: AlignCenter},
		{Header: "Total", Width: 0.4, Align: AlignRight},
	}
	doc := New().Table(columns, []Row{
		{Cells: []string{"STA211", "1", "N200.00"}},
		{Cells: []string{"", "Subtotal", "N200.00"}, Summary: true},
	})

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))

	pages, err := doc.PageCount()
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestRender_LongTablePaginates(t *testing.T) {
	columns := []Column{
		{Header: "Code", Width: 0.5, Align: AlignLeft},
		{Header: "Total", Width: 0.5, Align: AlignRight},
	}
	rows := make([]Row, 0, 80)
	for i := 0; i < 80; i++ {
		rows = append(rows, Row{Cells: []string{fmt.Sprintf("BOOK%03d", i), "N10.00"}})
	}
	doc := New().Table(columns, rows)

	pages, err := doc.PageCount()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pages, 2, "80 rows at 8mm each cannot fit one A4 page")

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
}
