package vwparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vwparse "github.com/jcorbin/vimwiki"
)

func TestTable_Basic(t *testing.T) {
	page, diags := vwparse.Parse([]byte("| A | B |\n|---|---|\n| 1 | 2 |\n"))
	assert.Empty(t, diags)
	if !assert.Len(t, page.Blocks, 1) {
		return
	}
	tbl, ok := page.Blocks[0].(*vwparse.Table)
	if !assert.True(t, ok, "expected a *vwparse.Table, got %T", page.Blocks[0]) {
		return
	}
	assert.False(t, tbl.Centered)
	if assert.Len(t, tbl.Rows, 3) {
		assert.False(t, tbl.Rows[0].Divider)
		assert.True(t, tbl.Rows[1].Divider)
		assert.Len(t, tbl.Rows[0].Cells, 2)
		assert.Len(t, tbl.Rows[2].Cells, 2)
	}
}

func TestTable_Centered(t *testing.T) {
	page, _ := vwparse.Parse([]byte("   | A | B |\n"))
	tbl := page.Blocks[0].(*vwparse.Table)
	assert.True(t, tbl.Centered)
}

func TestTable_SpanCells(t *testing.T) {
	page, diags := vwparse.Parse([]byte("| A | B |\n| > | \\/ |\n"))
	assert.Empty(t, diags)
	tbl := page.Blocks[0].(*vwparse.Table)
	if !assert.Len(t, tbl.Rows, 2) {
		return
	}
	cells := tbl.Rows[1].Cells
	if assert.Len(t, cells, 2) {
		assert.Equal(t, vwparse.CellSpanLeft, cells[0].Kind)
		assert.Equal(t, vwparse.CellSpanAbove, cells[1].Kind)
	}
}

func TestTable_Ragged(t *testing.T) {
	page, diags := vwparse.Parse([]byte("| A | B |\n| 1 |\n"))
	tbl := page.Blocks[0].(*vwparse.Table)
	assert.Len(t, tbl.Rows, 2)
	if assert.Len(t, diags, 1) {
		assert.Equal(t, vwparse.RaggedTable, diags[0].Kind)
	}
}
