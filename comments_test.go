package vwparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vwparse "github.com/jcorbin/vimwiki"
)

func TestStripComments(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want string
	}{
		{"line comment", "keep %% drop this\nmore", "keep \nmore"},
		{"multiline comment", "a %%+ all\nof this\nis gone +%% b", "a  b"},
		{"no comments", "plain text", "plain text"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, _, diags := vwparse.StripComments([]byte(tc.in))
			assert.Empty(t, diags)
			assert.Equal(t, tc.want, string(out))
		})
	}
}

func TestStripComments_Unterminated(t *testing.T) {
	out, _, diags := vwparse.StripComments([]byte("keep %%+ never closed"))
	assert.Equal(t, "keep ", string(out))
	if assert.Len(t, diags, 1) {
		assert.Equal(t, vwparse.UnterminatedMultilineComment, diags[0].Kind)
		assert.Equal(t, vwparse.Warning, diags[0].Severity)
	}
}

func TestRegionsSurviveCommentStripping(t *testing.T) {
	// The header text sits after a stripped line comment on the previous
	// line, so its Region must be translated back to where "= Hi =" really
	// starts in the original input, not where it lands in the stripped view.
	// The comment's line ending survives stripping, so a BlankLine comes first.
	src := []byte("%% a comment\n= Hi =\n")
	page, diags := vwparse.Parse(src)
	assert.Empty(t, diags)
	if !assert.Len(t, page.Blocks, 2) {
		return
	}
	h := page.Blocks[1].(*vwparse.Header)
	assert.Equal(t, "= Hi =", string(h.Reg.Slice(src)))
	assert.Equal(t, 2, h.Reg.Position.Line)
}

func TestUnterminatedMathBlock(t *testing.T) {
	// spec.md §7: an unterminated {{$ block falls back to a Paragraph for
	// the opening line only; the rest of the input is re-dispatched as
	// normal, not swallowed into a MathBlock spanning every consumed line.
	page, diags := vwparse.Parse([]byte("{{$\nx = 1\n"))
	if assert.Len(t, diags, 1) {
		assert.Equal(t, vwparse.UnterminatedMathBlock, diags[0].Kind)
	}
	if assert.Len(t, page.Blocks, 2) {
		opening := page.Blocks[0].(*vwparse.Paragraph)
		assert.Equal(t, "{{$", string(opening.Reg.Slice([]byte("{{$\nx = 1\n"))))

		rest := page.Blocks[1].(*vwparse.Paragraph)
		assert.Equal(t, "x = 1", string(rest.Reg.Slice([]byte("{{$\nx = 1\n"))))
	}
}

func TestInvalidDatePlaceholder(t *testing.T) {
	page, diags := vwparse.Parse([]byte("%date not-a-date\n"))
	if assert.Len(t, diags, 1) {
		assert.Equal(t, vwparse.InvalidDate, diags[0].Kind)
	}
	ph := page.Blocks[0].(*vwparse.Placeholder)
	assert.False(t, ph.HasDate)
}
