package vwparse_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	vwparse "github.com/jcorbin/vimwiki"
)

func TestParseInline(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "just words", "Text(just words)"},
		{"bold", "*bold*", "Bold[Text(bold)]"},
		{"italic", "_italic_", "Italic[Text(italic)]"},
		{"bold italic", "*_both_*", "BoldItalic[Text(both)]"},
		{"code is literal", "`a *b*`", "Code[Text(a *b*)]"},
		{"strikeout", "~~gone~~", "Strikeout[Text(gone)]"},
		{"nested decoration", "*_b_i*", "Bold[Italic[Text(b)] Text(i)]"},
		{"math", "$x^2$", "Math(x^2)"},
		{"tags", ":a:b:", "Tags([a b])"},
		{"keyword at boundary", "TODO: do it", "Keyword(TODO) Text(: do it)"},
		{"keyword mid-word is not one", "NOTODO", "Text(NOTODO)"},
		{"bracket link", "[[Home]]", "Link(Wiki Home)"},
		{"bracket link with description", "[[Home|go home]]", "Link(Wiki Home|Text(go home))"},
		{"bare uri", "see https://example.com/x for more", "Text(see ) Link(Raw https://example.com/x) Text( for more)"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := renderInline(vwparse.ParseInline([]byte(tc.in)))
			assert.Equal(t, tc.want, got)
		})
	}
}

// renderInline gives inline-element trees a compact, order-preserving
// textual form for table-driven assertions, mirroring how the block-level
// Example test asserts against a literal printed shape.
func renderInline(els []vwparse.InlineElement) string {
	parts := make([]string, len(els))
	for i, el := range els {
		parts[i] = renderOne(el)
	}
	return joinSpace(parts)
}

func renderOne(el vwparse.InlineElement) string {
	switch e := el.(type) {
	case *vwparse.Text:
		return fmt.Sprintf("Text(%s)", e.Value)
	case *vwparse.Keyword:
		return fmt.Sprintf("Keyword(%v)", e.Word)
	case *vwparse.MathInline:
		return fmt.Sprintf("Math(%s)", e.Value)
	case *vwparse.Tags:
		return fmt.Sprintf("Tags(%v)", e.Values)
	case *vwparse.DecoratedText:
		return fmt.Sprintf("%v[%s]", e.Style, renderInline(e.Content))
	case *vwparse.Link:
		s := fmt.Sprintf("Link(%v %s", e.Kind, e.Path)
		if e.HasDescription && e.Description.Kind == vwparse.TextDescription {
			s += "|" + renderInline(e.Description.Inline)
		}
		return s + ")"
	default:
		return fmt.Sprintf("?(%T)", el)
	}
}

func joinSpace(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}
