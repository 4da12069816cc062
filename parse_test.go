package vwparse_test

import (
	"fmt"

	vwparse "github.com/jcorbin/vimwiki"
)

// Example is a whole-document smoke test: a single document exercising
// most of the twelve block productions at once, asserted against a literal
// expected shape.
func Example() {
	page, diags := vwparse.Parse([]byte(`= Welcome =

This is an intro paragraph
with a hanging continuation line.

----

%title My Page
%date 2024-03-09

- a list item
  with hanging indent
- *b* roman-looking letters follow
  - nested sub item
- c

| Name | Age |
|------|-----|
| Ann  | 30  |
`))

	for _, b := range page.Blocks {
		fmt.Printf("%T\n", b)
	}
	fmt.Println("diags:", len(diags))

	// Output:
	// *vwparse.Header
	// *vwparse.BlankLine
	// *vwparse.Paragraph
	// *vwparse.BlankLine
	// *vwparse.Divider
	// *vwparse.BlankLine
	// *vwparse.Placeholder
	// *vwparse.Placeholder
	// *vwparse.BlankLine
	// *vwparse.List
	// *vwparse.BlankLine
	// *vwparse.Table
	// diags: 0
}
