package vwparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vwparse "github.com/jcorbin/vimwiki"
)

func TestList_Disambiguation(t *testing.T) {
	for _, tc := range []struct {
		name        string
		in          string
		wantFamily  vwparse.ListFamily
		wantMarkers []string
	}{
		{
			name:       "roman run",
			in:         "i. first\nii. second\niii. third\n",
			wantFamily: vwparse.RomanFamily,
		},
		{
			name:       "alpha run (not valid roman letters)",
			in:         "a. first\nb. second\nc. third\n",
			wantFamily: vwparse.AlphaFamily,
		},
		{
			name:       "upper roman run",
			in:         "I. first\nII. second\n",
			wantFamily: vwparse.RomanFamily,
		},
		{
			name:       "hyphen bullets",
			in:         "- one\n- two\n",
			wantFamily: vwparse.SymbolicFamily,
		},
		{
			name:       "digit ordered",
			in:         "1. one\n2. two\n",
			wantFamily: vwparse.NumericFamily,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			page, diags := vwparse.Parse([]byte(tc.in))
			assert.Empty(t, diags)
			if !assert.Len(t, page.Blocks, 1) {
				return
			}
			list, ok := page.Blocks[0].(*vwparse.List)
			if !assert.True(t, ok, "expected a *vwparse.List, got %T", page.Blocks[0]) {
				return
			}
			assert.Equal(t, tc.wantFamily, list.Family)
		})
	}
}

func TestList_Sublist(t *testing.T) {
	page, diags := vwparse.Parse([]byte("- outer\n  - inner one\n  - inner two\n- outer two\n"))
	assert.Empty(t, diags)
	if !assert.Len(t, page.Blocks, 1) {
		return
	}
	list := page.Blocks[0].(*vwparse.List)
	if !assert.Len(t, list.Items, 2) {
		return
	}
	if !assert.Len(t, list.Items[0].Sublists, 1) {
		return
	}
	assert.Len(t, list.Items[0].Sublists[0].Items, 2)
	assert.Empty(t, list.Items[1].Sublists)
}

func TestList_TodoStatus(t *testing.T) {
	page, diags := vwparse.Parse([]byte("- [ ] not done\n- [X] done\n- [o] two thirds\n"))
	assert.Empty(t, diags)
	list := page.Blocks[0].(*vwparse.List)
	if !assert.Len(t, list.Items, 3) {
		return
	}
	want := []vwparse.TodoStatus{vwparse.Incomplete, vwparse.Complete, vwparse.TwoThirds}
	for i, w := range want {
		if assert.NotNil(t, list.Items[i].Todo) {
			assert.Equal(t, w, *list.Items[i].Todo)
		}
	}
}
