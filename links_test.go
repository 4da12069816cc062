package vwparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vwparse "github.com/jcorbin/vimwiki"
)

func TestClassifyTarget(t *testing.T) {
	for _, tc := range []struct {
		name       string
		target     string
		wantKind   vwparse.LinkKind
		wantPath   string
		wantAnchor []string
	}{
		{"plain wiki page", "Some Page", vwparse.WikiLink, "Some Page", nil},
		{"wiki page with anchor", "Some Page#Section", vwparse.WikiLink, "Some Page", []string{"Section"}},
		{"indexed interwiki", "wiki1:Other Page", vwparse.IndexedInterwikiLink, "Other Page", nil},
		{"named interwiki", "wn.blog:post", vwparse.NamedInterwikiLink, "post", nil},
		{"diary", "diary:2024-01-01", vwparse.DiaryLink, "2024-01-01", nil},
		{"local file", "local:/home/me/file.txt", vwparse.ExternalFileLink, "/home/me/file.txt", nil},
		{"bare slash-slash path", "//srv/share/doc", vwparse.ExternalFileLink, "file://srv/share/doc", nil},
		{"www autolink target", "www.example.com", vwparse.RawLink, "https://www.example.com", nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			page, diags := vwparse.Parse([]byte("[[" + tc.target + "]]"))
			assert.Empty(t, diags)
			para, ok := page.Blocks[0].(*vwparse.Paragraph)
			if !assert.True(t, ok, "expected a *vwparse.Paragraph, got %T", page.Blocks[0]) {
				return
			}
			if !assert.Len(t, para.Lines, 1) || !assert.Len(t, para.Lines[0], 1) {
				return
			}
			link, ok := para.Lines[0][0].(*vwparse.Link)
			if !assert.True(t, ok, "expected a *vwparse.Link, got %T", para.Lines[0][0]) {
				return
			}
			assert.Equal(t, tc.wantKind, link.Kind)
			assert.Equal(t, tc.wantPath, link.Path)
			assert.Equal(t, tc.wantAnchor, link.Anchor)
		})
	}
}

func TestMalformedLink_Diagnostic(t *testing.T) {
	page, diags := vwparse.Parse([]byte("text [[unterminated then EOL\nnext line\n"))
	if assert.Len(t, diags, 1) {
		assert.Equal(t, vwparse.MalformedLink, diags[0].Kind)
	}
	if assert.Len(t, page.Blocks, 1) {
		para := page.Blocks[0].(*vwparse.Paragraph)
		assert.Equal(t, 2, len(para.Lines))
	}
}

func TestTransclusion_Properties(t *testing.T) {
	page, diags := vwparse.Parse([]byte(`{{images/pic.png|a caption|width="200"}}` + "\n"))
	assert.Empty(t, diags)
	para := page.Blocks[0].(*vwparse.Paragraph)
	link := para.Lines[0][0].(*vwparse.Link)
	assert.Equal(t, vwparse.Transclusion, link.Kind)
	assert.Equal(t, "images/pic.png", link.Path)
	assert.True(t, link.HasDescription)
	assert.Equal(t, map[string]string{"width": "200"}, link.Properties)
}
