package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/dshills/textgeom/core"
)

// ErrBadDocument indicates a document file that is not valid JSON or
// does not follow the expected shape.
var ErrBadDocument = errors.New("invalid document")

// LoadDocument reads a block list from a JSON file of the form:
//
//	{
//	  "blocks": [
//	    {"kind": "heading1", "content": "Title"},
//	    {"kind": "paragraph", "content": "Body text\nsecond line"}
//	  ]
//	}
//
// A block with no "kind" field defaults to a paragraph.
func LoadDocument(path string) ([]core.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	blocks, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", path, err)
	}
	return blocks, nil
}

// ParseDocument decodes the JSON document format used by the viewer.
func ParseDocument(data []byte) ([]core.Block, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrBadDocument)
	}
	list := gjson.GetBytes(data, "blocks")
	if !list.Exists() || !list.IsArray() {
		return nil, fmt.Errorf("%w: missing blocks array", ErrBadDocument)
	}

	items := list.Array()
	blocks := make([]core.Block, 0, len(items))
	for i, item := range items {
		kindName := item.Get("kind").String()
		if kindName == "" {
			kindName = "paragraph"
		}
		kind, ok := core.KindFromString(kindName)
		if !ok {
			return nil, fmt.Errorf("%w: block %d has unknown kind %q", ErrBadDocument, i, kindName)
		}
		blocks = append(blocks, core.NewBlock(kind, item.Get("content").String()))
	}
	return blocks, nil
}

// sampleDocument builds an in-memory document large enough to scroll,
// used when no -doc flag is given.
func sampleDocument() []core.Block {
	blocks := []core.Block{
		core.NewBlock(core.KindHeading1, "textgeom demo"),
		core.NewBlock(core.KindParagraph, "Scroll with the arrow keys. Only the blocks inside the\nviewport (plus overscan) are drawn each frame."),
		core.NewBlock(core.KindQuote, "Pass -styles styles.toml and edit the file while the\nviewer runs to see heights reconfigure live."),
	}
	for i := 1; i <= 40; i++ {
		blocks = append(blocks,
			core.NewBlock(core.KindHeading2, fmt.Sprintf("Section %d", i)),
			core.NewBlock(core.KindParagraph, fmt.Sprintf("Paragraph %d line one.\nParagraph %d line two.", i, i)),
			core.NewBlock(core.KindCode, fmt.Sprintf("let section = %d\nrender(section)", i)),
			core.NewBlock(core.KindList, "- alpha\n- beta\n- gamma"),
		)
	}
	return blocks
}
