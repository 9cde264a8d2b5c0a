package file

import (
	"path/filepath"
	"strings"
)

// Core dispatches uploaded documents to the extractor for their extension.
type Core struct {
	pdfExtractor  TextExtractor
	docxExtractor TextExtractor
}

func NewCore() *Core {
	return &Core{
		pdfExtractor:  NewPDFExtractor(),
		docxExtractor: NewDocxExtractor(),
	}
}

// Extract returns the plain text of an uploaded document, chosen by file
// extension. Unknown extensions yield an *UnsupportedTypeError.
func (c *Core) Extract(filename string, content []byte) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	switch ext {
	case "pdf":
		return c.pdfExtractor.ExtractText(content)
	case "txt":
		return string(content), nil
	case "docx":
		return c.docxExtractor.ExtractText(content)
	default:
		return "", &UnsupportedTypeError{Ext: ext}
	}
}
