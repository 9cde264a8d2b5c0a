package file

import "fmt"

// UnsupportedTypeError reports an upload whose extension no extractor
// handles. It is a normal error value for the API layer to surface, not a
// crash.
type UnsupportedTypeError struct {
	Ext string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Ext)
}

// TextExtractor pulls plain text out of one uploaded document format.
type TextExtractor interface {
	ExtractText(content []byte) (string, error)
}
