package texttable

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMalformedSource is returned when the XML source cannot be parsed.
var ErrMalformedSource = errors.New("malformed text table source")

// cursor walks an XML document forward only. Elements the caller is not
// interested in are skipped as a whole, so their children are never inspected.
type cursor struct {
	decoder *xml.Decoder
}

// newCursor transcodes a source starting with a UTF-8 or UTF-16 byte order
// mark to UTF-8 before parsing. Other encodings are taken from the XML
// declaration.
func newCursor(r io.Reader) *cursor {
	decoder := xml.NewDecoder(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	decoder.CharsetReader = charsetReader
	return &cursor{decoder: decoder}
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	// The parser only reads the declaration once the stream is UTF-8, so a
	// UTF-16 document has already been transcoded from its byte order mark.
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(label)), "utf-16") {
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}

// readToFollowing advances to the next start element with the given local name.
// It returns false once the document is exhausted.
func (c *cursor) readToFollowing(local string) (xml.StartElement, bool, error) {
	for {
		tok, err := c.decoder.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, false, nil
		}
		if err != nil {
			return xml.StartElement{}, false, fmt.Errorf("%w: %w", ErrMalformedSource, err)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == local {
			return se, true, nil
		}
	}
}

// nextChild returns the next child element of the element whose start tag was
// consumed last. Whitespace, comments and processing instructions between
// children are ignored. It returns false when the parent's end tag is reached,
// or when text other than whitespace appears; the rest of the parent is then
// skipped.
func (c *cursor) nextChild() (xml.StartElement, bool, error) {
	for {
		tok, err := c.decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return xml.StartElement{}, false, fmt.Errorf("%w: %w", ErrMalformedSource, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, true, nil
		case xml.EndElement:
			return xml.StartElement{}, false, nil
		case xml.CharData:
			if len(bytes.Trim(t, " \t\r\n")) > 0 {
				return xml.StartElement{}, false, c.skip()
			}
		}
	}
}

// readText consumes the rest of the current element and returns its text.
// The element must not contain child elements.
func (c *cursor) readText(se xml.StartElement) (string, error) {
	var b strings.Builder
	for {
		tok, err := c.decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return "", fmt.Errorf("%w: %w", ErrMalformedSource, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			return "", fmt.Errorf("%w: element <%s> inside <%s> where only text is allowed",
				ErrMalformedSource, t.Name.Local, se.Name.Local)
		case xml.EndElement:
			return b.String(), nil
		}
	}
}

// skip consumes the rest of the current element including its subtree.
func (c *cursor) skip() error {
	if err := c.decoder.Skip(); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("%w: %w", ErrMalformedSource, err)
	}
	return nil
}
