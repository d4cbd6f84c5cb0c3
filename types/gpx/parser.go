package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
)

// ParseReader decodes a GPX document.
// The whole document decodes or none of it does; a malformed point
// anywhere fails the parse rather than yielding a partial model.
func ParseReader(r io.Reader) (*GPX, error) {
	decoder := xml.NewDecoder(r)

	var doc GPX
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}

	if doc.XMLNS == "" {
		doc.XMLNS = XMLNSGPX11
	}
	if doc.Version == "" {
		doc.Version = "1.1"
	}

	return &doc, nil
}

// WriteTo encodes the document with the XML header and two-space indent.
func (g *GPX) WriteTo(w io.Writer) error {
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")

	if err := encoder.Encode(g); err != nil {
		return fmt.Errorf("failed to encode GPX: %w", err)
	}
	// Encoder.Encode flushes, but the trailing newline is on us.
	if _, err := w.Write([]byte("\n")); err != nil {
		return err
	}
	return nil
}
