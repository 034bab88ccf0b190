package model

import "io"

// StreamingOutput writes a document to w as it is produced.
type StreamingOutput func(w io.Writer) error

// Document is a fully rendered file returned by an external engine.
type Document struct {
	ContentType string
	// Disposition is the Content-Disposition header value, empty for inline documents.
	Disposition string
	Body        []byte
}
