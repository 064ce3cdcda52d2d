package httpapi

import (
	"net/http"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen is how much of the file is inspected to pick a content type.
const sniffLen = 3072

// detectContentType picks the multipart part's content type from the file head.
// The stdlib sniffer answers first; mimetype covers office and archive formats
// that http.DetectContentType reports as octet-stream.
func detectContentType(head []byte) string {
	if len(head) == 0 {
		return "application/octet-stream"
	}
	mt := http.DetectContentType(head)
	if mt != "application/octet-stream" && mt != "application/zip" {
		return mt
	}
	return mimetype.Detect(head).String()
}
