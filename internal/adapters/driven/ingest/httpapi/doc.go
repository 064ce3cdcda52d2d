// Package httpapi implements driven.IngestClient against the IDMS ingest service.
//
// The client posts a single multipart field named "file" to {base}/ingest and
// decodes the routed document from the JSON response. Every failure, from
// transport errors to bodies that are not a routed document, is reported as
// domain.ErrUploadFailed. Requests are never retried.
package httpapi
