// Package responsewriter wraps http.ResponseWriter to remember the status
// code and body size for logging, metrics and tracing.
package responsewriter

import (
	"net/http"
)

// ResponseWriter records what was sent through it.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode    int
	bytesWritten  int
	headerWritten bool
}

// Wrap returns w wrapped. An existing *ResponseWriter is returned as is so
// stacked middleware share one record.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader records the first status code only.
func (w *ResponseWriter) WriteHeader(statusCode int) {
	if w.headerWritten {
		return
	}
	w.statusCode = statusCode
	w.headerWritten = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

// StatusCode returns the recorded status, 200 if none was written.
func (w *ResponseWriter) StatusCode() int { return w.statusCode }

// BytesWritten returns the body size so far.
func (w *ResponseWriter) BytesWritten() int { return w.bytesWritten }

// Written reports whether the header has gone out.
func (w *ResponseWriter) Written() bool { return w.headerWritten }

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
