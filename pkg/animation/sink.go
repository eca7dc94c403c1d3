package animation

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/natefinch/atomic"
)

// Sink renders a finished fragment into whatever surface the user sees.
type Sink interface {
	Display(ctx context.Context, fileID string, fragment template.HTML) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(ctx context.Context, fileID string, fragment template.HTML) error

func (f SinkFunc) Display(ctx context.Context, fileID string, fragment template.HTML) error {
	return f(ctx, fileID, fragment)
}

// WriterSink writes every fragment to an io.Writer, one after another.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a Sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Display(_ context.Context, _ string, fragment template.HTML) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.w, string(fragment)); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, "\n")
	return err
}

// FileSink writes each fragment as a standalone page named <fileID>.html
// inside Dir. Files are replaced atomically.
type FileSink struct {
	Dir string
}

func (s FileSink) Display(ctx context.Context, fileID string, fragment template.HTML) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if fileID == "" || fileID == "." || fileID == ".." || strings.ContainsAny(fileID, `/\`) || fileID != filepath.Base(fileID) {
		return fmt.Errorf("file id %q is not a valid file name", fileID)
	}
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	buf.WriteString(template.HTMLEscapeString(fileID))
	buf.WriteString("</title>\n</head>\n<body>\n")
	buf.WriteString(string(fragment))
	buf.WriteString("\n</body>\n</html>\n")
	return atomic.WriteFile(filepath.Join(s.Dir, fileID+".html"), &buf)
}
