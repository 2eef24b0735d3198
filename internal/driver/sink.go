package driver

import (
	"bufio"
	"io"
	"strconv"
)

// DoneMarker is the line written after the last value.
const DoneMarker = "Done!"

// TextSink writes one decimal integer per line followed by DoneMarker.
type TextSink struct {
	w *bufio.Writer
}

// NewTextSink returns a sink buffering writes to w until Done.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: bufio.NewWriter(w)}
}

// Emit implements Sink.
func (s *TextSink) Emit(value int) error {
	var buf [24]byte
	line := strconv.AppendInt(buf[:0], int64(value), 10)
	line = append(line, '\n')
	_, err := s.w.Write(line)
	return err
}

// Done implements Sink.
func (s *TextSink) Done() error {
	if _, err := s.w.WriteString(DoneMarker + "\n"); err != nil {
		return err
	}
	return s.w.Flush()
}
