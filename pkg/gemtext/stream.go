package gemtext

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
)

// MaxLineSize is the longest input line Convert accepts.
const MaxLineSize = 16 << 20

// ReadLines splits content into lines with their terminators stripped.
// "\n", "\r\n" and a lone "\r" all end a line. A trailing terminator does
// not produce an extra empty line.
func ReadLines(content []byte) []string {
	var lines []string
	for len(content) > 0 {
		advance, token, _ := scanLines(content, true)
		lines = append(lines, string(token))
		content = content[advance:]
	}
	return lines
}

// scanLines is a bufio.SplitFunc for universal newlines.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	idx := bytes.IndexAny(data, "\r\n")
	switch {
	case idx < 0:
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	case data[idx] == '\n':
		return idx + 1, data[:idx], nil
	case idx+1 < len(data):
		if data[idx+1] == '\n' {
			return idx + 2, data[:idx], nil
		}
		return idx + 1, data[:idx], nil
	case atEOF:
		return idx + 1, data[:idx], nil
	default:
		// A "\r" at the end of the buffer may be the first half of "\r\n".
		return 0, nil, nil
	}
}

// JoinLines joins output lines, terminating each with a newline.
func JoinLines(lines []string) []byte {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// Convert reads Gemtext from r and writes HTML lines to w, one output line
// per written line. Output is flushed as soon as a line can no longer be
// retracted, so arbitrarily long inputs are converted in constant memory.
// Lines are split like ReadLines; a line longer than MaxLineSize is an error.
// The context is checked between input lines.
func Convert(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	scanner.Split(scanLines)
	writer := bufio.NewWriter(w)
	t := New(opts...)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("convert: %w", ctx.Err())
		default:
		}

		t.Push(scanner.Text())
		if err := writeLines(writer, t.Drain()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read line: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	if err := writeLines(writer, t.Close()); err != nil {
		return err
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func writeLines(w *bufio.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}
	return nil
}
