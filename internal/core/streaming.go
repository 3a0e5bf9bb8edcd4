package core

// streaming.go provides the reader chain used when loading FAERS files.
//
// Quarterly exports are hundreds of megabytes, so they are never
// buffered whole. The chain applied by wrapForLoading is:
//
//   - UTF-8 BOM removal (some re-saved files carry one)
//   - invalid UTF-8 replacement with '?' (older quarters are Latin-1 in places)
//   - byte counting for load statistics

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

const loadBufferSize = 256 * 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM returns a buffered reader positioned after a leading UTF-8 BOM.
func skipBOM(r io.Reader) *bufio.Reader {
	br := bufio.NewReaderSize(r, loadBufferSize)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}

// utf8Sanitizer replaces bytes that are not part of a valid UTF-8 sequence
// with '?'. A multi-byte sequence split across reads is carried into the
// next fill; at EOF an unfinished sequence is replaced byte by byte.
type utf8Sanitizer struct {
	r     io.Reader
	chunk []byte
	carry []byte
	out   []byte
	ready []byte
	err   error
}

func newUTF8Sanitizer(r io.Reader) *utf8Sanitizer {
	return &utf8Sanitizer{
		r:     r,
		chunk: make([]byte, 32*1024),
		carry: make([]byte, 0, utf8.UTFMax),
	}
}

func (s *utf8Sanitizer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(s.ready) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		s.fill()
	}
	n := copy(p, s.ready)
	s.ready = s.ready[n:]
	return n, nil
}

func (s *utf8Sanitizer) fill() {
	n, err := s.r.Read(s.chunk)
	s.err = err

	data := s.chunk[:n]
	if len(s.carry) > 0 {
		data = append(append([]byte(nil), s.carry...), data...)
		s.carry = s.carry[:0]
	}

	if !hasHighBit(data) {
		s.out = append(s.out[:0], data...)
		s.ready = s.out
		return
	}

	out := s.out[:0]
	for i := 0; i < len(data); {
		if data[i] < utf8.RuneSelf {
			out = append(out, data[i])
			i++
			continue
		}
		if err == nil && !utf8.FullRune(data[i:]) {
			s.carry = append(s.carry, data[i:]...)
			break
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			out = append(out, '?')
		} else {
			out = append(out, data[i:i+size]...)
		}
		i += size
	}
	s.out = out
	s.ready = s.out
}

func hasHighBit(data []byte) bool {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return true
		}
	}
	return false
}

// countingReader tracks the bytes that passed through it.
type countingReader struct {
	r         io.Reader
	BytesRead int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.BytesRead += int64(n)
	return n, err
}

// wrapForLoading applies BOM removal, UTF-8 sanitization and byte counting.
// BOM removal must run before sanitization or the BOM bytes would survive
// as a valid rune in the first header name.
func wrapForLoading(r io.Reader) *countingReader {
	return &countingReader{r: newUTF8Sanitizer(skipBOM(r))}
}
