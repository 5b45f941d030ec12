// Package multipart presents an arbitrary byte stream as a single valid
// multipart/form-data HTTP body without buffering the stream's contents.
// The body is a logical concatenation of three parts: a preamble carrying
// the headers and the opening boundary, the payload bytes untouched, and
// the boundary terminator.
package multipart

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mrand "math/rand"
	"strings"
)

const (
	boundaryPrefix   = "------------------------"
	boundaryLength   = 18
	boundaryAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// Boundary returns a fresh boundary token: a fixed prefix followed by 18
// alphanumeric characters drawn from a uniform generator seeded with
// system entropy. Tokens are never reused across calls.
func Boundary() (string, error) {
	var seed int64
	if err := binary.Read(crand.Reader, binary.BigEndian, &seed); err != nil {
		return "", fmt.Errorf("boundary entropy: %w", err)
	}
	rnd := mrand.New(mrand.NewSource(seed))

	var b strings.Builder
	b.WriteString(boundaryPrefix)
	for i := 0; i < boundaryLength; i++ {
		b.WriteByte(boundaryAlphabet[rnd.Intn(len(boundaryAlphabet))])
	}
	return b.String(), nil
}

// ContentType returns the request content type announcing boundary.
func ContentType(boundary string) string {
	return "multipart/form-data; boundary=" + boundary
}

// Preamble builds the first chunk of the body: the request line, the host
// header, an optional Content-Length header, the content type header, and
// the opening boundary delimiter followed by a blank line. A negative
// length means the total length is unknown up front and no Content-Length
// header is written.
func Preamble(length int64, boundary string) string {
	var b strings.Builder
	b.WriteString("POST /api/v0/add HTTP/1.1\r\nHost: localhost:5001\r\n")
	if length >= 0 {
		fmt.Fprintf(&b, "Content-Length: %d\r\n", length)
	}
	fmt.Fprintf(&b, "Content-Type: multipart/form-data; boundary=%s\r\n", boundary)
	fmt.Fprintf(&b, "--%s\r\n\r\n", boundary)
	return b.String()
}

// Terminator builds the final chunk of the body: the closing boundary
// delimiter followed by a trailing line break.
func Terminator(boundary string) string {
	return fmt.Sprintf("\r\n--%s--\r\n", boundary)
}

// NewReader wraps payload into a multipart body for a single unnamed part
// containing the payload bytes verbatim. Payload chunks are passed through
// one to one; nothing is inspected, re-chunked, or buffered.
func NewReader(payload io.Reader, length int64, boundary string) io.Reader {
	return io.MultiReader(
		strings.NewReader(Preamble(length, boundary)),
		payload,
		strings.NewReader(Terminator(boundary)),
	)
}
