// Package textenc adapts legacy single-byte encodings to the UTF-8 byte
// streams the text buffer engine consumes. The engine itself treats input as
// raw bytes; converting at the stream boundary keeps it that way.
package textenc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Reader returns a buffered byte reader over r that converts name-encoded
// input to UTF-8. An empty name or "utf-8" passes bytes through untouched.
//
// Supported names: utf-8, windows-1252 (cp1252), latin1 (iso-8859-1).
func Reader(r io.Reader, name string) (*bufio.Reader, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return bufio.NewReader(r), nil
	case "windows-1252", "cp1252":
		return decoded(r, charmap.Windows1252), nil
	case "latin1", "iso-8859-1":
		return decoded(r, charmap.ISO8859_1), nil
	default:
		return nil, fmt.Errorf("textenc: unsupported encoding %q", name)
	}
}

func decoded(r io.Reader, cm *charmap.Charmap) *bufio.Reader {
	return bufio.NewReader(transform.NewReader(r, cm.NewDecoder()))
}
