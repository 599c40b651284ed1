package textenc

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		t.Fatalf("reading decoded stream: %v", err)
	}
	return sb.String()
}

func TestReaderPassThrough(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8"} {
		r, err := Reader(strings.NewReader("héllo\n"), name)
		if err != nil {
			t.Fatalf("Reader(%q) failed: %v", name, err)
		}
		if got := readAll(t, r); got != "héllo\n" {
			t.Fatalf("Reader(%q) = %q want %q", name, got, "héllo\n")
		}
	}
}

func TestReaderWindows1252(t *testing.T) {
	// 0x93/0x94 are curly quotes in Windows-1252.
	src := bytes.NewReader([]byte{0x93, 'h', 'i', 0x94, '\n'})
	r, err := Reader(src, "windows-1252")
	if err != nil {
		t.Fatalf("Reader failed: %v", err)
	}
	if got := readAll(t, r); got != "“hi”\n" {
		t.Fatalf("decoded = %q want %q", got, "“hi”\n")
	}
}

func TestReaderLatin1(t *testing.T) {
	// 0xE9 is é in ISO-8859-1.
	src := bytes.NewReader([]byte{'c', 'a', 'f', 0xE9})
	r, err := Reader(src, "latin1")
	if err != nil {
		t.Fatalf("Reader failed: %v", err)
	}
	if got := readAll(t, r); got != "café" {
		t.Fatalf("decoded = %q want %q", got, "café")
	}
}

func TestReaderUnknownEncoding(t *testing.T) {
	if _, err := Reader(strings.NewReader(""), "ebcdic"); err == nil {
		t.Fatalf("expected error for unsupported encoding")
	}
}
