package main

import (
	"bufio"
	"errors"
	"io"

	"github.com/growkit/growkit/seq"
	"github.com/growkit/growkit/textbuf"
)

// lineSet holds every line of an input stream in a single text buffer plus
// the byte offset where each line starts. Line i spans
// [offsets[i], offsets[i+1]), so offsets holds Lines()+1 entries.
type lineSet struct {
	content *textbuf.Buffer
	offsets *seq.List[int64]
}

// loadLines reads src to exhaustion. Lines keep their trailing line feed
// except possibly the last one.
func loadLines(src io.ByteReader) (*lineSet, error) {
	offsets, err := seq.New[int64]()
	if err != nil {
		return nil, err
	}
	if err := offsets.Append(0); err != nil {
		return nil, err
	}

	content := &textbuf.Buffer{}
	var line textbuf.Buffer
	defer line.Release()
	for {
		err := line.ReadLine(src)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := content.Appendf("%s", line.String()); err != nil {
			return nil, err
		}
		if err := offsets.Append(int64(content.Len())); err != nil {
			return nil, err
		}
	}
	return &lineSet{content: content, offsets: offsets}, nil
}

// Lines returns the number of lines read.
func (ls *lineSet) Lines() int { return ls.offsets.Count() - 1 }

// Line returns the bytes of line i, including its line feed if it had one.
func (ls *lineSet) Line(i int) ([]byte, error) {
	start, err := ls.offsets.At(i)
	if err != nil {
		return nil, err
	}
	end, err := ls.offsets.At(i + 1)
	if err != nil {
		return nil, err
	}
	return ls.content.Bytes()[start:end], nil
}

// Release returns all backing storage.
func (ls *lineSet) Release() {
	ls.content.Release()
	ls.offsets.Release()
}

// writeLine writes one line to w, appending a line feed if the line lacks
// one (the input's last line may).
func writeLine(w *bufio.Writer, line []byte) error {
	if _, err := w.Write(line); err != nil {
		return err
	}
	if len(line) == 0 || line[len(line)-1] != '\n' {
		return w.WriteByte('\n')
	}
	return nil
}
