package main

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/growkit/growkit/textbuf"
	"github.com/growkit/growkit/textenc"
	"github.com/growkit/growkit/timing"
)

var numberCmd = &cobra.Command{
	Use:   "number [file]",
	Short: "Copy input to output with line numbers",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNumber,
}

func init() {
	rootCmd.AddCommand(numberCmd)
}

func runNumber(cmd *cobra.Command, args []string) error {
	in, cleanup, err := openInput(args)
	if err != nil {
		return err
	}
	defer cleanup()

	watch := timing.New()
	if err := watch.Start(); err != nil {
		return err
	}

	src, err := textenc.Reader(in, encodingName)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	var line, out textbuf.Buffer
	defer line.Release()
	defer out.Release()
	for n := 1; ; n++ {
		err := line.ReadLine(src)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if err := out.Writef("%6d\t%s", n, line.String()); err != nil {
			return err
		}
		if err := writeLine(w, out.Bytes()); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return reportTiming(watch)
}
