package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/growkit/growkit/random"
	"github.com/growkit/growkit/timing"
)

var (
	// Global flags
	encodingName string
	showTime     bool
)

var rootCmd = &cobra.Command{
	Use:   "linectl",
	Short: "Number, sample and shuffle lines of text",
	Long: `linectl reads line-oriented text from a file or stdin and numbers,
samples or shuffles it. Legacy single-byte encodings (windows-1252, latin1)
are converted to UTF-8 at the input boundary.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&encodingName, "encoding", "utf-8", "Input encoding (utf-8, windows-1252, latin1)")
	rootCmd.PersistentFlags().
		BoolVar(&showTime, "time", false, "Report elapsed wall and CPU time on stderr")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openInput returns the stream named by args, or stdin when none is given.
// The caller runs the returned cleanup when done.
func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// newSource returns a PRNG seeded explicitly when seed is non-zero, or from
// system entropy otherwise.
func newSource(seed uint64) (*random.Source, error) {
	if seed != 0 {
		return random.WithSeed(seed), nil
	}
	return random.New()
}

// reportTiming stops watch and prints its totals when --time is set.
func reportTiming(watch *timing.Stopwatch) error {
	if !showTime {
		return nil
	}
	if err := watch.Stop(); err != nil {
		return err
	}
	cpu, err := watch.ElapsedCPU()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wall %v, cpu %v\n", watch.ElapsedWall(), cpu)
	return nil
}
