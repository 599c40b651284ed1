package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/growkit/growkit/textenc"
	"github.com/growkit/growkit/timing"
)

var (
	sampleSeed  uint64
	sampleCount int
)

var sampleCmd = &cobra.Command{
	Use:   "sample [file]",
	Short: "Print a uniform random sample of the input's lines",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSample,
}

func init() {
	sampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 10, "Number of lines to sample")
	sampleCmd.Flags().
		Uint64Var(&sampleSeed, "seed", 0, "PRNG seed for a reproducible sample (0 = random)")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	if sampleCount < 0 {
		return fmt.Errorf("sample: count must be non-negative, got %d", sampleCount)
	}
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
	ls, err := loadLines(src)
	if err != nil {
		return err
	}
	defer ls.Release()

	k := min(sampleCount, ls.Lines())
	rng, err := newSource(sampleSeed)
	if err != nil {
		return err
	}
	// Shuffling just the first k positions yields a uniform sample without
	// replacement; the sampled lines keep their shuffled order.
	order, err := shuffledOrder(rng, ls.Lines(), k)
	if err != nil {
		return err
	}
	defer order.Release()

	w := bufio.NewWriter(os.Stdout)
	for _, idx := range order.Slice()[:k] {
		line, err := ls.Line(int(idx))
		if err != nil {
			return err
		}
		if err := writeLine(w, line); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return reportTiming(watch)
}
