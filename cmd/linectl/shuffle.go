package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/growkit/growkit/random"
	"github.com/growkit/growkit/seq"
	"github.com/growkit/growkit/textenc"
	"github.com/growkit/growkit/timing"
)

var shuffleSeed uint64

var shuffleCmd = &cobra.Command{
	Use:   "shuffle [file]",
	Short: "Write the input's lines in random order",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShuffle,
}

func init() {
	shuffleCmd.Flags().
		Uint64Var(&shuffleSeed, "seed", 0, "PRNG seed for a reproducible order (0 = random)")
	rootCmd.AddCommand(shuffleCmd)
}

func runShuffle(cmd *cobra.Command, args []string) error {
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

	rng, err := newSource(shuffleSeed)
	if err != nil {
		return err
	}
	order, err := shuffledOrder(rng, ls.Lines(), ls.Lines())
	if err != nil {
		return err
	}
	defer order.Release()

	w := bufio.NewWriter(os.Stdout)
	for _, idx := range order.Slice() {
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

// shuffledOrder returns the indexes 0..n-1 with the first k positions
// uniformly shuffled (a partial Fisher-Yates). k == n shuffles everything.
func shuffledOrder(rng *random.Source, n, k int) (*seq.List[int32], error) {
	order, err := seq.WithCapacity[int32](n)
	if err != nil {
		return nil, err
	}
	for i := range n {
		if err := order.Append(int32(i)); err != nil {
			order.Release()
			return nil, err
		}
	}
	idx := order.Slice()
	for i := 0; i < k && i < n-1; i++ {
		j := int(rng.Int32(int32(i), int32(n)))
		idx[i], idx[j] = idx[j], idx[i]
	}
	return order, nil
}
