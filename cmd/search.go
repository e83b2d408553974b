package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/algokata/algokata/search"
)

var searchCmd = &cobra.Command{
	Use:   "search TARGET N1 N2 ...",
	Short: "Run every search algorithm over the given numbers",
	Long: `Run linear, binary, jump and exponential search for TARGET over the
given numbers and print how many elements each algorithm probed.

The numbers are sorted first, since all but linear search require
ascending order.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, values, err := parseInts(args)
		if err != nil {
			return err
		}
		sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
		fmt.Printf("sorted input: %v\n", values)

		run := func(name string, fn func([]int64, int64, ...search.Option) (int, error)) {
			probes := 0
			idx, err := fn(values, target, search.WithOnProbe(func(int, any) { probes++ }))
			switch {
			case errors.Is(err, search.ErrNotFound):
				fmt.Printf("%-12snot found\t%d probes\n", name, probes)
			case err != nil:
				fmt.Printf("%-12serror: %v\n", name, err)
			default:
				fmt.Printf("%-12sindex %d\t%d probes\n", name, idx, probes)
			}
		}

		run("linear", search.Linear[int64])
		run("binary", search.Binary[int64])
		run("jump", search.Jump[int64])
		run("exponential", search.Exponential[int64])
		return nil
	},
}

// parseInts splits args into the leading target and the remaining values.
func parseInts(args []string) (int64, []int64, error) {
	target, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid target %q: %v", args[0], err)
	}
	values := make([]int64, 0, len(args)-1)
	for _, a := range args[1:] {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid number %q: %v", a, err)
		}
		values = append(values, v)
	}
	return target, values, nil
}
