package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/algokata/algokata/sequence"
)

var fibCmd = &cobra.Command{
	Use:   "fib N",
	Short: "Compute the N-th Fibonacci number",
	Long: `Compute the N-th Fibonacci number (F(0)=0, F(1)=1, N up to 93).

The --algo flag picks the implementation: the iterative two-variable
loop, the memoized recursion, or the fast-doubling identity.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error { return bindCommandFlags(cmd) },
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid N %q: %v", args[0], err)
		}

		fib, err := fibFunc(viper.GetString("algo"))
		if err != nil {
			return err
		}

		f, err := fib(n)
		if err != nil {
			return err
		}
		fmt.Printf("F(%d) = %d\n", n, f)
		return nil
	},
}

func init() {
	fibCmd.Flags().String("algo", "iter", "implementation to use (iter, memo, fast)")
}

func fibFunc(algo string) (func(int) (uint64, error), error) {
	switch algo {
	case "iter":
		return sequence.Fibonacci, nil
	case "memo":
		return sequence.FibonacciMemo, nil
	case "fast":
		return sequence.FibonacciFast, nil
	default:
		return nil, fmt.Errorf("invalid algo %s", algo)
	}
}
