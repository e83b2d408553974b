package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/algokata/algokata/arrays"
	"github.com/algokata/algokata/heap"
	"github.com/algokata/algokata/search"
	"github.com/algokata/algokata/sequence"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the demo algorithms and print a percentile summary",
	Long: `Time the demo algorithms over a number of rounds and print a
per-algorithm latency summary (mean, p50, p95, max).`,
	PreRunE: func(cmd *cobra.Command, _ []string) error { return bindCommandFlags(cmd) },
	RunE: func(cmd *cobra.Command, _ []string) error {
		rounds := viper.GetInt("rounds")
		if rounds < 1 {
			return fmt.Errorf("invalid rounds %d", rounds)
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		registry := metrics.NewRegistry()

		// fixed inputs so every round does the same work
		sorted := make([]int64, 100_000)
		for i := range sorted {
			sorted[i] = int64(2 * i)
		}
		signal := make([]int64, 100_000)
		for i := range signal {
			signal[i] = int64(rng.Intn(201) - 100)
		}

		workloads := []struct {
			name string
			fn   func()
		}{
			{"fib-fast", func() {
				_, _ = sequence.FibonacciFast(90)
			}},
			{"heapsort-10k", func() {
				s := make([]int64, 10_000)
				for i := range s {
					s[i] = rng.Int63()
				}
				heap.Sort(s)
			}},
			{"binary-search", func() {
				_, _ = search.Binary(sorted, int64(rng.Intn(200_000)))
			}},
			{"max-subarray", func() {
				_, _, _, _ = arrays.MaxSubarraySum(signal)
			}},
		}

		fmt.Printf("benchmarking %d rounds per algorithm...\n\n", rounds)
		fmt.Printf("%-16s%10s%12s%12s%12s\n", "algorithm", "mean", "p50", "p95", "max")

		for _, w := range workloads {
			timer := metrics.GetOrRegisterTimer(w.name, registry)
			for i := 0; i < rounds; i++ {
				timer.Time(w.fn)
			}
			snap := timer.Snapshot()
			fmt.Printf("%-16s%10v%12v%12v%12v\n",
				w.name,
				time.Duration(snap.Mean()).Round(time.Microsecond),
				time.Duration(snap.Percentile(0.5)).Round(time.Microsecond),
				time.Duration(snap.Percentile(0.95)).Round(time.Microsecond),
				time.Duration(snap.Max()).Round(time.Microsecond),
			)
		}
		return nil
	},
}

func init() {
	benchCmd.Flags().Int("rounds", 100, "how many times to run each algorithm")
}
