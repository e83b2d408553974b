package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/algokata/algokata/heap"
)

var sortCmd = &cobra.Command{
	Use:   "sort N1 N2 ...",
	Short: "Heapsort the given numbers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, values, err := parseInts(append([]string{"0"}, args...))
		if err != nil {
			return err
		}
		heap.Sort(values)
		fmt.Println(values)
		return nil
	},
}
