package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/algokata/algokata/strops"
)

var palindromeCmd = &cobra.Command{
	Use:   "palindrome TEXT",
	Short: "Check whether TEXT reads the same both ways",
	Long: `Check whether TEXT reads the same both ways.

With --strict the text is compared rune for rune; otherwise case is
folded and everything but letters and digits is ignored, so
"A man, a plan, a canal: Panama" passes.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error { return bindCommandFlags(cmd) },
	Run: func(cmd *cobra.Command, args []string) {
		var opts []strops.PalindromeOption
		if !viper.GetBool("strict") {
			opts = append(opts, strops.WithFoldCase(), strops.WithLettersOnly())
		}
		if strops.IsPalindrome(args[0], opts...) {
			fmt.Printf("%q is a palindrome\n", args[0])
		} else {
			fmt.Printf("%q is not a palindrome\n", args[0])
		}
	},
}

var anagramCmd = &cobra.Command{
	Use:   "anagram A B",
	Short: "Check whether A and B are anagrams of each other",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if strops.IsAnagram(args[0], args[1]) {
			fmt.Printf("%q and %q are anagrams\n", args[0], args[1])
		} else {
			fmt.Printf("%q and %q are not anagrams\n", args[0], args[1])
		}
	},
}

func init() {
	palindromeCmd.Flags().Bool("strict", false, "compare rune for rune, no case folding")
}
