package wordcount_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/algokata/algokata/wordcount"
)

// ExampleCountWords counts a small text with a worker pool.
func ExampleCountWords() {
	text := `the quick brown fox
jumps over the lazy dog
the dog sleeps`

	c, err := wordcount.CountWords(context.Background(), strings.NewReader(text), 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range c.Top(2) {
		fmt.Printf("%s: %d\n", e.Word, e.Count)
	}
	// Output:
	// the: 3
	// dog: 2
}
