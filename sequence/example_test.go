package sequence_test

import (
	"fmt"

	"github.com/algokata/algokata/sequence"
)

// ExampleFibonacci prints the opening of the sequence.
func ExampleFibonacci() {
	for n := 0; n < 10; n++ {
		f, _ := sequence.Fibonacci(n)
		fmt.Print(f, " ")
	}
	fmt.Println()
	// Output:
	// 0 1 1 2 3 5 8 13 21 34
}

// ExampleFibonacciFast reaches the edge of uint64 in a handful of doublings.
func ExampleFibonacciFast() {
	f, err := sequence.FibonacciFast(sequence.MaxFibonacci)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("F(%d) = %d\n", sequence.MaxFibonacci, f)
	// Output:
	// F(93) = 12200160415121876738
}

// ExampleCollatz counts the hailstone steps for the famous slow starter.
func ExampleCollatz() {
	steps, err := sequence.Collatz(27)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("27 reaches 1 after", steps, "steps")
	// Output:
	// 27 reaches 1 after 111 steps
}
