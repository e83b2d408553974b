package wordcount

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"
)

// ErrBadWorkerCount is returned when workers < 1.
var ErrBadWorkerCount = errors.New("wordcount: workers must be >= 1")

// CountWords reads r line by line, fans the lines out to a pool of
// workers, and counts every word into a shared Counter.
//
// Steps:
//  1. Start workers goroutines, all draining one lines channel.
//  2. The reader goroutine scans r and feeds the channel, watching ctx.
//  3. Each worker splits its lines into words and Adds them — no merge
//     step, the Counter is already concurrent.
//
// Returns the populated Counter, the reader's error if scanning failed,
// or ctx.Err() if the context was cancelled mid-stream.
//
// Time complexity: O(total input), split across workers
func CountWords(ctx context.Context, r io.Reader, workers int) (*Counter, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkerCount, workers)
	}

	c := NewCounter()
	lines := make(chan string, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for line := range lines {
				countLine(c, line)
			}
		}()
	}

	// Feed lines; on cancellation stop early and report why.
	var feedErr error
	scanner := bufio.NewScanner(r)
scan:
	for scanner.Scan() {
		// Cancellation wins over a ready send.
		select {
		case <-ctx.Done():
			feedErr = ctx.Err()
			break scan
		default:
		}
		select {
		case <-ctx.Done():
			feedErr = ctx.Err()
			break scan
		case lines <- scanner.Text():
		}
	}
	close(lines)
	wg.Wait()

	if feedErr == nil {
		feedErr = scanner.Err()
	}
	if feedErr != nil {
		return c, feedErr
	}

	return c, nil
}

// countLine lowercases and counts every maximal run of letters and digits.
func countLine(c *Counter, line string) {
	isWord := func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

	for _, w := range strings.FieldsFunc(line, func(r rune) bool { return !isWord(r) }) {
		c.Add(strings.ToLower(w), 1)
	}
}
