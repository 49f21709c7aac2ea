package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Hayk10002/crossword-generator/pkg/search"
	"github.com/Hayk10002/crossword-generator/pkg/wordlist"
)

var (
	statsWordlist   string
	statsBudget     time.Duration
	statsRandomized bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report how many layouts a search emits within a time budget",
	Long: `Stats runs a search to exhaustion or until --budget elapses, whichever
comes first, and reports how many layouts were emitted and at what rate.
Like generate, it never requires a running server or job store.

Examples:
  # How many layouts does the sorted strategy find in 5 seconds?
  crossgen stats --wordlist words.txt --budget 5s

  # Compare against the randomized strategy
  crossgen stats --wordlist words.txt --budget 5s --randomized`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsWordlist, "wordlist", "w", "", "path to newline-delimited word list (required)")
	statsCmd.Flags().DurationVarP(&statsBudget, "budget", "b", 5*time.Second, "time budget before the search is stopped")
	statsCmd.Flags().BoolVar(&statsRandomized, "randomized", false, "use the randomized strategy instead of sorted")
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsWordlist == "" {
		return fmt.Errorf("--wordlist flag is required")
	}

	words, err := wordlist.Load(statsWordlist)
	if err != nil {
		return fmt.Errorf("failed to load wordlist: %w", err)
	}

	s := search.New(words)
	if statsRandomized {
		s.Strategy = search.Randomized
	}

	stream := s.Start()
	stream.Request(search.All())

	start := time.Now()
	timer := time.NewTimer(statsBudget)
	defer timer.Stop()

	done := make(chan struct{})
	var count int
	go func() {
		defer close(done)
		for {
			_, ok := stream.Next()
			if !ok {
				return
			}
			count++
		}
	}()

	select {
	case <-timer.C:
		stream.Request(search.Stop())
		<-done
	case <-done:
	}

	elapsed := time.Since(start)
	strategy := "sorted"
	if statsRandomized {
		strategy = "randomized"
	}

	fmt.Fprintf(os.Stdout, "strategy:  %s\n", strategy)
	fmt.Fprintf(os.Stdout, "words:     %d\n", len(words))
	fmt.Fprintf(os.Stdout, "elapsed:   %s\n", elapsed)
	fmt.Fprintf(os.Stdout, "layouts:   %d\n", count)
	if elapsed > 0 {
		fmt.Fprintf(os.Stdout, "rate:      %.1f layouts/sec\n", float64(count)/elapsed.Seconds())
	}
	return nil
}
