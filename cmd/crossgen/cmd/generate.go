package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hayk10002/crossword-generator/pkg/constraint"
	"github.com/Hayk10002/crossword-generator/pkg/crossword"
	"github.com/Hayk10002/crossword-generator/pkg/search"
	"github.com/Hayk10002/crossword-generator/pkg/wordlist"
)

var (
	genWordlist       string
	genOutput         string
	genCount          uint
	genAll            bool
	genRandomized     bool
	genWorkerCap      int
	genSideBySide     bool
	genHeadByHead     bool
	genSideByHead     bool
	genCornerByCorner bool
	genMaxLength      uint16
	genMaxHeight      uint16
	genMaxArea        uint32
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate crossword layouts from a word list",
	Long: `Generate reads a newline-delimited word list and drives a search over it,
writing every emitted layout as one JSON array of placed words per line.

Examples:
  # Emit the first 20 layouts found by the sorted strategy
  crossgen generate --wordlist words.txt --count 20 --output layouts.jsonl

  # Run the randomized strategy to exhaustion with a bounded area
  crossgen generate --wordlist words.txt --all --randomized --max-area 400`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genWordlist, "wordlist", "w", "", "path to newline-delimited word list (required)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output file (default stdout)")
	generateCmd.Flags().UintVarP(&genCount, "count", "n", 10, "number of layouts to request")
	generateCmd.Flags().BoolVar(&genAll, "all", false, "run to exhaustion instead of requesting --count")
	generateCmd.Flags().BoolVar(&genRandomized, "randomized", false, "use the randomized strategy instead of sorted")
	generateCmd.Flags().IntVar(&genWorkerCap, "worker-cap", 0, "randomized strategy worker count (0 = default)")
	generateCmd.Flags().BoolVar(&genSideBySide, "allow-side-by-side", false, "allow same-direction words to run side by side")
	generateCmd.Flags().BoolVar(&genHeadByHead, "allow-head-by-head", false, "allow same-direction words to meet head to head")
	generateCmd.Flags().BoolVar(&genSideByHead, "allow-side-by-head", false, "allow perpendicular words to touch side to head")
	generateCmd.Flags().BoolVar(&genCornerByCorner, "allow-corner-by-corner", true, "allow words to touch at a single corner")
	generateCmd.Flags().Uint16Var(&genMaxLength, "max-length", 0, "reject layouts wider than this (0 = unbounded)")
	generateCmd.Flags().Uint16Var(&genMaxHeight, "max-height", 0, "reject layouts taller than this (0 = unbounded)")
	generateCmd.Flags().Uint32Var(&genMaxArea, "max-area", 0, "reject layouts with bounding area above this (0 = unbounded)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if genWordlist == "" {
		return fmt.Errorf("--wordlist flag is required")
	}

	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "Loading wordlist from: %s\n", genWordlist)
	}

	words, err := wordlist.Load(genWordlist)
	if err != nil {
		return fmt.Errorf("failed to load wordlist: %w", err)
	}
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "Loaded %d words\n", len(words))
	}

	s := search.New(words)
	s.Policy = crossword.Policy{
		SideBySide:     genSideBySide,
		HeadByHead:     genHeadByHead,
		SideByHead:     genSideByHead,
		CornerByCorner: genCornerByCorner,
	}
	if genMaxLength > 0 {
		s.Constraints = append(s.Constraints, constraint.MaxLength(genMaxLength))
	}
	if genMaxHeight > 0 {
		s.Constraints = append(s.Constraints, constraint.MaxHeight(genMaxHeight))
	}
	if genMaxArea > 0 {
		s.Constraints = append(s.Constraints, constraint.MaxArea(genMaxArea))
	}
	if genRandomized {
		s.Strategy = search.Randomized
	}
	if genWorkerCap > 0 {
		s.WorkerCap = genWorkerCap
	}

	out := os.Stdout
	if genOutput != "" {
		f, err := os.Create(genOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	stream := s.Start()
	if genAll {
		stream.Request(search.All())
	} else {
		stream.Request(search.Count(genCount))
		if genCount == 0 {
			stream.Request(search.Stop())
		}
	}

	emitted := 0
	enc := json.NewEncoder(w)
	for {
		layout, ok := stream.Next()
		if !ok {
			break
		}
		if err := enc.Encode(layout); err != nil {
			return fmt.Errorf("failed to encode layout %d: %w", emitted, err)
		}
		emitted++
		if !genAll && uint(emitted) >= genCount {
			stream.Request(search.Stop())
		}
	}

	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "Emitted %d layout(s)\n", emitted)
	}
	return nil
}
