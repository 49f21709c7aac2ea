// Package wordlist loads the newline-delimited word list file the CLI
// points a search at, following the bufio.Scanner line-reading idiom of
// the teacher's Broda wordlist loader.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Hayk10002/crossword-generator/pkg/word"
)

// Load reads one word per line from path, uppercasing and trimming each
// one, and skipping blank lines. Lines beginning with '#' are treated as
// comments.
func Load(path string) ([]word.Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: failed to open %s: %w", path, err)
	}
	defer file.Close()

	var words []word.Word
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.ContainsAny(line, " \t") {
			return nil, fmt.Errorf("wordlist: malformed line %d: %q contains whitespace", lineNum, line)
		}
		words = append(words, word.New(line, nil))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: error reading %s: %w", path, err)
	}
	return words, nil
}
