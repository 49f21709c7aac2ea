package crossword

import (
	"encoding/json"

	"github.com/Hayk10002/crossword-generator/pkg/placedword"
	"github.com/Hayk10002/crossword-generator/pkg/word"
)

// placedWordJSON is the wire shape of a placedword.PlacedWord.
type placedWordJSON struct {
	Value     string `json:"value"`
	Position  struct {
		X int16 `json:"x"`
		Y int16 `json:"y"`
	} `json:"position"`
	Direction string `json:"direction"`
}

func directionToJSON(d word.Direction) string {
	if d == word.Right {
		return "right"
	}
	return "down"
}

func directionFromJSON(s string) word.Direction {
	if s == "down" {
		return word.Down
	}
	return word.Right
}

// MarshalJSON encodes the crossword as its sorted list of placed words.
// Policy is a per-search setting, not per-layout state, so it is skipped on
// the wire exactly like the source's word_compatibility_settings field; a
// decoded crossword carries DefaultPolicy() until the caller reattaches
// its own.
func (c *Crossword) MarshalJSON() ([]byte, error) {
	words := c.Words()
	out := make([]placedWordJSON, len(words))
	for i, pw := range words {
		out[i].Value = pw.Value
		out[i].Position.X = pw.Position.X
		out[i].Position.Y = pw.Position.Y
		out[i].Direction = directionToJSON(pw.Direction)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a crossword previously produced by MarshalJSON.
// The decoded crossword's Policy is DefaultPolicy(); the caller must
// reattach its own policy if it needs one other than the default.
func (c *Crossword) UnmarshalJSON(data []byte) error {
	var in []placedWordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	c.words = make(map[string]placedword.PlacedWord, len(in))
	c.Policy = DefaultPolicy()
	for _, pw := range in {
		c.words[pw.Value] = placedword.New(
			pw.Value,
			word.Position{X: pw.Position.X, Y: pw.Position.Y},
			directionFromJSON(pw.Direction),
		)
	}
	return nil
}
