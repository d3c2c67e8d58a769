package levels

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tileshift/internal/games/tileshift/board"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Number  int      `yaml:"number"`
	Values  []int    `yaml:"values"`
	Enabled []bool   `yaml:"enabled,omitempty"`
	Marks   []string `yaml:"marks,omitempty"`
	Moves   int      `yaml:"moves"`
	Par     int      `yaml:"par,omitempty"`
}

// ParseYAML decodes and validates a single level document.
// Unknown keys are rejected so typos in hand-written levels surface early.
func ParseYAML(data []byte) (board.LevelState, error) {
	var yl YAMLLevel
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&yl); err != nil {
		if errors.Is(err, io.EOF) {
			return board.LevelState{}, fmt.Errorf("yaml decode: empty document")
		}
		return board.LevelState{}, fmt.Errorf("yaml decode: %w", err)
	}

	spec := board.LevelSpec{
		ID:         yl.ID,
		Name:       yl.Name,
		Number:     yl.Number,
		Values:     yl.Values,
		Enabled:    yl.Enabled,
		MoveBudget: yl.Moves,
		Par:        yl.Par,
	}

	if yl.Marks != nil {
		spec.Marks = make([]board.Mark, len(yl.Marks))
		for i, s := range yl.Marks {
			m, ok := board.ParseMark(s)
			if !ok {
				return board.LevelState{}, fmt.Errorf("marks[%d]: unknown mark %q", i, s)
			}
			spec.Marks[i] = m
		}
	}

	return board.NewLevelState(spec)
}

// MarshalYAML encodes a level in the file format ParseYAML reads.
func MarshalYAML(ls board.LevelState) ([]byte, error) {
	yl := YAMLLevel{
		ID:     ls.ID,
		Name:   ls.Name,
		Number: ls.Number,
		Values: ls.Values[:],
		Moves:  ls.MoveBudget,
		Par:    ls.Par,
	}

	for _, on := range ls.Enabled {
		if !on {
			yl.Enabled = ls.Enabled[:]
			break
		}
	}
	if ls.InitialMarks() > 0 {
		yl.Marks = make([]string, board.Size)
		for i, m := range ls.Marks {
			yl.Marks[i] = m.String()
		}
	}

	return yaml.Marshal(yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
