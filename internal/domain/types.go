package domain

import (
	"bytes"
	"encoding/json"
)

// Grid is a 9x9 board of cell values, 0 marking an empty cell.
// Being an array type, assignment copies the whole grid; helpers that
// need a private scratch copy take a Grid by value.
type Grid [9][9]uint8

// Clues counts the non-zero cells.
func (g *Grid) Clues() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle pairs a carved question grid with its complete answer.
// Question has exactly one completion, and that completion is Answer.
type Puzzle struct {
	Question   Grid       `json:"q"`
	Answer     Grid       `json:"a"`
	Difficulty Difficulty `json:"d"`
}

// Set is an ordered key -> Puzzle collection. Iteration and JSON output
// follow insertion order, which a plain map would not preserve.
type Set struct {
	keys    []string
	records map[string]Puzzle
}

func NewSet() *Set {
	return &Set{records: make(map[string]Puzzle)}
}

// Add appends a record under key. Keys are unique within a set.
func (s *Set) Add(key string, p Puzzle) error {
	if _, ok := s.records[key]; ok {
		return ErrDuplicateKey
	}
	s.keys = append(s.keys, key)
	s.records[key] = p
	return nil
}

func (s *Set) Len() int { return len(s.keys) }

// Keys returns the insertion-ordered keys.
func (s *Set) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *Set) Get(key string) (Puzzle, bool) {
	p, ok := s.records[key]
	return p, ok
}

// MarshalJSON writes the set as a single JSON object whose members
// appear in insertion order.
func (s *Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(s.records[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
