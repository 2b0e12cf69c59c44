package assessment

import (
	"encoding/json"
	"fmt"
)

// Score is a likelihood, confidence or marker value in the closed interval [0, 1].
type Score float64

// NewScore rejects values outside [0, 1]. It never clamps.
func NewScore(v float64) (Score, error) {
	s := Score(v)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, v)
	}
	return s, nil
}

// Valid reports whether s is within [0, 1]. NaN is never valid.
func (s Score) Valid() bool {
	return s >= 0 && s <= 1
}

func (s Score) Float64() float64 { return float64(s) }

func (s *Score) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	out, err := NewScore(v)
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// mean averages a group of scores; the result stays inside [0, 1].
func mean(scores ...Score) Score {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += float64(s)
	}
	return Score(sum / float64(len(scores)))
}
