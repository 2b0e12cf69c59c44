package assessment

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Enum is implemented by every categorical field of an assessment.
type Enum interface {
	Valid() bool
	Values() []string
}

type enumValue interface {
	~string
	Enum
}

func unmarshalEnum[T enumValue](data []byte, dst *T) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := T(s)
	if !v.Valid() {
		return fmt.Errorf("%w: %q not in %v", ErrInvalidEnum, s, v.Values())
	}
	*dst = v
	return nil
}

// Priority is the urgency of a professional evaluation.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityModerate Priority = "moderate"
	PriorityHigh     Priority = "high"
	PriorityUrgent   Priority = "urgent"
)

func (Priority) Values() []string { return []string{"low", "moderate", "high", "urgent"} }
func (p Priority) Valid() bool { return slices.Contains(p.Values(), string(p)) }
func (p *Priority) UnmarshalJSON(b []byte) error { return unmarshalEnum(b, p) }

// SupportLevel mirrors the DSM-5 support levels.
type SupportLevel string

const (
	SupportLevel1 SupportLevel = "level_1"
	SupportLevel2 SupportLevel = "level_2"
	SupportLevel3 SupportLevel = "level_3"
)

func (SupportLevel) Values() []string { return []string{"level_1", "level_2", "level_3"} }
func (l SupportLevel) Valid() bool { return slices.Contains(l.Values(), string(l)) }
func (l *SupportLevel) UnmarshalJSON(b []byte) error { return unmarshalEnum(b, l) }

type AgeGroup string

const (
	AgeToddler    AgeGroup = "toddler"
	AgeChild      AgeGroup = "child"
	AgeAdolescent AgeGroup = "adolescent"
	AgeAdult      AgeGroup = "adult"
)

func (AgeGroup) Values() []string { return []string{"toddler", "child", "adolescent", "adult"} }
func (g AgeGroup) Valid() bool { return slices.Contains(g.Values(), string(g)) }
func (g *AgeGroup) UnmarshalJSON(b []byte) error { return unmarshalEnum(b, g) }

// DataQuality grades how usable the supplied session data was.
type DataQuality string

const (
	DataPoor      DataQuality = "poor"
	DataFair      DataQuality = "fair"
	DataGood      DataQuality = "good"
	DataExcellent DataQuality = "excellent"
)

func (DataQuality) Values() []string { return []string{"poor", "fair", "good", "excellent"} }
func (q DataQuality) Valid() bool { return slices.Contains(q.Values(), string(q)) }
func (q *DataQuality) UnmarshalJSON(b []byte) error { return unmarshalEnum(b, q) }

// Source records whether a result came from the model or the fallback generator.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

func (Source) Values() []string { return []string{"model", "fallback"} }
func (s Source) Valid() bool { return slices.Contains(s.Values(), string(s)) }
func (s *Source) UnmarshalJSON(b []byte) error { return unmarshalEnum(b, s) }

// Variant selects the wire shape of a result.
type Variant string

const (
	VariantNested Variant = "nested"
	VariantFlat   Variant = "flat"
)

func (Variant) Values() []string { return []string{"nested", "flat"} }
func (v Variant) Valid() bool { return slices.Contains(v.Values(), string(v)) }
func (v *Variant) UnmarshalJSON(b []byte) error { return unmarshalEnum(b, v) }

// ParseVariant is used by configuration and the CLI.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: variant %q", ErrInvalidEnum, s)
	}
	return v, nil
}
