package assessment

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result is what the service hands back for one request. Exactly one of
// Nested and Flat is set, matching Variant. Results are not mutated once built.
type Result struct {
	Variant Variant
	Source  Source
	Nested  *Assessment
	Flat    *Flat
}

func NewNested(a *Assessment, src Source) *Result {
	return &Result{Variant: VariantNested, Source: src, Nested: a}
}

func NewFlat(f *Flat, src Source) *Result {
	return &Result{Variant: VariantFlat, Source: src, Flat: f}
}

// As returns r in the requested variant. A nested result is projected with
// Flatten; a flat result cannot be expanded.
func (r *Result) As(v Variant, sessionID string) (*Result, error) {
	if r.Variant == v {
		return r, nil
	}
	if r.Variant == VariantNested && v == VariantFlat {
		f := Flatten(r.Nested, sessionID)
		return NewFlat(&f, r.Source), nil
	}
	return nil, fmt.Errorf("%w: cannot expand %s result into %s", ErrInvalidRecord, r.Variant, v)
}

// Likelihood is the headline overall likelihood regardless of variant.
func (r *Result) Likelihood() Score {
	if r.Nested != nil {
		return r.Nested.Aggregate.OverallAutismLikelihood
	}
	if r.Flat != nil {
		return r.Flat.OverallAutismLikelihood
	}
	return 0
}

func (r *Result) Confidence() Score {
	if r.Nested != nil {
		return r.Nested.Uncertainty.OverallConfidence
	}
	if r.Flat != nil {
		return r.Flat.AssessmentConfidence
	}
	return 0
}

// Record returns the active record, for validation and schema lookups.
func (r *Result) Record() any {
	if r.Variant == VariantFlat {
		return r.Flat
	}
	return r.Nested
}

// MarshalJSON writes the active record's fields at top level plus "source".
func (r Result) MarshalJSON() ([]byte, error) {
	switch {
	case r.Variant == VariantNested && r.Nested != nil:
		return json.Marshal(struct {
			*Assessment
			Source Source `json:"source"`
		}{r.Nested, r.Source})
	case r.Variant == VariantFlat && r.Flat != nil:
		return json.Marshal(struct {
			*Flat
			Source Source `json:"source"`
		}{r.Flat, r.Source})
	}
	return nil, fmt.Errorf("%w: %q result has no %s record", ErrInvalidRecord, r.Source, r.Variant)
}

// UnmarshalJSON detects the variant from the presence of assessment_metadata.
func (r *Result) UnmarshalJSON(data []byte) error {
	var probe struct {
		Source   Source          `json:"source"`
		Metadata json.RawMessage `json:"assessment_metadata"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	variant := VariantFlat
	if len(probe.Metadata) > 0 && !bytes.Equal(probe.Metadata, []byte("null")) {
		variant = VariantNested
	}
	out, err := Decode(variant, data)
	if err != nil {
		return err
	}
	out.Source = probe.Source
	*r = *out
	return nil
}

// Decode parses one record of the given variant. Range and enum checks run
// while decoding; the caller tags the source.
func Decode(v Variant, data []byte) (*Result, error) {
	switch v {
	case VariantNested:
		var a Assessment
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, err
		}
		return NewNested(&a, ""), nil
	case VariantFlat:
		var f Flat
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return NewFlat(&f, ""), nil
	}
	return nil, fmt.Errorf("%w: variant %q", ErrInvalidEnum, v)
}
