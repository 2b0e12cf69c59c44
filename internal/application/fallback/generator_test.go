package fallback

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment/assessmenttest"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var clock = fixedClock{time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}

func newSeeded(seed uint64) *Generator {
	return New(clock, rand.New(rand.NewPCG(seed, seed+1)))
}

func TestTablesCoverEveryScore(t *testing.T) {
	fixedNested := map[string]bool{
		"assessment_metadata.audio_quality_score":       true,
		"assessment_metadata.video_quality_score":       true,
		"assessment_metadata.face_detection_confidence": true,
	}
	scores := assessmenttest.Scores(&assessment.Assessment{})
	assert.Len(t, nestedTable, len(scores)-len(fixedNested))

	flatScores := assessmenttest.Scores(&assessment.Flat{})
	assert.Len(t, flatTable, len(flatScores))

	for _, b := range nestedTable {
		assert.True(t, b.lo >= 0 && b.hi <= 1 && b.lo <= b.hi, "%s bounds", b.field)
	}
	for _, b := range flatTable {
		assert.True(t, b.lo >= 0 && b.hi <= 1 && b.lo <= b.hi, "%s bounds", b.field)
	}
}

func TestNestedValuesWithinBounds(t *testing.T) {
	g := newSeeded(1)
	for range 200 {
		a := g.Nested()
		for _, b := range nestedTable {
			v := b.ref(a).Float64()
			require.True(t, v >= b.lo && v <= b.hi, "%s = %v not in [%v, %v]", b.field, v, b.lo, b.hi)
		}
		require.NoError(t, assessment.Validate(a))
	}
}

func TestFlatValuesWithinBounds(t *testing.T) {
	g := newSeeded(2)
	for range 200 {
		f := g.Flat()
		for _, b := range flatTable {
			v := b.ref(f).Float64()
			require.True(t, v >= b.lo && v <= b.hi, "%s = %v not in [%v, %v]", b.field, v, b.lo, b.hi)
		}
		require.GreaterOrEqual(t, f.OverallAutismLikelihood.Float64(), 0.4)
		require.LessOrEqual(t, f.OverallAutismLikelihood.Float64(), 0.8)
		require.NoError(t, assessment.Validate(f))
	}
}

func TestFixedContent(t *testing.T) {
	g := newSeeded(3)

	a := g.Nested()
	assert.Equal(t, assessment.PriorityModerate, a.Recommendations.ProfessionalEvaluationPriority)
	assert.Equal(t, assessment.AgeAdult, a.AgeSpecific.EstimatedAgeGroup)
	assert.Equal(t, []string{"comprehensive_clinical_assessment", "speech_language_evaluation", "occupational_therapy_screening"}, a.Recommendations.SuggestedNextSteps)
	assert.Equal(t, 120, a.Metadata.VideoDurationSeconds)
	assert.Equal(t, clock.t, a.Metadata.Timestamp)
	assert.True(t, a.Limitations.ProfessionalInterpretationRequired)

	f := g.Flat()
	assert.Equal(t, assessment.SupportLevel1, f.SupportLevel)
	assert.Equal(t, assessment.PriorityModerate, f.EvaluationPriority)
	assert.Equal(t, "2025-01-02T03:04:05Z", f.Timestamp)
	assert.True(t, strings.HasPrefix(f.SessionID, "fallback-"))
}

func TestSameShapeDifferentValues(t *testing.T) {
	g := New(clock, nil)

	first, second := g.Nested(), g.Nested()
	assert.Equal(t, assessmenttest.Paths(first), assessmenttest.Paths(second))
	assert.NotEqual(t, assessmenttest.Scores(first), assessmenttest.Scores(second))

	f1, f2 := g.Flat(), g.Flat()
	assert.Equal(t, assessmenttest.Paths(f1), assessmenttest.Paths(f2))
	assert.NotEqual(t, assessmenttest.Scores(f1), assessmenttest.Scores(f2))
}

func TestListsAreNotShared(t *testing.T) {
	g := newSeeded(4)
	a := g.Nested()
	a.Recommendations.SuggestedNextSteps[0] = "mutated"
	assert.Equal(t, "comprehensive_clinical_assessment", g.Nested().Recommendations.SuggestedNextSteps[0])
}

func TestGenerateVariant(t *testing.T) {
	g := newSeeded(5)

	r := g.Generate(assessment.VariantFlat)
	assert.Equal(t, assessment.VariantFlat, r.Variant)
	assert.Equal(t, assessment.SourceFallback, r.Source)
	assert.NotNil(t, r.Flat)
	assert.Nil(t, r.Nested)

	r = g.Generate(assessment.VariantNested)
	assert.Equal(t, assessment.VariantNested, r.Variant)
	assert.NotNil(t, r.Nested)
}

func TestConcurrentGenerate(t *testing.T) {
	g := New(clock, nil)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				r := g.Generate(assessment.VariantNested)
				assert.NoError(t, assessment.Validate(r.Nested))
			}
		}()
	}
	wg.Wait()
}
