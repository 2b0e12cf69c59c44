// Package fallback produces input-independent placeholder assessments used
// whenever the model path cannot deliver a result.
package fallback

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bryanwahyu/behavior-assessor/internal/application"
	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
)

const analysisVersion = "1.2.3"

var (
	nextSteps       = []string{"comprehensive_clinical_assessment", "speech_language_evaluation", "occupational_therapy_screening"}
	monitoringAreas = []string{"social_communication_development", "sensory_processing_patterns", "behavioral_flexibility"}
)

// Generator draws fallback values. It is safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	clock application.Clock
}

// New returns a generator. A nil rng is replaced by a time-seeded PCG source.
func New(clock application.Clock, rng *rand.Rand) *Generator {
	if clock == nil {
		clock = application.SystemClock{}
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>17|1))
	}
	return &Generator{rng: rng, clock: clock}
}

// Generate builds a fallback result of the given variant. Unknown variants
// get the nested report.
func (g *Generator) Generate(v assessment.Variant) *assessment.Result {
	if v == assessment.VariantFlat {
		return assessment.NewFlat(g.Flat(), assessment.SourceFallback)
	}
	return assessment.NewNested(g.Nested(), assessment.SourceFallback)
}

func (g *Generator) Nested() *assessment.Assessment {
	a := &assessment.Assessment{
		Metadata: assessment.Metadata{
			Timestamp:               g.clock.Now().UTC(),
			VideoDurationSeconds:    120,
			AudioQualityScore:       0.87,
			VideoQualityScore:       0.92,
			FaceDetectionConfidence: 0.94,
			AnalysisVersion:         analysisVersion,
		},
		AgeSpecific: assessment.AgeSpecific{EstimatedAgeGroup: assessment.AgeAdult},
		Recommendations: assessment.Recommendations{
			ProfessionalEvaluationPriority: assessment.PriorityModerate,
			SuggestedNextSteps:             append([]string(nil), nextSteps...),
			MonitoringAreas:                append([]string(nil), monitoringAreas...),
		},
		Limitations: assessment.Limitations{
			SingleSessionLimitation:            true,
			CulturalBiasPotential:              true,
			AgeSpecificValidity:                "adult_optimized",
			ComorbidityConsiderations:          true,
			ProfessionalInterpretationRequired: true,
		},
	}
	fill(g, a, nestedTable)
	return a
}

func (g *Generator) Flat() *assessment.Flat {
	f := &assessment.Flat{
		SessionID:             "fallback-" + uuid.NewString(),
		Timestamp:             g.clock.Now().UTC().Format(time.RFC3339),
		AnalysisVersion:       assessment.DefaultAnalysisVersion,
		SupportLevel:          assessment.SupportLevel1,
		EvaluationPriority:    assessment.PriorityModerate,
		DataQuality:           assessment.DataFair,
		PrimaryConcerns:       "automated analysis unavailable; scores are generic placeholders",
		ObservedStrengths:     "not assessed",
		KeyRecommendations:    "comprehensive_clinical_assessment, speech_language_evaluation, occupational_therapy_screening",
		AssessmentLimitations: "placeholder result, single session only, requires professional interpretation",
	}
	fill(g, f, flatTable)
	return f
}

func fill[T any](g *Generator, rec *T, table []bound[T]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, b := range table {
		*b.ref(rec) = assessment.Score(g.draw(b.lo, b.hi))
	}
}

// draw is uniform in [lo, hi], rounded to two decimals. Bounds carry at most
// two decimals so rounding stays inside them.
func (g *Generator) draw(lo, hi float64) float64 {
	v := lo + g.rng.Float64()*(hi-lo)
	return math.Round(v*100) / 100
}
