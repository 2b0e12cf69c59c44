package ai

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/bryanwahyu/behavior-assessor/internal/application/fallback"
	"github.com/bryanwahyu/behavior-assessor/internal/domain/ai"
	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment/assessmenttest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubClient struct {
	res    *assessment.Result
	err    error
	prompt string
	calls  int
}

func (s *stubClient) Run(_ context.Context, p string) (*assessment.Result, error) {
	s.calls++
	s.prompt = p
	return s.res, s.err
}

// blockingClient waits for its context, like a hung upstream.
type blockingClient struct{}

func (blockingClient) Run(ctx context.Context, _ string) (*assessment.Result, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type failingProvider struct{ err error }

func (f failingProvider) Client() (ai.Client, error) { return nil, f.err }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var now = fixedClock{time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)}

func newService(p ai.Provider, v assessment.Variant) *Service {
	gen := fallback.New(now, rand.New(rand.NewPCG(7, 11)))
	return NewService(p, gen, Options{Variant: v, Clock: now})
}

func assertConformant(t *testing.T, r *assessment.Result) {
	t.Helper()
	require.NotNil(t, r)
	require.NoError(t, assessment.Validate(r.Record()))
	for path, v := range assessmenttest.Scores(r.Record()) {
		assert.True(t, v >= 0 && v <= 1, "%s = %v", path, v)
	}
	for path, e := range assessmenttest.Enums(r.Record()) {
		assert.True(t, e.Valid(), "%s = %v", path, e)
	}
}

func TestAnalyzeReturnsClientResultUnchanged(t *testing.T) {
	want := assessment.NewNested(assessmenttest.Nested(), assessment.SourceModel)
	stub := &stubClient{res: want}
	svc := newService(ai.Static{C: stub}, assessment.VariantNested)

	got := svc.Analyze(context.Background(), map[string]any{"session_id": "s1"}, map[string]any{})

	assert.Same(t, want, got)
	assert.Equal(t, assessmenttest.Nested(), got.Nested)
	assert.Equal(t, 1, stub.calls)
	assert.Contains(t, stub.prompt, "Session ID: s1")
	assert.Contains(t, stub.prompt, "2025-05-06T07:08:09Z")
}

func TestAnalyzeFallsBackWhenClientFails(t *testing.T) {
	stub := &stubClient{err: errors.New("upstream exploded")}
	svc := newService(ai.Static{C: stub}, assessment.VariantNested)

	got := svc.Analyze(context.Background(), map[string]any{"session_id": "s1"}, nil)

	assert.Equal(t, assessment.SourceFallback, got.Source)
	assert.Equal(t, assessment.VariantNested, got.Variant)
	assertConformant(t, got)

	direct := fallback.New(now, nil).Generate(assessment.VariantNested)
	assert.Equal(t, assessmenttest.Paths(direct.Record()), assessmenttest.Paths(got.Record()))
}

func TestAnalyzeFlatFallbackIgnoresInput(t *testing.T) {
	svc := newService(ai.Static{C: &stubClient{err: ai.ErrQuotaExceeded}}, assessment.VariantFlat)

	got := svc.Analyze(context.Background(), map[string]any{"session_id": "s1"}, map[string]any{})

	require.NotNil(t, got.Flat)
	assertConformant(t, got)
	assert.NotEqual(t, "s1", got.Flat.SessionID)
	assert.GreaterOrEqual(t, got.Flat.OverallAutismLikelihood.Float64(), 0.4)
	assert.LessOrEqual(t, got.Flat.OverallAutismLikelihood.Float64(), 0.8)
}

func TestAnalyzeWithoutClient(t *testing.T) {
	for name, p := range map[string]ai.Provider{
		"no client":       ai.NoClient{Reason: "tests"},
		"empty static":    ai.Static{},
		"provider failed": failingProvider{err: errors.New("bad credentials")},
		"nil provider":    nil,
	} {
		t.Run(name, func(t *testing.T) {
			got := newService(p, assessment.VariantNested).Analyze(context.Background(), nil, nil)
			assert.Equal(t, assessment.SourceFallback, got.Source)
			assertConformant(t, got)
		})
	}
}

func TestAnalyzeTagsUnmarkedResultAsModel(t *testing.T) {
	untagged := assessment.NewNested(assessmenttest.Nested(), "")
	svc := newService(ai.Static{C: &stubClient{res: untagged}}, assessment.VariantNested)

	got := svc.Analyze(context.Background(), nil, nil)

	assert.Equal(t, assessment.SourceModel, got.Source)
	assert.Equal(t, assessment.Source(""), untagged.Source, "client result is not mutated")
	assert.Same(t, untagged.Nested, got.Nested)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	var back assessment.Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, assessment.SourceModel, back.Source)
}

func TestAnalyzeNilResultFallsBack(t *testing.T) {
	svc := newService(ai.Static{C: &stubClient{}}, assessment.VariantFlat)
	got := svc.Analyze(context.Background(), nil, nil)
	assert.Equal(t, assessment.SourceFallback, got.Source)
}

func TestAnalyzeProjectsNestedToFlat(t *testing.T) {
	stub := &stubClient{res: assessment.NewNested(assessmenttest.Nested(), assessment.SourceModel)}
	svc := newService(ai.Static{C: stub}, assessment.VariantFlat)

	got := svc.Analyze(context.Background(), map[string]any{"session_id": "abc"}, nil)

	require.Equal(t, assessment.VariantFlat, got.Variant)
	assert.Equal(t, assessment.SourceModel, got.Source)
	assert.Equal(t, "abc", got.Flat.SessionID)
	assertConformant(t, got)
}

func TestAnalyzeCannotExpandFlatResult(t *testing.T) {
	stub := &stubClient{res: assessment.NewFlat(assessmenttest.Flat(), assessment.SourceModel)}
	svc := newService(ai.Static{C: stub}, assessment.VariantNested)

	got := svc.Analyze(context.Background(), nil, nil)
	assert.Equal(t, assessment.SourceFallback, got.Source)
	assert.Equal(t, assessment.VariantNested, got.Variant)
}

func TestAnalyzeTimeoutFallsBack(t *testing.T) {
	gen := fallback.New(now, nil)
	svc := NewService(ai.Static{C: blockingClient{}}, gen, Options{Variant: assessment.VariantFlat, Timeout: 20 * time.Millisecond})

	start := time.Now()
	got := svc.Analyze(context.Background(), nil, nil)

	assert.Equal(t, assessment.SourceFallback, got.Source)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewServiceDefaults(t *testing.T) {
	svc := NewService(nil, nil, Options{Variant: "weird"})
	assert.Equal(t, assessment.VariantNested, svc.Variant())
	assert.Equal(t, assessment.SourceFallback, svc.Fallback().Source)
}
