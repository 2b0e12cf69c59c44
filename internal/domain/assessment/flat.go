package assessment

// Flat is the single-level report for backends that reject deeply nested
// structured output.
type Flat struct {
	SessionID       string `json:"session_id" validate:"required"`
	Timestamp       string `json:"timestamp" validate:"required"`
	AnalysisVersion string `json:"analysis_version" validate:"required"`

	OverallAutismLikelihood Score `json:"overall_autism_likelihood" validate:"unit"`
	AssessmentConfidence    Score `json:"assessment_confidence" validate:"unit"`

	SocialCommunicationScore Score `json:"social_communication_score" validate:"unit"`
	RepetitiveBehaviorsScore Score `json:"repetitive_behaviors_score" validate:"unit"`
	SensoryProcessingScore   Score `json:"sensory_processing_score" validate:"unit"`

	EyeContactScore           Score `json:"eye_contact_score" validate:"unit"`
	FacialExpressionScore     Score `json:"facial_expression_score" validate:"unit"`
	ProsodyScore              Score `json:"prosody_score" validate:"unit"`
	VocalCharacteristicsScore Score `json:"vocal_characteristics_score" validate:"unit"`

	SocialCommunicationDeficits   Score `json:"social_communication_deficits" validate:"unit"`
	RestrictedRepetitiveBehaviors Score `json:"restricted_repetitive_behaviors" validate:"unit"`
	FunctionalImpairment          Score `json:"functional_impairment" validate:"unit"`

	SupportLevel       SupportLevel `json:"support_level" validate:"enum"`
	EvaluationPriority Priority     `json:"evaluation_priority" validate:"enum"`
	DataQuality        DataQuality  `json:"data_quality" validate:"enum"`

	PrimaryConcerns       string `json:"primary_concerns"`
	ObservedStrengths     string `json:"observed_strengths"`
	KeyRecommendations    string `json:"key_recommendations"`
	AssessmentLimitations string `json:"assessment_limitations"`
}

// DefaultAnalysisVersion is stamped on flat reports when the producer leaves it empty.
const DefaultAnalysisVersion = "1.0"
