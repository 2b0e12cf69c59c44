package assessment

import "time"

// Assessment is the nested report. It is the canonical record: the flat
// report is derived from it with Flatten.
type Assessment struct {
	Metadata              Metadata              `json:"assessment_metadata"`
	SocialCommunication   SocialCommunication   `json:"social_communication_markers"`
	SpeechLanguage        SpeechLanguage        `json:"speech_language_markers"`
	BehavioralObservation BehavioralObservation `json:"behavioral_observation_markers"`
	AgeSpecific           AgeSpecific           `json:"age_specific_markers"`
	Masking               Masking               `json:"masking_compensation_indicators"`
	Context               ContextualFactors     `json:"contextual_factors"`
	Aggregate             AggregateScores       `json:"aggregate_scores"`
	Uncertainty           Uncertainty           `json:"uncertainty_analysis"`
	Differential          Differential          `json:"differential_considerations"`
	Recommendations       Recommendations       `json:"recommendations"`
	Limitations           Limitations           `json:"limitations_disclaimers"`
}

type Metadata struct {
	Timestamp               time.Time `json:"timestamp"`
	VideoDurationSeconds    int       `json:"video_duration_seconds" validate:"gte=0"`
	AudioQualityScore       Score     `json:"audio_quality_score" validate:"unit"`
	VideoQualityScore       Score     `json:"video_quality_score" validate:"unit"`
	FaceDetectionConfidence Score     `json:"face_detection_confidence" validate:"unit"`
	AnalysisVersion         string    `json:"analysis_version" validate:"required"`
}

type SocialCommunication struct {
	EyeContact        EyeContact        `json:"eye_contact"`
	FacialExpressions FacialExpressions `json:"facial_expressions"`
	Nonverbal         Nonverbal         `json:"nonverbal_communication"`
	SocialReciprocity SocialReciprocity `json:"social_reciprocity"`
}

type EyeContact struct {
	FrequencyScore        Score `json:"frequency_score" validate:"unit"`
	DurationConsistency   Score `json:"duration_consistency" validate:"unit"`
	AppropriatenessTiming Score `json:"appropriateness_timing" validate:"unit"`
	Confidence            Score `json:"confidence" validate:"unit"`
}

type FacialExpressions struct {
	VariabilityScore         Score `json:"variability_score" validate:"unit"`
	AppropriatenessToContext Score `json:"appropriateness_to_context" validate:"unit"`
	IntensityModulation      Score `json:"intensity_modulation" validate:"unit"`
	Confidence               Score `json:"confidence" validate:"unit"`
}

type Nonverbal struct {
	GestureFrequency              Score `json:"gesture_frequency" validate:"unit"`
	GestureCoordinationWithSpeech Score `json:"gesture_coordination_with_speech" validate:"unit"`
	BodyLanguageAppropriateness   Score `json:"body_language_appropriateness" validate:"unit"`
	Confidence                    Score `json:"confidence" validate:"unit"`
}

type SocialReciprocity struct {
	TurnTakingPatterns  Score `json:"turn_taking_patterns" validate:"unit"`
	ResponseTiming      Score `json:"response_timing" validate:"unit"`
	InitiationBehaviors Score `json:"initiation_behaviors" validate:"unit"`
	Confidence          Score `json:"confidence" validate:"unit"`
}

type SpeechLanguage struct {
	Prosody              Prosody              `json:"prosody"`
	VocalCharacteristics VocalCharacteristics `json:"vocal_characteristics"`
	LanguagePatterns     LanguagePatterns     `json:"language_patterns"`
	PragmaticLanguage    PragmaticLanguage    `json:"pragmatic_language"`
}

type Prosody struct {
	IntonationVariability        Score `json:"intonation_variability" validate:"unit"`
	RhythmConsistency            Score `json:"rhythm_consistency" validate:"unit"`
	StressPatternAppropriateness Score `json:"stress_pattern_appropriateness" validate:"unit"`
	Confidence                   Score `json:"confidence" validate:"unit"`
}

type VocalCharacteristics struct {
	VolumeModulation        Score `json:"volume_modulation" validate:"unit"`
	PitchRangeUtilization   Score `json:"pitch_range_utilization" validate:"unit"`
	VoiceQualityConsistency Score `json:"voice_quality_consistency" validate:"unit"`
	Confidence              Score `json:"confidence" validate:"unit"`
}

type LanguagePatterns struct {
	EcholaliaIndicators          Score `json:"echolalia_indicators" validate:"unit"`
	RepetitivePhrases            Score `json:"repetitive_phrases" validate:"unit"`
	LiteralInterpretationMarkers Score `json:"literal_interpretation_markers" validate:"unit"`
	Confidence                   Score `json:"confidence" validate:"unit"`
}

type PragmaticLanguage struct {
	ConversationalFlow        Score `json:"conversational_flow" validate:"unit"`
	TopicMaintenance          Score `json:"topic_maintenance" validate:"unit"`
	ContextualAppropriateness Score `json:"contextual_appropriateness" validate:"unit"`
	Confidence                Score `json:"confidence" validate:"unit"`
}

type BehavioralObservation struct {
	RepetitiveBehaviors RepetitiveBehaviors `json:"repetitive_behaviors"`
	SensoryResponses    SensoryResponses    `json:"sensory_responses"`
	AttentionPatterns   AttentionPatterns   `json:"attention_patterns"`
	SelfRegulation      SelfRegulation      `json:"self_regulation"`
}

type RepetitiveBehaviors struct {
	MotorStereotypies          Score `json:"motor_stereotypies" validate:"unit"`
	VocalStereotypies          Score `json:"vocal_stereotypies" validate:"unit"`
	ObjectManipulationPatterns Score `json:"object_manipulation_patterns" validate:"unit"`
	Confidence                 Score `json:"confidence" validate:"unit"`
}

type SensoryResponses struct {
	HyperResponsivityIndicators Score `json:"hyper_responsivity_indicators" validate:"unit"`
	HypoResponsivityIndicators  Score `json:"hypo_responsivity_indicators" validate:"unit"`
	SensorySeekingBehaviors     Score `json:"sensory_seeking_behaviors" validate:"unit"`
	Confidence                  Score `json:"confidence" validate:"unit"`
}

type AttentionPatterns struct {
	SustainedAttentionDuration  Score `json:"sustained_attention_duration" validate:"unit"`
	AttentionShiftingDifficulty Score `json:"attention_shifting_difficulty" validate:"unit"`
	SelectiveAttentionIntensity Score `json:"selective_attention_intensity" validate:"unit"`
	Confidence                  Score `json:"confidence" validate:"unit"`
}

type SelfRegulation struct {
	EmotionalRegulationIndicators Score `json:"emotional_regulation_indicators" validate:"unit"`
	BehavioralFlexibility         Score `json:"behavioral_flexibility" validate:"unit"`
	StressResponsePatterns        Score `json:"stress_response_patterns" validate:"unit"`
	Confidence                    Score `json:"confidence" validate:"unit"`
}

type AgeSpecific struct {
	EstimatedAgeGroup            AgeGroup      `json:"estimated_age_group" validate:"enum"`
	DevelopmentalAppropriateness Developmental `json:"developmental_appropriateness"`
}

type Developmental struct {
	SocialSkillsForAge      Score `json:"social_skills_for_age" validate:"unit"`
	CommunicationComplexity Score `json:"communication_complexity" validate:"unit"`
	BehavioralMaturity      Score `json:"behavioral_maturity" validate:"unit"`
	Confidence              Score `json:"confidence" validate:"unit"`
}

type Masking struct {
	EffortfulSocialBehavior   Score `json:"effortful_social_behavior" validate:"unit"`
	LearnedResponsePatterns   Score `json:"learned_response_patterns" validate:"unit"`
	FatigueIndicators         Score `json:"fatigue_indicators" validate:"unit"`
	AuthenticityVsPerformance Score `json:"authenticity_vs_performance" validate:"unit"`
	Confidence                Score `json:"confidence" validate:"unit"`
}

type ContextualFactors struct {
	EnvironmentalStressors        Score `json:"environmental_stressors" validate:"unit"`
	InteractionPartnerFamiliarity Score `json:"interaction_partner_familiarity" validate:"unit"`
	TaskComplexity                Score `json:"task_complexity" validate:"unit"`
	SettingFormality              Score `json:"setting_formality" validate:"unit"`
}

type AggregateScores struct {
	DSM5                    DSM5Scores        `json:"dsm5_aligned_scores"`
	Severity                SeverityEstimates `json:"severity_estimates"`
	OverallAutismLikelihood Score             `json:"overall_autism_likelihood" validate:"unit"`
}

type DSM5Scores struct {
	SocialCommunicationDeficits   Score `json:"social_communication_deficits" validate:"unit"`
	RestrictedRepetitiveBehaviors Score `json:"restricted_repetitive_behaviors" validate:"unit"`
	EarlyOnsetIndicators          Score `json:"early_onset_indicators" validate:"unit"`
	FunctionalImpairment          Score `json:"functional_impairment" validate:"unit"`
}

type SeverityEstimates struct {
	Level1Likelihood Score `json:"level_1_likelihood" validate:"unit"`
	Level2Likelihood Score `json:"level_2_likelihood" validate:"unit"`
	Level3Likelihood Score `json:"level_3_likelihood" validate:"unit"`
}

type Uncertainty struct {
	OverallConfidence     Score       `json:"overall_confidence" validate:"unit"`
	DataSufficiency       Score       `json:"data_sufficiency" validate:"unit"`
	ModelUncertainty      Score       `json:"model_uncertainty" validate:"unit"`
	ConflictingIndicators Score       `json:"conflicting_indicators" validate:"unit"`
	ReliabilityFactors    Reliability `json:"reliability_factors"`
}

type Reliability struct {
	VideoQualityImpact     Score `json:"video_quality_impact" validate:"unit"`
	AudioClarityImpact     Score `json:"audio_clarity_impact" validate:"unit"`
	DurationAdequacy       Score `json:"duration_adequacy" validate:"unit"`
	InteractionNaturalness Score `json:"interaction_naturalness" validate:"unit"`
}

type Differential struct {
	ADHDOverlapLikelihood         Score `json:"adhd_overlap_likelihood" validate:"unit"`
	AnxietyMaskingPotential       Score `json:"anxiety_masking_potential" validate:"unit"`
	LanguageDisorderIndicators    Score `json:"language_disorder_indicators" validate:"unit"`
	IntellectualDisabilityMarkers Score `json:"intellectual_disability_markers" validate:"unit"`
	CulturalLinguisticFactors     Score `json:"cultural_linguistic_factors" validate:"unit"`
}

type Recommendations struct {
	ProfessionalEvaluationPriority Priority `json:"professional_evaluation_priority" validate:"enum"`
	SuggestedNextSteps             []string `json:"suggested_next_steps" validate:"min=1,dive,required"`
	MonitoringAreas                []string `json:"monitoring_areas" validate:"min=1,dive,required"`
}

type Limitations struct {
	SingleSessionLimitation            bool   `json:"single_session_limitation"`
	CulturalBiasPotential              bool   `json:"cultural_bias_potential"`
	AgeSpecificValidity                string `json:"age_specific_validity"`
	ComorbidityConsiderations          bool   `json:"comorbidity_considerations"`
	ProfessionalInterpretationRequired bool   `json:"professional_interpretation_required"`
}
