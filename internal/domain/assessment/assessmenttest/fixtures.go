// Package assessmenttest provides fixed, valid assessment records for tests.
package assessmenttest

import (
	"time"

	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
)

// Timestamp is the metadata timestamp used by Nested.
var Timestamp = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// Nested returns a fully populated nested assessment. Each call returns a fresh value.
func Nested() *assessment.Assessment {
	return &assessment.Assessment{
		Metadata: assessment.Metadata{
			Timestamp:               Timestamp,
			VideoDurationSeconds:    95,
			AudioQualityScore:       0.81,
			VideoQualityScore:       0.9,
			FaceDetectionConfidence: 0.93,
			AnalysisVersion:         "1.2.3",
		},
		SocialCommunication: assessment.SocialCommunication{
			EyeContact:        assessment.EyeContact{FrequencyScore: 0.3, DurationConsistency: 0.4, AppropriatenessTiming: 0.5, Confidence: 0.8},
			FacialExpressions: assessment.FacialExpressions{VariabilityScore: 0.6, AppropriatenessToContext: 0.5, IntensityModulation: 0.4, Confidence: 0.75},
			Nonverbal:         assessment.Nonverbal{GestureFrequency: 0.3, GestureCoordinationWithSpeech: 0.35, BodyLanguageAppropriateness: 0.55, Confidence: 0.7},
			SocialReciprocity: assessment.SocialReciprocity{TurnTakingPatterns: 0.45, ResponseTiming: 0.4, InitiationBehaviors: 0.3, Confidence: 0.7},
		},
		SpeechLanguage: assessment.SpeechLanguage{
			Prosody:              assessment.Prosody{IntonationVariability: 0.6, RhythmConsistency: 0.7, StressPatternAppropriateness: 0.5, Confidence: 0.8},
			VocalCharacteristics: assessment.VocalCharacteristics{VolumeModulation: 0.5, PitchRangeUtilization: 0.6, VoiceQualityConsistency: 0.8, Confidence: 0.85},
			LanguagePatterns:     assessment.LanguagePatterns{EcholaliaIndicators: 0.2, RepetitivePhrases: 0.3, LiteralInterpretationMarkers: 0.4, Confidence: 0.7},
			PragmaticLanguage:    assessment.PragmaticLanguage{ConversationalFlow: 0.5, TopicMaintenance: 0.65, ContextualAppropriateness: 0.4, Confidence: 0.7},
		},
		BehavioralObservation: assessment.BehavioralObservation{
			RepetitiveBehaviors: assessment.RepetitiveBehaviors{MotorStereotypies: 0.2, VocalStereotypies: 0.1, ObjectManipulationPatterns: 0.3, Confidence: 0.7},
			SensoryResponses:    assessment.SensoryResponses{HyperResponsivityIndicators: 0.5, HypoResponsivityIndicators: 0.3, SensorySeekingBehaviors: 0.5, Confidence: 0.6},
			AttentionPatterns:   assessment.AttentionPatterns{SustainedAttentionDuration: 0.85, AttentionShiftingDifficulty: 0.4, SelectiveAttentionIntensity: 0.8, Confidence: 0.8},
			SelfRegulation:      assessment.SelfRegulation{EmotionalRegulationIndicators: 0.4, BehavioralFlexibility: 0.45, StressResponsePatterns: 0.6, Confidence: 0.7},
		},
		AgeSpecific: assessment.AgeSpecific{
			EstimatedAgeGroup:            assessment.AgeAdult,
			DevelopmentalAppropriateness: assessment.Developmental{SocialSkillsForAge: 0.4, CommunicationComplexity: 0.6, BehavioralMaturity: 0.5, Confidence: 0.75},
		},
		Masking: assessment.Masking{EffortfulSocialBehavior: 0.7, LearnedResponsePatterns: 0.65, FatigueIndicators: 0.5, AuthenticityVsPerformance: 0.6, Confidence: 0.6},
		Context: assessment.ContextualFactors{EnvironmentalStressors: 0.2, InteractionPartnerFamiliarity: 0.7, TaskComplexity: 0.5, SettingFormality: 0.8},
		Aggregate: assessment.AggregateScores{
			DSM5:                    assessment.DSM5Scores{SocialCommunicationDeficits: 0.62, RestrictedRepetitiveBehaviors: 0.38, EarlyOnsetIndicators: 0.45, FunctionalImpairment: 0.5},
			Severity:                assessment.SeverityEstimates{Level1Likelihood: 0.7, Level2Likelihood: 0.25, Level3Likelihood: 0.05},
			OverallAutismLikelihood: 0.61,
		},
		Uncertainty: assessment.Uncertainty{
			OverallConfidence:     0.74,
			DataSufficiency:       0.8,
			ModelUncertainty:      0.15,
			ConflictingIndicators: 0.3,
			ReliabilityFactors:    assessment.Reliability{VideoQualityImpact: 0.05, AudioClarityImpact: 0.05, DurationAdequacy: 0.9, InteractionNaturalness: 0.8},
		},
		Differential: assessment.Differential{ADHDOverlapLikelihood: 0.5, AnxietyMaskingPotential: 0.6, LanguageDisorderIndicators: 0.25, IntellectualDisabilityMarkers: 0.05, CulturalLinguisticFactors: 0.35},
		Recommendations: assessment.Recommendations{
			ProfessionalEvaluationPriority: assessment.PriorityModerate,
			SuggestedNextSteps:             []string{"comprehensive_clinical_assessment", "speech_language_evaluation"},
			MonitoringAreas:                []string{"social_communication_development"},
		},
		Limitations: assessment.Limitations{
			SingleSessionLimitation:            true,
			CulturalBiasPotential:              true,
			AgeSpecificValidity:                "adult_optimized",
			ComorbidityConsiderations:          true,
			ProfessionalInterpretationRequired: true,
		},
	}
}

// Flat returns a fully populated flat assessment.
func Flat() *assessment.Flat {
	return &assessment.Flat{
		SessionID:                     "s-fixture",
		Timestamp:                     Timestamp.Format(time.RFC3339),
		AnalysisVersion:               assessment.DefaultAnalysisVersion,
		OverallAutismLikelihood:       0.55,
		AssessmentConfidence:          0.7,
		SocialCommunicationScore:      0.45,
		RepetitiveBehaviorsScore:      0.3,
		SensoryProcessingScore:        0.4,
		EyeContactScore:               0.35,
		FacialExpressionScore:         0.5,
		ProsodyScore:                  0.6,
		VocalCharacteristicsScore:     0.55,
		SocialCommunicationDeficits:   0.5,
		RestrictedRepetitiveBehaviors: 0.3,
		FunctionalImpairment:          0.4,
		SupportLevel:                  assessment.SupportLevel1,
		EvaluationPriority:            assessment.PriorityModerate,
		DataQuality:                   assessment.DataGood,
		PrimaryConcerns:               "social communication deficits (0.50)",
		ObservedStrengths:             "prosody, sustained attention",
		KeyRecommendations:            "comprehensive_clinical_assessment",
		AssessmentLimitations:         "single session only",
	}
}
