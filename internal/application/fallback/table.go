package fallback

import "github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"

// bound is one randomized field: a uniform draw from [lo, hi] written through ref.
type bound[T any] struct {
	field  string
	lo, hi float64
	ref    func(*T) *assessment.Score
}

type nestedBound = bound[assessment.Assessment]
type flatBound = bound[assessment.Flat]

var nestedTable = []nestedBound{
	{"eye_contact.frequency_score", 0.2, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.EyeContact.FrequencyScore }},
	{"eye_contact.duration_consistency", 0.2, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.EyeContact.DurationConsistency }},
	{"eye_contact.appropriateness_timing", 0.2, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.EyeContact.AppropriatenessTiming }},
	{"eye_contact.confidence", 0.7, 0.9, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.EyeContact.Confidence }},

	{"facial_expressions.variability_score", 0.4, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.FacialExpressions.VariabilityScore }},
	{"facial_expressions.appropriateness_to_context", 0.3, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.FacialExpressions.AppropriatenessToContext }},
	{"facial_expressions.intensity_modulation", 0.3, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.FacialExpressions.IntensityModulation }},
	{"facial_expressions.confidence", 0.7, 0.9, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.FacialExpressions.Confidence }},

	{"nonverbal_communication.gesture_frequency", 0.2, 0.6, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.Nonverbal.GestureFrequency }},
	{"nonverbal_communication.gesture_coordination_with_speech", 0.2, 0.5, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.Nonverbal.GestureCoordinationWithSpeech }},
	{"nonverbal_communication.body_language_appropriateness", 0.4, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.Nonverbal.BodyLanguageAppropriateness }},
	{"nonverbal_communication.confidence", 0.6, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.Nonverbal.Confidence }},

	{"social_reciprocity.turn_taking_patterns", 0.3, 0.6, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.SocialReciprocity.TurnTakingPatterns }},
	{"social_reciprocity.response_timing", 0.3, 0.5, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.SocialReciprocity.ResponseTiming }},
	{"social_reciprocity.initiation_behaviors", 0.2, 0.4, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.SocialReciprocity.InitiationBehaviors }},
	{"social_reciprocity.confidence", 0.6, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.SocialCommunication.SocialReciprocity.Confidence }},

	{"prosody.intonation_variability", 0.5, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.Prosody.IntonationVariability }},
	{"prosody.rhythm_consistency", 0.5, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.Prosody.RhythmConsistency }},
	{"prosody.stress_pattern_appropriateness", 0.4, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.Prosody.StressPatternAppropriateness }},
	{"prosody.confidence", 0.7, 0.9, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.Prosody.Confidence }},

	{"vocal_characteristics.volume_modulation", 0.3, 0.6, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.VocalCharacteristics.VolumeModulation }},
	{"vocal_characteristics.pitch_range_utilization", 0.5, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.VocalCharacteristics.PitchRangeUtilization }},
	{"vocal_characteristics.voice_quality_consistency", 0.6, 0.9, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.VocalCharacteristics.VoiceQualityConsistency }},
	{"vocal_characteristics.confidence", 0.7, 0.9, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.VocalCharacteristics.Confidence }},

	{"language_patterns.echolalia_indicators", 0.1, 0.3, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.LanguagePatterns.EcholaliaIndicators }},
	{"language_patterns.repetitive_phrases", 0.2, 0.4, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.LanguagePatterns.RepetitivePhrases }},
	{"language_patterns.literal_interpretation_markers", 0.2, 0.5, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.LanguagePatterns.LiteralInterpretationMarkers }},
	{"language_patterns.confidence", 0.6, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.LanguagePatterns.Confidence }},

	{"pragmatic_language.conversational_flow", 0.3, 0.6, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.PragmaticLanguage.ConversationalFlow }},
	{"pragmatic_language.topic_maintenance", 0.4, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.PragmaticLanguage.TopicMaintenance }},
	{"pragmatic_language.contextual_appropriateness", 0.3, 0.5, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.PragmaticLanguage.ContextualAppropriateness }},
	{"pragmatic_language.confidence", 0.6, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.SpeechLanguage.PragmaticLanguage.Confidence }},

	{"repetitive_behaviors.motor_stereotypies", 0.1, 0.3, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.RepetitiveBehaviors.MotorStereotypies }},
	{"repetitive_behaviors.vocal_stereotypies", 0.1, 0.3, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.RepetitiveBehaviors.VocalStereotypies }},
	{"repetitive_behaviors.object_manipulation_patterns", 0.2, 0.4, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.RepetitiveBehaviors.ObjectManipulationPatterns }},
	{"repetitive_behaviors.confidence", 0.6, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.RepetitiveBehaviors.Confidence }},

	{"sensory_responses.hyper_responsivity_indicators", 0.3, 0.6, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.SensoryResponses.HyperResponsivityIndicators }},
	{"sensory_responses.hypo_responsivity_indicators", 0.2, 0.5, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.SensoryResponses.HypoResponsivityIndicators }},
	{"sensory_responses.sensory_seeking_behaviors", 0.4, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.SensoryResponses.SensorySeekingBehaviors }},
	{"sensory_responses.confidence", 0.5, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.SensoryResponses.Confidence }},

	{"attention_patterns.sustained_attention_duration", 0.6, 0.9, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.AttentionPatterns.SustainedAttentionDuration }},
	{"attention_patterns.attention_shifting_difficulty", 0.3, 0.6, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.AttentionPatterns.AttentionShiftingDifficulty }},
	{"attention_patterns.selective_attention_intensity", 0.7, 0.9, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.AttentionPatterns.SelectiveAttentionIntensity }},
	{"attention_patterns.confidence", 0.7, 0.9, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.AttentionPatterns.Confidence }},

	{"self_regulation.emotional_regulation_indicators", 0.3, 0.5, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.SelfRegulation.EmotionalRegulationIndicators }},
	{"self_regulation.behavioral_flexibility", 0.3, 0.6, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.SelfRegulation.BehavioralFlexibility }},
	{"self_regulation.stress_response_patterns", 0.5, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.SelfRegulation.StressResponsePatterns }},
	{"self_regulation.confidence", 0.6, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.BehavioralObservation.SelfRegulation.Confidence }},

	{"developmental_appropriateness.social_skills_for_age", 0.3, 0.5, func(a *assessment.Assessment) *assessment.Score { return &a.AgeSpecific.DevelopmentalAppropriateness.SocialSkillsForAge }},
	{"developmental_appropriateness.communication_complexity", 0.5, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.AgeSpecific.DevelopmentalAppropriateness.CommunicationComplexity }},
	{"developmental_appropriateness.behavioral_maturity", 0.3, 0.6, func(a *assessment.Assessment) *assessment.Score { return &a.AgeSpecific.DevelopmentalAppropriateness.BehavioralMaturity }},
	{"developmental_appropriateness.confidence", 0.7, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.AgeSpecific.DevelopmentalAppropriateness.Confidence }},

	{"masking.effortful_social_behavior", 0.6, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.Masking.EffortfulSocialBehavior }},
	{"masking.learned_response_patterns", 0.6, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.Masking.LearnedResponsePatterns }},
	{"masking.fatigue_indicators", 0.4, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.Masking.FatigueIndicators }},
	{"masking.authenticity_vs_performance", 0.5, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.Masking.AuthenticityVsPerformance }},
	{"masking.confidence", 0.5, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.Masking.Confidence }},

	{"contextual_factors.environmental_stressors", 0.1, 0.4, func(a *assessment.Assessment) *assessment.Score { return &a.Context.EnvironmentalStressors }},
	{"contextual_factors.interaction_partner_familiarity", 0.6, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.Context.InteractionPartnerFamiliarity }},
	{"contextual_factors.task_complexity", 0.4, 0.6, func(a *assessment.Assessment) *assessment.Score { return &a.Context.TaskComplexity }},
	{"contextual_factors.setting_formality", 0.7, 0.9, func(a *assessment.Assessment) *assessment.Score { return &a.Context.SettingFormality }},

	{"dsm5.social_communication_deficits", 0.5, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.Aggregate.DSM5.SocialCommunicationDeficits }},
	{"dsm5.restricted_repetitive_behaviors", 0.3, 0.5, func(a *assessment.Assessment) *assessment.Score { return &a.Aggregate.DSM5.RestrictedRepetitiveBehaviors }},
	{"dsm5.early_onset_indicators", 0.4, 0.5, func(a *assessment.Assessment) *assessment.Score { return &a.Aggregate.DSM5.EarlyOnsetIndicators }},
	{"dsm5.functional_impairment", 0.4, 0.6, func(a *assessment.Assessment) *assessment.Score { return &a.Aggregate.DSM5.FunctionalImpairment }},

	{"severity.level_1_likelihood", 0.6, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.Aggregate.Severity.Level1Likelihood }},
	{"severity.level_2_likelihood", 0.2, 0.3, func(a *assessment.Assessment) *assessment.Score { return &a.Aggregate.Severity.Level2Likelihood }},
	{"severity.level_3_likelihood", 0.05, 0.1, func(a *assessment.Assessment) *assessment.Score { return &a.Aggregate.Severity.Level3Likelihood }},
	{"overall_autism_likelihood", 0.5, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.Aggregate.OverallAutismLikelihood }},

	{"uncertainty.overall_confidence", 0.7, 0.8, func(a *assessment.Assessment) *assessment.Score { return &a.Uncertainty.OverallConfidence }},
	{"uncertainty.data_sufficiency", 0.8, 0.9, func(a *assessment.Assessment) *assessment.Score { return &a.Uncertainty.DataSufficiency }},
	{"uncertainty.model_uncertainty", 0.1, 0.2, func(a *assessment.Assessment) *assessment.Score { return &a.Uncertainty.ModelUncertainty }},
	{"uncertainty.conflicting_indicators", 0.2, 0.4, func(a *assessment.Assessment) *assessment.Score { return &a.Uncertainty.ConflictingIndicators }},
	{"reliability.video_quality_impact", 0.0, 0.1, func(a *assessment.Assessment) *assessment.Score { return &a.Uncertainty.ReliabilityFactors.VideoQualityImpact }},
	{"reliability.audio_clarity_impact", 0.0, 0.1, func(a *assessment.Assessment) *assessment.Score { return &a.Uncertainty.ReliabilityFactors.AudioClarityImpact }},
	{"reliability.duration_adequacy", 0.9, 1.0, func(a *assessment.Assessment) *assessment.Score { return &a.Uncertainty.ReliabilityFactors.DurationAdequacy }},
	{"reliability.interaction_naturalness", 0.7, 0.9, func(a *assessment.Assessment) *assessment.Score { return &a.Uncertainty.ReliabilityFactors.InteractionNaturalness }},

	{"differential.adhd_overlap_likelihood", 0.4, 0.6, func(a *assessment.Assessment) *assessment.Score { return &a.Differential.ADHDOverlapLikelihood }},
	{"differential.anxiety_masking_potential", 0.5, 0.7, func(a *assessment.Assessment) *assessment.Score { return &a.Differential.AnxietyMaskingPotential }},
	{"differential.language_disorder_indicators", 0.2, 0.3, func(a *assessment.Assessment) *assessment.Score { return &a.Differential.LanguageDisorderIndicators }},
	{"differential.intellectual_disability_markers", 0.05, 0.1, func(a *assessment.Assessment) *assessment.Score { return &a.Differential.IntellectualDisabilityMarkers }},
	{"differential.cultural_linguistic_factors", 0.3, 0.4, func(a *assessment.Assessment) *assessment.Score { return &a.Differential.CulturalLinguisticFactors }},
}

var flatTable = []flatBound{
	{"overall_autism_likelihood", 0.4, 0.8, func(f *assessment.Flat) *assessment.Score { return &f.OverallAutismLikelihood }},
	{"assessment_confidence", 0.6, 0.8, func(f *assessment.Flat) *assessment.Score { return &f.AssessmentConfidence }},
	{"social_communication_score", 0.3, 0.7, func(f *assessment.Flat) *assessment.Score { return &f.SocialCommunicationScore }},
	{"repetitive_behaviors_score", 0.1, 0.4, func(f *assessment.Flat) *assessment.Score { return &f.RepetitiveBehaviorsScore }},
	{"sensory_processing_score", 0.3, 0.6, func(f *assessment.Flat) *assessment.Score { return &f.SensoryProcessingScore }},
	{"eye_contact_score", 0.2, 0.8, func(f *assessment.Flat) *assessment.Score { return &f.EyeContactScore }},
	{"facial_expression_score", 0.3, 0.7, func(f *assessment.Flat) *assessment.Score { return &f.FacialExpressionScore }},
	{"prosody_score", 0.4, 0.8, func(f *assessment.Flat) *assessment.Score { return &f.ProsodyScore }},
	{"vocal_characteristics_score", 0.4, 0.8, func(f *assessment.Flat) *assessment.Score { return &f.VocalCharacteristicsScore }},
	{"social_communication_deficits", 0.5, 0.7, func(f *assessment.Flat) *assessment.Score { return &f.SocialCommunicationDeficits }},
	{"restricted_repetitive_behaviors", 0.3, 0.5, func(f *assessment.Flat) *assessment.Score { return &f.RestrictedRepetitiveBehaviors }},
	{"functional_impairment", 0.4, 0.6, func(f *assessment.Flat) *assessment.Score { return &f.FunctionalImpairment }},
}
