package assessment

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// concernThreshold is the score above which a DSM-5 domain is listed as a concern.
const concernThreshold Score = 0.5

// Flatten projects a nested assessment onto the flat record. Grouped scores
// are the mean of their non-confidence markers.
func Flatten(a *Assessment, sessionID string) Flat {
	sc := a.SocialCommunication
	sl := a.SpeechLanguage
	bo := a.BehavioralObservation
	dsm := a.Aggregate.DSM5

	eye := mean(sc.EyeContact.FrequencyScore, sc.EyeContact.DurationConsistency, sc.EyeContact.AppropriatenessTiming)
	facial := mean(sc.FacialExpressions.VariabilityScore, sc.FacialExpressions.AppropriatenessToContext, sc.FacialExpressions.IntensityModulation)
	nonverbal := mean(sc.Nonverbal.GestureFrequency, sc.Nonverbal.GestureCoordinationWithSpeech, sc.Nonverbal.BodyLanguageAppropriateness)
	reciprocity := mean(sc.SocialReciprocity.TurnTakingPatterns, sc.SocialReciprocity.ResponseTiming, sc.SocialReciprocity.InitiationBehaviors)

	if sessionID == "" {
		sessionID = "unknown"
	}
	version := a.Metadata.AnalysisVersion
	if version == "" {
		version = DefaultAnalysisVersion
	}

	return Flat{
		SessionID:       sessionID,
		Timestamp:       a.Metadata.Timestamp.UTC().Format(time.RFC3339),
		AnalysisVersion: version,

		OverallAutismLikelihood: a.Aggregate.OverallAutismLikelihood,
		AssessmentConfidence:    a.Uncertainty.OverallConfidence,

		SocialCommunicationScore: mean(eye, facial, nonverbal, reciprocity),
		RepetitiveBehaviorsScore: mean(bo.RepetitiveBehaviors.MotorStereotypies, bo.RepetitiveBehaviors.VocalStereotypies, bo.RepetitiveBehaviors.ObjectManipulationPatterns),
		SensoryProcessingScore:   mean(bo.SensoryResponses.HyperResponsivityIndicators, bo.SensoryResponses.HypoResponsivityIndicators, bo.SensoryResponses.SensorySeekingBehaviors),

		EyeContactScore:           eye,
		FacialExpressionScore:     facial,
		ProsodyScore:              mean(sl.Prosody.IntonationVariability, sl.Prosody.RhythmConsistency, sl.Prosody.StressPatternAppropriateness),
		VocalCharacteristicsScore: mean(sl.VocalCharacteristics.VolumeModulation, sl.VocalCharacteristics.PitchRangeUtilization, sl.VocalCharacteristics.VoiceQualityConsistency),

		SocialCommunicationDeficits:   dsm.SocialCommunicationDeficits,
		RestrictedRepetitiveBehaviors: dsm.RestrictedRepetitiveBehaviors,
		FunctionalImpairment:          dsm.FunctionalImpairment,

		SupportLevel:       likeliestLevel(a.Aggregate.Severity),
		EvaluationPriority: a.Recommendations.ProfessionalEvaluationPriority,
		DataQuality:        QualityFor(a.Uncertainty.DataSufficiency),

		PrimaryConcerns:       concerns(dsm),
		ObservedStrengths:     strengths(a),
		KeyRecommendations:    strings.Join(a.Recommendations.SuggestedNextSteps, ", "),
		AssessmentLimitations: limitations(a.Limitations),
	}
}

func likeliestLevel(s SeverityEstimates) SupportLevel {
	level, best := SupportLevel1, s.Level1Likelihood
	if s.Level2Likelihood > best {
		level, best = SupportLevel2, s.Level2Likelihood
	}
	if s.Level3Likelihood > best {
		level = SupportLevel3
	}
	return level
}

// QualityFor grades data sufficiency in quartiles.
func QualityFor(sufficiency Score) DataQuality {
	switch {
	case sufficiency < 0.25:
		return DataPoor
	case sufficiency < 0.5:
		return DataFair
	case sufficiency < 0.75:
		return DataGood
	default:
		return DataExcellent
	}
}

type labeled struct {
	label string
	score Score
}

func concerns(d DSM5Scores) string {
	items := []labeled{
		{"social communication deficits", d.SocialCommunicationDeficits},
		{"restricted and repetitive behaviors", d.RestrictedRepetitiveBehaviors},
		{"early onset indicators", d.EarlyOnsetIndicators},
		{"functional impairment", d.FunctionalImpairment},
	}
	var out []string
	for _, it := range items {
		if it.score >= concernThreshold {
			out = append(out, fmt.Sprintf("%s (%.2f)", it.label, it.score))
		}
	}
	if len(out) == 0 {
		return "no DSM-5 domain above threshold"
	}
	return strings.Join(out, "; ")
}

func strengths(a *Assessment) string {
	items := []labeled{
		{"sustained attention", a.BehavioralObservation.AttentionPatterns.SustainedAttentionDuration},
		{"topic maintenance", a.SpeechLanguage.PragmaticLanguage.TopicMaintenance},
		{"voice quality consistency", a.SpeechLanguage.VocalCharacteristics.VoiceQualityConsistency},
		{"communication complexity", a.AgeSpecific.DevelopmentalAppropriateness.CommunicationComplexity},
		{"behavioral flexibility", a.BehavioralObservation.SelfRegulation.BehavioralFlexibility},
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].score > items[j].score })
	out := make([]string, 0, 3)
	for _, it := range items[:3] {
		out = append(out, it.label)
	}
	return strings.Join(out, ", ")
}

func limitations(l Limitations) string {
	var out []string
	if l.SingleSessionLimitation {
		out = append(out, "single session only")
	}
	if l.CulturalBiasPotential {
		out = append(out, "possible cultural bias")
	}
	if l.ComorbidityConsiderations {
		out = append(out, "comorbidities not excluded")
	}
	if l.ProfessionalInterpretationRequired {
		out = append(out, "requires professional interpretation")
	}
	if l.AgeSpecificValidity != "" {
		out = append(out, "age validity: "+l.AgeSpecificValidity)
	}
	if len(out) == 0 {
		return "none reported"
	}
	return strings.Join(out, "; ")
}
