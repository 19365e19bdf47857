// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package scheme ranks government scheme recommendations for a farmer by
// benefit amount, application deadline proximity, and eligibility, and
// combines the three into one overall score.
//
// Deadline arithmetic works on calendar days: a deadline that already passed
// counts as zero days away, and a recommendation without a deadline sorts
// after every dated one.
package scheme

import (
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/ranking"
)

// Type classifies a government scheme.
type Type string

const (
	TypeCentral      Type = "CENTRAL"
	TypeState        Type = "STATE"
	TypeCropSpecific Type = "CROP_SPECIFIC"
	TypeInsurance    Type = "INSURANCE"
	TypeSubsidy      Type = "SUBSIDY"
	TypeWelfare      Type = "WELFARE"
)

// String implements fmt.Stringer.
func (t Type) String() string { return string(t) }

// Composite score weights: benefit carries half, eligibility almost a third,
// deadline urgency the rest.
const (
	benefitWeight     = 0.5
	eligibilityWeight = 0.3
	deadlineWeight    = 0.2

	// normalizationCeiling is the benefit amount treated as a 100 score.
	normalizationCeiling = 500000.0
)

// noDeadline orders undated recommendations after every dated one.
const noDeadline = int64(1<<62 - 1)

// Recommendation is one government scheme matched to a farmer.
type Recommendation struct {
	// SchemeCode identifies the scheme, e.g. "PM-KISAN".
	SchemeCode string `json:"scheme_code"`
	// SchemeName is the scheme's display name.
	SchemeName string `json:"scheme_name"`
	// Type classifies the scheme.
	Type Type `json:"scheme_type,omitempty"`
	// State scopes state schemes; empty for central schemes.
	State string `json:"state,omitempty"`
	// BenefitAmount is the estimated benefit in INR.
	BenefitAmount float64 `json:"benefit_amount"`
	// BenefitDescription explains what the benefit covers.
	BenefitDescription string `json:"benefit_description,omitempty"`
	// EligibilityScore estimates the farmer's eligibility on a 0-100 scale.
	EligibilityScore float64 `json:"eligibility_score"`
	// EligibilityCriteria lists the conditions behind the score.
	EligibilityCriteria []string `json:"eligibility_criteria,omitempty"`
	// ApplicationDeadline is the last application date; zero means open-ended.
	ApplicationDeadline time.Time `json:"application_deadline"`
	// DeadlineProximityScore grades urgency; higher means closer deadline.
	DeadlineProximityScore float64 `json:"deadline_proximity_score,omitempty"`
	// ApplicationURL points at the application portal.
	ApplicationURL string `json:"application_url,omitempty"`
	// DocumentsRequired lists the documents the application needs.
	DocumentsRequired []string `json:"documents_required,omitempty"`
	// Category is the scheme's free-text category label.
	Category string `json:"scheme_category,omitempty"`
	// OverallScore is the composite ranking score, filled by the ranker.
	OverallScore float64 `json:"overall_score,omitempty"`
	// Rank is the 1-based position after ranking.
	Rank int `json:"rank,omitempty"`
}

// Ranker orders scheme recommendations. The zero deadline convention and the
// day arithmetic are anchored on its clock.
type Ranker struct {
	now func() time.Time
}

// NewRanker returns a Ranker on the system clock.
func NewRanker() *Ranker {
	return &Ranker{now: time.Now}
}

// RankByBenefit sorts descending by benefit amount; among equal benefits the
// closer deadline wins. nil input returns nil.
func (r *Ranker) RankByBenefit(recs []Recommendation) []Recommendation {
	// Stable-sorting the deadline-ordered list by benefit keeps deadline
	// proximity as the tie-break.
	return ranking.Descending(r.RankByDeadlineProximity(recs), func(rec Recommendation) float64 {
		return rec.BenefitAmount
	})
}

// RankByDeadlineProximity sorts ascending by days until deadline. Passed
// deadlines count as zero days; undated recommendations sort last.
func (r *Ranker) RankByDeadlineProximity(recs []Recommendation) []Recommendation {
	return ranking.Descending(recs, func(rec Recommendation) float64 {
		return -float64(r.daysUntilDeadline(rec))
	})
}

// RankByEligibility sorts descending by eligibility score.
func (r *Ranker) RankByEligibility(recs []Recommendation) []Recommendation {
	return ranking.Descending(recs, func(rec Recommendation) float64 {
		return rec.EligibilityScore
	})
}

// OverallScore combines normalized benefit, eligibility, and the deadline
// proximity score with 50/30/20 weights. nil input returns 0.
func (r *Ranker) OverallScore(rec *Recommendation) float64 {
	if rec == nil {
		return 0
	}
	benefit := rec.BenefitAmount / normalizationCeiling * 100
	return benefit*benefitWeight +
		rec.EligibilityScore*eligibilityWeight +
		rec.DeadlineProximityScore*deadlineWeight
}

// RankByOverallScore fills each recommendation's OverallScore and Rank and
// returns the list sorted descending by that score.
func (r *Ranker) RankByOverallScore(recs []Recommendation) []Recommendation {
	if recs == nil {
		return nil
	}
	scored := make([]Recommendation, len(recs))
	copy(scored, recs)
	for i := range scored {
		scored[i].OverallScore = r.OverallScore(&scored[i])
	}
	out := ranking.Descending(scored, func(rec Recommendation) float64 {
		return rec.OverallScore
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// FilterByApproachingDeadline keeps recommendations whose deadline falls
// between today and today plus daysThreshold, inclusive. Undated and passed
// deadlines are dropped.
func (r *Ranker) FilterByApproachingDeadline(recs []Recommendation, daysThreshold int) []Recommendation {
	today := civilDate(r.now())
	cutoff := today.AddDate(0, 0, daysThreshold)
	return ranking.Filter(recs, func(rec Recommendation) bool {
		if rec.ApplicationDeadline.IsZero() {
			return false
		}
		d := civilDate(rec.ApplicationDeadline)
		return !d.Before(today) && !d.After(cutoff)
	})
}

// daysUntilDeadline returns whole calendar days from today to the deadline,
// 0 when the deadline has passed, noDeadline when unset.
func (r *Ranker) daysUntilDeadline(rec Recommendation) int64 {
	if rec.ApplicationDeadline.IsZero() {
		return noDeadline
	}
	today := civilDate(r.now())
	deadline := civilDate(rec.ApplicationDeadline)
	if deadline.Before(today) {
		return 0
	}
	return int64(deadline.Sub(today) / (24 * time.Hour))
}

// civilDate strips a timestamp to its calendar day in UTC, so day math is
// immune to time-of-day and zone differences.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
