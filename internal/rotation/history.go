// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package rotation

import (
	"fmt"
	"sort"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
)

const (
	// maxSeasonsAnalyzed bounds the history window the analyzer considers.
	maxSeasonsAnalyzed = 3
	// minSeasonsForAnalysis is the window size below which the analysis is
	// flagged as insufficient.
	minSeasonsForAnalysis = 2
	// monocultureThreshold is the same-family run length at which repeated
	// planting becomes a depletion risk.
	monocultureThreshold = 2
	// criticalRunLength is the run length graded CRITICAL.
	criticalRunLength = 3
)

// AnalyzeHistory examines up to the three most recent seasons of a cropping
// record for monoculture runs, nutrient depletion risks, and rotation
// quality. nil, empty, and all-undated histories produce an Analysis that
// says so rather than an error.
func AnalyzeHistory(entries []HistoryEntry) Analysis {
	window := analysisWindow(entries)
	if len(window) == 0 {
		return emptyAnalysis()
	}
	risks := depletionRisks(window)
	summary := summarize(window, risks)
	return Analysis{
		HasSufficientHistory: len(window) >= minSeasonsForAnalysis,
		SeasonsAnalyzed:      len(window),
		History:              window,
		DepletionRisks:       risks,
		Summary:              summary,
		Recommendations:      historyRecommendations(window, risks, summary),
	}
}

// HasConsecutiveMonoculture reports whether any same-family run of at least
// two seasons exists in the ordered entries. nil, empty, and single-entry
// histories report false.
func HasConsecutiveMonoculture(entries []HistoryEntry) bool {
	return MaxConsecutiveSeasons(entries) >= monocultureThreshold
}

// MaxConsecutiveSeasons returns the longest same-family run length in the
// ordered entries, resolving families on the fly when unset. nil and empty
// input return 0.
func MaxConsecutiveSeasons(entries []HistoryEntry) int {
	longest, run := 0, 0
	var prev agronomy.CropFamily
	for _, e := range entries {
		f := entryFamily(e)
		if run > 0 && f == prev {
			run++
		} else {
			run = 1
		}
		prev = f
		if run > longest {
			longest = run
		}
	}
	return longest
}

// entryFamily returns the entry's resolved family, deriving it from the crop
// name when analysis has not filled it in yet.
func entryFamily(e HistoryEntry) agronomy.CropFamily {
	if e.Family != "" {
		return e.Family
	}
	return agronomy.FamilyForCrop(e.CropName)
}

func emptyAnalysis() Analysis {
	return Analysis{
		History:        []HistoryEntry{},
		DepletionRisks: []DepletionRisk{},
		Summary: Summary{
			RotationPattern: "No crop history available",
			NutrientBalance: "Cannot assess - no history",
			PestDiseaseRisk: "Cannot assess - no history",
		},
		Recommendations: []string{
			"Start recording crop history to receive personalized rotation recommendations",
		},
	}
}

// analysisWindow filters out entries without a sowing date, orders the rest
// most recent first, trims to maxSeasonsAnalyzed, and enriches each entry
// with its crop family, root depth, and season order.
func analysisWindow(entries []HistoryEntry) []HistoryEntry {
	window := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.SowingDate.IsZero() {
			continue
		}
		window = append(window, e)
	}
	sort.SliceStable(window, func(i, j int) bool {
		return window[i].SowingDate.After(window[j].SowingDate)
	})
	if len(window) > maxSeasonsAnalyzed {
		window = window[:maxSeasonsAnalyzed]
	}
	for i := range window {
		window[i].Family = agronomy.FamilyForCrop(window[i].CropName)
		window[i].RootDepth = agronomy.RootDepthForCrop(window[i].CropName)
		window[i].SeasonOrder = i + 1
	}
	return window
}

// familyRuns groups the window into runs of consecutive same-family entries,
// preserving order. Every entry lands in exactly one run.
func familyRuns(window []HistoryEntry) [][]HistoryEntry {
	var runs [][]HistoryEntry
	for _, e := range window {
		if n := len(runs); n > 0 && entryFamily(runs[n-1][0]) == entryFamily(e) {
			runs[n-1] = append(runs[n-1], e)
			continue
		}
		runs = append(runs, []HistoryEntry{e})
	}
	return runs
}

// depletionRisks builds one risk per same-family run of monocultureThreshold
// or more seasons.
func depletionRisks(window []HistoryEntry) []DepletionRisk {
	risks := []DepletionRisk{}
	for _, run := range familyRuns(window) {
		if len(run) < monocultureThreshold {
			continue
		}
		risks = append(risks, buildDepletionRisk(run))
	}
	return risks
}

func buildDepletionRisk(run []HistoryEntry) DepletionRisk {
	family := entryFamily(run[0])
	level := DepletionMedium
	if len(run) >= criticalRunLength {
		level = DepletionCritical
	}
	crops := make([]string, len(run))
	for i, e := range run {
		crops[i] = e.CropName
	}
	nutrients, ok := familyAffectedNutrients[family]
	if !ok {
		nutrients = defaultAffectedNutrients
	}
	advice, ok := familyRotationAdvice[family]
	if !ok {
		advice = defaultRotationAdvice
	}
	if len(run) >= criticalRunLength {
		advice += " " + urgentRotationAdvice
	}
	return DepletionRisk{
		Family:     family,
		FamilyName: family.DisplayName(),
		Level:      level,
		Description: fmt.Sprintf("Consecutive planting of %s family crops for %d season(s). %s",
			family.DisplayName(), len(run), agronomy.FamilyRootDepth(family).NutrientImpact()),
		AffectedNutrients:  nutrients,
		ConsecutiveSeasons: len(run),
		AffectedCrops:      crops,
		Recommendation:     advice,
		SeverityScore:      severityScore(level, len(run)),
	}
}

// severityScore anchors on the level's base and adds 5 points per season
// beyond the threshold, capped at 100.
func severityScore(level DepletionLevel, runLength int) float64 {
	score := level.baseSeverity()
	if extra := runLength - monocultureThreshold; extra > 0 {
		score += float64(extra) * 5
	}
	if score > 100 {
		score = 100
	}
	return score
}

func summarize(window []HistoryEntry, risks []DepletionRisk) Summary {
	runs := familyRuns(window)
	longest := maxRunLength(runs)
	return Summary{
		DominantFamily:                dominantFamily(window),
		ConsecutiveMonocultureSeasons: longest,
		RotationPattern:               rotationPattern(runs),
		NutrientBalance:               nutrientBalance(window),
		PestDiseaseRisk:               pestDiseaseRisk(longest),
		HasGoodRotation:               longest < monocultureThreshold,
		HasNutrientDepletionRisk:      len(risks) > 0,
	}
}

// dominantFamily returns the display name of the most frequent family,
// breaking ties toward the most recent entry.
func dominantFamily(window []HistoryEntry) string {
	counts := make(map[agronomy.CropFamily]int, len(window))
	for _, e := range window {
		counts[entryFamily(e)]++
	}
	var best agronomy.CropFamily
	bestCount := 0
	for _, e := range window {
		if c := counts[entryFamily(e)]; c > bestCount {
			best, bestCount = entryFamily(e), c
		}
	}
	if bestCount == 0 {
		return ""
	}
	return best.DisplayName()
}

func maxRunLength(runs [][]HistoryEntry) int {
	longest := 0
	for _, run := range runs {
		if len(run) > longest {
			longest = len(run)
		}
	}
	return longest
}

// rotationPattern gives a one-line verdict from the same-family runs.
func rotationPattern(runs [][]HistoryEntry) string {
	if len(runs) == 0 {
		return "Insufficient data to assess rotation pattern"
	}
	good, bad := 0, 0
	for _, run := range runs {
		if len(run) >= monocultureThreshold {
			bad++
		} else {
			good++
		}
	}
	switch {
	case bad == 0:
		return "Good rotation - crops from different families are alternated"
	case bad > good:
		return "Poor rotation - monoculture patterns detected"
	default:
		return "Moderate rotation - some diversification present"
	}
}

// nutrientBalance assesses nitrogen fixation and root depth diversity across
// the window.
func nutrientBalance(window []HistoryEntry) string {
	hasLegumes := false
	hasCereals := false
	depths := make(map[agronomy.RootDepth]bool, 3)
	for _, e := range window {
		switch entryFamily(e) {
		case agronomy.FamilyLegumes:
			hasLegumes = true
		case agronomy.FamilyCereals:
			hasCereals = true
		}
		depths[e.RootDepth] = true
	}
	variedDepths := len(depths) > 1
	switch {
	case hasLegumes && hasCereals && variedDepths:
		return "Good - Balanced nutrient cycling with legumes and varied root depths"
	case hasLegumes:
		return "Moderate - Nitrogen fixation present, consider varied root depths"
	case variedDepths:
		return "Moderate - Varied root depths help, consider adding legumes"
	default:
		return "Poor - Risk of nutrient depletion, recommend diverse rotation with legumes"
	}
}

func pestDiseaseRisk(longestRun int) string {
	switch {
	case longestRun >= criticalRunLength:
		return "HIGH - Multiple seasons of same family increase pest/disease buildup risk"
	case longestRun >= monocultureThreshold:
		return "MODERATE - Some pest/disease pressure likely, monitor closely"
	default:
		return "LOW - Good rotation reduces pest/disease buildup"
	}
}

// historyRecommendations turns the analysis into actionable advice lines.
func historyRecommendations(window []HistoryEntry, risks []DepletionRisk, summary Summary) []string {
	recs := []string{}
	if len(risks) == 0 {
		recs = append(recs, "Current rotation pattern appears healthy - continue monitoring")
	}
	for _, r := range risks {
		recs = append(recs, r.Recommendation)
	}
	if summary.ConsecutiveMonocultureSeasons >= monocultureThreshold {
		recs = append(recs, "Consider planting a cover crop or green manure before next main season")
	}
	hasLegumes := false
	hasDeep := false
	hasShallow := false
	for _, e := range window {
		if entryFamily(e) == agronomy.FamilyLegumes {
			hasLegumes = true
		}
		switch e.RootDepth {
		case agronomy.DepthDeep:
			hasDeep = true
		case agronomy.DepthShallow:
			hasShallow = true
		}
	}
	if !hasLegumes {
		recs = append(recs, "Add legumes (greengram, blackgram, chickpea) to next rotation for biological nitrogen fixation")
	}
	if !hasDeep || !hasShallow {
		recs = append(recs, "Include both deep-rooted (sunflower, maize) and shallow-rooted (cabbage, cucumber) crops for better nutrient cycling")
	}
	return recs
}
