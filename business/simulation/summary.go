package simulation

import "github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"

// Summarize reduces a run's outcome records to the headline KPIs in a
// single pass. Pure: calling it twice on the same records yields the same
// summary. Convention: conversion_given_token is 0 when no tokens were
// issued (rather than NaN), so dashboards can always chart it.
func Summarize(records []domain.OutcomeRecord, totalViews, totalStock int) domain.MetricsSummary {
	tokens := 0
	redemptions := 0
	for _, rec := range records {
		if rec.Issued {
			tokens++
		}
		if rec.Converted {
			redemptions++
		}
	}

	s := domain.MetricsSummary{
		Views:       totalViews,
		Tokens:      tokens,
		Redemptions: redemptions,
	}
	if totalViews > 0 {
		s.CTR = float64(tokens) / float64(totalViews)
	}
	if tokens > 0 {
		s.ConversionGivenToken = float64(redemptions) / float64(tokens)
	}
	if totalStock > 0 {
		s.UtilizationStock = float64(tokens) / float64(totalStock)
	}
	return s
}
