package simulation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
)

func TestSummarizeNoTokensConvention(t *testing.T) {
	records := []domain.OutcomeRecord{
		{Index: 0, Issued: false, Converted: false, StockRemaining: 5},
		{Index: 1, Issued: false, Converted: false, StockRemaining: 5},
	}

	s := Summarize(records, 2, 5)
	require.Equal(t, 0, s.Tokens)
	require.Equal(t, 0.0, s.CTR)
	// division-by-zero case is a defined sentinel, not an error
	require.Equal(t, 0.0, s.ConversionGivenToken)
	require.Equal(t, 0.0, s.UtilizationStock)
}

func TestSummarizeCounts(t *testing.T) {
	records := []domain.OutcomeRecord{
		{Index: 0, Issued: true, Converted: true, StockRemaining: 4},
		{Index: 1, Issued: true, Converted: false, StockRemaining: 3},
		{Index: 2, Issued: false, Converted: false, StockRemaining: 3},
		{Index: 3, Issued: true, Converted: true, StockRemaining: 2},
	}

	s := Summarize(records, 4, 5)
	require.Equal(t, 3, s.Tokens)
	require.Equal(t, 2, s.Redemptions)
	require.InDelta(t, 0.75, s.CTR, 1e-12)
	require.InDelta(t, 2.0/3.0, s.ConversionGivenToken, 1e-12)
	require.InDelta(t, 0.6, s.UtilizationStock, 1e-12)
}

func TestSummarizeIdempotent(t *testing.T) {
	records := []domain.OutcomeRecord{
		{Index: 0, Issued: true, Converted: true, StockRemaining: 1},
		{Index: 1, Issued: true, Converted: false, StockRemaining: 0},
	}

	first := Summarize(records, 2, 2)
	second := Summarize(records, 2, 2)
	require.Equal(t, first, second)
}
