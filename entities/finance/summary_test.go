package finance

import (
	"testing"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummaryMontantsFixes(t *testing.T) {
	clients := make([]schemas.Client, 7)

	summary := BuildSummary(clients, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 7, summary.TotalClients)
	assert.Equal(t, 7*29, summary.MRR)
	assert.Equal(t, 7*99, summary.CreationRevenue)
	assert.Equal(t, 7*29*12, summary.AnnualRevenue)
}

func TestWeeklyNewClientsDecoupageDuMois(t *testing.T) {
	// Juin 2025 : le 1er tombe un dimanche, la première semaine commence
	// donc le lundi 26 mai.
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clients := []schemas.Client{
		{DateConversionClient: time.Date(2025, 5, 27, 0, 0, 0, 0, time.UTC)},    // S1
		{DateConversionClient: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)},     // S2
		{DateConversionClient: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)},     // S2
		{DateOnboardingCompleted: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)}, // S3
		{DateConversionClient: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},     // hors mois
		{}, // aucune date
	}

	weeks := weeklyNewClients(clients, now)

	require.Len(t, weeks, 5)
	assert.Equal(t, "S1", weeks[0].Week)
	assert.Equal(t, 1, weeks[0].NouveauxClients)
	assert.Equal(t, 2, weeks[1].NouveauxClients)
	assert.Equal(t, 1, weeks[2].NouveauxClients)
	assert.Equal(t, 0, weeks[3].NouveauxClients)
	assert.Equal(t, 0, weeks[4].NouveauxClients)
}

func TestWeeklyNewClientsCompteUneSeuleFoisParClient(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clients := []schemas.Client{{
		DateConversionClient:    time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		DateOnboardingCompleted: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	}}

	weeks := weeklyNewClients(clients, now)

	total := 0
	for _, week := range weeks {
		total += week.NouveauxClients
	}
	assert.Equal(t, 1, total)
}
