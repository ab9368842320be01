package finance

import (
	"fmt"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/schemas"
)

const (
	PrixAbonnementMensuel = 29
	PrixCreationSite      = 99
)

// Summary reprend les indicateurs de l'onglet finance du dashboard.
type Summary struct {
	TotalClients    int          `json:"totalClients"`
	MRR             int          `json:"mrr"`
	CreationRevenue int          `json:"creationRevenue"`
	AnnualRevenue   int          `json:"annualRevenue"`
	WeeklyData      []WeeklyData `json:"weeklyData"`
}

type WeeklyData struct {
	Week            string `json:"week"`
	NouveauxClients int    `json:"nouveauxClients"`
}

// BuildSummary calcule les revenus sur l'ensemble des clients. Les montants
// sont fixes : 29€/mois d'abonnement et 99€ de création par client.
func BuildSummary(clients []schemas.Client, now time.Time) Summary {
	mrr := len(clients) * PrixAbonnementMensuel
	return Summary{
		TotalClients:    len(clients),
		MRR:             mrr,
		CreationRevenue: len(clients) * PrixCreationSite,
		AnnualRevenue:   mrr * 12,
		WeeklyData:      weeklyNewClients(clients, now),
	}
}

// weeklyNewClients découpe le mois courant en semaines commençant le lundi
// (5 au maximum) et compte les clients arrivés dans chacune, par date de
// conversion ou de fin d'onboarding.
func weeklyNewClients(clients []schemas.Client, now time.Time) []WeeklyData {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	weekStart := firstOfMonth
	daysToSubtract := int(weekStart.Weekday()) - 1
	if weekStart.Weekday() == time.Sunday {
		daysToSubtract = 6
	}
	weekStart = weekStart.AddDate(0, 0, -daysToSubtract)

	firstOfNextMonth := firstOfMonth.AddDate(0, 1, 0)

	weeks := []WeeklyData{}
	for weekNumber := 1; weekNumber <= 5; weekNumber++ {
		if !weekStart.Before(firstOfNextMonth) {
			break
		}

		weekEnd := weekStart.AddDate(0, 0, 7)

		count := 0
		for _, client := range clients {
			if inWeek(client.DateConversionClient, weekStart, weekEnd) ||
				inWeek(client.DateOnboardingCompleted, weekStart, weekEnd) {
				count++
			}
		}

		weeks = append(weeks, WeeklyData{Week: fmt.Sprintf("S%d", weekNumber), NouveauxClients: count})
		weekStart = weekEnd
	}

	return weeks
}

func inWeek(date, start, end time.Time) bool {
	if date.IsZero() {
		return false
	}
	return !date.Before(start) && date.Before(end)
}
