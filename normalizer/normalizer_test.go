package normalizer

import (
	"testing"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestNormalizeProspectLegacyKeys(t *testing.T) {
	doc := bson.M{
		"Prenom":     "Jean",
		"Nom":        "Dupont",
		"Email":      "jean@exemple.fr",
		"Téléphone":  "0612345678",
		"Entreprise": "Dupont SARL",
		"Etape":      "A contacter",
		"RGPD":       true,
	}

	p := NormalizeProspect("p1", doc)

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Jean", p.Prenom)
	assert.Equal(t, "Dupont", p.Nom)
	assert.Equal(t, "jean@exemple.fr", p.Email)
	assert.Equal(t, "0612345678", p.Telephone)
	assert.Equal(t, "Dupont SARL", p.Entreprise)
	assert.Equal(t, "A contacter", p.Etape)
	assert.True(t, p.RGPD)
	assert.Equal(t, "", p.NomEntreprise)
	assert.Nil(t, p.Extra)
}

func TestNormalizePrefersCamelCase(t *testing.T) {
	doc := bson.M{
		"prenom":     "Marie",
		"Prenom":     "Ancienne",
		"entreprise": "Nouvelle SARL",
		"Entreprise": "Ancienne SARL",
	}

	p := NormalizeProspect("p1", doc)

	assert.Equal(t, "Marie", p.Prenom)
	assert.Equal(t, "Nouvelle SARL", p.Entreprise)
}

func TestNormalizeTelephonePrecedence(t *testing.T) {
	tests := []struct {
		name string
		doc  bson.M
		want string
	}{
		{"camelCase first", bson.M{"telephone": "01", "Telephone": "02", "Téléphone": "03"}, "01"},
		{"PascalCase over accented", bson.M{"Telephone": "02", "Téléphone": "03"}, "02"},
		{"accented as last resort", bson.M{"Téléphone": "03"}, "03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NormalizeProspect("p1", tt.doc)
			assert.Equal(t, tt.want, p.Telephone)
		})
	}
}

func TestNormalizeCoercesNumericPhone(t *testing.T) {
	p := NormalizeProspect("p1", bson.M{"Téléphone": int64(612345678)})
	assert.Equal(t, "612345678", p.Telephone)

	p = NormalizeProspect("p2", bson.M{"telephone": float64(612345678)})
	assert.Equal(t, "612345678", p.Telephone)
}

func TestNormalizeDefaults(t *testing.T) {
	p := NormalizeProspect("p1", bson.M{})

	assert.Equal(t, "", p.Prenom)
	assert.Equal(t, "", p.Telephone)
	assert.False(t, p.RGPD)
	assert.False(t, p.SiteWebExistant)
	assert.True(t, p.Date.IsZero())
}

func TestNormalizeClientStatutDefault(t *testing.T) {
	c := NormalizeClient("c1", bson.M{"Prenom": "Jean"})
	assert.Equal(t, schemas.StatutClientActif, c.StatutClient)

	c = NormalizeClient("c2", bson.M{"StatutClient": "En pause"})
	assert.Equal(t, "En pause", c.StatutClient)
}

func TestNormalizeClientLegacyTimestamps(t *testing.T) {
	converted := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	c := NormalizeClient("c1", bson.M{
		"DateConversionClient": bson.NewDateTimeFromTime(converted),
	})

	assert.True(t, c.DateConversionClient.Equal(converted))
}

func TestNormalizeKeepsUnknownKeysInExtra(t *testing.T) {
	doc := bson.M{
		"prenom":        "Jean",
		"champInconnu":  "valeur",
		"autreInconnue": 42,
	}

	p := NormalizeProspect("p1", doc)

	require.NotNil(t, p.Extra)
	assert.Equal(t, "valeur", p.Extra["champInconnu"])
	assert.Equal(t, 42, p.Extra["autreInconnue"])
	assert.NotContains(t, p.Extra, "prenom")
}

func TestNormalizeProspectIdempotent(t *testing.T) {
	raw := bson.M{
		"Prenom":          "Jean",
		"Nom":             "Dupont",
		"Téléphone":       int32(612345678),
		"Entreprise":      "Dupont SARL",
		"NomEntreprise":   "Dupont Bâtiment",
		"Etape":           "R1",
		"RGPD":            true,
		"SiteWebExistant": true,
		"SiteWebURL":      "https://dupont.fr",
	}

	first := NormalizeProspect("p1", raw)

	data, err := bson.Marshal(first)
	require.NoError(t, err)
	canonical := bson.M{}
	require.NoError(t, bson.Unmarshal(data, &canonical))

	second := NormalizeProspect("p1", canonical)

	assert.Equal(t, first.Prenom, second.Prenom)
	assert.Equal(t, first.Nom, second.Nom)
	assert.Equal(t, first.Telephone, second.Telephone)
	assert.Equal(t, first.Entreprise, second.Entreprise)
	assert.Equal(t, first.NomEntreprise, second.NomEntreprise)
	assert.Equal(t, first.Etape, second.Etape)
	assert.Equal(t, first.RGPD, second.RGPD)
	assert.Equal(t, first.SiteWebExistant, second.SiteWebExistant)
	assert.Equal(t, first.SiteWebURL, second.SiteWebURL)
}

func TestNormalizeClientIdempotent(t *testing.T) {
	raw := bson.M{
		"Prenom":          "Marie",
		"Téléphone":       "0601020304",
		"Ville":           "Bordeaux",
		"SecteurActivite": "BTP",
		"StatutClient":    "Actif",
	}

	first := NormalizeClient("c1", raw)

	data, err := bson.Marshal(first)
	require.NoError(t, err)
	canonical := bson.M{}
	require.NoError(t, bson.Unmarshal(data, &canonical))

	second := NormalizeClient("c1", canonical)

	assert.Equal(t, first.Prenom, second.Prenom)
	assert.Equal(t, first.Telephone, second.Telephone)
	assert.Equal(t, first.Ville, second.Ville)
	assert.Equal(t, first.SecteurActivite, second.SecteurActivite)
	assert.Equal(t, first.StatutClient, second.StatutClient)
}
