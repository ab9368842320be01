// Package normalizer réconcilie les deux générations de schéma des documents
// prospects et clients : les anciennes clés PascalCase (parfois accentuées,
// héritées du premier CRM) et les clés camelCase actuelles. La priorité est
// fixe : camelCase > PascalCase sans accent > PascalCase accentué.
//
// Les fonctions sont pures et totales : aucune I/O, jamais de panique, et
// normaliser un document déjà canonique le renvoie inchangé.
package normalizer

import (
	"strconv"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/schemas"
	"github.com/magicniclus/admintrouvermonchantier/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type rawDoc struct {
	doc      bson.M
	consumed map[string]bool
}

func newRawDoc(doc bson.M) *rawDoc {
	return &rawDoc{doc: doc, consumed: map[string]bool{"_id": true}}
}

// str renvoie la première variante présente, coercée en chaîne. Un téléphone
// stocké en numérique redevient une chaîne.
func (r *rawDoc) str(keys ...string) string {
	value := ""
	found := false
	for _, k := range keys {
		v, ok := r.doc[k]
		r.consumed[k] = true
		if ok && !found && v != nil {
			value = coerceString(v)
			found = true
		}
	}
	return value
}

func (r *rawDoc) boolean(keys ...string) bool {
	value := false
	found := false
	for _, k := range keys {
		v, ok := r.doc[k]
		r.consumed[k] = true
		if ok && !found {
			if b, isBool := v.(bool); isBool {
				value = b
				found = true
			}
		}
	}
	return value
}

func (r *rawDoc) date(keys ...string) time.Time {
	value := time.Time{}
	found := false
	for _, k := range keys {
		v, ok := r.doc[k]
		r.consumed[k] = true
		if ok && !found {
			if t := coerceTime(v); !t.IsZero() {
				value = t
				found = true
			}
		}
	}
	return value
}

func (r *rawDoc) strs(keys ...string) []string {
	var value []string
	found := false
	for _, k := range keys {
		v, ok := r.doc[k]
		r.consumed[k] = true
		if ok && !found {
			if list := coerceStrings(v); list != nil {
				value = list
				found = true
			}
		}
	}
	return value
}

// extra renvoie les clés non reconnues, conservées telles quelles.
func (r *rawDoc) extra() bson.M {
	remaining := bson.M{}
	for k, v := range r.doc {
		if !r.consumed[k] {
			remaining[k] = v
		}
	}
	if len(remaining) == 0 {
		return nil
	}
	return remaining
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return ""
	}
}

func coerceTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case bson.DateTime:
		return t.Time()
	case int64:
		return utils.SecondsToTime(t)
	case float64:
		return utils.SecondsToTime(int64(t))
	case string:
		if utils.IsValidDate(t) {
			if parsed, err := time.Parse(time.RFC3339, t); err == nil {
				return parsed
			}
			if parsed, err := time.Parse("2006-01-02", t); err == nil {
				return parsed
			}
		}
		return time.Time{}
	default:
		return time.Time{}
	}
}

func coerceStrings(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case bson.A:
		list := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		return list
	default:
		return nil
	}
}

// NormalizeProspect produit la forme canonique d'un document prospect brut.
func NormalizeProspect(id string, doc bson.M) schemas.Prospect {
	r := newRawDoc(doc)

	return schemas.Prospect{
		ID:                   id,
		Prenom:               r.str("prenom", "Prenom"),
		Nom:                  r.str("nom", "Nom"),
		Email:                r.str("email", "Email"),
		Telephone:            r.str("telephone", "Telephone", "Téléphone"),
		Entreprise:           r.str("entreprise", "Entreprise"),
		NomEntreprise:        r.str("nomEntreprise", "NomEntreprise"),
		Metier:               r.str("metier", "Metier"),
		Etape:                r.str("etape", "Etape"),
		Date:                 r.date("date", "Date"),
		RGPD:                 r.boolean("rgpd", "RGPD"),
		Commentaire:          r.str("commentaire", "Commentaire"),
		AnneeCreation:        r.str("anneeCreation", "AnneeCreation"),
		NombreCollaborateurs: r.str("nombreCollaborateurs", "NombreCollaborateurs"),
		Prestation:           r.str("prestation", "Prestation"),
		Secteur:              r.str("secteur", "Secteur"),
		RayonIntervention:    r.str("rayonIntervention", "RayonIntervention"),
		RaisonSociale:        r.str("raisonSociale", "RaisonSociale"),
		Certification:        r.str("certification", "Certification"),
		Garanties:            r.str("garanties", "Garanties"),
		Partenaire:           r.str("partenaire", "Partenaire"),
		SiteWebExistant:      r.boolean("siteWebExistant", "SiteWebExistant"),
		SiteWebURL:           r.str("siteWebURL", "SiteWebURL"),
		Logo:                 r.boolean("logo", "Logo"),
		SitePret:             r.boolean("sitePret", "SitePret"),
		Extra:                r.extra(),
	}
}

// NormalizeClient produit la forme canonique d'un document client brut.
// statutClient vaut "Actif" par défaut.
func NormalizeClient(id string, doc bson.M) schemas.Client {
	r := newRawDoc(doc)

	client := schemas.Client{
		ID:                      id,
		Prenom:                  r.str("prenom", "Prenom"),
		Nom:                     r.str("nom", "Nom"),
		Email:                   r.str("email", "Email"),
		Telephone:               r.str("telephone", "Telephone", "Téléphone"),
		Ville:                   r.str("ville", "Ville"),
		Entreprise:              r.str("entreprise", "Entreprise"),
		NomEntreprise:           r.str("nomEntreprise", "NomEntreprise"),
		Metier:                  r.str("metier", "Metier"),
		SecteurActivite:         r.str("secteurActivite", "SecteurActivite"),
		NombreEmployes:          r.str("nombreEmployes", "NombreEmployes"),
		ChiffreAffaires:         r.str("chiffreAffaires", "ChiffreAffaires"),
		BaliseGoogleAds:         r.str("baliseGoogleAds", "BaliseGoogleAds"),
		SiteInternetClient:      r.str("siteInternetClient", "SiteInternetClient"),
		UrlSiteWeb:              r.str("urlSiteWeb", "UrlSiteWeb"),
		SiteWebExistant:         r.boolean("siteWebExistant", "SiteWebExistant"),
		SiteWebURL:              r.str("siteWebURL", "SiteWebURL"),
		PresenceReseauxSociaux:  r.boolean("presenceReseauxSociaux", "PresenceReseauxSociaux"),
		PubliciteEnLigne:        r.boolean("publiciteEnLigne", "PubliciteEnLigne"),
		ServicesOfferts:         r.str("servicesOfferts", "ServicesOfferts"),
		CertificationQualite:    r.boolean("certificationQualite", "CertificationQualite"),
		AssuranceResponsabilite: r.boolean("assuranceResponsabilite", "AssuranceResponsabilite"),
		RayonIntervention:       r.str("rayonIntervention", "RayonIntervention"),
		RaisonSociale:           r.str("raisonSociale", "RaisonSociale"),
		AnneeCreation:           r.str("anneeCreation", "AnneeCreation"),
		NombreCollaborateurs:    r.str("nombreCollaborateurs", "NombreCollaborateurs"),
		Prestation:              r.str("prestation", "Prestation"),
		AdresseEntreprise:       r.str("adresseEntreprise", "AdresseEntreprise"),
		CodePostal:              r.str("codePostal", "CodePostal"),
		DescriptionEntreprise:   r.str("descriptionEntreprise", "DescriptionEntreprise"),
		HistoireCreateur:        r.str("histoireCreateur", "HistoireCreateur"),
		PrestationsDetaillees:   r.str("prestationsDetaillees", "PrestationsDetaillees"),
		Formations:              r.str("formations", "Formations"),
		Certification:           r.str("certification", "Certification"),
		Garanties:               r.str("garanties", "Garanties"),
		Partenaire:              r.str("partenaire", "Partenaire"),
		Commentaire:             r.str("commentaire", "Commentaire"),
		StatutClient:            r.str("statutClient", "StatutClient"),
		DateConversionClient:    r.date("dateConversionClient", "DateConversionClient"),
		Onboarding:              r.boolean("onboarding", "Onboarding"),
		OnboardingCompleted:     r.boolean("onboardingCompleted", "OnboardingCompleted"),
		DateOnboardingCompleted: r.date("dateOnboardingCompleted", "DateOnboardingCompleted"),
		TypeAbonnement:          r.str("typeAbonnement", "TypeAbonnement"),
		TypeSite:                r.str("typeSite", "TypeSite"),
		DateCreationAbonnement:  r.date("dateCreationAbonnement", "DateCreationAbonnement"),
		ChantiersImages:         r.strs("chantiersImages", "ChantiersImages"),
		EmployesImages:          r.strs("employesImages", "EmployesImages"),
		LogoImage:               r.str("logoImage", "LogoImage"),
		Extra:                   r.extra(),
	}

	if client.StatutClient == "" {
		client.StatutClient = schemas.StatutClientActif
	}

	return client
}
