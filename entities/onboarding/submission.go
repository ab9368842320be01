package onboarding

import (
	"context"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/schemas"
	"github.com/magicniclus/admintrouvermonchantier/storage"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"
)

// Plafonds d'images appliqués côté serveur, quel que soit le front.
const (
	MaxChantiersImages = 10
	MaxEmployesImages  = 5
)

// Abonnement appliqué par défaut à la fin du parcours.
const (
	TypeAbonnementDefaut = "29€/mois"
	TypeSiteDefaut       = "99€"
)

type imageFile struct {
	filename    string
	contentType string
	data        []byte
}

// submission porte une soumission d'onboarding et ses collaborateurs. Les
// fonctions injectées permettent de simuler le stockage et l'email dans les
// tests.
type submission struct {
	store       database.Store
	upload      func(ctx context.Context, path string, data []byte, contentType string) (string, error)
	sendWelcome func(email, firstName, lastName, clientID string) error
	now         func() time.Time

	clientID  string
	data      schemas.OnboardingData
	chantiers []imageFile
	employes  []imageFile
	logo      *imageFile
}

// textFields reprend les réponses textuelles du questionnaire, partagées par
// le document client et le document onboarding.
func (s *submission) textFields() bson.M {
	return bson.M{
		"prenom":                s.data.Prenom,
		"nom":                   s.data.Nom,
		"email":                 s.data.Email,
		"telephone":             s.data.Telephone,
		"nomEntreprise":         s.data.NomEntreprise,
		"raisonSociale":         s.data.RaisonSociale,
		"adresseEntreprise":     s.data.AdresseEntreprise,
		"codePostal":            s.data.CodePostal,
		"ville":                 s.data.Ville,
		"anneeCreation":         s.data.AnneeCreation,
		"nombreCollaborateurs":  s.data.NombreCollaborateurs,
		"prestation":            s.data.Prestation,
		"rayonIntervention":     s.data.RayonIntervention,
		"certification":         s.data.Certification,
		"garanties":             s.data.Garanties,
		"partenaire":            s.data.Partenaire,
		"descriptionEntreprise": s.data.DescriptionEntreprise,
		"histoireCreateur":      s.data.HistoireCreateur,
		"prestationsDetaillees": s.data.PrestationsDetaillees,
		"formations":            s.data.Formations,
		"siteWebExistant":       s.data.SiteWebExistant,
		"siteWebURL":            s.data.SiteWebURL,
		"commentaire":           s.data.Commentaire,
	}
}

// run déroule le pipeline de soumission. L'email de bienvenue et les images
// sont facultatifs ; les deux écritures de documents sont critiques.
func (s *submission) run(ctx context.Context) error {
	if len(s.chantiers) > MaxChantiersImages {
		s.chantiers = s.chantiers[:MaxChantiersImages]
	}
	if len(s.employes) > MaxEmployesImages {
		s.employes = s.employes[:MaxEmployesImages]
	}

	now := s.now()

	var chantierURLs, employeURLs []string
	var logoURL string

	steps := []pipelineStep{
		{
			name: "email de bienvenue",
			run: func(ctx context.Context) error {
				return s.sendWelcome(s.data.Email, s.data.Prenom, s.data.Nom, s.clientID)
			},
		},
		{
			name:     "mise à jour du client",
			critical: true,
			run: func(ctx context.Context) error {
				clientUpdate := s.textFields()
				clientUpdate["onboarding"] = true
				clientUpdate["onboardingCompleted"] = true
				clientUpdate["dateOnboardingCompleted"] = now
				clientUpdate["typeAbonnement"] = TypeAbonnementDefaut
				clientUpdate["typeSite"] = TypeSiteDefaut
				clientUpdate["dateCreationAbonnement"] = now
				return s.store.Upsert(ctx, database.COLLECTION_CLIENTS, s.clientID, clientUpdate)
			},
		},
		{
			name:     "sauvegarde de l'onboarding",
			critical: true,
			run: func(ctx context.Context) error {
				doc := s.textFields()
				doc["dateCompletion"] = now
				doc["statut"] = schemas.StatutOnboardingComplete
				return s.store.Upsert(ctx, database.COLLECTION_ONBOARDING, s.clientID, doc)
			},
		},
		// Chaque catégorie d'images est un pas indépendant : l'échec de
		// l'une n'annule pas les URLs obtenues par les autres.
		{
			name: "téléversement des images chantiers",
			run: func(ctx context.Context) error {
				urls, err := s.uploadCategory(ctx, "chantiers", s.chantiers)
				if err != nil {
					return err
				}
				chantierURLs = urls
				return nil
			},
		},
		{
			name: "téléversement des images employés",
			run: func(ctx context.Context) error {
				urls, err := s.uploadCategory(ctx, "employes", s.employes)
				if err != nil {
					return err
				}
				employeURLs = urls
				return nil
			},
		},
		{
			name: "téléversement du logo",
			run: func(ctx context.Context) error {
				if s.logo == nil {
					return nil
				}
				path := storage.ObjectPath(s.clientID, "logo", 0, s.logo.filename, s.now())
				url, err := s.upload(ctx, path, s.logo.data, s.logo.contentType)
				if err != nil {
					return err
				}
				logoURL = url
				return nil
			},
		},
		{
			name: "enregistrement des URLs d'images",
			run: func(ctx context.Context) error {
				if len(chantierURLs) == 0 && len(employeURLs) == 0 && logoURL == "" {
					return nil
				}
				urls := bson.M{
					"chantiersImages": chantierURLs,
					"employesImages":  employeURLs,
					"logoImage":       logoURL,
				}
				if err := s.store.Upsert(ctx, database.COLLECTION_CLIENTS, s.clientID, urls); err != nil {
					return err
				}
				return s.store.Upsert(ctx, database.COLLECTION_ONBOARDING, s.clientID, urls)
			},
		},
	}

	return runPipeline(ctx, s.clientID, steps)
}

// uploadCategory téléverse les fichiers d'une catégorie en parallèle. Les
// URLs sont renvoyées dans l'ordre des fichiers reçus ; au premier échec la
// catégorie entière est abandonnée.
func (s *submission) uploadCategory(ctx context.Context, folder string, files []imageFile) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	urls := make([]string, len(files))
	now := s.now()
	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			path := storage.ObjectPath(s.clientID, folder, i, file.filename, now)
			url, err := s.upload(gctx, path, file.data, file.contentType)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
