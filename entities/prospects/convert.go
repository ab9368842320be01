package prospects

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/normalizer"
	"github.com/magicniclus/admintrouvermonchantier/schemas"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// BuildClientPayload mappe un prospect normalisé vers le document du client
// créé par la conversion. Le nom d'entreprise retient NomEntreprise puis, à
// défaut, l'ancien champ Entreprise ; aucun des deux n'est exigé. Les clés
// non reconnues du prospect (Extra) suivent dans le client ; les champs
// mappés gardent la priorité.
func BuildClientPayload(p schemas.Prospect, now time.Time) bson.M {
	nomEntreprise := p.NomEntreprise
	if nomEntreprise == "" {
		nomEntreprise = p.Entreprise
	}

	payload := bson.M{
		"prenom":               p.Prenom,
		"nom":                  p.Nom,
		"email":                p.Email,
		"telephone":            p.Telephone,
		"entreprise":           p.Entreprise,
		"nomEntreprise":        nomEntreprise,
		"metier":               p.Metier,
		"secteurActivite":      p.Secteur,
		"rayonIntervention":    p.RayonIntervention,
		"raisonSociale":        p.RaisonSociale,
		"anneeCreation":        p.AnneeCreation,
		"nombreCollaborateurs": p.NombreCollaborateurs,
		"prestation":           p.Prestation,
		"certification":        p.Certification,
		"garanties":            p.Garanties,
		"partenaire":           p.Partenaire,
		"siteWebExistant":      p.SiteWebExistant,
		"siteWebURL":           p.SiteWebURL,
		"logo":                 p.Logo,
		"sitePret":             p.SitePret,
		"commentaire":          p.Commentaire,
		"rgpd":                 p.RGPD,
		"statutClient":         schemas.StatutClientActif,
		"dateConversionClient": now,
	}

	for key, value := range p.Extra {
		// Le marqueur d'idempotence reste sur le prospect.
		if key == "conversionClientId" {
			continue
		}
		if _, mapped := payload[key]; mapped {
			continue
		}
		payload[key] = value
	}

	return payload
}

// ConvertProspect déplace un prospect vers la collection clients : création
// d'un nouveau document client puis suppression du prospect. L'id du client
// est généré d'avance et posé sur le prospect comme marqueur d'idempotence,
// pour qu'une conversion interrompue entre les deux écritures puisse être
// terminée par la réconciliation au lieu de laisser un doublon.
func ConvertProspect(ctx context.Context, store database.Store, prospectID string) (string, error) {
	raw, err := store.Get(ctx, database.COLLECTION_PROSPECTS, prospectID)
	if err != nil {
		return "", err
	}

	prospect := normalizer.NormalizeProspect(prospectID, raw)

	// Si une conversion précédente a déjà posé un marqueur, on reprend le
	// même id client au lieu d'en générer un second.
	clientID := ""
	if existing, ok := raw["conversionClientId"].(string); ok && existing != "" {
		clientID = existing
	} else {
		clientID = bson.NewObjectID().Hex()
		if err := store.Update(ctx, database.COLLECTION_PROSPECTS, prospectID, bson.M{"conversionClientId": clientID}); err != nil {
			return "", fmt.Errorf("pose du marqueur de conversion: %w", err)
		}
	}

	if err := store.CreateWithID(ctx, database.COLLECTION_CLIENTS, clientID, BuildClientPayload(prospect, time.Now())); err != nil {
		// Le prospect reste intact (hors marqueur) : la conversion peut
		// être relancée sans perte.
		return "", fmt.Errorf("création du client: %w", err)
	}

	if err := store.Delete(ctx, database.COLLECTION_PROSPECTS, prospectID); err != nil {
		// Le client existe déjà ; la réconciliation terminera la
		// suppression du prospect marqué.
		log.Printf("[Convert][%s] suppression du prospect échouée (client %s créé): %v", prospectID, clientID, err)
	}

	return clientID, nil
}

// ReconcileConversions termine les conversions interrompues : un prospect
// portant un marqueur dont le client existe est supprimé ; un marqueur dont
// le client n'a jamais été créé est effacé.
func ReconcileConversions(ctx context.Context, store database.Store) error {
	docs, err := store.List(ctx, database.COLLECTION_PROSPECTS, "", false)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		clientID, ok := doc["conversionClientId"].(string)
		if !ok || clientID == "" {
			continue
		}

		prospectID := ""
		switch id := doc["_id"].(type) {
		case bson.ObjectID:
			prospectID = id.Hex()
		case string:
			prospectID = id
		}
		if prospectID == "" {
			continue
		}

		_, err := store.Get(ctx, database.COLLECTION_CLIENTS, clientID)
		if errors.Is(err, database.ErrNotFound) {
			if err := store.Update(ctx, database.COLLECTION_PROSPECTS, prospectID, bson.M{"conversionClientId": ""}); err != nil {
				log.Printf("[Reconcile][%s] effacement du marqueur échoué: %v", prospectID, err)
			}
			continue
		}
		if err != nil {
			log.Printf("[Reconcile][%s] lecture du client %s échouée: %v", prospectID, clientID, err)
			continue
		}

		if err := store.Delete(ctx, database.COLLECTION_PROSPECTS, prospectID); err != nil {
			log.Printf("[Reconcile][%s] suppression du prospect échouée: %v", prospectID, err)
			continue
		}
		log.Printf("[Reconcile][%s] conversion terminée vers le client %s", prospectID, clientID)
	}

	return nil
}
