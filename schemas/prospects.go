package schemas

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Étapes autorisées du pipeline commercial d'un prospect.
const (
	EtapeAContacter   = "A contacter"
	EtapeR1           = "R1"
	EtapeR2           = "R2"
	EtapeInjoignable  = "Injoignable"
	EtapeFauxNumero   = "faux numero"
	EtapePasInteresse = "Pas intéressé"
)

var EtapesAutorisees = []string{
	EtapeAContacter,
	EtapeR1,
	EtapeR2,
	EtapeInjoignable,
	EtapeFauxNumero,
	EtapePasInteresse,
}

func IsValidEtape(etape string) bool {
	return slices.Contains(EtapesAutorisees, etape)
}

// Prospect est la forme canonique (camelCase) d'un document de la collection
// "prospects". Les documents anciens utilisent encore des clés PascalCase,
// parfois accentuées ; voir le paquet normalizer.
type Prospect struct {
	ID                   string    `json:"id,omitempty" bson:"-"`
	Prenom               string    `json:"prenom" bson:"prenom"`
	Nom                  string    `json:"nom" bson:"nom"`
	Email                string    `json:"email" bson:"email"`
	Telephone            string    `json:"telephone" bson:"telephone"`
	Entreprise           string    `json:"entreprise" bson:"entreprise"`
	NomEntreprise        string    `json:"nomEntreprise" bson:"nomEntreprise"`
	Metier               string    `json:"metier" bson:"metier"`
	Etape                string    `json:"etape" bson:"etape"`
	Date                 time.Time `json:"date,omitempty" bson:"date,omitempty"`
	RGPD                 bool      `json:"rgpd" bson:"rgpd"`
	Commentaire          string    `json:"commentaire" bson:"commentaire"`
	AnneeCreation        string    `json:"anneeCreation" bson:"anneeCreation"`
	NombreCollaborateurs string    `json:"nombreCollaborateurs" bson:"nombreCollaborateurs"`
	Prestation           string    `json:"prestation" bson:"prestation"`
	Secteur              string    `json:"secteur" bson:"secteur"`
	RayonIntervention    string    `json:"rayonIntervention" bson:"rayonIntervention"`
	RaisonSociale        string    `json:"raisonSociale" bson:"raisonSociale"`
	Certification        string    `json:"certification" bson:"certification"`
	Garanties            string    `json:"garanties" bson:"garanties"`
	Partenaire           string    `json:"partenaire" bson:"partenaire"`
	SiteWebExistant      bool      `json:"siteWebExistant" bson:"siteWebExistant"`
	SiteWebURL           string    `json:"siteWebURL" bson:"siteWebURL"`
	Logo                 bool      `json:"logo" bson:"logo"`
	SitePret             bool      `json:"sitePret" bson:"sitePret"`

	// Champs non reconnus conservés tels quels (tolérance de schéma).
	Extra bson.M `json:"-" bson:",inline"`
}
