package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const StatutClientActif = "Actif"

// Client est la forme canonique (camelCase) d'un document de la collection
// "clients". Un client provient soit de la conversion d'un prospect, soit
// d'une soumission d'onboarding complétée.
type Client struct {
	ID                      string    `json:"id,omitempty" bson:"-"`
	Prenom                  string    `json:"prenom" bson:"prenom"`
	Nom                     string    `json:"nom" bson:"nom"`
	Email                   string    `json:"email" bson:"email"`
	Telephone               string    `json:"telephone" bson:"telephone"`
	Ville                   string    `json:"ville" bson:"ville"`
	Entreprise              string    `json:"entreprise" bson:"entreprise"`
	NomEntreprise           string    `json:"nomEntreprise" bson:"nomEntreprise"`
	Metier                  string    `json:"metier" bson:"metier"`
	SecteurActivite         string    `json:"secteurActivite" bson:"secteurActivite"`
	NombreEmployes          string    `json:"nombreEmployes" bson:"nombreEmployes"`
	ChiffreAffaires         string    `json:"chiffreAffaires" bson:"chiffreAffaires"`
	BaliseGoogleAds         string    `json:"baliseGoogleAds" bson:"baliseGoogleAds"`
	SiteInternetClient      string    `json:"siteInternetClient" bson:"siteInternetClient"`
	UrlSiteWeb              string    `json:"urlSiteWeb" bson:"urlSiteWeb"`
	SiteWebExistant         bool      `json:"siteWebExistant" bson:"siteWebExistant"`
	SiteWebURL              string    `json:"siteWebURL" bson:"siteWebURL"`
	PresenceReseauxSociaux  bool      `json:"presenceReseauxSociaux" bson:"presenceReseauxSociaux"`
	PubliciteEnLigne        bool      `json:"publiciteEnLigne" bson:"publiciteEnLigne"`
	ServicesOfferts         string    `json:"servicesOfferts" bson:"servicesOfferts"`
	CertificationQualite    bool      `json:"certificationQualite" bson:"certificationQualite"`
	AssuranceResponsabilite bool      `json:"assuranceResponsabilite" bson:"assuranceResponsabilite"`
	RayonIntervention       string    `json:"rayonIntervention" bson:"rayonIntervention"`
	RaisonSociale           string    `json:"raisonSociale" bson:"raisonSociale"`
	AnneeCreation           string    `json:"anneeCreation" bson:"anneeCreation"`
	NombreCollaborateurs    string    `json:"nombreCollaborateurs" bson:"nombreCollaborateurs"`
	Prestation              string    `json:"prestation" bson:"prestation"`
	AdresseEntreprise       string    `json:"adresseEntreprise" bson:"adresseEntreprise"`
	CodePostal              string    `json:"codePostal" bson:"codePostal"`
	DescriptionEntreprise   string    `json:"descriptionEntreprise" bson:"descriptionEntreprise"`
	HistoireCreateur        string    `json:"histoireCreateur" bson:"histoireCreateur"`
	PrestationsDetaillees   string    `json:"prestationsDetaillees" bson:"prestationsDetaillees"`
	Formations              string    `json:"formations" bson:"formations"`
	Certification           string    `json:"certification" bson:"certification"`
	Garanties               string    `json:"garanties" bson:"garanties"`
	Partenaire              string    `json:"partenaire" bson:"partenaire"`
	Commentaire             string    `json:"commentaire" bson:"commentaire"`
	StatutClient            string    `json:"statutClient" bson:"statutClient"`
	DateConversionClient    time.Time `json:"dateConversionClient,omitempty" bson:"dateConversionClient,omitempty"`
	Onboarding              bool      `json:"onboarding" bson:"onboarding"`
	OnboardingCompleted     bool      `json:"onboardingCompleted" bson:"onboardingCompleted"`
	DateOnboardingCompleted time.Time `json:"dateOnboardingCompleted,omitempty" bson:"dateOnboardingCompleted,omitempty"`
	TypeAbonnement          string    `json:"typeAbonnement" bson:"typeAbonnement"`
	TypeSite                string    `json:"typeSite" bson:"typeSite"`
	DateCreationAbonnement  time.Time `json:"dateCreationAbonnement,omitempty" bson:"dateCreationAbonnement,omitempty"`
	ChantiersImages         []string  `json:"chantiersImages,omitempty" bson:"chantiersImages,omitempty"`
	EmployesImages          []string  `json:"employesImages,omitempty" bson:"employesImages,omitempty"`
	LogoImage               string    `json:"logoImage" bson:"logoImage"`

	Extra bson.M `json:"-" bson:",inline"`
}
