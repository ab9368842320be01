package schemas

import "time"

const StatutOnboardingComplete = "completed"

// OnboardingData regroupe les réponses textuelles du parcours d'onboarding.
// Le document est stocké dans la collection "onboarding", indexé par l'id du
// client (équivalent du sous-document clients/{id}/onboarding/data).
type OnboardingData struct {
	Prenom                string `json:"prenom" bson:"prenom"`
	Nom                   string `json:"nom" bson:"nom"`
	Email                 string `json:"email" bson:"email"`
	Telephone             string `json:"telephone" bson:"telephone"`
	NomEntreprise         string `json:"nomEntreprise" bson:"nomEntreprise"`
	RaisonSociale         string `json:"raisonSociale" bson:"raisonSociale"`
	AdresseEntreprise     string `json:"adresseEntreprise" bson:"adresseEntreprise"`
	CodePostal            string `json:"codePostal" bson:"codePostal"`
	Ville                 string `json:"ville" bson:"ville"`
	AnneeCreation         string `json:"anneeCreation" bson:"anneeCreation"`
	NombreCollaborateurs  string `json:"nombreCollaborateurs" bson:"nombreCollaborateurs"`
	Prestation            string `json:"prestation" bson:"prestation"`
	RayonIntervention     string `json:"rayonIntervention" bson:"rayonIntervention"`
	Certification         string `json:"certification" bson:"certification"`
	Garanties             string `json:"garanties" bson:"garanties"`
	Partenaire            string `json:"partenaire" bson:"partenaire"`
	DescriptionEntreprise string `json:"descriptionEntreprise" bson:"descriptionEntreprise"`
	HistoireCreateur      string `json:"histoireCreateur" bson:"histoireCreateur"`
	PrestationsDetaillees string `json:"prestationsDetaillees" bson:"prestationsDetaillees"`
	Formations            string `json:"formations" bson:"formations"`
	SiteWebExistant       bool   `json:"siteWebExistant" bson:"siteWebExistant"`
	SiteWebURL            string `json:"siteWebURL" bson:"siteWebURL"`
	Commentaire           string `json:"commentaire" bson:"commentaire"`

	ChantiersImages []string  `json:"chantiersImages,omitempty" bson:"chantiersImages,omitempty"`
	EmployesImages  []string  `json:"employesImages,omitempty" bson:"employesImages,omitempty"`
	LogoImage       string    `json:"logoImage,omitempty" bson:"logoImage,omitempty"`
	DateCompletion  time.Time `json:"dateCompletion,omitempty" bson:"dateCompletion,omitempty"`
	Statut          string    `json:"statut,omitempty" bson:"statut,omitempty"`
}
