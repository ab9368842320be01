package onboarding

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/entities/dashboard"
	"github.com/magicniclus/admintrouvermonchantier/entities/emails"
	"github.com/magicniclus/admintrouvermonchantier/schemas"
	"github.com/magicniclus/admintrouvermonchantier/storage"
	"github.com/magicniclus/admintrouvermonchantier/utils"
)

const maxSubmissionBytes = 64 << 20

func readImageFiles(headers []*multipart.FileHeader, limit int) ([]imageFile, error) {
	if len(headers) > limit {
		headers = headers[:limit]
	}

	files := make([]imageFile, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, imageFile{
			filename:    header.Filename,
			contentType: header.Header.Get("Content-Type"),
			data:        data,
		})
	}
	return files, nil
}

func formData(r *http.Request) schemas.OnboardingData {
	return schemas.OnboardingData{
		Prenom:                r.FormValue("prenom"),
		Nom:                   r.FormValue("nom"),
		Email:                 r.FormValue("email"),
		Telephone:             r.FormValue("telephone"),
		NomEntreprise:         r.FormValue("nomEntreprise"),
		RaisonSociale:         r.FormValue("raisonSociale"),
		AdresseEntreprise:     r.FormValue("adresseEntreprise"),
		CodePostal:            r.FormValue("codePostal"),
		Ville:                 r.FormValue("ville"),
		AnneeCreation:         r.FormValue("anneeCreation"),
		NombreCollaborateurs:  r.FormValue("nombreCollaborateurs"),
		Prestation:            r.FormValue("prestation"),
		RayonIntervention:     r.FormValue("rayonIntervention"),
		Certification:         r.FormValue("certification"),
		Garanties:             r.FormValue("garanties"),
		Partenaire:            r.FormValue("partenaire"),
		DescriptionEntreprise: r.FormValue("descriptionEntreprise"),
		HistoireCreateur:      r.FormValue("histoireCreateur"),
		PrestationsDetaillees: r.FormValue("prestationsDetaillees"),
		Formations:            r.FormValue("formations"),
		SiteWebExistant:       r.FormValue("siteWebExistant") == "true",
		SiteWebURL:            r.FormValue("siteWebURL"),
		Commentaire:           r.FormValue("commentaire"),
	}
}

// Submit reçoit le formulaire d'onboarding en multipart, déroule le pipeline
// puis redirige vers la page de remerciement.
func Submit(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("id")

	if err := r.ParseMultipartForm(maxSubmissionBytes); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Formulaire invalide", nil, 0)
		return
	}

	chantiers, err := readImageFiles(r.MultipartForm.File["chantiersImages"], MaxChantiersImages)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Formulaire invalide", nil, 0)
		return
	}
	employes, err := readImageFiles(r.MultipartForm.File["employesImages"], MaxEmployesImages)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Formulaire invalide", nil, 0)
		return
	}
	logos, err := readImageFiles(r.MultipartForm.File["logoImage"], 1)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Formulaire invalide", nil, 0)
		return
	}
	var logo *imageFile
	if len(logos) > 0 {
		logo = &logos[0]
	}

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoClient, err := database.Connect(ctx)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	storageClient := storage.NewClient()
	sub := &submission{
		store:       database.NewStore(mongoClient),
		upload:      storageClient.UploadBytes,
		sendWelcome: emails.SendWelcome,
		now:         time.Now,
		clientID:    clientID,
		data:        formData(r),
		chantiers:   chantiers,
		employes:    employes,
		logo:        logo,
	}

	if err := sub.run(ctx); err != nil {
		log.Printf("[Onboarding][%s] %v", clientID, err)
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_SAVE_ONBOARDING_IN_MONGODB)
		return
	}

	dashboard.Broadcast(dashboard.Event{Action: "onboarding", Entity: "clients", ID: clientID})

	query := url.Values{}
	query.Set("firstName", sub.data.Prenom)
	query.Set("email", sub.data.Email)
	http.Redirect(w, r, "/merci?"+query.Encode(), http.StatusSeeOther)
}
