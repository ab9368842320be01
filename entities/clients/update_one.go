package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/entities/dashboard"
	"github.com/magicniclus/admintrouvermonchantier/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Seules les clés canoniques camelCase sont modifiables depuis le dashboard.
var updatableFields = []string{
	"prenom", "nom", "email", "telephone", "ville", "entreprise",
	"nomEntreprise", "metier", "secteurActivite", "nombreEmployes",
	"chiffreAffaires", "baliseGoogleAds", "siteInternetClient", "urlSiteWeb",
	"siteWebExistant", "siteWebURL", "presenceReseauxSociaux",
	"publiciteEnLigne", "servicesOfferts", "certificationQualite",
	"assuranceResponsabilite", "rayonIntervention", "raisonSociale",
	"anneeCreation", "nombreCollaborateurs", "prestation",
	"adresseEntreprise", "codePostal", "descriptionEntreprise",
	"histoireCreateur", "prestationsDetaillees", "formations",
	"certification", "garanties", "partenaire", "commentaire",
	"statutClient", "typeAbonnement", "typeSite",
}

func UpdateOne(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	body := bson.M{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CLIENTS_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.M{}
	for _, field := range updatableFields {
		if value, ok := body[field]; ok {
			updateDoc[field] = value
		}
	}

	if len(updateDoc) == 0 {
		utils.SendResponse(w, http.StatusBadRequest, "Aucun champ à mettre à jour n'a été fourni", nil, 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoClient, err := database.Connect(ctx)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	store := database.NewStore(mongoClient)

	err = store.Update(ctx, database.COLLECTION_CLIENTS, id, updateDoc)
	if errors.Is(err, database.ErrNotFound) {
		utils.SendResponse(w, http.StatusNotFound, "Client non trouvé", nil, 0)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_CLIENT_IN_MONGODB)
		return
	}

	dashboard.Broadcast(dashboard.Event{Action: "updated", Entity: "clients", ID: id})

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
