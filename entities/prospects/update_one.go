package prospects

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/schemas"
	"github.com/magicniclus/admintrouvermonchantier/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Seules les clés canoniques camelCase sont modifiables : une mise à jour
// réécrit toujours le schéma courant, jamais les variantes legacy.
var updatableFields = []string{
	"prenom", "nom", "email", "telephone", "entreprise", "nomEntreprise",
	"metier", "etape", "rgpd", "commentaire", "anneeCreation",
	"nombreCollaborateurs", "prestation", "secteur", "rayonIntervention",
	"raisonSociale", "certification", "garanties", "partenaire",
	"siteWebExistant", "siteWebURL", "logo", "sitePret",
}

func UpdateOne(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	body := bson.M{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.PROSPECTS_INVALID_REQUEST_DATA)
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

	if etape, ok := updateDoc["etape"].(string); ok && !schemas.IsValidEtape(etape) {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PROSPECT_ETAPE)
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

	err = store.Update(ctx, database.COLLECTION_PROSPECTS, id, updateDoc)
	if errors.Is(err, database.ErrNotFound) {
		utils.SendResponse(w, http.StatusNotFound, "Prospect non trouvé", nil, 0)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_PROSPECT_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
