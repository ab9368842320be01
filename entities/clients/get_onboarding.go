package clients

import (
	"context"
	"errors"
	"net/http"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/utils"
)

// GetOnboarding renvoie les réponses d'onboarding soumises par un client.
// Le document vit dans la collection "onboarding", indexé par l'id du client.
func GetOnboarding(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoClient, err := database.Connect(ctx)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	store := database.NewStore(mongoClient)

	doc, err := store.Get(ctx, database.COLLECTION_ONBOARDING, id)
	if errors.Is(err, database.ErrNotFound) {
		utils.SendResponse(w, http.StatusNotFound, "Onboarding non trouvé", nil, 0)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_ONBOARDING_IN_MONGODB)
		return
	}

	delete(doc, "_id")
	utils.SendResponse(w, http.StatusOK, "", doc, 0)
}
