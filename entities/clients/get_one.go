package clients

import (
	"context"
	"errors"
	"net/http"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/normalizer"
	"github.com/magicniclus/admintrouvermonchantier/utils"
)

func GetOne(w http.ResponseWriter, r *http.Request) {
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

	doc, err := store.Get(ctx, database.COLLECTION_CLIENTS, id)
	if errors.Is(err, database.ErrNotFound) {
		utils.SendResponse(w, http.StatusNotFound, "Client non trouvé", nil, 0)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CLIENT_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", normalizer.NormalizeClient(id, doc), 0)
}
