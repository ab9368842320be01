package prospects

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/schemas"
	"github.com/magicniclus/admintrouvermonchantier/utils"
)

func CreateOne(w http.ResponseWriter, r *http.Request) {
	prospect := &schemas.Prospect{}
	if err := json.NewDecoder(r.Body).Decode(&prospect); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.PROSPECTS_INVALID_REQUEST_DATA)
		return
	}

	if prospect.Etape == "" {
		prospect.Etape = schemas.EtapeAContacter
	}
	if !schemas.IsValidEtape(prospect.Etape) {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PROSPECT_ETAPE)
		return
	}

	prospect.Date = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoClient, err := database.Connect(ctx)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	store := database.NewStore(mongoClient)

	id, err := store.Create(ctx, database.COLLECTION_PROSPECTS, prospect)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_PROSPECT_TO_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", map[string]string{"id": id}, 0)
}
