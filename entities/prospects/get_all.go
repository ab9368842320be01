package prospects

import (
	"context"
	"net/http"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/normalizer"
	"github.com/magicniclus/admintrouvermonchantier/schemas"
	"github.com/magicniclus/admintrouvermonchantier/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoClient, err := database.Connect(ctx)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	store := database.NewStore(mongoClient)

	docs, err := store.List(ctx, database.COLLECTION_PROSPECTS, "date", true)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_PROSPECTS_IN_MONGODB)
		return
	}

	prospects := make([]schemas.Prospect, 0, len(docs))
	for _, doc := range docs {
		id := ""
		if objID, ok := doc["_id"].(bson.ObjectID); ok {
			id = objID.Hex()
		}
		prospects = append(prospects, normalizer.NormalizeProspect(id, doc))
	}

	utils.SendResponse(w, http.StatusOK, "", prospects, 0)
}
