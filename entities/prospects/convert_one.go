package prospects

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/entities/dashboard"
	"github.com/magicniclus/admintrouvermonchantier/utils"
)

func ConvertOne(w http.ResponseWriter, r *http.Request) {
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

	clientID, err := ConvertProspect(ctx, store, id)
	if errors.Is(err, database.ErrNotFound) {
		utils.SendResponse(w, http.StatusNotFound, "Prospect non trouvé", nil, 0)
		return
	}
	if err != nil {
		log.Printf("[Convert][%s] %v", id, err)
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_CONVERT_PROSPECT)
		return
	}

	dashboard.Broadcast(dashboard.Event{Action: "converted", Entity: "clients", ID: clientID})

	utils.SendResponse(w, http.StatusOK, "Prospect converti en client", map[string]string{"clientId": clientID}, 0)
}
