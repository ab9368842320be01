package database

import (
	"context"

	"github.com/magicniclus/admintrouvermonchantier/schemas"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// RoleReader lit le rôle d'un administrateur. Séparé de Store car la
// collection admins est indexée par l'uid du fournisseur d'identité et
// non par un ObjectID.
type RoleReader interface {
	AdminRole(ctx context.Context, uid string) (string, error)
}

// Roles renvoie le lecteur de rôles branché sur MongoDB. Chaque lecture
// ouvre sa propre connexion, comme les handlers HTTP.
func Roles() RoleReader {
	return mongoRoles{}
}

type mongoRoles struct{}

func (mongoRoles) AdminRole(ctx context.Context, uid string) (string, error) {
	client, err := Connect(ctx)
	if err != nil {
		return "", err
	}
	defer client.Disconnect(ctx)

	admin := schemas.Admin{}
	collection := client.Database(GetDB()).Collection(COLLECTION_ADMINS)
	err = collection.FindOne(ctx, bson.D{{Key: "_id", Value: uid}}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return admin.Role, nil
}
