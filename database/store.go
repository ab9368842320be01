package database

import (
	"context"
	"errors"
	"os"

	"github.com/magicniclus/admintrouvermonchantier/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var ErrNotFound = errors.New("document introuvable")

// Store est l'adaptateur d'accès aux collections. Chaque appel est une
// requête indépendante : pas de retry, pas de transaction entre collections.
// Les ids sont des ObjectID en hexadécimal. Update et Upsert font un $set
// partiel, jamais un remplacement complet du document.
type Store interface {
	Get(ctx context.Context, collection, id string) (bson.M, error)
	List(ctx context.Context, collection, orderBy string, descending bool) ([]bson.M, error)
	Create(ctx context.Context, collection string, data any) (string, error)
	CreateWithID(ctx context.Context, collection, id string, data bson.M) error
	Update(ctx context.Context, collection, id string, fields bson.M) error
	Upsert(ctx context.Context, collection, id string, fields bson.M) error
	Delete(ctx context.Context, collection, id string) error
}

// Connect ouvre une connexion MongoDB pour la durée d'une requête HTTP.
// L'appelant est responsable du Disconnect.
func Connect(ctx context.Context) (*mongo.Client, error) {
	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	return mongo.Connect(opts)
}

func NewStore(client *mongo.Client) Store {
	return &mongoStore{db: client.Database(GetDB())}
}

type mongoStore struct {
	db *mongo.Database
}

func (s *mongoStore) Get(ctx context.Context, collection, id string) (bson.M, error) {
	objID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	doc := bson.M{}
	err = s.db.Collection(collection).FindOne(ctx, bson.D{{Key: "_id", Value: objID}}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *mongoStore) List(ctx context.Context, collection, orderBy string, descending bool) ([]bson.M, error) {
	findOpts := options.Find()
	if orderBy != "" {
		direction := 1
		if descending {
			direction = -1
		}
		findOpts = findOpts.SetSort(bson.D{{Key: orderBy, Value: direction}})
	}

	cursor, err := s.db.Collection(collection).Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *mongoStore) Create(ctx context.Context, collection string, data any) (string, error) {
	result, err := s.db.Collection(collection).InsertOne(ctx, data)
	if err != nil {
		return "", err
	}

	objID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("id inséré inattendu")
	}
	return objID.Hex(), nil
}

func (s *mongoStore) CreateWithID(ctx context.Context, collection, id string, data bson.M) error {
	objID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	doc := bson.M{"_id": objID}
	for k, v := range data {
		doc[k] = v
	}

	_, err = s.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

func (s *mongoStore) Update(ctx context.Context, collection, id string, fields bson.M) error {
	objID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: objID}}
	update := bson.D{{Key: "$set", Value: fields}}

	result, err := s.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoStore) Upsert(ctx context.Context, collection, id string, fields bson.M) error {
	objID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	filter := bson.D{{Key: "_id", Value: objID}}
	update := bson.D{{Key: "$set", Value: fields}}

	_, err = s.db.Collection(collection).UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}

func (s *mongoStore) Delete(ctx context.Context, collection, id string) error {
	objID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.db.Collection(collection).DeleteOne(ctx, bson.D{{Key: "_id", Value: objID}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
