package prospects

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type fakeStore struct {
	collections map[string]map[string]bson.M
	failCreate  bool
	failDelete  bool
	failUpdate  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{collections: map[string]map[string]bson.M{}}
}

func (s *fakeStore) coll(name string) map[string]bson.M {
	if s.collections[name] == nil {
		s.collections[name] = map[string]bson.M{}
	}
	return s.collections[name]
}

func (s *fakeStore) Get(ctx context.Context, collection, id string) (bson.M, error) {
	doc, ok := s.coll(collection)[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	copied := bson.M{}
	for k, v := range doc {
		copied[k] = v
	}
	return copied, nil
}

func (s *fakeStore) List(ctx context.Context, collection, orderBy string, descending bool) ([]bson.M, error) {
	docs := []bson.M{}
	for id, doc := range s.coll(collection) {
		copied := bson.M{"_id": id}
		for k, v := range doc {
			copied[k] = v
		}
		docs = append(docs, copied)
	}
	return docs, nil
}

func (s *fakeStore) Create(ctx context.Context, collection string, data any) (string, error) {
	if s.failCreate {
		return "", errors.New("insertion refusée")
	}
	id := bson.NewObjectID().Hex()
	doc, _ := data.(bson.M)
	s.coll(collection)[id] = doc
	return id, nil
}

func (s *fakeStore) CreateWithID(ctx context.Context, collection, id string, data bson.M) error {
	if s.failCreate {
		return errors.New("insertion refusée")
	}
	s.coll(collection)[id] = data
	return nil
}

func (s *fakeStore) Update(ctx context.Context, collection, id string, fields bson.M) error {
	if s.failUpdate {
		return errors.New("mise à jour refusée")
	}
	doc, ok := s.coll(collection)[id]
	if !ok {
		return database.ErrNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (s *fakeStore) Upsert(ctx context.Context, collection, id string, fields bson.M) error {
	doc, ok := s.coll(collection)[id]
	if !ok {
		doc = bson.M{}
		s.coll(collection)[id] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, collection, id string) error {
	if s.failDelete {
		return errors.New("suppression refusée")
	}
	if _, ok := s.coll(collection)[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.coll(collection), id)
	return nil
}

func TestBuildClientPayload(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	payload := BuildClientPayload(schemas.Prospect{
		Prenom:        "Jean",
		Nom:           "Dupont",
		Email:         "jean@exemple.fr",
		Telephone:     "0611223344",
		Entreprise:    "Dupont Rénovation",
		NomEntreprise: "Dupont Rénovation SARL",
		Metier:        "Plombier",
		RGPD:          true,
	}, now)

	assert.Equal(t, "Jean", payload["prenom"])
	assert.Equal(t, "Dupont", payload["nom"])
	assert.Equal(t, "jean@exemple.fr", payload["email"])
	assert.Equal(t, "0611223344", payload["telephone"])
	assert.Equal(t, "Dupont Rénovation SARL", payload["nomEntreprise"])
	assert.Equal(t, "Plombier", payload["metier"])
	assert.Equal(t, true, payload["rgpd"])
	assert.Equal(t, schemas.StatutClientActif, payload["statutClient"])
	assert.Equal(t, now, payload["dateConversionClient"])
}

func TestBuildClientPayloadNomEntrepriseFallback(t *testing.T) {
	cases := []struct {
		name          string
		nomEntreprise string
		entreprise    string
		expected      string
	}{
		{"les deux renseignés", "SARL Martin", "Martin", "SARL Martin"},
		{"entreprise seule", "", "Martin", "Martin"},
		{"aucun des deux", "", "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			payload := BuildClientPayload(schemas.Prospect{
				NomEntreprise: c.nomEntreprise,
				Entreprise:    c.entreprise,
			}, time.Now())
			assert.Equal(t, c.expected, payload["nomEntreprise"])
		})
	}
}

func TestBuildClientPayloadConserveLesChampsInconnus(t *testing.T) {
	payload := BuildClientPayload(schemas.Prospect{
		Prenom: "Jean",
		Extra: bson.M{
			"sourceCampagne":     "google-ads",
			"prenom":             "écrasé",
			"conversionClientId": "abc123",
		},
	}, time.Now())

	assert.Equal(t, "google-ads", payload["sourceCampagne"])
	// Les champs mappés gardent la priorité sur Extra, et le marqueur
	// d'idempotence ne suit jamais dans le client.
	assert.Equal(t, "Jean", payload["prenom"])
	assert.NotContains(t, payload, "conversionClientId")
}

func TestConvertProspect(t *testing.T) {
	store := newFakeStore()
	prospectID := bson.NewObjectID().Hex()
	store.coll(database.COLLECTION_PROSPECTS)[prospectID] = bson.M{
		"Prenom":         "Jean",
		"Nom":            "Dupont",
		"email":          "jean@exemple.fr",
		"Téléphone":      "0611223344",
		"etape":          schemas.EtapeR2,
		"sourceCampagne": "salon-batiment",
	}

	clientID, err := ConvertProspect(context.Background(), store, prospectID)
	require.NoError(t, err)
	require.NotEmpty(t, clientID)

	_, err = store.Get(context.Background(), database.COLLECTION_PROSPECTS, prospectID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	client, err := store.Get(context.Background(), database.COLLECTION_CLIENTS, clientID)
	require.NoError(t, err)
	assert.Equal(t, "Jean", client["prenom"])
	assert.Equal(t, "Dupont", client["nom"])
	assert.Equal(t, "jean@exemple.fr", client["email"])
	assert.Equal(t, "0611223344", client["telephone"])
	assert.Equal(t, schemas.StatutClientActif, client["statutClient"])
	assert.NotNil(t, client["dateConversionClient"])
	assert.Equal(t, "salon-batiment", client["sourceCampagne"])
	assert.NotContains(t, client, "conversionClientId")
}

func TestConvertProspectIntrouvable(t *testing.T) {
	store := newFakeStore()

	_, err := ConvertProspect(context.Background(), store, bson.NewObjectID().Hex())
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestConvertProspectEchecCreationLaisseLeProspect(t *testing.T) {
	store := newFakeStore()
	prospectID := bson.NewObjectID().Hex()
	store.coll(database.COLLECTION_PROSPECTS)[prospectID] = bson.M{
		"prenom": "Marie",
		"email":  "marie@exemple.fr",
	}
	store.failCreate = true

	_, err := ConvertProspect(context.Background(), store, prospectID)
	require.Error(t, err)

	doc, err := store.Get(context.Background(), database.COLLECTION_PROSPECTS, prospectID)
	require.NoError(t, err)
	assert.Equal(t, "Marie", doc["prenom"])
	assert.Empty(t, store.coll(database.COLLECTION_CLIENTS))
}

func TestConvertProspectEchecSuppressionPuisReconciliation(t *testing.T) {
	store := newFakeStore()
	prospectID := bson.NewObjectID().Hex()
	store.coll(database.COLLECTION_PROSPECTS)[prospectID] = bson.M{
		"prenom": "Luc",
		"email":  "luc@exemple.fr",
	}
	store.failDelete = true

	clientID, err := ConvertProspect(context.Background(), store, prospectID)
	require.NoError(t, err)

	// Le client existe, le prospect marqué n'a pas pu être supprimé.
	_, err = store.Get(context.Background(), database.COLLECTION_CLIENTS, clientID)
	require.NoError(t, err)
	doc, err := store.Get(context.Background(), database.COLLECTION_PROSPECTS, prospectID)
	require.NoError(t, err)
	assert.Equal(t, clientID, doc["conversionClientId"])

	store.failDelete = false
	require.NoError(t, ReconcileConversions(context.Background(), store))

	_, err = store.Get(context.Background(), database.COLLECTION_PROSPECTS, prospectID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestReconcileEffaceLeMarqueurSansClient(t *testing.T) {
	store := newFakeStore()
	prospectID := bson.NewObjectID().Hex()
	store.coll(database.COLLECTION_PROSPECTS)[prospectID] = bson.M{
		"prenom":             "Anne",
		"conversionClientId": bson.NewObjectID().Hex(),
	}

	require.NoError(t, ReconcileConversions(context.Background(), store))

	doc, err := store.Get(context.Background(), database.COLLECTION_PROSPECTS, prospectID)
	require.NoError(t, err)
	assert.Equal(t, "", doc["conversionClientId"])
}
