package prospects

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type LegacyProspect struct {
	ID          int
	Prenom      sql.NullString
	Nom         sql.NullString
	Email       sql.NullString
	Telephone   sql.NullString
	Entreprise  sql.NullString
	Metier      sql.NullString
	Commentaire sql.NullString
	Etape       sql.NullString
	Date        sql.NullString
	RGPD        bool
}

func GetManyLegacy() ([]LegacyProspect, error) {
	mysqlURI := os.Getenv(utils.MYSQL_URI)

	mysqlDB, err := sql.Open("mysql", mysqlURI)
	if err != nil {
		return nil, fmt.Errorf("connexion MySQL impossible: %w", err)
	}
	defer mysqlDB.Close()

	mysqlDB.SetConnMaxLifetime(database.MYSQL_CONN_MAX_LIFETIME)
	mysqlDB.SetMaxOpenConns(database.MYSQL_MAX_OPEN_CONNS)
	mysqlDB.SetMaxIdleConns(database.MYSQL_MAX_IDLE_CONNS)

	rows, err := mysqlDB.Query("SELECT id, prenom, nom, email, telephone, entreprise, metier, commentaire, etape, date, rgpd FROM " + database.MYSQL_TABLE_LEGACY_PROSPECTS)
	if err != nil {
		return nil, fmt.Errorf("lecture des prospects hérités impossible: %w", err)
	}
	defer rows.Close()

	prospects := []LegacyProspect{}
	for rows.Next() {
		p := LegacyProspect{}
		err := rows.Scan(
			&p.ID,
			&p.Prenom,
			&p.Nom,
			&p.Email,
			&p.Telephone,
			&p.Entreprise,
			&p.Metier,
			&p.Commentaire,
			&p.Etape,
			&p.Date,
			&p.RGPD,
		)
		if err != nil {
			return nil, fmt.Errorf("lecture d'une ligne héritée impossible: %w", err)
		}
		prospects = append(prospects, p)
	}

	return prospects, rows.Err()
}

// legacyDoc reconstitue le document tel que l'ancien back-office l'écrivait,
// clés PascalCase comprises. Le normaliseur les résout à la lecture.
func legacyDoc(p LegacyProspect) bson.M {
	doc := bson.M{
		"Prenom":      p.Prenom.String,
		"Nom":         p.Nom.String,
		"Email":       p.Email.String,
		"Telephone":   p.Telephone.String,
		"Entreprise":  p.Entreprise.String,
		"Metier":      p.Metier.String,
		"Commentaire": p.Commentaire.String,
		"Etape":       p.Etape.String,
		"RGPD":        p.RGPD,
	}

	if p.Date.Valid {
		for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
			if parsed, err := time.Parse(layout, p.Date.String); err == nil {
				doc["date"] = parsed
				break
			}
		}
	}

	return doc
}

// ImportLegacy recopie les prospects de l'ancienne base MySQL vers MongoDB.
// Les emails déjà présents sont ignorés pour que l'import soit rejouable.
func ImportLegacy(w http.ResponseWriter, r *http.Request) {
	legacy, err := GetManyLegacy()
	if err != nil {
		log.Printf("[ImportLegacy] %v", err)
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MYSQL)
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

	existing, err := store.List(ctx, database.COLLECTION_PROSPECTS, "", false)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_PROSPECTS_IN_MONGODB)
		return
	}

	knownEmails := map[string]bool{}
	for _, doc := range existing {
		for _, key := range []string{"email", "Email"} {
			if email, ok := doc[key].(string); ok && email != "" {
				knownEmails[strings.ToLower(email)] = true
			}
		}
	}

	imported := 0
	skipped := 0
	for _, p := range legacy {
		email := strings.ToLower(p.Email.String)
		if email != "" && knownEmails[email] {
			skipped++
			continue
		}

		if _, err := store.Create(ctx, database.COLLECTION_PROSPECTS, legacyDoc(p)); err != nil {
			log.Printf("[ImportLegacy][%d] insertion échouée: %v", p.ID, err)
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_IMPORT_LEGACY_PROSPECTS)
			return
		}
		if email != "" {
			knownEmails[email] = true
		}
		imported++
	}

	log.Printf("[ImportLegacy] %d importés, %d ignorés", imported, skipped)
	utils.SendResponse(w, http.StatusOK, "Import terminé", map[string]int{"imported": imported, "skipped": skipped}, 0)
}
