package middlewares

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/identity"
	"github.com/magicniclus/admintrouvermonchantier/schemas"
	"github.com/magicniclus/admintrouvermonchantier/utils"
)

type contextKey string

const AdminContextKey = contextKey("admin_user")

type AdminUser struct {
	UID   string
	Email string
}

func authorizedRole(role string) bool {
	return role == schemas.RoleSuperAdmin
}

// adminRoles est le lecteur de rôles du middleware, remplaçable dans
// les tests.
var adminRoles database.RoleReader = database.Roles()

// CheckAdminRole lit admins/{uid} et vérifie le rôle exact "Super Admin".
// Toute erreur de lecture vaut refus, jamais de retry.
func CheckAdminRole(ctx context.Context, roles database.RoleReader, uid string) bool {
	role, err := roles.AdminRole(ctx, uid)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			log.Printf("[AdminAuth][%s] lecture du rôle: %v", uid, err)
		}
		return false
	}
	return authorizedRole(role)
}

// AdminAuth protège les routes du dashboard : jeton du fournisseur
// d'identité valide ET rôle "Super Admin" dans admins/{uid}. La
// vérification est refaite à chaque requête.
func AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			utils.SendResponse(w, http.StatusUnauthorized, "Jeton non fourni", nil, 0)
			return
		}

		user, err := identity.Lookup(token)
		if err != nil {
			utils.SendResponse(w, http.StatusUnauthorized, "Jeton invalide ou session expirée", nil, 0)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
		defer cancel()

		if !CheckAdminRole(ctx, adminRoles, user.UID) {
			utils.SendResponse(w, http.StatusForbidden, "Accès refusé", nil, 0)
			return
		}

		reqCtx := context.WithValue(r.Context(), AdminContextKey, AdminUser{UID: user.UID, Email: user.Email})
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}
