package schemas

// RoleSuperAdmin est la seule valeur de rôle donnant accès au dashboard.
const RoleSuperAdmin = "Super Admin"

// Admin est un document de la collection "admins", indexé par l'uid du
// fournisseur d'identité. Géré entièrement hors application : lecture seule.
type Admin struct {
	UID  string `json:"uid" bson:"_id"`
	Role string `json:"role" bson:"role"`
}
