package utils

import "fmt"

const (
	PROSPECTS_INVALID_REQUEST_DATA = iota + 1
	INVALID_PROSPECT_ID_FORMAT
	INVALID_PROSPECT_ETAPE
	CANNOT_CONNECT_TO_MONGODB
	CANNOT_FIND_PROSPECTS_IN_MONGODB
	CANNOT_FIND_PROSPECT_IN_MONGODB
	CANNOT_INSERT_PROSPECT_TO_MONGODB
	CANNOT_UPDATE_PROSPECT_IN_MONGODB
	CANNOT_DELETE_PROSPECT_FROM_MONGODB
	CANNOT_CONVERT_PROSPECT
	CLIENTS_INVALID_REQUEST_DATA
	INVALID_CLIENT_ID_FORMAT
	CANNOT_FIND_CLIENTS_IN_MONGODB
	CANNOT_FIND_CLIENT_IN_MONGODB
	CANNOT_UPDATE_CLIENT_IN_MONGODB
	CANNOT_FIND_ONBOARDING_IN_MONGODB
	CANNOT_SAVE_ONBOARDING_IN_MONGODB
	CANNOT_CONNECT_TO_MYSQL
	CANNOT_IMPORT_LEGACY_PROSPECTS
	CANNOT_CHECK_ADMIN_ROLE
)

func SendInternalError(internalErrorCode int) string {
	return fmt.Sprintf("Une erreur interne est survenue. Veuillez réessayer plus tard (Code: %d)", internalErrorCode)
}
