// Package constants holds configuration values shared across layers.
package constants

// Store drivers accepted in store.driver.
const (
	StoreDriverSheets   = "sheets"
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// Password modes accepted in auth.passwordMode.
const (
	PasswordModePlaintext = "plaintext"
	PasswordModeBcrypt    = "bcrypt"
)

// Collection names of the row-oriented store.
const (
	SheetUsers    = "Users"
	SheetFoodLogs = "FoodLogs"
)
