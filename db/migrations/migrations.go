package migrations

import "embed"

// FS holds the SQL migration files embedded from this directory. They are
// served to golang-migrate through its iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the application expects after migrating.
const Version = 1
