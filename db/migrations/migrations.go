package migrations

import "embed"

// FS holds the schema of the optional campaign store (campaigns and
// visits tables). db.Migrate feeds it to golang-migrate through iofs.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version db.Migrate migrates to.
const Version = 1
