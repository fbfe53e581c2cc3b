// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections to the subscription event store based on the application's
// configuration.
//
// # Connect
//
// The Connect function establishes a connection with connection and I/O timeouts
// baked into the DSN, verifies it with a ping and configures the pool. The event
// store only ever stores UTC instants, so connections are opened with loc=UTC.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used at startup to
// verify that the subscription_events table exposes the columns the feed
// queries rely on.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "subscription_events")
package database
