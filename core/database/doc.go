// Package database handles the connection to the connector-state database.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the connector's configuration. The database only holds
// operational state (the synchronization watermark); asset and entity data live in the
// external DAM and PIM systems.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
