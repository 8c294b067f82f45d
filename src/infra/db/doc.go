// Package db provides database connection and schema management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization
//   - Connection health checks
//   - Applying the embedded baseline schema (goose)
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//	if err := pg.Migrate(ctx); err != nil {
//	    return err
//	}
package db
