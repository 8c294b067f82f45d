// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports.
// PostgresRepository serves both UserRepository and JokeRepository; it
// receives the pool via constructor injection and maps pgx errors to
// domain errors (no rows -> not found, unique violation -> conflict).
package repo
