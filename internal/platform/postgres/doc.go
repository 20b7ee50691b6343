// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in the store package. It uses the pgx driver through
// database/sql and maps driver-level errors onto the store's error taxonomy
// so callers never depend on PostgreSQL specifics.
package postgres
