// Package queries holds the read side of the waiter service. Handlers read straight from
// the database with raw SQL and return flat response structs instead of aggregates.
package queries
