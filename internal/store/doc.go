// Package store declares the persistence contracts the services depend
// on. Each entity gets one interface plus a WithTx variant so the same
// operations can run on a pooled connection or inside a transaction,
// keeping business logic free of database specifics.
package store
