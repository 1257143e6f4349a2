package db

import "context"

// SchemaInterface is the schema of the knitsocial database.
type SchemaInterface interface {
	// Upgrade applies all versions newer than the one in the database.
	Upgrade(ctx context.Context) error

	// Version returns the version recorded in the database.
	//
	// It is 0 when no schema has been applied.
	Version(ctx context.Context) (int, error)

	// Context returns a context which is canceled when the database schema
	// gets older than the schema repository.
	//
	// The cause of the cancellation tells why.
	Context(ctx context.Context) (context.Context, context.CancelFunc)
}
