// Package mongo provides the MongoDB connection factory for the lost item
// and receiver stores: environment-driven configuration, startup retries,
// and a readiness probe. Domain packages depend on *mongo.Database handles
// produced here rather than constructing their own clients.
package mongo
