package receivers

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection is the MongoDB collection holding receiver fragments.
const Collection = "receivers"

// defaultFragmentID is the fragment new emails are added to. Reads union all
// fragments, so receivers written by other tooling still get notified.
const defaultFragmentID = "default"

// receiverRecord is the persisted shape of a receiver fragment.
type receiverRecord struct {
	ID     string   `bson:"_id"`
	Emails []string `bson:"emails"`
}

// MongoStore is the MongoDB-backed Store implementation.
type MongoStore struct {
	col *mongo.Collection
}

// NewMongoStore creates a receiver store on the given database.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection(Collection)}
}

func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list receivers: %w", err)
	}
	defer cursor.Close(ctx)

	var records []receiverRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode receivers: %w", err)
	}

	var emails []string
	for _, rec := range records {
		emails = append(emails, rec.Emails...)
	}
	return dedupe(emails), nil
}

// Add puts the email into the default fragment. $addToSet keeps the write
// idempotent at the database level; the upsert covers the very first add.
func (s *MongoStore) Add(ctx context.Context, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": defaultFragmentID},
		bson.M{"$addToSet": bson.M{"emails": email}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to add receiver: %w", err)
	}
	return nil
}

// Remove pulls the email from every fragment, not just the default one:
// membership is defined as the union of fragments, so removal has to cover
// them all to actually leave the set.
func (s *MongoStore) Remove(ctx context.Context, email string) error {
	_, err := s.col.UpdateMany(ctx,
		bson.M{},
		bson.M{"$pull": bson.M{"emails": email}},
	)
	if err != nil {
		return fmt.Errorf("failed to remove receiver: %w", err)
	}
	return nil
}
