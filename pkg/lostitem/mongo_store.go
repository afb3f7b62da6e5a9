package lostitem

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection is the MongoDB collection holding lost item documents.
const Collection = "lost_items"

// itemRecord is the persisted shape of a lost item. The store maps between
// this and LostItem at the boundary so the domain model never depends on the
// database representation.
type itemRecord struct {
	ID          string    `bson:"_id"`
	Description string    `bson:"description"`
	Status      string    `bson:"status"`
	Contact     *string   `bson:"contact"`
	ImageRef    *string   `bson:"image_ref"`
	CreatedAt   time.Time `bson:"created_at"`
}

func fromRecord(rec itemRecord) LostItem {
	return LostItem{
		ID:          rec.ID,
		Description: rec.Description,
		Status:      Status(rec.Status),
		Contact:     rec.Contact,
		ImageRef:    rec.ImageRef,
		CreatedAt:   rec.CreatedAt,
	}
}

// MongoStore is the MongoDB-backed Store implementation.
type MongoStore struct {
	col *mongo.Collection
}

// NewMongoStore creates a lost item store on the given database.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection(Collection)}
}

func (s *MongoStore) Create(ctx context.Context, description string, contact, imageRef *string) (string, error) {
	if err := validateDescription(description); err != nil {
		return "", err
	}

	rec := itemRecord{
		ID:          uuid.NewString(),
		Description: description,
		Status:      string(StatusUnclaimed),
		Contact:     contact,
		ImageRef:    imageRef,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.col.InsertOne(ctx, rec); err != nil {
		return "", fmt.Errorf("failed to insert lost item: %w", err)
	}
	return rec.ID, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (*LostItem, error) {
	var rec itemRecord
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to load lost item: %w", err)
	}
	item := fromRecord(rec)
	return &item, nil
}

func (s *MongoStore) List(ctx context.Context, statusFilter *Status) ([]LostItem, error) {
	filter := bson.M{}
	if statusFilter != nil {
		filter["status"] = string(*statusFilter)
	}

	cursor, err := s.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list lost items: %w", err)
	}
	defer cursor.Close(ctx)

	var records []itemRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode lost items: %w", err)
	}

	items := make([]LostItem, 0, len(records))
	for _, rec := range records {
		items = append(items, fromRecord(rec))
	}
	return items, nil
}

func (s *MongoStore) UpdateFields(ctx context.Context, id, description string, contact, imageRef *string) error {
	if err := validateDescription(description); err != nil {
		return err
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"description": description,
		"contact":     contact,
		"image_ref":   imageRef,
	}})
	if err != nil {
		return fmt.Errorf("failed to update lost item fields: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *MongoStore) UpdateStatus(ctx context.Context, id string, status Status) error {
	if err := validateStatus(status); err != nil {
		return err
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status": string(status),
	}})
	if err != nil {
		return fmt.Errorf("failed to update lost item status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}
