package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weblynx/backoffice_backend/models"
)

// RecordStore is the document-store boundary every page module goes through.
// Collections are schemaless; Update is a blind partial $set by id, so the
// last write wins and there is no version token or cross-collection
// transaction.
type RecordStore interface {
	ListAll(ctx context.Context, collection string) ([]models.Record, error)
	GetOne(ctx context.Context, collection, id string) (models.Record, error)
	Create(ctx context.Context, collection string, fields models.Record) (string, error)
	Update(ctx context.Context, collection, id string, fields models.Record) error
	Delete(ctx context.Context, collection, id string) error
}

type mongoStore struct {
	db *mongo.Database
}

// NewMongoStore returns a RecordStore backed by the given database
func NewMongoStore(db *mongo.Database) RecordStore {
	return &mongoStore{db: db}
}

func (s *mongoStore) ListAll(ctx context.Context, collection string) ([]models.Record, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, fromDocument(doc))
	}
	return records, nil
}

func (s *mongoStore) GetOne(ctx context.Context, collection, id string) (models.Record, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid record id %q", id)
	}

	var doc bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no document found with id %s in %s", id, collection)
		}
		return nil, err
	}
	return fromDocument(doc), nil
}

func (s *mongoStore) Create(ctx context.Context, collection string, fields models.Record) (string, error) {
	doc := bson.M{}
	for k, v := range fields {
		if k == "id" || k == "_id" {
			continue
		}
		doc[k] = v
	}
	objID := primitive.NewObjectID()
	doc["_id"] = objID

	_, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return objID.Hex(), nil
}

func (s *mongoStore) Update(ctx context.Context, collection, id string, fields models.Record) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid record id %q", id)
	}

	set := bson.M{}
	for k, v := range fields {
		if k == "id" || k == "_id" {
			continue
		}
		set[k] = v
	}

	result, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no document found with id %s in %s", id, collection)
	}
	return nil
}

func (s *mongoStore) Delete(ctx context.Context, collection, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid record id %q", id)
	}

	result, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no document found with id %s in %s", id, collection)
	}
	return nil
}

// fromDocument converts a raw bson document into a Record, surfacing the
// object id as the "id" string field
func fromDocument(doc bson.M) models.Record {
	record := models.Record{}
	for k, v := range doc {
		if k == "_id" {
			if objID, ok := v.(primitive.ObjectID); ok {
				record["id"] = objID.Hex()
				continue
			}
		}
		record[k] = v
	}
	return record
}
