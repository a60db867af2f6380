package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Repuestos-api/internal/domain"
)

// findOne decodifica el primer documento que cumple filter. found=false si no hay ninguno.
func findOne(ctx context.Context, coll *mongo.Collection, filter bson.D, out any) (bool, error) {
	err := coll.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("mongodb: %s: %w", coll.Name(), err)
	}
	return true, nil
}

// findAll decodifica todos los documentos en orden de creación.
func findAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: %s: %w", coll.Name(), err)
	}
	var docs []T
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: %s: %w", coll.Name(), err)
	}
	return docs, nil
}

// replaceByID reemplaza el documento; ErrNotFound si no existe.
func replaceByID(ctx context.Context, coll *mongo.Collection, id string, doc any, resource, businessID string) error {
	res, err := coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, doc)
	if mongo.IsDuplicateKeyError(err) {
		return domain.Duplicate(resource, businessID)
	}
	if err != nil {
		return fmt.Errorf("mongodb: %s: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// deleteByID elimina el documento; ErrNotFound si no existe.
func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("mongodb: %s: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func insert(ctx context.Context, coll *mongo.Collection, doc any, resource, businessID string) error {
	_, err := coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return domain.Duplicate(resource, businessID)
	}
	if err != nil {
		return fmt.Errorf("mongodb: %s: %w", coll.Name(), err)
	}
	return nil
}
