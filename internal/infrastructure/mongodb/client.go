// Package mongodb implementa los repositorios sobre MongoDB (almacén por defecto).
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Nombres de colecciones.
const (
	CollectionSpareParts = "spareparts"
	CollectionStockIns   = "stockins"
	CollectionStockOuts  = "stockouts"
	CollectionUsers      = "users"
)

// Config datos de conexión.
type Config struct {
	URI      string
	Database string
}

// Connect abre el cliente, verifica con Ping y devuelve la base de datos configurada.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(50).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, nil, fmt.Errorf("mongodb: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongodb: ping: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes crea los índices únicos de códigos y usernames. Es idempotente.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true).SetName(field + "_unique"),
		}
	}
	byCreated := mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: 1}}}

	indexes := map[string][]mongo.IndexModel{
		CollectionSpareParts: {unique("business_id"), byCreated},
		CollectionStockIns:   {unique("business_id"), byCreated, {Keys: bson.D{{Key: "spare_part_id", Value: 1}}}},
		CollectionStockOuts:  {unique("business_id"), byCreated, {Keys: bson.D{{Key: "spare_part_id", Value: 1}}}},
		CollectionUsers:      {unique("username_key")},
	}
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongodb: índices de %s: %w", coll, err)
		}
	}
	return nil
}
