package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// SparePartRepo implementación de repository.SparePartRepository sobre MongoDB.
type SparePartRepo struct {
	coll *mongo.Collection
}

// NewSparePartRepo construye el repositorio.
func NewSparePartRepo(db *mongo.Database) *SparePartRepo {
	return &SparePartRepo{coll: db.Collection(CollectionSpareParts)}
}

var _ repository.SparePartRepository = (*SparePartRepo)(nil)

// Create inserta el repuesto. ErrDuplicate si el código ya existe (índice único).
func (r *SparePartRepo) Create(ctx context.Context, part *entity.SparePart) error {
	doc, err := newSparePartDoc(part)
	if err != nil {
		return err
	}
	return insert(ctx, r.coll, doc, "repuesto", part.BusinessID)
}

// GetByID obtiene un repuesto por ID.
func (r *SparePartRepo) GetByID(ctx context.Context, id string) (*entity.SparePart, error) {
	return r.getOne(ctx, bson.D{{Key: "_id", Value: id}})
}

// GetByBusinessID obtiene un repuesto por su código.
func (r *SparePartRepo) GetByBusinessID(ctx context.Context, businessID string) (*entity.SparePart, error) {
	return r.getOne(ctx, bson.D{{Key: "business_id", Value: businessID}})
}

func (r *SparePartRepo) getOne(ctx context.Context, filter bson.D) (*entity.SparePart, error) {
	var doc sparePartDoc
	found, err := findOne(ctx, r.coll, filter, &doc)
	if err != nil || !found {
		return nil, err
	}
	return doc.entity()
}

// List devuelve los repuestos en orden de creación.
func (r *SparePartRepo) List(ctx context.Context) ([]*entity.SparePart, error) {
	docs, err := findAll[sparePartDoc](ctx, r.coll)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.SparePart, 0, len(docs))
	for i := range docs {
		p, err := docs[i].entity()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Update reemplaza el documento del repuesto.
func (r *SparePartRepo) Update(ctx context.Context, part *entity.SparePart) error {
	doc, err := newSparePartDoc(part)
	if err != nil {
		return err
	}
	return replaceByID(ctx, r.coll, part.ID, doc, "repuesto", part.BusinessID)
}

// AdjustQuantity suma delta con una actualización condicional de un solo documento:
// el filtro exige quantity >= -delta y el pipeline recalcula total_value en el servidor.
func (r *SparePartRepo) AdjustQuantity(ctx context.Context, id string, delta int) (*entity.SparePart, error) {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "quantity", Value: bson.D{{Key: "$gte", Value: -delta}}},
	}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "quantity", Value: bson.D{{Key: "$add", Value: bson.A{"$quantity", delta}}}},
			{Key: "updated_at", Value: time.Now().UTC()},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "total_value", Value: bson.D{{Key: "$multiply", Value: bson.A{"$quantity", "$unit_price"}}}},
		}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc sparePartDoc
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		n, cerr := r.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}})
		if cerr != nil {
			return nil, fmt.Errorf("mongodb: %s: %w", r.coll.Name(), cerr)
		}
		if n == 0 {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInsufficientStock
	}
	if err != nil {
		return nil, fmt.Errorf("mongodb: %s: %w", r.coll.Name(), err)
	}
	return doc.entity()
}

// Delete elimina el repuesto sin tocar los movimientos que lo referencian.
func (r *SparePartRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
