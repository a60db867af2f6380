package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// StockInRepo implementación de repository.StockInRepository sobre MongoDB.
type StockInRepo struct {
	coll *mongo.Collection
}

// NewStockInRepo construye el repositorio.
func NewStockInRepo(db *mongo.Database) *StockInRepo {
	return &StockInRepo{coll: db.Collection(CollectionStockIns)}
}

var _ repository.StockInRepository = (*StockInRepo)(nil)

func (r *StockInRepo) Create(ctx context.Context, in *entity.StockIn) error {
	return insert(ctx, r.coll, newStockInDoc(in), "entrada", in.BusinessID)
}

func (r *StockInRepo) GetByID(ctx context.Context, id string) (*entity.StockIn, error) {
	return r.getOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *StockInRepo) GetByBusinessID(ctx context.Context, businessID string) (*entity.StockIn, error) {
	return r.getOne(ctx, bson.D{{Key: "business_id", Value: businessID}})
}

func (r *StockInRepo) getOne(ctx context.Context, filter bson.D) (*entity.StockIn, error) {
	var doc stockInDoc
	found, err := findOne(ctx, r.coll, filter, &doc)
	if err != nil || !found {
		return nil, err
	}
	return doc.entity(), nil
}

func (r *StockInRepo) List(ctx context.Context) ([]*entity.StockIn, error) {
	docs, err := findAll[stockInDoc](ctx, r.coll)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.StockIn, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].entity())
	}
	return out, nil
}

func (r *StockInRepo) Update(ctx context.Context, in *entity.StockIn) error {
	return replaceByID(ctx, r.coll, in.ID, newStockInDoc(in), "entrada", in.BusinessID)
}

func (r *StockInRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *StockInRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("mongodb: %s: %w", r.coll.Name(), err)
	}
	return n, nil
}
