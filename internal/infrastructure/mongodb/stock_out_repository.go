package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// StockOutRepo implementación de repository.StockOutRepository sobre MongoDB.
type StockOutRepo struct {
	coll *mongo.Collection
}

// NewStockOutRepo construye el repositorio.
func NewStockOutRepo(db *mongo.Database) *StockOutRepo {
	return &StockOutRepo{coll: db.Collection(CollectionStockOuts)}
}

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

func (r *StockOutRepo) Create(ctx context.Context, out *entity.StockOut) error {
	doc, err := newStockOutDoc(out)
	if err != nil {
		return err
	}
	return insert(ctx, r.coll, doc, "salida", out.BusinessID)
}

func (r *StockOutRepo) GetByID(ctx context.Context, id string) (*entity.StockOut, error) {
	return r.getOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *StockOutRepo) GetByBusinessID(ctx context.Context, businessID string) (*entity.StockOut, error) {
	return r.getOne(ctx, bson.D{{Key: "business_id", Value: businessID}})
}

func (r *StockOutRepo) getOne(ctx context.Context, filter bson.D) (*entity.StockOut, error) {
	var doc stockOutDoc
	found, err := findOne(ctx, r.coll, filter, &doc)
	if err != nil || !found {
		return nil, err
	}
	return doc.entity()
}

func (r *StockOutRepo) List(ctx context.Context) ([]*entity.StockOut, error) {
	docs, err := findAll[stockOutDoc](ctx, r.coll)
	if err != nil {
		return nil, err
	}
	list := make([]*entity.StockOut, 0, len(docs))
	for i := range docs {
		m, err := docs[i].entity()
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, nil
}

func (r *StockOutRepo) Update(ctx context.Context, out *entity.StockOut) error {
	doc, err := newStockOutDoc(out)
	if err != nil {
		return err
	}
	return replaceByID(ctx, r.coll, out.ID, doc, "salida", out.BusinessID)
}

func (r *StockOutRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *StockOutRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("mongodb: %s: %w", r.coll.Name(), err)
	}
	return n, nil
}
