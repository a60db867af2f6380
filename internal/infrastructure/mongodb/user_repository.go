package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// UserRepo implementación de repository.UserRepository sobre MongoDB.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepo construye el repositorio.
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(CollectionUsers)}
}

var _ repository.UserRepository = (*UserRepo)(nil)

// Create inserta el usuario. ErrUsernameTaken si el índice único rechaza el username.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	_, err := r.coll.InsertOne(ctx, newUserDoc(user))
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("mongodb: %s: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, bson.D{{Key: "_id", Value: id}})
}

// FindByUsername busca sin distinguir mayúsculas.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, bson.D{{Key: "username_key", Value: usernameKey(username)}})
}

func (r *UserRepo) getOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var doc userDoc
	found, err := findOne(ctx, r.coll, filter, &doc)
	if err != nil || !found {
		return nil, err
	}
	return doc.entity(), nil
}
