package cart

import (
	"context"
	"errors"
	"time"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository interface {
	Create(ctx context.Context, line *Line) (*Line, error)
	FindByID(ctx context.Context, id string) (*Line, error)
	FindByUser(ctx context.Context, userID string) ([]*Line, error)
	Delete(ctx context.Context, id string) error
	DeleteAllForUser(ctx context.Context, userID string) error
}

type repository struct {
	carts *mongo.Collection
}

func NewRepository(cols *db.Collections) Repository {
	return &repository{carts: cols.Carts}
}

func (r *repository) Create(ctx context.Context, line *Line) (*Line, error) {
	now := time.Now()
	line.CreatedAt = now
	line.UpdatedAt = now

	res, err := r.carts.InsertOne(ctx, line)
	if err != nil {
		return nil, err
	}
	line.ID = res.InsertedID.(primitive.ObjectID)
	return line, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Line, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var line Line
	err = r.carts.FindOne(ctx, bson.M{"_id": oid}).Decode(&line)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]*Line, error) {
	cur, err := r.carts.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var lines []*Line
	err = cur.All(ctx, &lines)
	return lines, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.carts.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *repository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.carts.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
