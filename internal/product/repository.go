package product

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	FindByType(ctx context.Context, productType string) ([]*Product, error)
	Update(ctx context.Context, id string, set map[string]interface{}) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	products *mongo.Collection
}

func NewRepository(cols *db.Collections) Repository {
	return &repository{products: cols.Products}
}

func (r *repository) Create(ctx context.Context, p *Product) (*Product, error) {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.products.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var p Product
	err = r.products.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByType(ctx context.Context, productType string) ([]*Product, error) {
	cur, err := r.products.Find(ctx, bson.M{"productType": strings.TrimSpace(productType)})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []*Product
	err = cur.All(ctx, &products)
	return products, err
}

func (r *repository) Update(ctx context.Context, id string, set map[string]interface{}) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p Product
	err = r.products.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.products.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
