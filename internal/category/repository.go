package category

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository interface {
	CreateCategory(ctx context.Context, name string) (*Category, error)
	FindCategoryByName(ctx context.Context, name string) (*Category, error)
	FindCategoryByNameFold(ctx context.Context, name string) (*Category, error)
	FindCategoryByID(ctx context.Context, id string) (*Category, error)
	GetAllCategories(ctx context.Context) ([]*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateProductType(ctx context.Context, category, typeName string) (*ProductType, error)
	FindProductTypeFold(ctx context.Context, category, typeName string) (*ProductType, error)
	FindProductTypeByID(ctx context.Context, id string) (*ProductType, error)
	GetAllProductTypes(ctx context.Context) ([]*ProductType, error)
	GetProductTypesByCategory(ctx context.Context, category string) ([]*ProductType, error)
	DeleteProductType(ctx context.Context, id string) error
}

type repository struct {
	categories   *mongo.Collection
	productTypes *mongo.Collection
}

func NewRepository(cols *db.Collections) Repository {
	return &repository{categories: cols.Categories, productTypes: cols.ProductTypes}
}

// foldExact builds the anchored case-insensitive regex the Mongoose app used
// for its duplicate checks.
func foldExact(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}

func (r *repository) CreateCategory(ctx context.Context, name string) (*Category, error) {
	now := time.Now()
	cat := &Category{Name: name, CreatedAt: now, UpdatedAt: now}

	res, err := r.categories.InsertOne(ctx, cat)
	if err != nil {
		return nil, err
	}
	cat.ID = res.InsertedID.(primitive.ObjectID)
	return cat, nil
}

func (r *repository) FindCategoryByName(ctx context.Context, name string) (*Category, error) {
	var cat Category
	err := r.categories.FindOne(ctx, bson.M{"category": name}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *repository) FindCategoryByNameFold(ctx context.Context, name string) (*Category, error) {
	var cat Category
	err := r.categories.FindOne(ctx, bson.M{"category": foldExact(name)}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *repository) FindCategoryByID(ctx context.Context, id string) (*Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var cat Category
	err = r.categories.FindOne(ctx, bson.M{"_id": oid}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *repository) GetAllCategories(ctx context.Context) ([]*Category, error) {
	cur, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var cats []*Category
	err = cur.All(ctx, &cats)
	return cats, err
}

func (r *repository) DeleteCategory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.categories.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *repository) CreateProductType(ctx context.Context, category, typeName string) (*ProductType, error) {
	now := time.Now()
	pt := &ProductType{Category: category, TypeName: typeName, CreatedAt: now, UpdatedAt: now}

	res, err := r.productTypes.InsertOne(ctx, pt)
	if err != nil {
		return nil, err
	}
	pt.ID = res.InsertedID.(primitive.ObjectID)
	return pt, nil
}

func (r *repository) FindProductTypeFold(ctx context.Context, category, typeName string) (*ProductType, error) {
	var pt ProductType
	err := r.productTypes.FindOne(ctx, bson.M{
		"category":    foldExact(category),
		"productType": foldExact(typeName),
	}).Decode(&pt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *repository) FindProductTypeByID(ctx context.Context, id string) (*ProductType, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var pt ProductType
	err = r.productTypes.FindOne(ctx, bson.M{"_id": oid}).Decode(&pt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *repository) GetAllProductTypes(ctx context.Context) ([]*ProductType, error) {
	cur, err := r.productTypes.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var types []*ProductType
	err = cur.All(ctx, &types)
	return types, err
}

func (r *repository) GetProductTypesByCategory(ctx context.Context, category string) ([]*ProductType, error) {
	cur, err := r.productTypes.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var types []*ProductType
	err = cur.All(ctx, &types)
	return types, err
}

func (r *repository) DeleteProductType(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.productTypes.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
