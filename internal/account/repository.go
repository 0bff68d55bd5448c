package account

import (
	"context"
	"errors"
	"time"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository reads and writes the users and admins collections. Lookups
// return (nil, nil) when no document matches; the service decides what a
// miss means.
type Repository interface {
	CreateUser(ctx context.Context, u *User) (*User, error)
	FindUserByNumber(ctx context.Context, number string) (*User, error)
	FindUserByID(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, id string, set map[string]interface{}) (*User, error)

	CreateAdmin(ctx context.Context, a *Admin) (*Admin, error)
	FindAdminByNumber(ctx context.Context, number int64) (*Admin, error)
	FindAdminByID(ctx context.Context, id string) (*Admin, error)
	UpdateAdmin(ctx context.Context, id string, set map[string]interface{}) (*Admin, error)
}

type repository struct {
	users  *mongo.Collection
	admins *mongo.Collection
}

func NewRepository(cols *db.Collections) Repository {
	return &repository{users: cols.Users, admins: cols.Admins}
}

func (r *repository) CreateUser(ctx context.Context, u *User) (*User, error) {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	res, err := r.users.InsertOne(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

func (r *repository) FindUserByNumber(ctx context.Context, number string) (*User, error) {
	var u User
	err := r.users.FindOne(ctx, bson.M{"number": number}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindUserByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var u User
	err = r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) UpdateUser(ctx context.Context, id string, set map[string]interface{}) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u User
	err = r.users.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) CreateAdmin(ctx context.Context, a *Admin) (*Admin, error) {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	res, err := r.admins.InsertOne(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return a, nil
}

func (r *repository) FindAdminByNumber(ctx context.Context, number int64) (*Admin, error) {
	var a Admin
	err := r.admins.FindOne(ctx, bson.M{"adminNumber": number}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAdminByID(ctx context.Context, id string) (*Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var a Admin
	err = r.admins.FindOne(ctx, bson.M{"_id": oid}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) UpdateAdmin(ctx context.Context, id string, set map[string]interface{}) (*Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var a Admin
	err = r.admins.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
