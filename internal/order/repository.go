package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/db"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Repository interface {
	// CreateAndClearCart inserts the order and deletes the user's cart lines
	// as one logical unit.
	CreateAndClearCart(ctx context.Context, o *Order, userID string) (*Order, error)
	FindByID(ctx context.Context, id string) (*Order, error)
	FindByUser(ctx context.Context, userID string) ([]*Order, error)
	FindByAdminItem(ctx context.Context, adminID string) ([]*Order, error)
	UpdateStatus(ctx context.Context, id, status string, cancel *Cancellation) (*Order, error)
}

type repository struct {
	orders *mongo.Collection
	carts  *mongo.Collection
}

func NewRepository(cols *db.Collections) Repository {
	return &repository{orders: cols.OrderHistories, carts: cols.Carts}
}

// CreateAndClearCart prefers a session transaction so snapshot and clear are
// all-or-nothing. Against a standalone server (no transaction support) it
// falls back to insert-then-clear: a failed insert leaves the cart untouched,
// and a failed clear after a successful insert is a recoverable
// inconsistency, not a fatal one.
func (r *repository) CreateAndClearCart(ctx context.Context, o *Order, userID string) (*Order, error) {
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	session, err := r.orders.Database().Client().StartSession()
	if err != nil {
		return r.createThenClear(ctx, o, userID)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.orders.InsertOne(sc, o)
		if err != nil {
			return nil, err
		}
		o.ID = res.InsertedID.(primitive.ObjectID)

		if _, err := r.carts.DeleteMany(sc, bson.M{"userId": userID}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		if transactionsUnsupported(err) {
			return r.createThenClear(ctx, o, userID)
		}
		return nil, err
	}

	return o, nil
}

func (r *repository) createThenClear(ctx context.Context, o *Order, userID string) (*Order, error) {
	res, err := r.orders.InsertOne(ctx, o)
	if err != nil {
		return nil, err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)

	if _, err := r.carts.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		// the order exists; an uncleared cart is recoverable
		logger.FromCtx(ctx).Error("failed to clear cart after order creation",
			zap.String("user_id", userID),
			zap.String("order_id", o.ID.Hex()),
			zap.Error(err),
		)
	}
	return o, nil
}

func transactionsUnsupported(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Transaction numbers") ||
		strings.Contains(msg, "IllegalOperation")
}

func (r *repository) FindByID(ctx context.Context, id string) (*Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var o Order
	err = r.orders.FindOne(ctx, bson.M{"_id": oid}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]*Order, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// FindByAdminItem matches orders containing at least one item sold by the
// given admin.
func (r *repository) FindByAdminItem(ctx context.Context, adminID string) ([]*Order, error) {
	return r.find(ctx, bson.M{"items.adminId": adminID})
}

func (r *repository) find(ctx context.Context, filter bson.M) ([]*Order, error) {
	cur, err := r.orders.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []*Order
	err = cur.All(ctx, &orders)
	return orders, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string, cancel *Cancellation) (*Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set := bson.M{"status": status, "updatedAt": time.Now()}
	if cancel != nil {
		set["cancel"] = cancel
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o Order
	err = r.orders.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
