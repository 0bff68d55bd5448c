package db

import (
	"context"
	"log"
	"time"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collections bundles the handles every repository works against. The seven
// logical collections are independent: there are no cross-collection cascades.
type Collections struct {
	Users          *mongo.Collection
	Admins         *mongo.Collection
	Categories     *mongo.Collection
	ProductTypes   *mongo.Collection
	Products       *mongo.Collection
	Carts          *mongo.Collection
	OrderHistories *mongo.Collection
}

func InitDB(cfg *config.Config) (*mongo.Client, *Collections) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	log.Println("Database connection established")

	database := client.Database(cfg.MongoDBName)
	return client, &Collections{
		Users:          database.Collection("users"),
		Admins:         database.Collection("admins"),
		Categories:     database.Collection("categories"),
		ProductTypes:   database.Collection("producttypes"),
		Products:       database.Collection("products"),
		Carts:          database.Collection("carts"),
		OrderHistories: database.Collection("orderhistories"),
	}
}
