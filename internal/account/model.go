package account

import (
	"time"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Address   string             `bson:"address" json:"address"`
	Password  string             `bson:"password" json:"-"`
	Category  string             `bson:"category" json:"category"`
	Number    string             `bson:"number" json:"number"`
	Rank      auth.Rank          `bson:"rank" json:"rank"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Admin keeps the prefixed field names the existing collection already uses.
type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"adminName" json:"adminName"`
	Address   string             `bson:"adminAddress" json:"adminAddress"`
	Password  string             `bson:"adminPassword" json:"-"`
	Category  string             `bson:"category" json:"category"`
	Number    int64              `bson:"adminNumber" json:"adminNumber"`
	Rank      auth.Rank          `bson:"rank" json:"rank"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
