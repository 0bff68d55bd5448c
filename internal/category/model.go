package category

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"category" json:"category"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductType is a second-level taxonomy entry. It references its category
// by name, not by id; deleting the category does not cascade here.
type ProductType struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Category  string             `bson:"category" json:"category"`
	TypeName  string             `bson:"productType" json:"productType"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
