package cart

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Line is a denormalized snapshot of the product at add-time. Later product
// edits never touch existing lines, and the same (user, product) pair may
// appear on several lines: there is no merge-on-add.
type Line struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductName string             `bson:"productName" json:"productName"`
	ProductID   string             `bson:"productId" json:"productId"`
	Price       float64            `bson:"productPrice" json:"productPrice"`
	Description string             `bson:"productDescription" json:"productDescription"`
	Category    string             `bson:"category" json:"category"`
	ProductType string             `bson:"productType" json:"productType"`
	Quantity    int                `bson:"productQuantity" json:"productQuantity"`
	AdminID     string             `bson:"adminId" json:"adminId"`
	UserID      string             `bson:"userId" json:"userId"`
	UserName    string             `bson:"userName" json:"userName"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
