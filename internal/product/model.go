package product

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product keeps the wire field names the SPA binds to. AdminID is set once
// at creation and never changes; it is the sole basis for creator checks.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"productName" json:"productName"`
	Price       float64            `bson:"productPrice" json:"productPrice"`
	Description string             `bson:"productDescription" json:"productDescription"`
	Category    string             `bson:"category" json:"category"`
	ProductType string             `bson:"productType" json:"productType"`
	AdminID     string             `bson:"adminId" json:"adminId"`
	Image1      string             `bson:"productFile1" json:"productFile1"`
	Image2      string             `bson:"productFile2" json:"productFile2"`
	Image3      string             `bson:"productFile3" json:"productFile3"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p *Product) Images() []string {
	return []string{p.Image1, p.Image2, p.Image3}
}
