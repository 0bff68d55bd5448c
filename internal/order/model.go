package order

import (
	"time"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item is copied from a cart line at order creation and never re-derived
// from live product data.
type Item struct {
	ProductID   string  `bson:"productId" json:"productId"`
	ProductName string  `bson:"productName" json:"productName"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description" json:"description"`
	Category    string  `bson:"category" json:"category"`
	ProductType string  `bson:"productType" json:"productType"`
	AdminID     string  `bson:"adminId" json:"adminId"`
}

// Cancellation keeps the structured audit triple behind the legacy cancel
// string.
type Cancellation struct {
	Reason    string    `bson:"reason" json:"reason"`
	ActorRank auth.Rank `bson:"actorRank" json:"actorRank"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      string             `bson:"userId" json:"userId"`
	UserName    string             `bson:"userName" json:"userName"`
	UserAddress string             `bson:"userAddress" json:"userAddress"`
	UserNumber  string             `bson:"userNumber" json:"userNumber"`
	Status      string             `bson:"status" json:"status"`
	Items       []Item             `bson:"items" json:"items"`
	OrderStatus string             `bson:"orderStatus" json:"orderStatus"`
	Cancel      *Cancellation      `bson:"cancel,omitempty" json:"cancel,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Summary is the profile page's per-order rollup.
type Summary struct {
	ID            string    `json:"_id"`
	TotalProducts int       `json:"totalProducts"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `json:"status"`
	OrderStatus   string    `json:"orderStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (o *Order) Summarize() Summary {
	var totalProducts int
	var totalPrice float64
	for _, item := range o.Items {
		totalProducts += item.Quantity
		totalPrice += float64(item.Quantity) * item.Price
	}
	return Summary{
		ID:            o.ID.Hex(),
		TotalProducts: totalProducts,
		TotalPrice:    totalPrice,
		Status:        o.Status,
		OrderStatus:   o.OrderStatus,
		CreatedAt:     o.CreatedAt,
	}
}
