package models

import "time"

const (
	ProductTypeVeg    = "veg"
	ProductTypeNonVeg = "nonVeg"
)

type ProductVariation struct {
	Discount      float64 `firestore:"discount" json:"discount"`
	MRP           float64 `firestore:"mrp" json:"mrp"`
	Price         float64 `firestore:"price" json:"price"`
	StockQuantity int     `firestore:"stockQuantity" json:"stockQuantity"`
}

type Product struct {
	ID              string                      `firestore:"-" json:"id"`
	ProductID       string                      `firestore:"productId" json:"productId"`
	StoreID         string                      `firestore:"storeId" json:"storeId"`
	Name            string                      `firestore:"name" json:"name"`
	LowerName       string                      `firestore:"lowerName" json:"lowerName"`
	Cuisine         string                      `firestore:"cuisine" json:"cuisine"`
	LowerCuisine    string                      `firestore:"lowerCuisine" json:"lowerCuisine"`
	ImageURL        string                      `firestore:"imageUrl" json:"imageUrl"`
	ProductCategory string                      `firestore:"productCategory" json:"productCategory"`
	StoreCategory   string                      `firestore:"storeCategory" json:"storeCategory"`
	Type            string                      `firestore:"type" json:"type"`
	Variations      map[string]ProductVariation `firestore:"variations" json:"variations"`
	IsAvailable     bool                        `firestore:"isAvailable" json:"isAvailable"`
	Rating          float64                     `firestore:"rating" json:"rating"`
	CreatedAt       time.Time                   `firestore:"createdAt" json:"createdAt"`
	LastUpdated     time.Time                   `firestore:"lastUpdated" json:"lastUpdated"`
}
