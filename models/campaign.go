package models

type Campaign struct {
	ID         string   `firestore:"-" json:"id"`
	Title      string   `firestore:"title" json:"title"`
	ImageURLs  []string `firestore:"imageUrls" json:"imageUrls"`
	ProductIDs []string `firestore:"productIds" json:"productIds"`
}
