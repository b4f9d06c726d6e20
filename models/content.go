package models

import "time"

type Blog struct {
	ID          string    `firestore:"-" json:"id"`
	BlogID      string    `firestore:"blogId" json:"blogId"`
	Title       string    `firestore:"title" json:"title"`
	Description string    `firestore:"description" json:"description"`
	Thumbnail   string    `firestore:"thumbnail" json:"thumbnail"`
	Content     string    `firestore:"content" json:"content"`
	Excerpt     string    `firestore:"excerpt" json:"excerpt"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}

type Video struct {
	ID       string `firestore:"-" json:"id"`
	ImageURL string `firestore:"imageUrl" json:"imageUrl"`
	VideoURL string `firestore:"videoUrl" json:"videoUrl"`
}

type FoodPlaylist struct {
	ID         string   `firestore:"-" json:"id"`
	Image      string   `firestore:"image" json:"image"`
	ProductIDs []string `firestore:"productIds" json:"productIds"`
	Text       string   `firestore:"text" json:"text"`
}
