package models

import "time"

type User struct {
	ID          string      `firestore:"-" json:"id"`
	UID         string      `firestore:"uid" json:"uid"`
	FirstName   string      `firestore:"firstName" json:"firstName"`
	LastName    string      `firestore:"lastName" json:"lastName"`
	Email       string      `firestore:"email" json:"email"`
	PhoneNumber string      `firestore:"phoneNumber" json:"phoneNumber"`
	PhotoURL    string      `firestore:"photoURL" json:"photoURL"`
	Location    string      `firestore:"location" json:"location"`
	Address     interface{} `firestore:"address" json:"address"`
	LikedPosts  []string    `firestore:"likedPosts" json:"likedPosts"`
	StoreID     string      `firestore:"storeId" json:"storeId"`
	IsCreator   bool        `firestore:"isCreator" json:"isCreator"`
	IsWaiting   bool        `firestore:"isWaiting" json:"isWaiting"`
	FCMToken    string      `firestore:"fcmToken" json:"-"`
	CreatedAt   time.Time   `firestore:"createdAt" json:"createdAt"`
	LastUpdated time.Time   `firestore:"lastUpdated" json:"lastUpdated"`
}

func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// CreatorRequest is a document of Creators-Waitinglist.
type CreatorRequest struct {
	UserID      string   `firestore:"userId" json:"userId"`
	Name        string   `firestore:"name" json:"name"`
	Email       string   `firestore:"email" json:"email"`
	Phone       string   `firestore:"phone" json:"phone"`
	Description string   `firestore:"description" json:"description"`
	FavFood     string   `firestore:"favfood" json:"favfood"`
	Social      string   `firestore:"social" json:"social"`
	Store       string   `firestore:"store" json:"store"`
	Cuisines    []string `firestore:"cuisines" json:"cuisines"`
}

// Creator joins a user with the request they filed, if any.
type Creator struct {
	User    User            `json:"user"`
	Request *CreatorRequest `json:"request"`
}

type MonthlyGrowth struct {
	Month      string `json:"month"`
	SignUps    int    `json:"signUps"`
	Cumulative int    `json:"cumulative"`
}
