package models

import "time"

type Store struct {
	ID                 string       `firestore:"-" json:"id"`
	StoreID            string       `firestore:"storeId" json:"storeId"`
	Name               string       `firestore:"name" json:"name"`
	Email              string       `firestore:"email" json:"email"`
	Phone              string       `firestore:"phone" json:"phone"`
	Category           string       `firestore:"category" json:"category"`
	Location           string       `firestore:"location" json:"location"`
	StoreDomain        string       `firestore:"storeDomain" json:"storeDomain"`
	OwnerID            string       `firestore:"ownerId" json:"ownerId"`
	LogoURL            string       `firestore:"logoUrl" json:"logoUrl"`
	BannerURL          string       `firestore:"bannerUrl" json:"bannerUrl"`
	AccountHolderName  string       `firestore:"accountHolderName" json:"accountHolderName"`
	AccountNumber      string       `firestore:"accountNumber" json:"accountNumber"`
	IfscCode           string       `firestore:"ifscCode" json:"ifscCode"`
	FeaturedProductIDs []string     `firestore:"featuredProductIds" json:"featuredProductIds"`
	FollowerIDs        []string     `firestore:"followerIds" json:"followerIds"`
	GreenFlags         int          `firestore:"greenFlags" json:"greenFlags"`
	RedFlags           int          `firestore:"redFlags" json:"redFlags"`
	IsActive           bool         `firestore:"isActive" json:"isActive"`
	IsBlocked          bool         `firestore:"isBlocked" json:"isBlocked"`
	IsPaused           bool         `firestore:"isPaused" json:"isPaused"`
	StoreLocation      *Coordinates `firestore:"storeLocation" json:"storeLocation"`
	CreatedAt          time.Time    `firestore:"createdAt" json:"createdAt"`
}

// Status is the label shown for a store. Blocked wins over paused, paused
// over active.
func (s Store) Status() string {
	switch {
	case s.IsBlocked:
		return "Blocked"
	case s.IsPaused:
		return "Paused"
	case s.IsActive:
		return "Active"
	default:
		return "Inactive"
	}
}

// StoreView is a store enriched for listing.
type StoreView struct {
	Store
	Status     string   `json:"status"`
	IsFeatured bool     `json:"isFeatured"`
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

type FeaturedStores struct {
	Stores []string `firestore:"stores" json:"stores"`
}
