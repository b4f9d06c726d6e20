package models

import "time"

type Middleman struct {
	ID                        string    `firestore:"-" json:"id"`
	MiddlemanID               string    `firestore:"middlemanId" json:"middlemanId"`
	FullName                  string    `firestore:"fullName" json:"fullName"`
	Email                     string    `firestore:"email" json:"email"`
	PhoneNumber               string    `firestore:"phoneNumber" json:"phoneNumber"`
	EmergencyContact          string    `firestore:"emergencyContact" json:"emergencyContact"`
	Address                   string    `firestore:"address" json:"address"`
	Age                       int       `firestore:"age" json:"age"`
	DateOfBirth               string    `firestore:"dateOfBirth" json:"dateOfBirth"`
	IDProof                   string    `firestore:"idProof" json:"idProof"`
	IDProofImageURL           string    `firestore:"idProofImageUrl" json:"idProofImageUrl"`
	HasVehicle                bool      `firestore:"hasVehicle" json:"hasVehicle"`
	VehicleRegistrationNumber string    `firestore:"vehicleRegistrationNumber" json:"vehicleRegistrationNumber"`
	IsAvailable               bool      `firestore:"isAvailable" json:"isAvailable"`
	UpiID                     string    `firestore:"upiId" json:"upiId"`
	TodayEarning              float64   `firestore:"todayEarning" json:"todayEarning"`
	LastEarningUpdateDate     string    `firestore:"lastEarningUpdateDate" json:"lastEarningUpdateDate"`
	RegistrationDate          time.Time `firestore:"registrationDate" json:"registrationDate"`
	// Password and fcmToken exist on the document but are never decoded.
}

// MiddlemanEarning is one entry of Middlemens/{id}/Earnings. Date is YYYY-MM-DD.
type MiddlemanEarning struct {
	ID      string  `firestore:"-" json:"id"`
	OrderID string  `firestore:"orderId" json:"orderId"`
	Date    string  `firestore:"date" json:"date"`
	Amount  float64 `firestore:"amount" json:"amount"`
	Earning float64 `firestore:"earning" json:"earning"`
}

// MiddlemanSale is an earnings entry joined to the order it paid for.
type MiddlemanSale struct {
	MiddlemanEarning
	Order Order `json:"order"`
}

type MiddlemanEarningSummary struct {
	MiddlemanID  string          `json:"middlemanId"`
	From         string          `json:"from"`
	To           string          `json:"to"`
	Deliveries   int             `json:"deliveries"`
	TotalRevenue float64         `json:"totalRevenue"`
	TotalEarning float64         `json:"totalEarning"`
	Entries      []MiddlemanSale `json:"entries"`
}
