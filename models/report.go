package models

type StoreEarning struct {
	StoreID       string  `json:"storeId"`
	StoreName     string  `json:"storeName"`
	Orders        int     `json:"orders"`
	GrossSales    float64 `json:"grossSales"`
	Commission    float64 `json:"commission"`
	PlatformFee   float64 `json:"platformFee"`
	DeliveryFee   float64 `json:"deliveryFee"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

type EarningsSummary struct {
	Orders      int     `json:"orders"`
	GrossSales  float64 `json:"grossSales"`
	Commission  float64 `json:"commission"`
	PlatformFee float64 `json:"platformFee"`
	DeliveryFee float64 `json:"deliveryFee"`
}

type StoreEarningsReport struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	Stores  []StoreEarning  `json:"stores"`
	Summary EarningsSummary `json:"summary"`
}

type StatementLine struct {
	OrderID     string         `json:"orderId"`
	OrderAt     string         `json:"orderAt"`
	Products    []OrderProduct `json:"products"`
	TotalAmount float64        `json:"totalAmount"`
	Commission  float64        `json:"commission"`
	NetAmount   float64        `json:"netAmount"`
}

// StoreStatement is the payout receipt for one store.
type StoreStatement struct {
	StoreID        string          `json:"storeId"`
	StoreName      string          `json:"storeName"`
	CommissionRate float64         `json:"commissionRate"`
	Lines          []StatementLine `json:"lines"`
	TotalAmount    float64         `json:"totalAmount"`
	TotalNetAmount float64         `json:"totalNetAmount"`
}

type StatusBreakdown struct {
	Total     int            `json:"total"`
	Delivered int            `json:"delivered"`
	Cancelled int            `json:"cancelled"`
	InFlight  int            `json:"inFlight"`
	ByStage   map[string]int `json:"byStage"`
}

type LatencyBuckets struct {
	Fast            int     `json:"fast"`
	Mid             int     `json:"mid"`
	Slow            int     `json:"slow"`
	AverageMinutes  float64 `json:"averageMinutes"`
	FastMaxMinutes  int     `json:"fastMaxMinutes"`
	SlowOverMinutes int     `json:"slowOverMinutes"`
}

type AreaCount struct {
	Geohash   string  `json:"geohash"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Orders    int     `json:"orders"`
}

type DailyCount struct {
	Date      string  `json:"date"`
	Orders    int     `json:"orders"`
	Delivered int     `json:"delivered"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue"`
}
