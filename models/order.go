package models

import (
	"TnenntAdmin/utils"
	"fmt"
	"sort"
	"time"
)

// OrderStage is a key of Order.Status.
type OrderStage string

const (
	StageOrdered    OrderStage = "ordered"
	StageAccepted   OrderStage = "accepted"
	StagePrepared   OrderStage = "prepared"
	StageAssigned   OrderStage = "assigned"
	StageDelivering OrderStage = "delivering"
	StageDelivered  OrderStage = "delivered"
	StageCancelled  OrderStage = "cancelled"
)

var stageRank = map[OrderStage]int{
	StageOrdered:    0,
	StageAccepted:   1,
	StagePrepared:   2,
	StageAssigned:   3,
	StageDelivering: 4,
	StageDelivered:  5,
	StageCancelled:  6,
}

func (s OrderStage) Valid() bool {
	_, ok := stageRank[s]
	return ok
}

func (s OrderStage) Terminal() bool {
	return s == StageDelivered || s == StageCancelled
}

// CanTransition reports whether an order whose latest stage is from may be
// moved to to. An order without any stage can only be placed or cancelled.
func CanTransition(from, to OrderStage) bool {
	if !to.Valid() || from.Terminal() {
		return false
	}
	if to == StageCancelled {
		return true
	}
	if from == "" {
		return to == StageOrdered
	}
	return stageRank[to] > stageRank[from]
}

type StatusStep struct {
	Message   string    `firestore:"message" json:"message"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
}

type OrderProduct struct {
	ProductID string  `firestore:"productId" json:"productId"`
	Name      string  `firestore:"name" json:"name"`
	ImageURL  string  `firestore:"imageUrl" json:"imageUrl"`
	Variant   string  `firestore:"variant" json:"variant"`
	Note      string  `firestore:"note" json:"note"`
	MRP       float64 `firestore:"mrp" json:"mrp"`
	Price     float64 `firestore:"price" json:"price"`
	Quantity  int     `firestore:"quantity" json:"quantity"`
}

type CustomerDetails struct {
	Name    string `firestore:"name" json:"name"`
	Phone   string `firestore:"phone" json:"phone"`
	Address string `firestore:"address" json:"address"`
}

type Order struct {
	ID                  string                `firestore:"-" json:"id"`
	OrderID             string                `firestore:"orderId" json:"orderId"`
	UserID              string                `firestore:"userId" json:"userId"`
	StoreID             string                `firestore:"storeId" json:"storeId"`
	StoreName           string                `firestore:"storename" json:"storename"`
	CustomerDetails     *CustomerDetails      `firestore:"customerDetails" json:"customerDetails,omitempty"`
	Products            []OrderProduct        `firestore:"products" json:"products"`
	Status              map[string]StatusStep `firestore:"status" json:"status"`
	OrderAt             time.Time             `firestore:"orderAt" json:"orderAt"`
	PaymentID           string                `firestore:"paymentId" json:"paymentId"`
	PaymentMethod       string                `firestore:"paymentMethod" json:"paymentMethod"`
	TotalAmount         float64               `firestore:"totalAmount" json:"totalAmount"`
	PlatformFee         float64               `firestore:"platformFee" json:"platformFee"`
	DeliveryFee         float64               `firestore:"deliveryFee" json:"deliveryFee"`
	Commission          float64               `firestore:"commission" json:"commission"`
	CouponID            string                `firestore:"couponID" json:"couponID"`
	CouponCode          string                `firestore:"couponCode" json:"couponCode"`
	CouponDiscount      float64               `firestore:"couponDiscount" json:"couponDiscount"`
	IsDeliveryFeeOff    bool                  `firestore:"isDeliveryFeeOff" json:"isDeliveryFeeOff"`
	IsPlatformFeeOff    bool                  `firestore:"isPlatformFeeOff" json:"isPlatformFeeOff"`
	CustomerCoordinates *Coordinates          `firestore:"customerCoordinates" json:"customerCoordinates"`
	StoreCoordinates    *Coordinates          `firestore:"storeCoordinates" json:"storeCoordinates"`
}

// Key returns the business order id, falling back to the document id.
func (o Order) Key() string {
	if o.OrderID != "" {
		return o.OrderID
	}
	return o.ID
}

// LatestStage is the stage with the newest timestamp. Equal timestamps are
// resolved by lifecycle order. Unknown keys still count, ranked last.
func (o Order) LatestStage() OrderStage {
	var latest OrderStage
	var latestAt time.Time
	for key, step := range o.Status {
		stage := OrderStage(key)
		if latest == "" ||
			step.Timestamp.After(latestAt) ||
			(step.Timestamp.Equal(latestAt) && rankOf(stage) > rankOf(latest)) {
			latest, latestAt = stage, step.Timestamp
		}
	}
	return latest
}

func rankOf(s OrderStage) int {
	if r, ok := stageRank[s]; ok {
		return r
	}
	return len(stageRank)
}

func (o Order) HasStage(s OrderStage) bool {
	_, ok := o.Status[string(s)]
	return ok
}

func (o Order) IsDelivered() bool { return o.HasStage(StageDelivered) }

func (o Order) IsCancelled() bool { return o.HasStage(StageCancelled) }

// DeliveredAt returns the timestamp of the delivered step.
func (o Order) DeliveredAt() (time.Time, bool) {
	step, ok := o.Status[string(StageDelivered)]
	if !ok || step.Timestamp.IsZero() {
		return time.Time{}, false
	}
	return step.Timestamp, true
}

// DeliveryDuration is the time from placing the order to delivery.
func (o Order) DeliveryDuration() (time.Duration, bool) {
	delivered, ok := o.DeliveredAt()
	if !ok || o.OrderAt.IsZero() {
		return 0, false
	}
	return delivered.Sub(o.OrderAt), true
}

// DistanceKm is the great-circle distance between customer and store.
func (o Order) DistanceKm() (float64, bool) {
	c, s := o.CustomerCoordinates, o.StoreCoordinates
	if c == nil || s == nil {
		return 0, false
	}
	if !utils.ValidCoordinate(c.Lat, c.Long) || !utils.ValidCoordinate(s.Lat, s.Long) {
		return 0, false
	}
	return utils.Haversine(c.Lat, c.Long, s.Lat, s.Long), true
}

// Subtotal sums price × quantity over every line.
func (o Order) Subtotal() float64 {
	var total float64
	for _, p := range o.Products {
		total += p.Price * float64(p.Quantity)
	}
	return total
}

// Timeline lists the recorded steps oldest first.
func (o Order) Timeline() []TimelineStep {
	steps := make([]TimelineStep, 0, len(o.Status))
	for key, step := range o.Status {
		steps = append(steps, TimelineStep{Stage: OrderStage(key), StatusStep: step})
	}
	sort.Slice(steps, func(i, j int) bool {
		if steps[i].Timestamp.Equal(steps[j].Timestamp) {
			return rankOf(steps[i].Stage) < rankOf(steps[j].Stage)
		}
		return steps[i].Timestamp.Before(steps[j].Timestamp)
	})
	return steps
}

type TimelineStep struct {
	Stage OrderStage `json:"stage"`
	StatusStep
}

// FormatDuration renders d as "1h 5m", the format used on order rows.
func FormatDuration(d time.Duration) string {
	total := int(d / time.Minute)
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// OrderRow is the flattened order shown in the orders table.
type OrderRow struct {
	ID              string         `json:"id"`
	OrderedAt       time.Time      `json:"orderedAt"`
	DeliveredAt     *time.Time     `json:"deliveredAt"`
	DeliveryTime    string         `json:"deliveryTime"`
	Product         string         `json:"product"`
	Store           string         `json:"store"`
	Customer        string         `json:"customer"`
	Status          string         `json:"status"`
	Payment         string         `json:"payment"`
	Total           float64        `json:"total"`
	PlatformFee     float64        `json:"platformFee"`
	DeliveryFee     float64        `json:"deliveryFee"`
	StoreCommission float64        `json:"storeCommission"`
	DistanceKm      *float64       `json:"distanceKm"`
	Timeline        []TimelineStep `json:"timeline,omitempty"`
}
