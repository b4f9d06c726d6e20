package services

import (
	"TnenntAdmin/config/logger"
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

var defaultStageMessages = map[models.OrderStage]string{
	models.StageOrdered:    "Order placed",
	models.StageAccepted:   "Order accepted by the store",
	models.StagePrepared:   "Order is ready",
	models.StageAssigned:   "Delivery partner assigned",
	models.StageDelivering: "Order is on the way",
	models.StageDelivered:  "Order delivered",
	models.StageCancelled:  "Your order has been cancelled by the store.",
}

type OrderFilter struct {
	StoreID string
	// Date keeps orders placed on the same calendar day. Zero means any day.
	Date   time.Time
	Stage  models.OrderStage
	Search string
}

type OrderService struct {
	Store         DocumentStore
	Users         *UserService
	Notifications *NotificationService
	Now           func() time.Time
}

func NewOrderService(store DocumentStore, users *UserService, notifications *NotificationService) *OrderService {
	return &OrderService{
		Store:         store,
		Users:         users,
		Notifications: notifications,
		Now:           time.Now,
	}
}

// LoadOrders returns every order, or only one store's when storeID is set.
func (s *OrderService) LoadOrders(ctx context.Context, storeID string) ([]models.Order, error) {
	var q Query
	if storeID != "" {
		q.Conditions = []Condition{Where("storeId", "==", storeID)}
	}
	docs, err := s.Store.Query(ctx, CollectionOrders, q)
	if err != nil {
		return nil, utils.Internal("Failed to fetch orders", err)
	}
	orders, err := decodeDocs(docs, func(o *models.Order, id string) { o.ID = id })
	if err != nil {
		return nil, utils.Internal("Failed to parse orders", err)
	}
	return orders, nil
}

// ListOrders returns the filtered orders as table rows, newest first.
func (s *OrderService) ListOrders(ctx context.Context, f OrderFilter) ([]models.OrderRow, error) {
	if f.Stage != "" && !f.Stage.Valid() {
		return nil, utils.BadRequest(fmt.Sprintf("Unknown order stage %q", f.Stage))
	}
	orders, err := s.LoadOrders(ctx, f.StoreID)
	if err != nil {
		return nil, err
	}

	filtered := orders[:0]
	for _, o := range orders {
		if !f.Date.IsZero() && (o.OrderAt.IsZero() || !utils.SameDay(f.Date, o.OrderAt)) {
			continue
		}
		if f.Stage != "" && o.LatestStage() != f.Stage {
			continue
		}
		filtered = append(filtered, o)
	}

	names, err := s.customerNames(ctx, filtered)
	if err != nil {
		return nil, err
	}

	rows := make([]models.OrderRow, 0, len(filtered))
	for _, o := range filtered {
		row := BuildOrderRow(o, names[o.Key()])
		if f.Search != "" && !rowMatches(row, o, f.Search) {
			continue
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OrderedAt.After(rows[j].OrderedAt)
	})
	return rows, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	doc, err := getDocument(ctx, s.Store, CollectionOrders, id, "Order")
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, utils.Internal("Failed to parse order", err)
	}
	order.ID = doc.ID
	return &order, nil
}

// GetOrderRow returns one order's row including its status timeline.
func (s *OrderService) GetOrderRow(ctx context.Context, id string) (*models.OrderRow, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	names, err := s.customerNames(ctx, []models.Order{*order})
	if err != nil {
		return nil, err
	}
	row := BuildOrderRow(*order, names[order.Key()])
	row.Timeline = order.Timeline()
	return &row, nil
}

// UpdateStatus records a new lifecycle step. Backward moves, repeats and
// changes to a delivered or cancelled order are rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, stage models.OrderStage, message string) (*models.Order, error) {
	if !stage.Valid() {
		return nil, utils.BadRequest(fmt.Sprintf("Unknown order stage %q", stage))
	}
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	from := order.LatestStage()
	if !models.CanTransition(from, stage) {
		return nil, utils.Conflict(fmt.Sprintf("Cannot move order from %q to %q", from, stage))
	}

	if strings.TrimSpace(message) == "" {
		message = defaultStageMessages[stage]
	}
	step := models.StatusStep{Message: message, Timestamp: s.Now()}
	err = s.Store.Merge(ctx, CollectionOrders, order.ID, map[string]interface{}{
		"status": map[string]interface{}{
			string(stage): map[string]interface{}{
				"message":   step.Message,
				"timestamp": step.Timestamp,
			},
		},
	})
	if err != nil {
		return nil, utils.Internal("Failed to update order status", err)
	}

	if order.Status == nil {
		order.Status = make(map[string]models.StatusStep)
	}
	order.Status[string(stage)] = step

	logger.L().Info("order status updated",
		zap.String("order", order.Key()),
		zap.String("from", string(from)),
		zap.String("to", string(stage)))

	if stage == models.StageCancelled {
		s.notifyCancelled(ctx, order, message)
	}
	return order, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, id, message string) (*models.Order, error) {
	return s.UpdateStatus(ctx, id, models.StageCancelled, message)
}

// notifyCancelled pushes to the customer's device. Failures are logged only;
// the cancellation has already been written.
func (s *OrderService) notifyCancelled(ctx context.Context, order *models.Order, message string) {
	if s.Notifications == nil || s.Users == nil || order.UserID == "" {
		return
	}
	users, err := s.Users.GetUsers(ctx, []string{order.UserID})
	if err != nil {
		logger.L().Warn("cancel push: user lookup failed", zap.String("order", order.Key()), zap.Error(err))
		return
	}
	user, ok := users[order.UserID]
	if !ok || user.FCMToken == "" {
		return
	}

	_, err = s.Notifications.Send(ctx, PushMessage{
		Token: user.FCMToken,
		Title: "Order Cancelled ❌",
		Body:  message,
		Data:  map[string]string{"action": "order_cancelled", "orderId": order.Key()},
	})
	if err != nil {
		logger.L().Warn("cancel push failed", zap.String("order", order.Key()), zap.Error(err))
	}
}

// customerNames maps order keys to the customer name on the order, falling
// back to the ordering user's full name.
func (s *OrderService) customerNames(ctx context.Context, orders []models.Order) (map[string]string, error) {
	names := make(map[string]string, len(orders))
	var missing []string
	for _, o := range orders {
		if o.CustomerDetails != nil && o.CustomerDetails.Name != "" {
			names[o.Key()] = o.CustomerDetails.Name
			continue
		}
		missing = append(missing, o.UserID)
	}
	if len(missing) == 0 || s.Users == nil {
		return names, nil
	}

	users, err := s.Users.GetUsers(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if _, ok := names[o.Key()]; ok {
			continue
		}
		if u, ok := users[o.UserID]; ok {
			names[o.Key()] = u.FullName()
		}
	}
	return names, nil
}

// BuildOrderRow derives the table columns for an order.
func BuildOrderRow(o models.Order, customer string) models.OrderRow {
	row := models.OrderRow{
		ID:              o.Key(),
		OrderedAt:       o.OrderAt,
		Store:           o.StoreName,
		Customer:        customer,
		Status:          string(o.LatestStage()),
		Payment:         o.PaymentMethod,
		Total:           o.TotalAmount,
		PlatformFee:     o.PlatformFee,
		DeliveryFee:     o.DeliveryFee,
		StoreCommission: o.Commission,
	}
	if row.Status == "" {
		row.Status = "unknown"
	}
	if row.Store == "" {
		row.Store = o.StoreID
	}

	names := make([]string, 0, len(o.Products))
	for _, p := range o.Products {
		names = append(names, p.Name)
	}
	row.Product = strings.Join(names, ", ")

	if at, ok := o.DeliveredAt(); ok {
		row.DeliveredAt = &at
	}
	if d, ok := o.DeliveryDuration(); ok {
		row.DeliveryTime = models.FormatDuration(d)
	}
	if km, ok := o.DistanceKm(); ok {
		km = math.Round(km*100) / 100
		row.DistanceKm = &km
	}
	return row
}

func rowMatches(row models.OrderRow, o models.Order, search string) bool {
	if utils.ContainsFold(row.ID, search) ||
		utils.ContainsFold(row.Store, search) ||
		utils.ContainsFold(row.Customer, search) {
		return true
	}
	for _, p := range o.Products {
		if utils.ContainsFold(p.Name, search) {
			return true
		}
	}
	return false
}
