package services

import (
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
	"math"
	"sort"
	"time"
)

const unknownStoreID = "unknown"

type EarningsService struct {
	Store          DocumentStore
	Orders         *OrderService
	CommissionRate float64
	Now            func() time.Time
}

func NewEarningsService(store DocumentStore, orders *OrderService, commissionRate float64) *EarningsService {
	return &EarningsService{
		Store:          store,
		Orders:         orders,
		CommissionRate: commissionRate,
		Now:            time.Now,
	}
}

// DefaultRange is the last seven days including today.
func (s *EarningsService) DefaultRange() utils.DateRange {
	return utils.LastDays(s.Now(), 7)
}

// StoreEarnings aggregates delivered orders placed within r per store,
// highest gross sales first. search matches store name or id.
func (s *EarningsService) StoreEarnings(ctx context.Context, r utils.DateRange, search string) (*models.StoreEarningsReport, error) {
	orders, err := s.Orders.LoadOrders(ctx, "")
	if err != nil {
		return nil, err
	}
	names, err := s.storeNames(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*models.StoreEarning)
	for _, o := range orders {
		if o.OrderAt.IsZero() || !r.Contains(o.OrderAt) || !o.IsDelivered() {
			continue
		}
		id := o.StoreID
		if id == "" {
			id = unknownStoreID
		}
		b, ok := buckets[id]
		if !ok {
			name := names[id]
			if name == "" {
				name = o.StoreName
			}
			if name == "" {
				name = id
			}
			b = &models.StoreEarning{StoreID: id, StoreName: name}
			buckets[id] = b
		}
		b.Orders++
		b.GrossSales += o.TotalAmount
		b.Commission += o.Commission
		b.PlatformFee += o.PlatformFee
		b.DeliveryFee += o.DeliveryFee
	}

	report := &models.StoreEarningsReport{
		From:   r.From.Format(utils.DateLayout),
		To:     r.To.Format(utils.DateLayout),
		Stores: make([]models.StoreEarning, 0, len(buckets)),
	}
	for _, b := range buckets {
		if b.Orders > 0 {
			b.AvgOrderValue = b.GrossSales / float64(b.Orders)
		}
		// the summary covers every store, search only narrows the rows
		report.Summary.Orders += b.Orders
		report.Summary.GrossSales += b.GrossSales
		report.Summary.Commission += b.Commission
		report.Summary.PlatformFee += b.PlatformFee
		report.Summary.DeliveryFee += b.DeliveryFee

		if search != "" && !utils.ContainsFold(b.StoreName, search) && !utils.ContainsFold(b.StoreID, search) {
			continue
		}
		report.Stores = append(report.Stores, *b)
	}
	sort.Slice(report.Stores, func(i, j int) bool {
		if report.Stores[i].GrossSales != report.Stores[j].GrossSales {
			return report.Stores[i].GrossSales > report.Stores[j].GrossSales
		}
		return report.Stores[i].StoreID < report.Stores[j].StoreID
	})
	return report, nil
}

// storeNames maps both document ids and storeId fields to store names.
func (s *EarningsService) storeNames(ctx context.Context) (map[string]string, error) {
	docs, err := s.Store.GetAll(ctx, CollectionStores)
	if err != nil {
		return nil, utils.Internal("Failed to fetch stores", err)
	}
	names := make(map[string]string, len(docs))
	for _, doc := range docs {
		name, _ := doc.Data["name"].(string)
		names[doc.ID] = name
		if id, ok := doc.Data["storeId"].(string); ok && id != "" {
			names[id] = name
		}
	}
	return names, nil
}

// Commission is the platform's cut of total, rounded up to a whole unit.
func Commission(total, rate float64) float64 {
	// Round away float noise first so 200 × 0.075 stays 15.
	return math.Ceil(math.Round(total*rate*1e6) / 1e6)
}

// Statement lists a store's delivered orders with commission and net payout.
// A nil range includes every delivered order.
func (s *EarningsService) Statement(ctx context.Context, storeID string, r *utils.DateRange) (*models.StoreStatement, error) {
	doc, err := getDocument(ctx, s.Store, CollectionStores, storeID, "Store")
	if err != nil {
		return nil, err
	}
	storeName, _ := doc.Data["name"].(string)

	docs, err := s.Store.Query(ctx, CollectionOrders, Query{
		Conditions: []Condition{
			Where("storeId", "==", storeID),
			Where("status.delivered", "!=", nil),
		},
	})
	if err != nil {
		return nil, utils.Internal("Failed to fetch orders", err)
	}
	orders, err := decodeDocs(docs, func(o *models.Order, id string) { o.ID = id })
	if err != nil {
		return nil, utils.Internal("Failed to parse orders", err)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderAt.Before(orders[j].OrderAt)
	})

	st := &models.StoreStatement{
		StoreID:        storeID,
		StoreName:      storeName,
		CommissionRate: s.CommissionRate,
		Lines:          make([]models.StatementLine, 0, len(orders)),
	}
	for _, o := range orders {
		if r != nil && (o.OrderAt.IsZero() || !r.Contains(o.OrderAt)) {
			continue
		}
		total := o.Subtotal()
		commission := Commission(total, s.CommissionRate)
		line := models.StatementLine{
			OrderID:     o.Key(),
			Products:    o.Products,
			TotalAmount: total,
			Commission:  commission,
			NetAmount:   total - commission,
		}
		if !o.OrderAt.IsZero() {
			line.OrderAt = o.OrderAt.Format(time.RFC3339)
		}
		st.Lines = append(st.Lines, line)
		st.TotalAmount += total
		st.TotalNetAmount += line.NetAmount
	}
	return st, nil
}

func (s *EarningsService) MiddlemanEarnings(ctx context.Context, middlemanID string) ([]models.MiddlemanEarning, error) {
	if err := ensureExists(ctx, s.Store, CollectionMiddlemen, middlemanID, "Middleman"); err != nil {
		return nil, err
	}
	docs, err := s.Store.GetAll(ctx, earningsCollection(middlemanID))
	if err != nil {
		return nil, utils.Internal("Failed to fetch earnings", err)
	}
	earnings, err := decodeDocs(docs, func(e *models.MiddlemanEarning, id string) { e.ID = id })
	if err != nil {
		return nil, utils.Internal("Failed to parse earnings", err)
	}
	sort.SliceStable(earnings, func(i, j int) bool {
		return earnings[i].Date > earnings[j].Date
	})
	return earnings, nil
}

// MiddlemanSummary joins a middleman's earnings entries dated within r to
// their orders. Entries whose order no longer exists are left out, revenue
// is the order total and search matches the order id or a product name.
func (s *EarningsService) MiddlemanSummary(ctx context.Context, middlemanID string, r utils.DateRange, search string) (*models.MiddlemanEarningSummary, error) {
	earnings, err := s.MiddlemanEarnings(ctx, middlemanID)
	if err != nil {
		return nil, err
	}
	orders, err := s.Orders.LoadOrders(ctx, "")
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		if o.OrderID != "" {
			byID[o.OrderID] = o
		}
	}

	sum := &models.MiddlemanEarningSummary{
		MiddlemanID: middlemanID,
		From:        r.From.Format(utils.DateLayout),
		To:          r.To.Format(utils.DateLayout),
		Entries:     []models.MiddlemanSale{},
	}
	for _, e := range earnings {
		order, ok := byID[e.OrderID]
		if !ok || e.OrderID == "" {
			continue
		}
		day, err := time.ParseInLocation(utils.DateLayout, e.Date, r.From.Location())
		if err != nil || !r.Contains(day) {
			continue
		}
		if search != "" && !saleMatches(e, order, search) {
			continue
		}
		sum.Deliveries++
		sum.TotalRevenue += order.TotalAmount
		sum.TotalEarning += e.Earning
		sum.Entries = append(sum.Entries, models.MiddlemanSale{MiddlemanEarning: e, Order: order})
	}
	return sum, nil
}

func saleMatches(e models.MiddlemanEarning, o models.Order, search string) bool {
	if utils.ContainsFold(e.OrderID, search) {
		return true
	}
	for _, p := range o.Products {
		if utils.ContainsFold(p.Name, search) {
			return true
		}
	}
	return false
}
