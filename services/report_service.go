package services

import (
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
	"math"
	"sort"
	"time"

	"github.com/mmcloughlin/geohash"
)

const (
	DefaultAreaPrecision = 5
	DefaultAreaLimit     = 10
)

// ReportService aggregates orders for the dashboard charts.
type ReportService struct {
	Orders       *OrderService
	FastDelivery time.Duration
	SlowDelivery time.Duration
}

func NewReportService(orders *OrderService, fast, slow time.Duration) *ReportService {
	return &ReportService{Orders: orders, FastDelivery: fast, SlowDelivery: slow}
}

func (s *ReportService) ordersIn(ctx context.Context, r utils.DateRange) ([]models.Order, error) {
	orders, err := s.Orders.LoadOrders(ctx, "")
	if err != nil {
		return nil, err
	}
	in := orders[:0]
	for _, o := range orders {
		if !o.OrderAt.IsZero() && r.Contains(o.OrderAt) {
			in = append(in, o)
		}
	}
	return in, nil
}

func (s *ReportService) StatusBreakdown(ctx context.Context, r utils.DateRange) (*models.StatusBreakdown, error) {
	orders, err := s.ordersIn(ctx, r)
	if err != nil {
		return nil, err
	}
	return summarizeStatuses(orders), nil
}

func summarizeStatuses(orders []models.Order) *models.StatusBreakdown {
	b := &models.StatusBreakdown{ByStage: make(map[string]int)}
	for _, o := range orders {
		b.Total++
		stage := o.LatestStage()
		switch stage {
		case models.StageDelivered:
			b.Delivered++
		case models.StageCancelled:
			b.Cancelled++
		default:
			b.InFlight++
		}
		key := string(stage)
		if key == "" {
			key = "unknown"
		}
		b.ByStage[key]++
	}
	return b
}

// Latency buckets delivered orders by time from placing to delivery.
func (s *ReportService) Latency(ctx context.Context, r utils.DateRange) (*models.LatencyBuckets, error) {
	orders, err := s.ordersIn(ctx, r)
	if err != nil {
		return nil, err
	}
	return bucketLatency(orders, s.FastDelivery, s.SlowDelivery), nil
}

func bucketLatency(orders []models.Order, fast, slow time.Duration) *models.LatencyBuckets {
	b := &models.LatencyBuckets{
		FastMaxMinutes:  int(fast / time.Minute),
		SlowOverMinutes: int(slow / time.Minute),
	}
	var total time.Duration
	var n int
	for _, o := range orders {
		d, ok := o.DeliveryDuration()
		if !ok || d < 0 {
			continue
		}
		switch {
		case d <= fast:
			b.Fast++
		case d > slow:
			b.Slow++
		default:
			b.Mid++
		}
		total += d
		n++
	}
	if n > 0 {
		avg := total.Minutes() / float64(n)
		b.AverageMinutes = math.Round(avg*10) / 10
	}
	return b
}

// TopAreas groups customer locations into geohash cells and returns the
// busiest cells first.
func (s *ReportService) TopAreas(ctx context.Context, r utils.DateRange, precision, limit int) ([]models.AreaCount, error) {
	if precision < 1 || precision > 12 {
		return nil, utils.BadRequest("precision must be between 1 and 12")
	}
	if limit <= 0 {
		limit = DefaultAreaLimit
	}
	orders, err := s.ordersIn(ctx, r)
	if err != nil {
		return nil, err
	}
	return topAreas(orders, uint(precision), limit), nil
}

func topAreas(orders []models.Order, precision uint, limit int) []models.AreaCount {
	counts := make(map[string]int)
	for _, o := range orders {
		c := o.CustomerCoordinates
		if c == nil || !utils.ValidCoordinate(c.Lat, c.Long) {
			continue
		}
		counts[geohash.EncodeWithPrecision(c.Lat, c.Long, precision)]++
	}

	areas := make([]models.AreaCount, 0, len(counts))
	for hash, n := range counts {
		lat, lng := geohash.DecodeCenter(hash)
		areas = append(areas, models.AreaCount{Geohash: hash, Latitude: lat, Longitude: lng, Orders: n})
	}
	sort.Slice(areas, func(i, j int) bool {
		if areas[i].Orders != areas[j].Orders {
			return areas[i].Orders > areas[j].Orders
		}
		return areas[i].Geohash < areas[j].Geohash
	})
	if len(areas) > limit {
		areas = areas[:limit]
	}
	return areas
}

// Daily counts orders per calendar day of the range. Revenue only includes
// delivered orders.
func (s *ReportService) Daily(ctx context.Context, r utils.DateRange) ([]models.DailyCount, error) {
	orders, err := s.ordersIn(ctx, r)
	if err != nil {
		return nil, err
	}
	return dailyCounts(orders, r), nil
}

func dailyCounts(orders []models.Order, r utils.DateRange) []models.DailyCount {
	loc := r.From.Location()
	index := make(map[string]int)
	var days []models.DailyCount
	for day := utils.StartOfDay(r.From); !day.After(r.To); day = day.AddDate(0, 0, 1) {
		key := day.Format(utils.DateLayout)
		index[key] = len(days)
		days = append(days, models.DailyCount{Date: key})
	}

	for _, o := range orders {
		i, ok := index[o.OrderAt.In(loc).Format(utils.DateLayout)]
		if !ok {
			continue
		}
		days[i].Orders++
		switch o.LatestStage() {
		case models.StageDelivered:
			days[i].Delivered++
			days[i].Revenue += o.TotalAmount
		case models.StageCancelled:
			days[i].Cancelled++
		}
	}
	return days
}
