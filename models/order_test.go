package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var placedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func step(offset time.Duration) StatusStep {
	return StatusStep{Message: "step", Timestamp: placedAt.Add(offset)}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from, to OrderStage
		want     bool
	}{
		{"place new order", "", StageOrdered, true},
		{"skip placing", "", StageAccepted, false},
		{"cancel before placing", "", StageCancelled, true},
		{"accept", StageOrdered, StageAccepted, true},
		{"skip ahead", StageAccepted, StageDelivering, true},
		{"move backwards", StagePrepared, StageAccepted, false},
		{"repeat stage", StageAssigned, StageAssigned, false},
		{"cancel in flight", StageDelivering, StageCancelled, true},
		{"after delivery", StageDelivered, StageCancelled, false},
		{"after cancel", StageCancelled, StageDelivered, false},
		{"unknown target", StageOrdered, OrderStage("lost"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestOrder_LatestStage(t *testing.T) {
	o := Order{Status: map[string]StatusStep{
		"ordered":  step(0),
		"accepted": step(2 * time.Minute),
		"prepared": step(10 * time.Minute),
	}}
	assert.Equal(t, StagePrepared, o.LatestStage())

	// equal timestamps resolve by lifecycle order
	o.Status["assigned"] = step(10 * time.Minute)
	assert.Equal(t, StageAssigned, o.LatestStage())

	assert.Equal(t, OrderStage(""), Order{}.LatestStage())
}

func TestOrder_DeliveryDuration(t *testing.T) {
	o := Order{
		OrderAt: placedAt,
		Status: map[string]StatusStep{
			"ordered":   step(0),
			"delivered": step(65 * time.Minute),
		},
	}
	d, ok := o.DeliveryDuration()
	assert.True(t, ok)
	assert.Equal(t, 65*time.Minute, d)
	assert.Equal(t, "1h 5m", FormatDuration(d))

	_, ok = Order{OrderAt: placedAt}.DeliveryDuration()
	assert.False(t, ok)
}

func TestOrder_DistanceKm(t *testing.T) {
	o := Order{
		CustomerCoordinates: &Coordinates{Lat: 24.868978, Long: 92.364217},
		StoreCoordinates:    &Coordinates{Lat: 24.862601, Long: 92.371676},
	}
	km, ok := o.DistanceKm()
	assert.True(t, ok)
	assert.InDelta(t, 1.0, km, 0.1)

	o.StoreCoordinates = nil
	_, ok = o.DistanceKm()
	assert.False(t, ok)

	o.StoreCoordinates = &Coordinates{Lat: 120, Long: 0}
	_, ok = o.DistanceKm()
	assert.False(t, ok)
}

func TestOrder_SubtotalAndTimeline(t *testing.T) {
	o := Order{
		Products: []OrderProduct{
			{Name: "Biryani", Price: 180, Quantity: 2},
			{Name: "Lassi", Price: 45.5, Quantity: 1},
		},
		Status: map[string]StatusStep{
			"delivered": step(40 * time.Minute),
			"ordered":   step(0),
			"accepted":  step(time.Minute),
		},
	}
	assert.InDelta(t, 405.5, o.Subtotal(), 1e-9)

	timeline := o.Timeline()
	if assert.Len(t, timeline, 3) {
		assert.Equal(t, StageOrdered, timeline[0].Stage)
		assert.Equal(t, StageAccepted, timeline[1].Stage)
		assert.Equal(t, StageDelivered, timeline[2].Stage)
	}
}

func TestOrder_Key(t *testing.T) {
	assert.Equal(t, "ORD-1", Order{ID: "doc", OrderID: "ORD-1"}.Key())
	assert.Equal(t, "doc", Order{ID: "doc"}.Key())
}
