package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ovees/eleganza-backend/pkg/types"
)

func TestSummarizeBelowThresholdChargesDelivery(t *testing.T) {
	items := types.LineItems{
		{Key: "1", UnitPrice: 100, Quantity: 2},
		{Key: "2", UnitPrice: 50, Quantity: 1},
	}

	summary := Summarize(items)

	assert.Equal(t, 250.0, summary.Subtotal)
	assert.Equal(t, 25.0, summary.Discount)
	assert.Equal(t, 50.0, summary.DeliveryFee)
	assert.Equal(t, 275.0, summary.Total)
	assert.Equal(t, 3, summary.ItemCount)
	assert.False(t, summary.FreeDelivery)
}

func TestSummarizeThresholdIsExclusive(t *testing.T) {
	atThreshold := Summarize(types.LineItems{{Key: "1", UnitPrice: 500, Quantity: 1}})
	assert.Equal(t, 50.0, atThreshold.DeliveryFee)
	assert.Equal(t, 500.0, atThreshold.Total)

	justAbove := Summarize(types.LineItems{{Key: "1", UnitPrice: 500.01, Quantity: 1}})
	assert.Equal(t, 0.0, justAbove.DeliveryFee)
	assert.True(t, justAbove.FreeDelivery)
}

func TestSummarizeEmptyCart(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.Discount)
	assert.Equal(t, 50.0, summary.DeliveryFee)
	assert.Equal(t, 50.0, summary.Total)
	assert.Equal(t, 0, summary.ItemCount)
}

func TestSummarizeIsDeterministicInSnapshot(t *testing.T) {
	items := types.LineItems{
		{Key: "1", UnitPrice: 213, Quantity: 3},
		{Key: "combo-2", UnitPrice: 450, Quantity: 1},
	}

	assert.Equal(t, Summarize(items), Summarize(items))
}

func TestSummarizeCountsQuantitiesNotLines(t *testing.T) {
	items := types.LineItems{
		{Key: "1", UnitPrice: 10, Quantity: 4},
		{Key: "2", UnitPrice: 10, Quantity: 6},
	}

	assert.Equal(t, 10, Summarize(items).ItemCount)
}
