package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(t *testing.T, areaLabel string) *order.Order {
	t.Helper()
	area, err := kernel.NewArea(areaLabel)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-20260831-0001",
		order.Customer{Name: "Jane Doe", Phone: "+1-555-0101", Address: "12 Main St"},
		area,
		[]order.Item{{Name: "Margherita", Quantity: 1, Price: 899}},
		kernel.MustNewTimeOfDay("12:30"),
	)
	require.NoError(t, err)
	return o
}

func makePartner(t *testing.T, name string, load int, shiftStart, shiftEnd string, areaLabels ...string) *partner.Partner {
	t.Helper()
	areas := make([]kernel.Area, 0, len(areaLabels))
	for _, label := range areaLabels {
		a, err := kernel.NewArea(label)
		require.NoError(t, err)
		areas = append(areas, a)
	}
	shift, err := kernel.NewShiftWindow(
		kernel.MustNewTimeOfDay(shiftStart),
		kernel.MustNewTimeOfDay(shiftEnd),
	)
	require.NoError(t, err)
	p, err := partner.RestorePartner(
		kernel.NewUUID(), name, name+"@example.com", "+1-555-0100",
		partner.StatusActive, load, areas, shift, partner.Metrics{}, 1,
	)
	require.NoError(t, err)
	return p
}

func TestOrderDispatcher_IsEligible(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()
	testOrder := makeOrder(t, "South Zone")
	noon := kernel.MustNewTimeOfDay("12:00")

	t.Run("active on-shift covering partner with capacity is eligible", func(t *testing.T) {
		p := makePartner(t, "alex", 1, "09:00", "17:00", "South Zone")

		assert.True(t, dispatcher.IsEligible(p, testOrder, noon))
	})

	t.Run("inactive partner is not eligible", func(t *testing.T) {
		p := makePartner(t, "alex", 1, "09:00", "17:00", "South Zone")
		p.Deactivate()

		assert.False(t, dispatcher.IsEligible(p, testOrder, noon))
	})

	t.Run("partner at capacity ceiling is not eligible", func(t *testing.T) {
		p := makePartner(t, "alex", partner.MaxConcurrentOrders, "09:00", "17:00", "South Zone")

		assert.False(t, dispatcher.IsEligible(p, testOrder, noon))
	})

	t.Run("partner not covering the area is not eligible", func(t *testing.T) {
		p := makePartner(t, "alex", 0, "09:00", "17:00", "North Zone")

		assert.False(t, dispatcher.IsEligible(p, testOrder, noon))
	})

	t.Run("area comparison ignores case and whitespace", func(t *testing.T) {
		p := makePartner(t, "alex", 0, "09:00", "17:00", "South Zone")
		o := makeOrder(t, "southzone")

		assert.True(t, dispatcher.IsEligible(p, o, noon))
	})

	t.Run("off-shift partner is not eligible", func(t *testing.T) {
		p := makePartner(t, "alex", 0, "09:00", "17:00", "South Zone")

		assert.False(t, dispatcher.IsEligible(p, testOrder, kernel.MustNewTimeOfDay("18:00")))
	})

	t.Run("overnight shift wraps midnight", func(t *testing.T) {
		p := makePartner(t, "owl", 0, "22:00", "06:00", "South Zone")

		assert.True(t, dispatcher.IsEligible(p, testOrder, kernel.MustNewTimeOfDay("23:30")))
		assert.False(t, dispatcher.IsEligible(p, testOrder, kernel.MustNewTimeOfDay("12:00")))
	})
}

func TestOrderDispatcher_SelectPartner(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()

	t.Run("picks minimum load", func(t *testing.T) {
		busy := makePartner(t, "busy", 2, "09:00", "17:00", "South Zone")
		free := makePartner(t, "free", 0, "09:00", "17:00", "South Zone")

		selected := dispatcher.SelectPartner([]*partner.Partner{busy, free})

		require.NotNil(t, selected)
		assert.True(t, free.IsEqual(selected))
	})

	t.Run("ties break by input order", func(t *testing.T) {
		first := makePartner(t, "first", 1, "09:00", "17:00", "South Zone")
		second := makePartner(t, "second", 1, "09:00", "17:00", "South Zone")

		selected := dispatcher.SelectPartner([]*partner.Partner{first, second})

		require.NotNil(t, selected)
		assert.True(t, first.IsEqual(selected))
	})

	t.Run("empty set yields nil", func(t *testing.T) {
		assert.Nil(t, dispatcher.SelectPartner(nil))
	})
}

func TestOrderDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()
	noon := kernel.MustNewTimeOfDay("12:00")

	t.Run("assigns order and increments partner load", func(t *testing.T) {
		testOrder := makeOrder(t, "South Zone")
		p := makePartner(t, "alex", 1, "09:00", "17:00", "South Zone")

		selected, err := dispatcher.Dispatch(testOrder, []*partner.Partner{p}, noon)

		require.NoError(t, err)
		assert.True(t, p.IsEqual(selected))
		assert.Equal(t, 2, selected.CurrentLoad())
		assert.Equal(t, order.Assigned, testOrder.Status())
		require.NotNil(t, testOrder.Partner())
		assert.True(t, p.ID().IsEqual(*testOrder.Partner()))
	})

	t.Run("no eligible partner leaves order untouched", func(t *testing.T) {
		testOrder := makeOrder(t, "South Zone")
		offShift := makePartner(t, "alex", 0, "09:00", "11:00", "South Zone")

		_, err := dispatcher.Dispatch(testOrder, []*partner.Partner{offShift}, noon)

		require.ErrorIs(t, err, services.ErrNoEligiblePartner)
		assert.Equal(t, order.Pending, testOrder.Status())
		assert.Nil(t, testOrder.Partner())
	})

	t.Run("empty partner set", func(t *testing.T) {
		testOrder := makeOrder(t, "South Zone")

		_, err := dispatcher.Dispatch(testOrder, nil, noon)

		require.ErrorIs(t, err, services.ErrNoEligiblePartner)
	})

	t.Run("rejects non-pending order", func(t *testing.T) {
		testOrder := makeOrder(t, "South Zone")
		require.NoError(t, testOrder.Assign(kernel.NewUUID()))
		p := makePartner(t, "alex", 0, "09:00", "17:00", "South Zone")

		_, err := dispatcher.Dispatch(testOrder, []*partner.Partner{p}, noon)

		require.Error(t, err)
		assert.Equal(t, 0, p.CurrentLoad())
	})

	t.Run("rejects unconstructed partner", func(t *testing.T) {
		testOrder := makeOrder(t, "South Zone")

		_, err := dispatcher.Dispatch(testOrder, []*partner.Partner{{}}, noon)

		require.ErrorIs(t, err, partner.ErrPartnerIsNotConstructed)
	})
}
