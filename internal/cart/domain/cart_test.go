package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(id string, price int64) ItemRef {
	return ItemRef{ID: id, Name: "item " + id, Price: decimal.NewFromInt(price)}
}

func TestLineTotalsAndSubtotal(t *testing.T) {
	c := Cart{Items: []CartItem{
		{Item: ref("b", 1500), Quantity: 2},
		{Item: ItemRef{ID: "a", Price: decimal.RequireFromString("999.50")}, Quantity: 3},
	}}

	assert.True(t, c.Items[0].LineTotal().Equal(decimal.NewFromInt(3000)))
	assert.True(t, c.Items[1].LineTotal().Equal(decimal.RequireFromString("2998.50")))
	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("5998.50")))
}

func TestSortedOrdersByItemID(t *testing.T) {
	c := Cart{Items: []CartItem{
		{Item: ref("c", 1), Quantity: 1},
		{Item: ref("a", 1), Quantity: 1},
		{Item: ref("b", 1), Quantity: 0},
	}}

	got := c.Sorted()
	require.Len(t, got.Items, 2)
	assert.Equal(t, "a", got.Items[0].Item.ID)
	assert.Equal(t, "c", got.Items[1].Item.ID)
	assert.Len(t, c.Items, 3, "Sorted must not mutate the receiver")
}

func TestApplyMutations(t *testing.T) {
	base := Cart{}.ApplyAdd(ref("b", 1000), 2).ApplyAdd(ref("a", 500), 1)

	t.Run("add existing -> quantity increased", func(t *testing.T) {
		got := base.ApplyAdd(ref("b", 1000), 3)
		line, ok := got.Line("b")
		require.True(t, ok)
		assert.Equal(t, 5, line.Quantity)
		assert.True(t, line.LineTotal().Equal(decimal.NewFromInt(5000)))
	})

	t.Run("remove partial -> decreased", func(t *testing.T) {
		line, _ := base.ApplyRemove("b", 1).Line("b")
		assert.Equal(t, 1, line.Quantity)
	})

	t.Run("remove more than held -> line gone", func(t *testing.T) {
		_, ok := base.ApplyRemove("b", 10).Line("b")
		assert.False(t, ok)
	})

	t.Run("delete -> line gone regardless of quantity", func(t *testing.T) {
		got := base.ApplyDelete("a")
		_, ok := got.Line("a")
		assert.False(t, ok)
		assert.Len(t, got.Items, 1)
	})

	t.Run("lines stay sorted", func(t *testing.T) {
		assert.Equal(t, "a", base.Items[0].Item.ID)
		assert.Equal(t, "b", base.Items[1].Item.ID)
	})
}
