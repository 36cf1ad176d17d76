package cart

import (
	"fmt"
	"sync"
	"testing"

	"github.com/grocito/grocito/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestStore_Get_EmptyCart(t *testing.T) {
	store := New()

	cart := store.Get(1)

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Subtotal)
}

func TestStore_SetItem_AddAndSubtotal(t *testing.T) {
	store := New()

	store.SetItem(1, model.CartItem{ProductID: "milk", Name: "Milk 1L", Price: 60, Quantity: 2})
	store.SetItem(1, model.CartItem{ProductID: "bread", Name: "Bread", Price: 35.5, Quantity: 1})

	cart := store.Get(1)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 155.5, cart.Subtotal)
}

func TestStore_SetItem_UpdateQuantity(t *testing.T) {
	store := New()

	store.SetItem(1, model.CartItem{ProductID: "milk", Price: 60, Quantity: 2})
	store.SetItem(1, model.CartItem{ProductID: "milk", Price: 60, Quantity: 5})

	cart := store.Get(1)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 300.0, cart.Subtotal)
}

func TestStore_SetItem_ZeroQuantityRemoves(t *testing.T) {
	store := New()

	store.SetItem(1, model.CartItem{ProductID: "milk", Price: 60, Quantity: 2})
	store.SetItem(1, model.CartItem{ProductID: "milk", Price: 60, Quantity: 0})

	cart := store.Get(1)

	assert.Empty(t, cart.Items)
}

func TestStore_SetItem_ZeroQuantityOnMissingItem(t *testing.T) {
	store := New()

	store.SetItem(1, model.CartItem{ProductID: "milk", Price: 60, Quantity: 0})

	assert.Empty(t, store.Get(1).Items)
}

func TestStore_Clear(t *testing.T) {
	store := New()

	store.SetItem(1, model.CartItem{ProductID: "milk", Price: 60, Quantity: 2})
	store.Clear(1)

	cart := store.Get(1)

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Subtotal)
}

func TestStore_IsolatedPerUser(t *testing.T) {
	store := New()

	store.SetItem(1, model.CartItem{ProductID: "milk", Price: 60, Quantity: 1})
	store.SetItem(2, model.CartItem{ProductID: "eggs", Price: 90, Quantity: 1})

	assert.Len(t, store.Get(1).Items, 1)
	assert.Equal(t, "milk", store.Get(1).Items[0].ProductID)
	assert.Equal(t, "eggs", store.Get(2).Items[0].ProductID)
}

func TestStore_Get_ReturnsCopy(t *testing.T) {
	store := New()

	store.SetItem(1, model.CartItem{ProductID: "milk", Price: 60, Quantity: 1})

	cart := store.Get(1)
	cart.Items[0].Quantity = 99

	assert.Equal(t, 1, store.Get(1).Items[0].Quantity)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := int64(i % 5)
			store.SetItem(userID, model.CartItem{
				ProductID: fmt.Sprintf("product-%d", i),
				Price:     10,
				Quantity:  1,
			})
			store.Get(userID)
		}(i)
	}
	wg.Wait()

	for userID := int64(0); userID < 5; userID++ {
		assert.Len(t, store.Get(userID).Items, 10)
	}
}
