package engine

import "context"

// PurchaseItem spends available points on a shop item. It returns false,
// leaving state untouched, when the item is unknown, already purchased,
// still locked, or the balance is short. Purchases draw only from
// availablePoints; totalPoints is immutable lifetime earnings.
func (r *Repository) PurchaseItem(ctx context.Context, id string) bool {
	state := r.store.Load(ctx)

	item := state.FindShopItem(id)
	if item == nil || item.Purchased || !item.Unlocked {
		return false
	}
	if state.UserData.AvailablePoints < item.Price {
		return false
	}

	item.Purchased = true
	state.UserData.AvailablePoints -= item.Price
	state.UserData.PurchasedItems = append(state.UserData.PurchasedItems, item.ID)

	r.store.Save(ctx, state)
	return true
}
