package cart

import "context"

// Store holds one user's cart: an ordered item sequence restored from
// Storage on construction and written back in full after every mutation.
// A store is only ever used by the request that loaded it; concurrent
// requests for the same user each load their own copy.
type Store struct {
	key     string
	items   []Item
	storage Storage
}

// Stores hands out per-user cart stores backed by a shared Storage.
type Stores struct {
	storage Storage
}

func NewStores(storage Storage) *Stores { return &Stores{storage: storage} }

// ForUser restores the user's cart from storage. An absent or unreadable
// snapshot restores as an empty cart.
func (s *Stores) ForUser(ctx context.Context, userID string) (*Store, error) {
	items, _, err := s.storage.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Store{key: userID, items: items, storage: s.storage}, nil
}

// Items returns the current item sequence in insertion order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// AddItem merges the item into the cart. An existing line with the same
// (product, size, color) has its quantity increased; otherwise the item
// is appended. Adding an existing line is a merge, not an error.
func (s *Store) AddItem(ctx context.Context, item Item) error {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	merged := false
	for i := range s.items {
		if s.items[i].key() == item.key() {
			s.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, item)
	}
	return s.persist(ctx)
}

// RemoveItem deletes the line matching all three key fields. Removing a
// line that does not exist is a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID int64, size, color string) error {
	k := key{productID: productID, size: size, color: color}
	for i := range s.items {
		if s.items[i].key() == k {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// UpdateQuantity sets the quantity on the matching line, clamped to at
// least 1. Updating a line that does not exist is a no-op; removal is
// RemoveItem's job, not an update to zero.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, quantity int, size, color string) error {
	if quantity < 1 {
		quantity = 1
	}
	k := key{productID: productID, size: size, color: color}
	for i := range s.items {
		if s.items[i].key() == k {
			s.items[i].Quantity = quantity
			return s.persist(ctx)
		}
	}
	return nil
}

// Clear empties the cart and removes its snapshot.
func (s *Store) Clear(ctx context.Context) error {
	s.items = nil
	return s.storage.Delete(ctx, s.key)
}

func (s *Store) persist(ctx context.Context) error {
	return s.storage.Save(ctx, s.key, s.items)
}
