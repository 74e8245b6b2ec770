package engine

import (
	"sort"
	"strings"
)

// Shop: diamond sinks. Items are user-defined, a purchase deducts the
// cost, applies the item's effect and logs a purchase record.

type ShopItemInput struct {
	Name            string
	Description     string
	Cost            int
	Effect          Delta
	NarrativeAction string
}

func (s *Service) CreateShopItem(in ShopItemInput) ShopItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := &ShopItem{
		ID:              newID("item"),
		Name:            in.Name,
		Description:     in.Description,
		Cost:            in.Cost,
		Effect:          in.Effect,
		NarrativeAction: in.NarrativeAction,
		CreatedAt:       s.nowISO(),
	}
	s.state.ShopItems[it.ID] = it
	s.afterMutation()
	return *it
}

func (s *Service) UpdateShopItem(id string, in ShopItemInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.state.ShopItems[id]
	if !ok {
		return
	}
	if in.Name != "" {
		it.Name = in.Name
	}
	if in.Description != "" {
		it.Description = in.Description
	}
	if in.Cost > 0 {
		it.Cost = in.Cost
	}
	if !in.Effect.IsZero() {
		it.Effect = in.Effect
	}
	if in.NarrativeAction != "" {
		it.NarrativeAction = in.NarrativeAction
	}
	s.afterMutation()
}

func (s *Service) DeleteShopItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.ShopItems, id)
	s.afterMutation()
}

// Purchase buys a shop item. Refused (no-op) when the balance does not
// cover the cost; the balance never goes negative through the shop.
func (s *Service) Purchase(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.shopItemByPrefixLocked(id)
	if it == nil {
		return false
	}
	if s.state.Diamonds < it.Cost {
		return false
	}

	s.state.Diamonds -= it.Cost
	s.applyStatsDelta(it.Effect)
	s.state.PurchaseHistory = append(s.state.PurchaseHistory, PurchaseRecord{
		ID:           newID("buy"),
		ItemID:       it.ID,
		ItemName:     it.Name,
		Cost:         it.Cost,
		PurchaseDate: s.nowISO(),
	})
	s.afterMutation()
	return true
}

func (s *Service) shopItemByPrefixLocked(idOrPrefix string) *ShopItem {
	if it, ok := s.state.ShopItems[idOrPrefix]; ok {
		return it
	}
	var match *ShopItem
	for _, it := range s.state.ShopItems {
		if strings.HasPrefix(it.ID, idOrPrefix) {
			if match != nil {
				return nil
			}
			match = it
		}
	}
	return match
}

func (s *Service) ShopItemList() []ShopItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ShopItem
	for _, it := range s.state.ShopItems {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Service) PurchaseHistory() []PurchaseRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PurchaseRecord(nil), s.state.PurchaseHistory...)
}
