package service

import (
	"fmt"

	"p9e.in/sitehub/models"
)

// StockItems returns the current stock snapshot, optionally filtered by site.
func (s *Service) StockItems(siteID string) []models.StockItem {
	out := []models.StockItem{}
	for _, item := range s.store.Stock.List() {
		if siteID != "" && item.SiteID != siteID {
			continue
		}
		out = append(out, item)
	}
	return out
}

// MoveStock applies an in/out movement to one item. "in" adds, "out"
// subtracts flooring at zero; the derived status is recomputed in the same
// swap so readers never see quantity and status disagree.
func (s *Service) MoveStock(id string, qty float64, direction models.StockDirection) (models.StockItem, error) {
	if qty <= 0 {
		return models.StockItem{}, fmt.Errorf("%w: movement quantity must be positive", ErrValidation)
	}
	if direction != models.StockIn && direction != models.StockOut {
		return models.StockItem{}, fmt.Errorf("%w: unknown stock direction %q", ErrValidation, direction)
	}

	var updated models.StockItem
	err := s.store.Stock.Mutate(func(current []models.StockItem) ([]models.StockItem, error) {
		next := make([]models.StockItem, len(current))
		found := false
		for i, item := range current {
			if item.ID == id {
				found = true
				if direction == models.StockIn {
					item.Quantity += qty
				} else {
					item.Quantity -= qty
					if item.Quantity < 0 {
						item.Quantity = 0
					}
				}
				item.Status = models.DeriveStockStatus(item.Quantity, item.ReorderLevel)
				item.LastUpdated = s.now()
				item.LastMovement = direction
				item.LastQty = qty
				updated = item
			}
			next[i] = item
		}
		if !found {
			return nil, fmt.Errorf("%w: stock item %s", ErrNotFound, id)
		}
		return next, nil
	})
	if err != nil {
		return models.StockItem{}, err
	}

	s.committed("stock", id, "moved_"+string(direction))
	return updated, nil
}

// CreateStockItemPayload is the input for CreateStockItem.
type CreateStockItemPayload struct {
	SiteID       string  `json:"siteId"`
	MaterialName string  `json:"materialName" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"gte=0"`
	Unit         string  `json:"unit" validate:"required"`
	Location     string  `json:"location"`
	ReorderLevel float64 `json:"reorderLevel" validate:"gte=0"`
}

// CreateStockItem registers a new material in the stock register with its
// status derived from the opening quantity.
func (s *Service) CreateStockItem(p CreateStockItemPayload) (models.StockItem, error) {
	if err := s.checkPayload(p); err != nil {
		return models.StockItem{}, err
	}

	item := models.StockItem{
		ID:           s.newID(),
		SiteID:       p.SiteID,
		MaterialName: p.MaterialName,
		Quantity:     p.Quantity,
		Unit:         p.Unit,
		Location:     p.Location,
		LastUpdated:  s.now(),
		ReorderLevel: p.ReorderLevel,
		Status:       models.DeriveStockStatus(p.Quantity, p.ReorderLevel),
	}

	err := s.store.Stock.Mutate(func(current []models.StockItem) ([]models.StockItem, error) {
		return append(append([]models.StockItem(nil), current...), item), nil
	})
	if err != nil {
		return models.StockItem{}, err
	}

	s.committed("stock", item.ID, "created")
	return item, nil
}
