package services

import (
	"context"
	"fmt"
	"time"

	"panier-api/models"
	"panier-api/repositories"

	"github.com/shopspring/decimal"
)

// PanierService is the cart mutation engine. Every operation runs a full
// load-modify-save cycle against Redis with no cross-request locking: when two
// requests for the same user interleave, the last writer wins and the earlier
// write is silently overwritten. That is the accepted consistency contract of
// the backing store, not a bug.
type PanierService struct {
	repo *repositories.PanierRepository
}

func NewPanierService(repo *repositories.PanierRepository) *PanierService {
	return &PanierService{repo: repo}
}

func (s *PanierService) GetPanier(ctx context.Context, userID string) (*models.PanierDTO, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidArgument)
	}

	panier := s.repo.Get(ctx, userID)
	if panier == nil {
		panier = newPanier(userID)
	}
	return mapToDTO(panier), nil
}

// AddItem accumulates quantity when the product is already in the cart and
// refreshes its snapshot with the incoming name and price. New items get the
// next identifier scoped to this cart.
func (s *PanierService) AddItem(ctx context.Context, userID string, req models.AddItemRequest) (*models.PanierDTO, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidArgument)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", ErrInvalidArgument)
	}

	panier := s.repo.Get(ctx, userID)
	if panier == nil {
		panier = newPanier(userID)
	}

	snapshot := &models.Produit{
		ID:   req.ID,
		Nom:  req.Nom,
		Prix: req.Prix,
	}

	if existing := findItem(panier, req.ID); existing != nil {
		existing.Quantity += req.Quantity
		existing.Produit = snapshot
	} else {
		panier.Items = append(panier.Items, models.PanierItem{
			ID:       generateItemID(panier),
			Quantity: req.Quantity,
			Produit:  snapshot,
		})
	}

	if err := s.repo.Save(ctx, panier); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return mapToDTO(panier), nil
}

// UpdateItemQuantity is an absolute set, not an accumulation. Quantity 0
// removes the item, and a cart left empty has its record deleted instead of
// being stored as an empty list.
func (s *PanierService) UpdateItemQuantity(ctx context.Context, userID string, produitID, quantity int) (*models.PanierDTO, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidArgument)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidArgument)
	}

	panier := s.repo.Get(ctx, userID)
	if panier == nil {
		return nil, fmt.Errorf("%w: no cart for user %s", ErrNotFound, userID)
	}

	item := findItem(panier, produitID)
	if item == nil {
		return nil, fmt.Errorf("%w: product %d not in cart", ErrNotFound, produitID)
	}

	if quantity == 0 {
		removeItem(panier, produitID)
	} else {
		item.Quantity = quantity
	}

	if err := s.persistOrDelete(ctx, panier); err != nil {
		return nil, err
	}
	return mapToDTO(panier), nil
}

// RemoveItem is idempotent: removing a product that is not in the cart (or a
// cart that does not exist) is a harmless no-op returning the current view.
func (s *PanierService) RemoveItem(ctx context.Context, userID string, produitID int) (*models.PanierDTO, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidArgument)
	}

	panier := s.repo.Get(ctx, userID)
	if panier == nil {
		panier = newPanier(userID)
	}

	if findItem(panier, produitID) != nil {
		removeItem(panier, produitID)
		if err := s.persistOrDelete(ctx, panier); err != nil {
			return nil, err
		}
	}
	return mapToDTO(panier), nil
}

// ClearPanier deletes the stored record unconditionally. No read is needed and
// clearing an absent cart succeeds.
func (s *PanierService) ClearPanier(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidArgument)
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (s *PanierService) persistOrDelete(ctx context.Context, panier *models.Panier) error {
	if len(panier.Items) == 0 {
		if err := s.repo.Delete(ctx, panier.UserID); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return nil
	}
	if err := s.repo.Save(ctx, panier); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func newPanier(userID string) *models.Panier {
	return &models.Panier{
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		Items:     []models.PanierItem{},
	}
}

func findItem(panier *models.Panier, produitID int) *models.PanierItem {
	for i := range panier.Items {
		if panier.Items[i].Produit != nil && panier.Items[i].Produit.ID == produitID {
			return &panier.Items[i]
		}
	}
	return nil
}

func removeItem(panier *models.Panier, produitID int) {
	for i := range panier.Items {
		if panier.Items[i].Produit != nil && panier.Items[i].Produit.ID == produitID {
			panier.Items = append(panier.Items[:i], panier.Items[i+1:]...)
			return
		}
	}
}

// generateItemID assigns max existing id + 1, or 1 for an empty cart. Ids are
// unique within a single cart only; concurrent load-modify-save cycles may
// hand out the same id, which the last-writer-wins contract accepts.
func generateItemID(panier *models.Panier) int {
	maxID := 0
	for _, item := range panier.Items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1
}

// mapToDTO projects the aggregate into the external view. A nil aggregate maps
// to an empty view with a zero id, never an error.
func mapToDTO(panier *models.Panier) *models.PanierDTO {
	if panier == nil {
		return &models.PanierDTO{Items: []models.PanierItemDTO{}, Total: decimal.Zero}
	}

	items := make([]models.PanierItemDTO, 0, len(panier.Items))
	for _, item := range panier.Items {
		dto := models.PanierItemDTO{
			ID:        item.ID,
			Quantity:  item.Quantity,
			SousTotal: item.SousTotal(),
		}
		if item.Produit != nil {
			dto.Produit = &models.ProduitDTO{
				ID:   item.Produit.ID,
				Nom:  item.Produit.Nom,
				Prix: item.Produit.Prix,
			}
		}
		items = append(items, dto)
	}

	return &models.PanierDTO{
		ID:     panier.ID,
		UserID: panier.UserID,
		Items:  items,
		Total:  panier.Total(),
	}
}
