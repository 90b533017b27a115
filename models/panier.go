package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produit is the snapshot of a product captured when it was added to a cart.
// It is intentionally decoupled from any live catalog: re-adding the same
// product overwrites the snapshot with the latest name and price.
type Produit struct {
	ID   int             `json:"id"`
	Nom  string          `json:"nom"`
	Prix decimal.Decimal `json:"prix"`
}

type PanierItem struct {
	ID       int      `json:"id"`
	Produit  *Produit `json:"produit,omitempty"`
	Quantity int      `json:"quantity"`
}

// SousTotal is derived on demand, never stored.
func (i PanierItem) SousTotal() decimal.Decimal {
	if i.Produit == nil {
		return decimal.Zero
	}
	return i.Produit.Prix.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Panier is a user's cart. An empty cart has no persisted representation:
// a missing store record means a fresh empty cart, never an error.
type Panier struct {
	ID        int          `json:"id"`
	UserID    string       `json:"userId"`
	CreatedAt time.Time    `json:"createdAt"`
	Items     []PanierItem `json:"items"`
}

func (p Panier) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.SousTotal())
	}
	return total
}
