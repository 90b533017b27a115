package models

import "github.com/shopspring/decimal"

type ProduitDTO struct {
	ID   int             `json:"id"`
	Nom  string          `json:"nom"`
	Prix decimal.Decimal `json:"prix"`
}

type PanierItemDTO struct {
	ID        int             `json:"id"`
	Quantity  int             `json:"quantity"`
	SousTotal decimal.Decimal `json:"sousTotal"`
	Produit   *ProduitDTO     `json:"produit,omitempty"`
}

type PanierDTO struct {
	ID     int             `json:"id"`
	UserID string          `json:"userId"`
	Items  []PanierItemDTO `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

type AddItemRequest struct {
	ID       int             `json:"id"`
	Nom      string          `json:"nom"`
	Prix     decimal.Decimal `json:"prix"`
	Quantity int             `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
