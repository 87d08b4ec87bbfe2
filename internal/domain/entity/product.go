package entity

import "github.com/shopspring/decimal"

// Categorías que el backend conoce hoy. La lista es abierta: el cliente las
// usa solo como sugerencia en los formularios, nunca las valida.
const (
	CategoriaElectronica = "electronica"
	CategoriaEscolar     = "escolar"
)

// Product representa un producto del inventario tal como viaja por la API.
// La identidad la asigna el llamador; el servidor no genera IDs.
type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"nombre"`
	Price    decimal.Decimal `json:"precio"`
	Stock    int             `json:"cantidad"`
	Category string          `json:"categoria"`
	MinStock int             `json:"stock_minimo"`
}

// EntityID identidad del producto dentro de la colección local.
func (p Product) EntityID() int { return p.ID }
