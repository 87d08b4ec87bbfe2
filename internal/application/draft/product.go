package draft

import "github.com/tu-usuario/gestor-inventario/internal/domain/entity"

// ProductDraft borrador de producto. El valor cero es la forma vacía
// canónica: strings vacíos y campos numéricos sin editar.
type ProductDraft struct {
	ID       IntField     `json:"id"`
	Name     string       `json:"nombre"`
	Price    DecimalField `json:"precio"`
	Stock    IntField     `json:"cantidad"`
	Category string       `json:"categoria"`
	MinStock IntField     `json:"stock_minimo"`
}

// Set reemplaza un campo por su nombre de wire y devuelve el snapshot nuevo.
// Los campos numéricos se parsean en el momento de la edición. Un nombre
// desconocido devuelve el borrador sin cambios.
func (d ProductDraft) Set(field, raw string) ProductDraft {
	switch field {
	case "id":
		d.ID = ParseInt(raw)
	case "nombre":
		d.Name = raw
	case "precio":
		d.Price = ParseDecimal(raw)
	case "cantidad":
		d.Stock = ParseInt(raw)
	case "categoria":
		d.Category = raw
	case "stock_minimo":
		d.MinStock = ParseInt(raw)
	}
	return d
}

// Reset devuelve la forma vacía canónica.
func (d ProductDraft) Reset() ProductDraft {
	return ProductDraft{}
}

// Entity materializa el borrador para el append optimista al store local.
// Se envía tal cual al servidor ANTES de materializar; los campos ilegibles
// viajan como null pero aquí quedan en cero.
func (d ProductDraft) Entity() entity.Product {
	return entity.Product{
		ID:       d.ID.Int(),
		Name:     d.Name,
		Price:    d.Price.Decimal(),
		Stock:    d.Stock.Int(),
		Category: d.Category,
		MinStock: d.MinStock.Int(),
	}
}
