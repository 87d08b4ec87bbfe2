package draft

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestor-inventario/internal/domain/entity"
)

// SaleItem una línea (producto, cantidad) dentro del borrador de venta.
// Puede repetirse el mismo producto en varias líneas; no se fusionan ni se
// valida la cantidad contra el stock (eso es asunto del servidor).
type SaleItem struct {
	ProductID IntField `json:"id"`
	Quantity  IntField `json:"cantidad"`
}

// SaleDraft borrador de venta. Mantiene la sublista ordenada de líneas,
// cada una editable de forma independiente por posición. Mientras se edita,
// la sublista nunca tiene menos de una línea: no existe operación para quitar
// una línea, solo para agregar y sobreescribir.
type SaleDraft struct {
	Date       string     `json:"fecha"` // DD/MM/AAAA, texto libre
	EmployeeID IntField   `json:"id_empleado"`
	Items      []SaleItem `json:"productos"`
}

// NewSaleDraft devuelve la forma vacía canónica: exactamente una línea vacía.
func NewSaleDraft() SaleDraft {
	return SaleDraft{Items: []SaleItem{{}}}
}

// Set reemplaza un campo escalar por su nombre de wire y devuelve el snapshot
// nuevo. Las líneas se editan con AddItem y SetItemField.
func (d SaleDraft) Set(field, raw string) SaleDraft {
	switch field {
	case "fecha":
		d.Date = raw
	case "id_empleado":
		d.EmployeeID = ParseInt(raw)
	}
	return d
}

// AddItem agrega una línea vacía al final de la sublista. No hay tope de
// líneas. La copia del slice garantiza que el snapshot anterior queda
// intacto.
func (d SaleDraft) AddItem() SaleDraft {
	items := make([]SaleItem, len(d.Items), len(d.Items)+1)
	copy(items, d.Items)
	d.Items = append(items, SaleItem{})
	return d
}

// SetItemField reemplaza un campo de la línea en la posición index y devuelve
// el snapshot nuevo. Solo cambia esa línea; el resto se copia tal cual y el
// slice devuelto es un valor distinto del anterior. El índice debe
// corresponder a una línea existente (el formulario solo edita líneas ya
// pintadas).
func (d SaleDraft) SetItemField(index int, field, raw string) SaleDraft {
	items := make([]SaleItem, len(d.Items))
	copy(items, d.Items)

	it := items[index]
	switch field {
	case "id":
		it.ProductID = ParseInt(raw)
	case "cantidad":
		it.Quantity = ParseInt(raw)
	}
	items[index] = it

	d.Items = items
	return d
}

// Reset devuelve la forma vacía canónica (una línea vacía).
func (d SaleDraft) Reset() SaleDraft {
	return NewSaleDraft()
}

// Entity materializa el borrador como la venta que pinta el historial local.
// El servidor es quien asigna ID y calcula Total; el append optimista los
// deja en cero porque el cliente nunca recalcula el total.
func (d SaleDraft) Entity() entity.Sale {
	return entity.Sale{
		ID:         0,
		Date:       d.Date,
		Total:      decimal.Zero,
		EmployeeID: d.EmployeeID.Int(),
	}
}
