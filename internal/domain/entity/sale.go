package entity

import "github.com/shopspring/decimal"

// Sale es la venta tal como la pinta el servidor (GET /ventas): el total lo
// calcula el backend y el empleado llega bajo el nombre "empleado", distinto
// del "id_empleado" que envía el borrador. El cliente nunca recalcula Total.
// Una venta registrada solo se muestra; este cliente no la edita ni la borra.
type Sale struct {
	ID         int             `json:"id"`
	Date       string          `json:"fecha"` // DD/MM/AAAA, tal cual llega
	Total      decimal.Decimal `json:"total"`
	EmployeeID int             `json:"empleado"`
}

// EntityID identidad de la venta dentro de la colección local.
func (s Sale) EntityID() int { return s.ID }
