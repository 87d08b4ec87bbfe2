package controller

import (
	"context"

	"github.com/tu-usuario/gestor-inventario/internal/application/draft"
	"github.com/tu-usuario/gestor-inventario/internal/application/store"
	"github.com/tu-usuario/gestor-inventario/internal/domain/entity"
	"github.com/tu-usuario/gestor-inventario/pkg/logger"
)

// SaleController dueño del borrador de venta, incluida su sublista de líneas.
// Las ventas solo se crean y se listan; no hay flujo de borrado.
type SaleController struct {
	gw    Gateway
	store *store.Store[entity.Sale]
	notif Notifier
	log   *logger.Logger
	draft draft.SaleDraft
}

// NewSaleController construye el controlador con el borrador en su forma
// vacía canónica (una línea vacía).
func NewSaleController(gw Gateway, st *store.Store[entity.Sale], notif Notifier, log *logger.Logger) *SaleController {
	return &SaleController{gw: gw, store: st, notif: notif, log: log, draft: draft.NewSaleDraft()}
}

// Draft snapshot actual del borrador.
func (c *SaleController) Draft() draft.SaleDraft { return c.draft }

// Edit reemplaza un campo escalar (fecha, id_empleado) del borrador.
func (c *SaleController) Edit(field, raw string) {
	c.draft = c.draft.Set(field, raw)
}

// AddItem agrega una línea vacía a la venta en curso.
func (c *SaleController) AddItem() {
	c.draft = c.draft.AddItem()
}

// EditItem reemplaza un campo de la línea en la posición index.
func (c *SaleController) EditItem(index int, field, raw string) {
	c.draft = c.draft.SetItemField(index, field, raw)
}

// Submit envía la venta anidada tal cual. Ante cualquier respuesta legible
// muestra el mensaje, agrega al historial local la venta materializada (con
// ID y Total en cero: los asigna el servidor y el cliente nunca recalcula) y
// resetea el borrador a una línea vacía. Sin respuesta: solo log.
func (c *SaleController) Submit(ctx context.Context) error {
	ack, err := c.gw.CreateSale(ctx, c.draft)
	if err != nil {
		c.log.Error().Err(err).Msg("registrar venta: sin respuesta del servidor")
		return err
	}
	c.notif.Notify(ack.Mensaje)
	c.store.Append(c.draft.Entity())
	c.draft = c.draft.Reset()
	return nil
}
