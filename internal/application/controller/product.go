package controller

import (
	"context"

	"github.com/tu-usuario/gestor-inventario/internal/application/draft"
	"github.com/tu-usuario/gestor-inventario/internal/application/store"
	"github.com/tu-usuario/gestor-inventario/internal/domain/entity"
	"github.com/tu-usuario/gestor-inventario/pkg/logger"
)

// ProductController dueño del borrador de producto y de su flujo de envío.
type ProductController struct {
	gw    Gateway
	store *store.Store[entity.Product]
	notif Notifier
	log   *logger.Logger
	draft draft.ProductDraft
}

// NewProductController construye el controlador.
func NewProductController(gw Gateway, st *store.Store[entity.Product], notif Notifier, log *logger.Logger) *ProductController {
	return &ProductController{gw: gw, store: st, notif: notif, log: log}
}

// Draft snapshot actual del borrador.
func (c *ProductController) Draft() draft.ProductDraft { return c.draft }

// Edit reemplaza un campo del borrador con el texto tecleado.
func (c *ProductController) Edit(field, raw string) {
	c.draft = c.draft.Set(field, raw)
}

// Submit envía el borrador tal cual al servidor. Ante cualquier respuesta
// legible muestra su mensaje, agrega el borrador al store local y lo resetea,
// sin importar si el servidor reportó éxito o rechazo. Si la petición nunca
// se completó solo se registra: ni append ni reset.
func (c *ProductController) Submit(ctx context.Context) error {
	ack, err := c.gw.CreateProduct(ctx, c.draft)
	if err != nil {
		c.log.Error().Err(err).Msg("crear producto: sin respuesta del servidor")
		return err
	}
	c.notif.Notify(ack.Mensaje)
	c.store.Append(c.draft.Entity())
	c.draft = c.draft.Reset()
	return nil
}

// Delete pide el borrado remoto y, ante cualquier respuesta legible, muestra
// su mensaje y quita el id del store local sin mirar el contenido.
func (c *ProductController) Delete(ctx context.Context, id int) error {
	ack, err := c.gw.DeleteProduct(ctx, id)
	if err != nil {
		c.log.Error().Err(err).Int("id", id).Msg("eliminar producto: sin respuesta del servidor")
		return err
	}
	c.notif.Notify(ack.Mensaje)
	c.store.Remove(id)
	return nil
}

// UpdateStock ajusta el stock remoto de un producto. El cliente original no
// refleja el ajuste en la colección local, solo muestra el mensaje.
func (c *ProductController) UpdateStock(ctx context.Context, id, cantidad int) error {
	ack, err := c.gw.UpdateStock(ctx, id, cantidad)
	if err != nil {
		c.log.Error().Err(err).Int("id", id).Msg("actualizar stock: sin respuesta del servidor")
		return err
	}
	c.notif.Notify(ack.Mensaje)
	return nil
}
