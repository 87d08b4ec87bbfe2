package controller

import (
	"context"

	"github.com/tu-usuario/gestor-inventario/internal/application/draft"
	"github.com/tu-usuario/gestor-inventario/internal/application/store"
	"github.com/tu-usuario/gestor-inventario/internal/domain/entity"
	"github.com/tu-usuario/gestor-inventario/pkg/logger"
)

// UserController dueño del borrador de usuario y de su flujo de envío.
// Mismo patrón que ProductController.
type UserController struct {
	gw    Gateway
	store *store.Store[entity.User]
	notif Notifier
	log   *logger.Logger
	draft draft.UserDraft
}

// NewUserController construye el controlador.
func NewUserController(gw Gateway, st *store.Store[entity.User], notif Notifier, log *logger.Logger) *UserController {
	return &UserController{gw: gw, store: st, notif: notif, log: log}
}

// Draft snapshot actual del borrador.
func (c *UserController) Draft() draft.UserDraft { return c.draft }

// Edit reemplaza un campo del borrador con el texto tecleado.
func (c *UserController) Edit(field, raw string) {
	c.draft = c.draft.Set(field, raw)
}

// Submit envía el borrador tal cual; ver ProductController.Submit para la
// política de reconciliación optimista.
func (c *UserController) Submit(ctx context.Context) error {
	ack, err := c.gw.CreateUser(ctx, c.draft)
	if err != nil {
		c.log.Error().Err(err).Msg("crear usuario: sin respuesta del servidor")
		return err
	}
	c.notif.Notify(ack.Mensaje)
	c.store.Append(c.draft.Entity())
	c.draft = c.draft.Reset()
	return nil
}

// Delete pide el borrado remoto y quita el id del store local ante cualquier
// respuesta legible.
func (c *UserController) Delete(ctx context.Context, id int) error {
	ack, err := c.gw.DeleteUser(ctx, id)
	if err != nil {
		c.log.Error().Err(err).Int("id", id).Msg("eliminar usuario: sin respuesta del servidor")
		return err
	}
	c.notif.Notify(ack.Mensaje)
	c.store.Remove(id)
	return nil
}
