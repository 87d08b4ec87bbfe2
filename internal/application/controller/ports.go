// Package controller orquesta los flujos de envío del cliente: serializa el
// borrador tal cual, lo manda al gateway y reconcilia el store local de forma
// optimista. No valida nada por sí mismo; un borrador incompleto se envía
// como está (simplificación deliberada del cliente, no un hueco a tapar).
package controller

import (
	"context"

	"github.com/tu-usuario/gestor-inventario/internal/application/draft"
	"github.com/tu-usuario/gestor-inventario/internal/domain/entity"
)

// Ack cualquier respuesta JSON legible del servidor. Mensaje llega en los
// éxitos y Error en los rechazos, pero el cliente no los distingue: ambos se
// muestran igual y ambos disparan la mutación optimista.
type Ack struct {
	Mensaje string `json:"mensaje"`
	Error   string `json:"error"`
}

// Gateway puerto hacia la API remota de inventario. Un error no nulo
// significa que la petición nunca se completó o que la respuesta no era JSON;
// cualquier respuesta legible, sea éxito o rechazo del servidor, llega como
// Ack con error nulo.
type Gateway interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	CreateProduct(ctx context.Context, d draft.ProductDraft) (*Ack, error)
	DeleteProduct(ctx context.Context, id int) (*Ack, error)
	UpdateStock(ctx context.Context, id, cantidad int) (*Ack, error)

	ListUsers(ctx context.Context) ([]entity.User, error)
	CreateUser(ctx context.Context, d draft.UserDraft) (*Ack, error)
	DeleteUser(ctx context.Context, id int) (*Ack, error)

	ListSales(ctx context.Context) ([]entity.Sale, error)
	CreateSale(ctx context.Context, d draft.SaleDraft) (*Ack, error)
}

// Notifier muestra un mensaje bloqueante al usuario; es el análogo del alert
// del navegador en el cliente original.
type Notifier interface {
	Notify(msg string)
}
