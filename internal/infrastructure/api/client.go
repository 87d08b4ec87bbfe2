// Package api implementa el gateway HTTP hacia el backend del gestor de
// inventario (base /api). Usa net/http de la librería estándar; no requiere
// SDK alguno.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestor-inventario/internal/application/controller"
	"github.com/tu-usuario/gestor-inventario/internal/application/draft"
	"github.com/tu-usuario/gestor-inventario/internal/domain"
	"github.com/tu-usuario/gestor-inventario/internal/domain/entity"
	"github.com/tu-usuario/gestor-inventario/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa el puerto Gateway.
var _ controller.Gateway = (*Client)(nil)

// Límite de lectura del cuerpo: las colecciones de este backend son pequeñas.
const maxBodyBytes = 1 << 20

// Client gateway HTTP del cliente. El contrato calca al frontend original:
// cualquier estado HTTP con cuerpo JSON legible cuenta como respuesta del
// servidor (incluidos los 400 de rechazo); solo los errores de transporte y
// los cuerpos ilegibles se reportan como error.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// New construye el gateway. baseURL sin barra final, ej. http://localhost:5000/api.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ListProducts GET /productos.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.get(ctx, "/productos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct POST /productos con el borrador serializado tal cual.
func (c *Client) CreateProduct(ctx context.Context, d draft.ProductDraft) (*controller.Ack, error) {
	return c.send(ctx, http.MethodPost, "/productos", d)
}

// DeleteProduct DELETE /productos/{id}.
func (c *Client) DeleteProduct(ctx context.Context, id int) (*controller.Ack, error) {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/productos/%d", id), nil)
}

// UpdateStock PUT /productos/{id}/stock.
func (c *Client) UpdateStock(ctx context.Context, id, cantidad int) (*controller.Ack, error) {
	body := map[string]int{"cantidad": cantidad}
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/productos/%d/stock", id), body)
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// ListUsers GET /usuarios. El servidor omite la contraseña.
func (c *Client) ListUsers(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	if err := c.get(ctx, "/usuarios", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser POST /usuarios.
func (c *Client) CreateUser(ctx context.Context, d draft.UserDraft) (*controller.Ack, error) {
	return c.send(ctx, http.MethodPost, "/usuarios", d)
}

// DeleteUser DELETE /usuarios/{id}.
func (c *Client) DeleteUser(ctx context.Context, id int) (*controller.Ack, error) {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/usuarios/%d", id), nil)
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// ListSales GET /ventas. Devuelve la forma que pinta el servidor, con total
// calculado y el empleado bajo "empleado".
func (c *Client) ListSales(ctx context.Context) ([]entity.Sale, error) {
	var out []entity.Sale
	if err := c.get(ctx, "/ventas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSale POST /ventas con el borrador anidado tal cual.
func (c *Client) CreateSale(ctx context.Context, d draft.SaleDraft) (*controller.Ack, error) {
	return c.send(ctx, http.MethodPost, "/ventas", d)
}

// ── Transporte ────────────────────────────────────────────────────────────────

// get decodifica una colección. Cualquier falla deja el error envuelto para
// que el store lo registre y conserve su estado previo.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("api: crear request GET %s: %w", path, err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: GET %s: %w: %w", path, domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("api: leer respuesta GET %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: GET %s: %w: %w", path, domain.ErrBadResponse, err)
	}
	return nil
}

// send ejecuta una mutación remota. No mira el código de estado: si el cuerpo
// es JSON legible, la respuesta cuenta como resultado reportado por el
// servidor, sea éxito o rechazo.
func (c *Client) send(ctx context.Context, method, path string, body any) (*controller.Ack, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: serializar %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("api: crear request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w: %w", method, path, domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("api: leer respuesta %s %s: %w", method, path, err)
	}

	var ack controller.Ack
	if err := json.Unmarshal(raw, &ack); err != nil {
		return nil, fmt.Errorf("api: %s %s: %w: %w", method, path, domain.ErrBadResponse, err)
	}

	c.log.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("respuesta del servidor")

	return &ack, nil
}
