// Package console es el frontend de terminal del gestor: menús, formularios
// campo a campo sobre los borradores y el notificador bloqueante (el análogo
// del alert del navegador). La entrada y la salida son inyectables para los
// tests.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tu-usuario/gestor-inventario/internal/application/controller"
	"github.com/tu-usuario/gestor-inventario/internal/application/store"
	"github.com/tu-usuario/gestor-inventario/internal/domain/entity"
)

// UI frontend de consola. Implementa controller.Notifier.
type UI struct {
	in  *bufio.Scanner
	out io.Writer

	prod *controller.ProductController
	user *controller.UserController
	sale *controller.SaleController

	products *store.Store[entity.Product]
	users    *store.Store[entity.User]
	sales    *store.Store[entity.Sale]
}

// New construye la consola sobre los streams dados.
func New(in io.Reader, out io.Writer) *UI {
	return &UI{in: bufio.NewScanner(in), out: out}
}

// Bind conecta controladores y stores. Va aparte de New porque los
// controladores reciben la consola como Notifier al construirse.
func (ui *UI) Bind(
	prod *controller.ProductController,
	user *controller.UserController,
	sale *controller.SaleController,
	products *store.Store[entity.Product],
	users *store.Store[entity.User],
	sales *store.Store[entity.Sale],
) {
	ui.prod, ui.user, ui.sale = prod, user, sale
	ui.products, ui.users, ui.sales = products, users, sales
}

// Notify muestra el mensaje del servidor y espera Enter para continuar.
func (ui *UI) Notify(msg string) {
	fmt.Fprintf(ui.out, "\n📣 %s\n", msg)
	ui.waitEnter()
}

// Run ejecuta el menú principal hasta que el usuario salga o se agote el
// contexto.
func (ui *UI) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		ui.title("menú principal")
		fmt.Fprintln(ui.out, "1. Gestión de Productos")
		fmt.Fprintln(ui.out, "2. Gestión de Usuarios")
		fmt.Fprintln(ui.out, "3. Registrar Venta")
		fmt.Fprintln(ui.out, "4. Historial de Ventas")
		fmt.Fprintln(ui.out, "5. Salir")

		switch ui.prompt("\n📌 Seleccione una opción") {
		case "1":
			ui.menuProductos(ctx)
		case "2":
			ui.menuUsuarios(ctx)
		case "3":
			ui.registrarVenta(ctx)
		case "4":
			ui.historialVentas()
		case "5":
			fmt.Fprintln(ui.out, "\n👋 Hasta luego")
			return
		default:
			fmt.Fprintln(ui.out, "\n❌ Opción inválida")
		}
	}
}

// ── Productos ─────────────────────────────────────────────────────────────────

func (ui *UI) menuProductos(ctx context.Context) {
	for {
		ui.title("gestión de productos")
		fmt.Fprintln(ui.out, "1. Agregar producto")
		fmt.Fprintln(ui.out, "2. Eliminar producto")
		fmt.Fprintln(ui.out, "3. Actualizar stock")
		fmt.Fprintln(ui.out, "4. Inventario")
		fmt.Fprintln(ui.out, "5. Volver al menú principal")

		switch ui.prompt("\n📌 Seleccione una opción") {
		case "1":
			ui.agregarProducto(ctx)
		case "2":
			ui.eliminarProducto(ctx)
		case "3":
			ui.actualizarStock(ctx)
		case "4":
			ui.mostrarInventario()
		case "5":
			return
		default:
			fmt.Fprintln(ui.out, "\n❌ Opción inválida")
		}
	}
}

// agregarProducto edita el borrador campo a campo, con los nombres de wire
// como nombres de campo, y lo envía tal cual: sin validar nada localmente.
func (ui *UI) agregarProducto(ctx context.Context) {
	ui.title("nuevo producto")
	ui.prod.Edit("id", ui.prompt("ID"))
	ui.prod.Edit("nombre", ui.prompt("Nombre"))
	ui.prod.Edit("precio", ui.prompt("Precio $"))
	ui.prod.Edit("cantidad", ui.prompt("Cantidad inicial"))
	ui.prod.Edit("categoria", ui.prompt("Categoría ("+entity.CategoriaElectronica+"/"+entity.CategoriaEscolar+")"))
	ui.prod.Edit("stock_minimo", ui.prompt("Stock mínimo"))

	if err := ui.prod.Submit(ctx); err != nil {
		fmt.Fprintln(ui.out, "\n❌ No hubo respuesta del servidor; el producto sigue sin guardar")
		ui.waitEnter()
	}
}

func (ui *UI) eliminarProducto(ctx context.Context) {
	ui.title("eliminar producto")
	id, ok := ui.promptID("ID del producto a eliminar")
	if !ok {
		return
	}
	if err := ui.prod.Delete(ctx, id); err != nil {
		fmt.Fprintln(ui.out, "\n❌ No hubo respuesta del servidor")
		ui.waitEnter()
	}
}

func (ui *UI) actualizarStock(ctx context.Context) {
	ui.title("actualizar stock")
	id, ok := ui.promptID("ID del producto")
	if !ok {
		return
	}
	cantidad, ok := ui.promptID("Cantidad a agregar")
	if !ok {
		return
	}
	if err := ui.prod.UpdateStock(ctx, id, cantidad); err != nil {
		fmt.Fprintln(ui.out, "\n❌ No hubo respuesta del servidor")
		ui.waitEnter()
	}
}

func (ui *UI) mostrarInventario() {
	ui.title("inventario")
	items := ui.products.Items()
	if len(items) == 0 {
		fmt.Fprintln(ui.out, "No hay productos registrados")
	}
	for _, p := range items {
		fmt.Fprintf(ui.out, "%d. %s - $%s - Stock: %d - Categoría: %s - Mínimo: %d\n",
			p.ID, p.Name, p.Price.String(), p.Stock, p.Category, p.MinStock)
	}
	ui.waitEnter()
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

func (ui *UI) menuUsuarios(ctx context.Context) {
	for {
		ui.title("gestión de usuarios")
		fmt.Fprintln(ui.out, "1. Crear usuario")
		fmt.Fprintln(ui.out, "2. Eliminar usuario")
		fmt.Fprintln(ui.out, "3. Listar usuarios")
		fmt.Fprintln(ui.out, "4. Volver al menú principal")

		switch ui.prompt("\n📌 Seleccione una opción") {
		case "1":
			ui.crearUsuario(ctx)
		case "2":
			ui.eliminarUsuario(ctx)
		case "3":
			ui.listarUsuarios()
		case "4":
			return
		default:
			fmt.Fprintln(ui.out, "\n❌ Opción inválida")
		}
	}
}

func (ui *UI) crearUsuario(ctx context.Context) {
	ui.title("nuevo usuario")
	ui.user.Edit("id", ui.prompt("ID"))
	ui.user.Edit("nombre", ui.prompt("Nombre"))
	ui.user.Edit("rol", ui.prompt("Rol ("+entity.RolAdmin+"/"+entity.RolEmpleado+"/"+entity.RolGerente+")"))
	ui.user.Edit("contraseña", ui.prompt("Contraseña"))

	if err := ui.user.Submit(ctx); err != nil {
		fmt.Fprintln(ui.out, "\n❌ No hubo respuesta del servidor; el usuario sigue sin guardar")
		ui.waitEnter()
	}
}

func (ui *UI) eliminarUsuario(ctx context.Context) {
	ui.title("eliminar usuario")
	id, ok := ui.promptID("ID del usuario a eliminar")
	if !ok {
		return
	}
	if err := ui.user.Delete(ctx, id); err != nil {
		fmt.Fprintln(ui.out, "\n❌ No hubo respuesta del servidor")
		ui.waitEnter()
	}
}

func (ui *UI) listarUsuarios() {
	ui.title("usuarios")
	items := ui.users.Items()
	if len(items) == 0 {
		fmt.Fprintln(ui.out, "No hay usuarios registrados")
	}
	for _, u := range items {
		fmt.Fprintf(ui.out, "%d. %s - Rol: %s\n", u.ID, u.Name, u.Role)
	}
	ui.waitEnter()
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// registrarVenta arma la venta línea a línea. El borrador arranca con una
// línea vacía y solo crece: no hay forma de quitar una línea ya agregada,
// solo sobreescribir sus campos.
func (ui *UI) registrarVenta(ctx context.Context) {
	ui.title("registrar venta")
	ui.sale.Edit("fecha", ui.prompt("Fecha (DD/MM/AAAA)"))
	ui.sale.Edit("id_empleado", ui.prompt("ID del empleado"))

	for i := 0; ; i++ {
		fmt.Fprintf(ui.out, "\n— Producto %d —\n", i+1)
		ui.sale.EditItem(i, "id", ui.prompt("ID del producto"))
		ui.sale.EditItem(i, "cantidad", ui.prompt("Cantidad"))

		if !strings.EqualFold(ui.prompt("¿Agregar otro producto? (s/N)"), "s") {
			break
		}
		ui.sale.AddItem()
	}

	if err := ui.sale.Submit(ctx); err != nil {
		fmt.Fprintln(ui.out, "\n❌ No hubo respuesta del servidor; la venta sigue sin registrar")
		ui.waitEnter()
	}
}

func (ui *UI) historialVentas() {
	ui.title("historial de ventas")
	items := ui.sales.Items()
	if len(items) == 0 {
		fmt.Fprintln(ui.out, "No hay ventas registradas")
	}
	for _, v := range items {
		fmt.Fprintf(ui.out, "Venta #%d - Fecha: %s - Total: $%s - Empleado ID: %d\n",
			v.ID, v.Date, v.Total.String(), v.EmployeeID)
	}
	ui.waitEnter()
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (ui *UI) title(texto string) {
	fmt.Fprintf(ui.out, "\n%s\n", strings.Repeat("=", 50))
	fmt.Fprintf(ui.out, "⚡ %s ⚡\n", strings.ToUpper(texto))
	fmt.Fprintln(ui.out, strings.Repeat("=", 50))
}

func (ui *UI) prompt(label string) string {
	fmt.Fprintf(ui.out, "%s: ", label)
	if !ui.in.Scan() {
		return ""
	}
	return strings.TrimSpace(ui.in.Text())
}

// promptID lee un entero; los identificadores de borrado y stock sí se
// parsean aquí porque van en la URL, no en un borrador.
func (ui *UI) promptID(label string) (int, bool) {
	raw := ui.prompt(label)
	id, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintf(ui.out, "\n❌ %q no es un número\n", raw)
		ui.waitEnter()
		return 0, false
	}
	return id, true
}

func (ui *UI) waitEnter() {
	fmt.Fprint(ui.out, "\nPresione Enter para continuar...")
	ui.in.Scan()
}
