package draft_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestor-inventario/internal/application/draft"
)

// ──────────────────────────────────────────────────────────────────────────────
// Borradores escalares: cada edición produce un snapshot nuevo con un solo
// campo reemplazado, y Reset vuelve exactamente a la forma vacía canónica.
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDraft_SetGranularidadDeCampo(t *testing.T) {
	base := draft.ProductDraft{}.
		Set("nombre", "Cuaderno").
		Set("precio", "2.5")

	editado := base.Set("cantidad", "10")

	assert.Equal(t, "Cuaderno", editado.Name)
	assert.Equal(t, 10, editado.Stock.Value)
	assert.False(t, base.Stock.Set(), "el snapshot anterior no se muta")
	assert.Equal(t, "2.5", editado.Price.Raw, "los demás campos quedan idénticos")
}

func TestProductDraft_CampoDesconocidoNoCambiaNada(t *testing.T) {
	base := draft.ProductDraft{}.Set("nombre", "Lápiz")
	assert.Equal(t, base, base.Set("color", "rojo"))
}

func TestProductDraft_ParseFallidoSeArrastraAlEnvio(t *testing.T) {
	d := draft.ProductDraft{}.Set("precio", "gratis")
	require.False(t, d.Price.Valid)

	wire, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(wire), `"precio":null`, "el campo ilegible viaja como null, sin corregirse")
}

func TestProductDraft_ResetFormaCanonica(t *testing.T) {
	d := draft.ProductDraft{}.
		Set("id", "1").
		Set("nombre", "Cuaderno").
		Set("precio", "2.5").
		Set("cantidad", "10").
		Set("categoria", "escolar").
		Set("stock_minimo", "3")

	assert.Equal(t, draft.ProductDraft{}, d.Reset(), "Reset vuelve a la forma vacía sin importar el contenido previo")
}

func TestUserDraft_SetYReset(t *testing.T) {
	d := draft.UserDraft{}.
		Set("id", "7").
		Set("nombre", "Ana").
		Set("rol", "admin").
		Set("contraseña", "secreta")

	require.Equal(t, 7, d.ID.Value)
	assert.Equal(t, "secreta", d.Password, "la contraseña se conserva en claro, como la envía el backend")
	assert.Equal(t, draft.UserDraft{}, d.Reset())
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrador de venta: la sublista de líneas arranca con exactamente una línea
// vacía, solo crece, y cada edición toca una sola posición sobre un slice
// nuevo.
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleDraft_FormaCanonicaUnaLineaVacia(t *testing.T) {
	d := draft.NewSaleDraft()
	require.Len(t, d.Items, 1, "el borrador nunca arranca sin líneas")
	assert.Equal(t, draft.SaleItem{}, d.Items[0])
	assert.Empty(t, d.Date)
	assert.False(t, d.EmployeeID.Set())
}

func TestSaleDraft_AddItemCreceDeAUno(t *testing.T) {
	d := draft.NewSaleDraft().SetItemField(0, "id", "7")

	antes := d.Items[0]
	for esperado := 2; esperado <= 5; esperado++ {
		d = d.AddItem()
		require.Len(t, d.Items, esperado, "cada AddItem agrega exactamente una línea")
		assert.Equal(t, antes, d.Items[0], "las líneas previas quedan con el mismo valor")
		assert.Equal(t, draft.SaleItem{}, d.Items[esperado-1], "la línea nueva llega vacía")
	}
}

func TestSaleDraft_SetItemFieldSoloTocaEsaPosicion(t *testing.T) {
	d := draft.NewSaleDraft().AddItem().AddItem() // tres líneas
	previo := d

	d = d.SetItemField(1, "id", "7")

	require.Equal(t, 7, d.Items[1].ProductID.Value)
	assert.False(t, d.Items[1].Quantity.Set(), "el otro campo de la línea no cambia")
	assert.Equal(t, previo.Items[0], d.Items[0])
	assert.Equal(t, previo.Items[2], d.Items[2])
	assert.Equal(t, draft.SaleItem{}, previo.Items[1], "el snapshot anterior sigue intacto")
}

func TestSaleDraft_EdicionDevuelveSliceDistinto(t *testing.T) {
	d := draft.NewSaleDraft()
	editado := d.SetItemField(0, "cantidad", "3")

	// La detección de cambios compara referencias: el slice editado debe ser
	// otro valor, no el mismo arreglo mutado.
	assert.NotSame(t, &d.Items[0], &editado.Items[0])
	assert.False(t, d.Items[0].Quantity.Set())
}

func TestSaleDraft_ProductosDuplicadosPermitidos(t *testing.T) {
	d := draft.NewSaleDraft().
		SetItemField(0, "id", "7").
		AddItem().
		SetItemField(1, "id", "7")

	require.Len(t, d.Items, 2, "dos líneas del mismo producto no se fusionan")
	assert.Equal(t, d.Items[0].ProductID.Value, d.Items[1].ProductID.Value)
}

func TestSaleDraft_WireAnidado(t *testing.T) {
	d := draft.NewSaleDraft().
		Set("fecha", "01/02/2026").
		Set("id_empleado", "4").
		SetItemField(0, "id", "7").
		SetItemField(0, "cantidad", "2").
		AddItem().
		SetItemField(1, "id", "9")

	wire, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"fecha":"01/02/2026","id_empleado":4,"productos":[{"id":7,"cantidad":2},{"id":9,"cantidad":""}]}`,
		string(wire),
		"el payload anidado usa los nombres de wire y conserva los centinelas vacíos")
}

func TestSaleDraft_EntityMaterializaSinTotal(t *testing.T) {
	d := draft.NewSaleDraft().
		Set("fecha", "01/02/2026").
		Set("id_empleado", "4")

	v := d.Entity()
	assert.Equal(t, "01/02/2026", v.Date)
	assert.Equal(t, 4, v.EmployeeID)
	assert.Zero(t, v.ID, "el ID lo asigna el servidor")
	assert.True(t, v.Total.IsZero(), "el cliente nunca calcula el total")
}
