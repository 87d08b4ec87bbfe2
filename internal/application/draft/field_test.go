package draft_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestor-inventario/internal/application/draft"
)

// ──────────────────────────────────────────────────────────────────────────────
// Campos numéricos tri-valuados: un campo jamás editado serializa como "",
// uno parseado como número desnudo y uno ilegible como null. Es el mismo
// comportamiento de wire del formulario original y el backend depende de él.
// ──────────────────────────────────────────────────────────────────────────────

func TestIntField_MarshalTriEstado(t *testing.T) {
	casos := []struct {
		nombre string
		campo  draft.IntField
		json   string
	}{
		{"sin editar", draft.IntField{}, `""`},
		{"parseado", draft.ParseInt("42"), `42`},
		{"ilegible", draft.ParseInt("abc"), `null`},
		{"editado a vacío", draft.ParseInt(""), `null`},
		{"negativo", draft.ParseInt("-3"), `-3`},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			out, err := json.Marshal(c.campo)
			require.NoError(t, err)
			assert.Equal(t, c.json, string(out), "el wire debe conservar el estado tri-valuado")
		})
	}
}

func TestIntField_ParseConservaElTextoCrudo(t *testing.T) {
	f := draft.ParseInt("12x")
	assert.Equal(t, "12x", f.Raw, "el texto tecleado se conserva tal cual")
	assert.False(t, f.Valid, "un texto no numérico queda inválido y se arrastra así")
	assert.True(t, f.Set())
	assert.Zero(t, f.Int(), "la materialización de un campo ilegible es cero")
}

func TestDecimalField_MarshalTriEstado(t *testing.T) {
	require.Equal(t, `""`, marshal(t, draft.DecimalField{}))
	require.Equal(t, `2.5`, marshal(t, draft.ParseDecimal("2.5")), "el precio sale como número sin comillas")
	require.Equal(t, `null`, marshal(t, draft.ParseDecimal("dos")))
}

func TestDecimalField_PrecisionMonetaria(t *testing.T) {
	f := draft.ParseDecimal("19.90")
	require.True(t, f.Valid)
	assert.Equal(t, "19.9", f.Decimal().String())
	assert.Equal(t, "19.90", f.Raw, "el crudo conserva los ceros que el usuario tecleó")
}

func marshal(t *testing.T, v any) string {
	t.Helper()
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return string(out)
}
