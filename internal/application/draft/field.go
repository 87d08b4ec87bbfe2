// Package draft contiene el estado de los formularios del cliente: valores en
// edición que todavía no se han enviado a la API. Cada edición produce una
// copia nueva del borrador; nunca se muta un snapshot anterior, de modo que la
// capa de render pueda detectar cambios comparando valores.
package draft

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// IntField campo numérico entero de un borrador. Conserva el texto tal como
// lo tecleó el usuario junto al valor parseado en el momento de la edición.
// Un texto no numérico deja Valid en false y se arrastra así hasta el envío,
// sin corregirse ni reportarse.
//
// En el JSON saliente reproduce el comportamiento del formulario original:
// campo jamás editado -> "", parseado -> número, ilegible -> null.
type IntField struct {
	Raw   string // texto crudo del usuario
	Value int
	Valid bool
	set   bool
}

// ParseInt construye el campo a partir del texto tecleado.
func ParseInt(raw string) IntField {
	n, err := strconv.Atoi(raw)
	return IntField{Raw: raw, Value: n, Valid: err == nil, set: true}
}

// Set reporta si el campo fue editado alguna vez.
func (f IntField) Set() bool { return f.set }

// MarshalJSON serializa el estado tri-valuado del campo.
func (f IntField) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte(`""`), nil
	}
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(f.Value)), nil
}

// Int materializa el campo para el store local optimista. Go no tiene NaN
// entero; un campo ilegible o vacío se materializa como cero.
func (f IntField) Int() int {
	if !f.Valid {
		return 0
	}
	return f.Value
}

// DecimalField campo numérico con decimales (precios). Mismo contrato
// tri-valuado que IntField, con decimal.Decimal como valor parseado para no
// perder precisión monetaria.
type DecimalField struct {
	Raw   string
	Value decimal.Decimal
	Valid bool
	set   bool
}

// ParseDecimal construye el campo a partir del texto tecleado.
func ParseDecimal(raw string) DecimalField {
	d, err := decimal.NewFromString(raw)
	return DecimalField{Raw: raw, Value: d, Valid: err == nil, set: true}
}

// Set reporta si el campo fue editado alguna vez.
func (f DecimalField) Set() bool { return f.set }

// MarshalJSON serializa el estado tri-valuado del campo. El número sale sin
// comillas, como lo espera el backend.
func (f DecimalField) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte(`""`), nil
	}
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(f.Value.String()), nil
}

// Decimal materializa el campo para el store local optimista.
func (f DecimalField) Decimal() decimal.Decimal {
	if !f.Valid {
		return decimal.Zero
	}
	return f.Value
}
