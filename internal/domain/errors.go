package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cualquier error del gateway pertenece a una de dos clases: la petición
// nunca se completó, o la respuesta llegó pero no es JSON legible. Para el
// flujo del cliente ambas degradan igual: se registra y no se muta estado.
var (
	ErrUnreachable = errors.New("no se obtuvo respuesta de la API")
	ErrBadResponse = errors.New("respuesta de la API ilegible")
)
