// Package store implementa la caché local de una colección remota: se llena
// una vez al arrancar y después solo muta de forma optimista ante acciones
// del usuario. Productos, usuarios y ventas son instancias del mismo tipo
// genérico.
package store

import (
	"context"

	"github.com/tu-usuario/gestor-inventario/pkg/logger"
)

// Identifiable entidad con identidad entera. Se asume única dentro de la
// colección; el cliente no la impone ni deduplica.
type Identifiable interface {
	EntityID() int
}

// FetchFunc obtiene la colección completa desde la API.
type FetchFunc[T Identifiable] func(ctx context.Context) ([]T, error)

// Store colección local de un recurso remoto.
type Store[T Identifiable] struct {
	name  string
	fetch FetchFunc[T]
	items []T
	log   *logger.Logger
}

// New construye el store. name identifica el recurso en los logs.
func New[T Identifiable](name string, fetch FetchFunc[T], log *logger.Logger) *Store[T] {
	return &Store[T]{name: name, fetch: fetch, log: log}
}

// Load reemplaza la colección completa con lo que devuelva la API. Si el
// fetch falla se registra y se conserva la colección previa (vacía en el
// primer arranque). Sin reintentos. Idempotente: volver a llamarla vuelve a
// reemplazar todo.
func (s *Store[T]) Load(ctx context.Context) {
	items, err := s.fetch(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("recurso", s.name).Msg("carga inicial fallida; se conserva la colección previa")
		return
	}
	s.items = items
	s.log.Debug().Str("recurso", s.name).Int("total", len(items)).Msg("colección cargada")
}

// Append inserta la entidad al final, sin deduplicar. Solo muta el estado
// local; la mutación remota ya ocurrió (o no) en el controlador que llama.
func (s *Store[T]) Append(e T) {
	s.items = append(s.items, e)
}

// Remove filtra la entidad con el id dado. Solo estado local.
func (s *Store[T]) Remove(id int) {
	kept := s.items[:0:0]
	for _, e := range s.items {
		if e.EntityID() != id {
			kept = append(kept, e)
		}
	}
	s.items = kept
}

// Items devuelve una copia de la colección para render.
func (s *Store[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len cantidad de entidades en la colección.
func (s *Store[T]) Len() int { return len(s.items) }
