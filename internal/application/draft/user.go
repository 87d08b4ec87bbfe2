package draft

import "github.com/tu-usuario/gestor-inventario/internal/domain/entity"

// UserDraft borrador de usuario. El valor cero es la forma vacía canónica.
// La contraseña se conserva y se envía en texto plano, como hace el backend.
type UserDraft struct {
	ID       IntField `json:"id"`
	Name     string   `json:"nombre"`
	Role     string   `json:"rol"`
	Password string   `json:"contraseña"`
}

// Set reemplaza un campo por su nombre de wire y devuelve el snapshot nuevo.
// Un nombre desconocido devuelve el borrador sin cambios.
func (d UserDraft) Set(field, raw string) UserDraft {
	switch field {
	case "id":
		d.ID = ParseInt(raw)
	case "nombre":
		d.Name = raw
	case "rol":
		d.Role = raw
	case "contraseña":
		d.Password = raw
	}
	return d
}

// Reset devuelve la forma vacía canónica.
func (d UserDraft) Reset() UserDraft {
	return UserDraft{}
}

// Entity materializa el borrador para el append optimista al store local.
func (d UserDraft) Entity() entity.User {
	return entity.User{
		ID:       d.ID.Int(),
		Name:     d.Name,
		Role:     d.Role,
		Password: d.Password,
	}
}
