package entity

// Roles que acepta el backend. Igual que las categorías, son sugerencias de
// formulario; el cliente no los impone.
const (
	RolAdmin    = "admin"
	RolEmpleado = "empleado"
	RolGerente  = "gerente"
)

// User representa un usuario del sistema.
// La contraseña viaja en texto plano en el POST (comportamiento heredado del
// backend); el GET /usuarios nunca la devuelve.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"nombre"`
	Role     string `json:"rol"`
	Password string `json:"contraseña,omitempty"`
}

// EntityID identidad del usuario dentro de la colección local.
func (u User) EntityID() int { return u.ID }
