package model

// Role определяет роль пользователя в системе
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid проверяет что роль входит в допустимый набор
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User представляет авторизованного пользователя текущей сессии.
// Создаётся при логине, живёт только в памяти и удаляется при логауте.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
