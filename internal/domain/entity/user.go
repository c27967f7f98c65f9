package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// Role rol de un usuario. La única regla de autorización del sistema distingue Admin del resto.
type Role string

// Roles válidos para User.
const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ParseRole acepta el rol sin distinguir mayúsculas ("admin", "USER").
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "user":
		return RoleUser, nil
	}
	return "", domain.ErrInvalidInput
}

// User representa un usuario del sistema.
// CredentialHash guarda el hash bcrypt de la contraseña, nunca el texto plano.
type User struct {
	ID             string
	Username       string
	Role           Role
	CredentialHash string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser construye un usuario validando los campos obligatorios.
func NewUser(id, username string, role Role, credentialHash string, now time.Time) (User, error) {
	u := User{
		ID:             strings.TrimSpace(id),
		Username:       strings.TrimSpace(username),
		Role:           role,
		CredentialHash: credentialHash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u, u.Validate()
}

// Validate verifica los campos obligatorios del usuario.
func (u User) Validate() error {
	if u.ID == "" {
		return domain.ErrInvalidInput
	}
	if u.Username == "" {
		return domain.ErrEmptyName
	}
	if !u.Role.Valid() || u.CredentialHash == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// IsAdmin indica si el usuario tiene rol Admin.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
