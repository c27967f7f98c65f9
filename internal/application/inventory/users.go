package inventory

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/guard"
	"github.com/jhoicas/Almacen-api/internal/domain/store"
)

// UserInput datos de un usuario. En UpdateUser, Password vacío conserva la credencial actual.
type UserInput struct {
	Username string
	Role     entity.Role
	Password string
}

// CreateUser agrega un usuario; el username debe ser único sin distinguir mayúsculas.
func (s *Service) CreateUser(ctx context.Context, in UserInput) (entity.User, error) {
	if in.Password == "" {
		return entity.User{}, domain.ErrInvalidInput
	}
	hash, err := s.hash(in.Password)
	if err != nil {
		return entity.User{}, err
	}
	var out entity.User
	err = s.mutate(ctx, "create_user", entity.Changeset{Users: true}, func(st *store.Store) error {
		u, err := entity.NewUser(s.newID(), in.Username, in.Role, hash, s.now())
		if err != nil {
			return err
		}
		out = u
		return st.InsertUser(u)
	})
	return out, err
}

// UpdateUser cambia username, rol y opcionalmente la credencial.
func (s *Service) UpdateUser(ctx context.Context, id string, in UserInput) (entity.User, error) {
	var hash string
	if in.Password != "" {
		h, err := s.hash(in.Password)
		if err != nil {
			return entity.User{}, err
		}
		hash = h
	}
	var out entity.User
	err := s.mutate(ctx, "update_user", entity.Changeset{Users: true}, func(st *store.Store) error {
		prev, ok := st.User(id)
		if !ok {
			return domain.ErrNotFound
		}
		if hash == "" {
			hash = prev.CredentialHash
		}
		u, err := entity.NewUser(id, in.Username, in.Role, hash, s.now())
		if err != nil {
			return err
		}
		u.CreatedAt = prev.CreatedAt
		out = u
		return st.UpdateUser(u)
	})
	return out, err
}

// DeleteUser elimina un usuario distinto del que está autenticado.
func (s *Service) DeleteUser(ctx context.Context, id, currentUserID string) error {
	return s.mutate(ctx, "delete_user", entity.Changeset{Users: true}, func(st *store.Store) error {
		if err := guard.CanDeleteUser(id, currentUserID); err != nil {
			return err
		}
		return st.RemoveUser(id)
	})
}

// Authenticate busca el usuario por username (sin distinguir mayúsculas) y compara la credencial.
// Cualquier fallo se informa como Unauthorized para no revelar qué parte no coincidió.
func (s *Service) Authenticate(username, password string) (entity.User, error) {
	s.mu.RLock()
	u, ok := s.store.UserByUsername(strings.TrimSpace(username))
	s.mu.RUnlock()
	if !ok {
		return entity.User{}, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.CredentialHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return entity.User{}, domain.ErrUnauthorized
		}
		s.log.Warn().Str("user_id", u.ID).Err(err).Msg("credencial almacenada ilegible")
		return entity.User{}, domain.ErrUnauthorized
	}
	return u, nil
}
