package service

import (
	"time"

	"github.com/polyrpc/demoapi/pkg/api/types"
	"github.com/polyrpc/demoapi/pkg/resource"
)

// ListUsers returns a page of users, optionally filtered by role. An
// empty role applies no filter. The filter and slice run against a
// fresh snapshot, so prior mutations are always visible.
func (s *Service) ListUsers(page, pageSize int, role string) (types.Page[resource.User], error) {
	users := s.store.Users.List()

	if role != "" {
		r, err := resource.ParseRole(role)
		if err != nil {
			return types.Page[resource.User]{}, err
		}
		users = filter(users, func(u resource.User) bool { return u.Role == r })
	}

	return paginate(users, page, pageSize)
}

// GetUser retrieves a user by id.
func (s *Service) GetUser(id int) (resource.User, error) {
	u, ok := s.store.Users.Get(id)
	if !ok {
		return resource.User{}, notFound("User not found")
	}
	return u, nil
}

// CreateUser creates a user. Role defaults to "user", isPremium to
// false; createdAt is set once here.
func (s *Service) CreateUser(req resource.CreateUserRequest) (resource.User, error) {
	if err := req.Validate().Err(); err != nil {
		return resource.User{}, err
	}

	u := resource.User{
		Name:      req.Name,
		Email:     req.Email,
		Role:      resource.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	if req.Role != nil {
		u.Role = *req.Role
	}

	u = s.store.Users.Insert(u)
	s.log.Info("user created", "id", u.ID, "role", u.Role)
	return u, nil
}

// UpdateUser merges the present fields of req into an existing user.
// Absent fields are untouched; there is no way to clear a field.
func (s *Service) UpdateUser(id int, req resource.UpdateUserRequest) (resource.User, error) {
	if err := req.Validate().Err(); err != nil {
		return resource.User{}, err
	}

	u, ok := s.store.Users.Update(id, func(u *resource.User) {
		req.Apply(u)
	})
	if !ok {
		return resource.User{}, notFound("User not found")
	}
	s.log.Info("user updated", "id", id)
	return u, nil
}

// DeleteUser removes a user. Posts referencing the user keep their
// authorId; the freed id may be reassigned by a later create.
func (s *Service) DeleteUser(id int) (types.DeleteResponse, error) {
	if !s.store.Users.Delete(id) {
		return types.DeleteResponse{}, notFound("User not found")
	}
	s.log.Info("user deleted", "id", id)
	return types.DeleteResponse{Success: true, DeletedID: id}, nil
}
