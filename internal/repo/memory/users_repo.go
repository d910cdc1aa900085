package memory

import (
	"context"
	"sync"

	"github.com/mkamau/warehouse-api/internal/domain/user"
)

type UsersRepo struct {
	mu    sync.RWMutex
	items []user.User
}

// NewUsersRepo seeds the repo with the given users; the API never
// writes this collection.
func NewUsersRepo(seed ...user.User) *UsersRepo {
	return &UsersRepo{items: seed}
}

func (r *UsersRepo) List(ctx context.Context, f user.Filter) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0)

	for _, u := range r.items {
		if f.Username != nil && !containsFold(u.Username, *f.Username) {
			continue
		}

		if f.Email != nil && !containsFold(u.Email, *f.Email) {
			continue
		}

		out = append(out, u)

		if len(out) == resultCap {
			break
		}
	}

	return out, nil
}
