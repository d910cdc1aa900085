package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/mkamau/warehouse-api/internal/domain/order"
	"github.com/mkamau/warehouse-api/internal/domain/user"
)

func TestUsersRepoList(t *testing.T) {
	repo := NewUsersRepo(
		user.User{Username: "jdoe", FullName: "Jane Doe", Email: "jdoe@example.com"},
		user.User{Username: "bsmith", FullName: "Bob Smith", Email: "bob@other.org"},
	)

	got, err := repo.List(context.Background(), user.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d users", len(got))
	}
}

func TestUsersRepoSearch(t *testing.T) {
	repo := NewUsersRepo(
		user.User{Username: "jdoe", Email: "jdoe@Example.com"},
		user.User{Username: "bsmith", Email: "bob@other.org"},
	)

	email := "example"
	got, err := repo.List(context.Background(), user.Filter{Email: &email})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(got) != 1 || got[0].Username != "jdoe" {
		t.Fatalf("case-insensitive substring match failed: %+v", got)
	}

	username := "smith"
	miss := "nosuch"
	got, err = repo.List(context.Background(), user.Filter{Username: &username, Email: &miss})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(got) != 0 {
		t.Fatalf("predicates must combine with AND, got %+v", got)
	}
}

func TestUsersRepoCap(t *testing.T) {
	seed := make([]user.User, resultCap+3)

	for i := range seed {
		seed[i] = user.User{Username: fmt.Sprintf("user%d", i)}
	}

	repo := NewUsersRepo(seed...)

	got, err := repo.List(context.Background(), user.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(got) != resultCap {
		t.Fatalf("got %d users, want %d", len(got), resultCap)
	}
}

func TestOrdersRepoFilter(t *testing.T) {
	repo := NewOrdersRepo(
		order.Order{UserID: "user123", TotalAmount: 49.90},
		order.Order{UserID: "user456", TotalAmount: 12.00},
	)

	// user_id matches exactly, not as a substring
	partial := "user1"
	got, err := repo.List(context.Background(), order.Filter{UserID: &partial})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(got) != 0 {
		t.Fatalf("partial user_id must not match, got %+v", got)
	}

	exact := "user123"
	got, err = repo.List(context.Background(), order.Filter{UserID: &exact})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(got) != 1 || got[0].TotalAmount != 49.90 {
		t.Fatalf("exact user_id match failed: %+v", got)
	}
}
