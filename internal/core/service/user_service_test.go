package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

func seedUsers(t *testing.T, repo *stubUserRepo, n int) []*domain.User {
	t.Helper()
	created := make([]*domain.User, 0, n)
	for i := 0; i < n; i++ {
		u, err := repo.Create(context.Background(), &domain.User{
			Email:        fmt.Sprintf("user%02d@x.com", i),
			PasswordHash: "$2a$10$fakedhashfakedhashfakedhashfakedhashfakedhashfakedha",
			FullName:     fmt.Sprintf("User %02d", i),
			Role:         domain.RoleUser,
			Status:       domain.StatusActive,
		})
		if err != nil {
			t.Fatalf("seed user %d: %v", i, err)
		}
		created = append(created, u)
	}
	return created
}

func TestUserService_List_Pagination(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo, 25)
	svc := NewUserService(repo, testLogger())

	page1, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if len(page1.Users) != 10 {
		t.Fatalf("page 1: expected 10 users, got %d", len(page1.Users))
	}
	if page1.Total != 25 || page1.Pages != 3 || page1.Page != 1 {
		t.Fatalf("page 1: unexpected meta: %+v", page1)
	}

	page3, err := svc.List(context.Background(), 3)
	if err != nil {
		t.Fatalf("list page 3: %v", err)
	}
	if len(page3.Users) != 5 {
		t.Fatalf("page 3: expected 5 users, got %d", len(page3.Users))
	}

	page4, err := svc.List(context.Background(), 4)
	if err != nil {
		t.Fatalf("out-of-range page must not error: %v", err)
	}
	if len(page4.Users) != 0 {
		t.Fatalf("page 4: expected empty list, got %d users", len(page4.Users))
	}
	if page4.Page != 4 || page4.Pages != 3 {
		t.Fatalf("page 4: unexpected meta: %+v", page4)
	}
}

func TestUserService_List_ClampsPage(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo, 3)
	svc := NewUserService(repo, testLogger())

	result, err := svc.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Page != 1 || len(result.Users) != 3 {
		t.Fatalf("expected page clamped to 1 with 3 users, got %+v", result)
	}
}

func TestUserService_List_StripsHashes(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo, 3)
	svc := NewUserService(repo, testLogger())

	result, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, u := range result.Users {
		if u.PasswordHash != "" {
			t.Fatalf("listing leaks password hash for %s", u.ID)
		}
	}
}

func TestUserService_List_StableOrder(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUsers(t, repo, 12)
	svc := NewUserService(repo, testLogger())

	page2, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page2.Users) != 2 {
		t.Fatalf("expected 2 users on page 2, got %d", len(page2.Users))
	}
	if page2.Users[0].ID != seeded[10].ID || page2.Users[1].ID != seeded[11].ID {
		t.Fatalf("page 2 not in creation order: %s, %s", page2.Users[0].ID, page2.Users[1].ID)
	}
}

func TestUserService_ActivateDeactivate(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUsers(t, repo, 1)
	svc := NewUserService(repo, testLogger())
	id := seeded[0].ID

	if err := svc.Deactivate(context.Background(), id); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if repo.users[id].Status != domain.StatusInactive {
		t.Fatalf("expected inactive, got %s", repo.users[id].Status)
	}

	if err := svc.Activate(context.Background(), id); err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	if repo.users[id].Status != domain.StatusActive {
		t.Fatalf("expected active, got %s", repo.users[id].Status)
	}

	// repeated activation is a no-op, not an error
	if err := svc.Activate(context.Background(), id); err != nil {
		t.Fatalf("repeated activate must be idempotent: %v", err)
	}
	if repo.users[id].Status != domain.StatusActive {
		t.Fatalf("status drifted on repeated activate: %s", repo.users[id].Status)
	}
}

func TestUserService_SetStatus_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger())

	if err := svc.Activate(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := svc.Deactivate(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfile_NameOnly(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUsers(t, repo, 1)
	svc := NewUserService(repo, testLogger())
	id := seeded[0].ID
	hashBefore := repo.users[id].PasswordHash

	user, err := svc.UpdateProfile(context.Background(), id, ports.UpdateProfileInput{FullName: "New Name"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if user.FullName != "New Name" {
		t.Fatalf("name not updated: %q", user.FullName)
	}
	if user.Email != seeded[0].Email {
		t.Fatalf("email changed unexpectedly: %q", user.Email)
	}
	if repo.users[id].PasswordHash != hashBefore {
		t.Fatalf("profile update mutated the stored hash")
	}
}

func TestUserService_UpdateProfile_EmailInUse(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUsers(t, repo, 2)
	svc := NewUserService(repo, testLogger())

	_, err := svc.UpdateProfile(context.Background(), seeded[0].ID, ports.UpdateProfileInput{Email: seeded[1].Email})
	if err != domain.ErrEmailInUse {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
	if repo.users[seeded[0].ID].Email != seeded[0].Email {
		t.Fatalf("email mutated despite conflict")
	}
}

func TestUserService_UpdateProfile_OwnEmailIsNoConflict(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUsers(t, repo, 1)
	svc := NewUserService(repo, testLogger())

	user, err := svc.UpdateProfile(context.Background(), seeded[0].ID, ports.UpdateProfileInput{Email: seeded[0].Email})
	if err != nil {
		t.Fatalf("re-submitting own email must succeed: %v", err)
	}
	if user.Email != seeded[0].Email {
		t.Fatalf("unexpected email: %q", user.Email)
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger())

	hash, err := hashPassword("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	created, err := repo.Create(context.Background(), &domain.User{
		Email:        "ann@x.com",
		PasswordHash: hash,
		FullName:     "Ann Lee",
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), created.ID, "password123", "newpassword1"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	stored := repo.users[created.ID]
	if !verifyPassword(stored.PasswordHash, "newpassword1") {
		t.Fatalf("new password does not verify")
	}
	if verifyPassword(stored.PasswordHash, "password123") {
		t.Fatalf("old password still verifies")
	}
}

func TestUserService_ChangePassword_WrongOldKeepsHash(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger())

	hash, err := hashPassword("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	created, err := repo.Create(context.Background(), &domain.User{
		Email:        "ann@x.com",
		PasswordHash: hash,
		FullName:     "Ann Lee",
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), created.ID, "wrongpass", "newpassword1"); err != domain.ErrInvalidOldPassword {
		t.Fatalf("expected ErrInvalidOldPassword, got %v", err)
	}
	if repo.users[created.ID].PasswordHash != hash {
		t.Fatalf("stored hash mutated on failed change")
	}
}
