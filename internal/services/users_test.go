package services_test

import (
	"strings"
	"testing"

	"github.com/monastery360/datastore/internal/models"
	"github.com/monastery360/datastore/internal/services"
	"github.com/monastery360/datastore/internal/store"
)

func newTestContext() (*services.Context, *store.MemoryStore) {
	mem := store.NewMemory()
	return services.NewContext(mem), mem
}

func validRegistration() services.RegistrationInput {
	return services.RegistrationInput{
		FirstName:       "Pema",
		LastName:        "Lhamo",
		Email:           "pema@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Role:            models.RoleTourist,
	}
}

func TestRegisterUser(t *testing.T) {
	ctx, _ := newTestContext()

	user, err := services.RegisterUser(ctx, validRegistration())
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	if !strings.HasPrefix(user.ID, "user_") {
		t.Errorf("ID %q lacks the user_ prefix", user.ID)
	}
	if !user.Active {
		t.Error("New user is not active")
	}
	if user.Role != models.RoleTourist {
		t.Errorf("Role = %q, want tourist", user.Role)
	}

	// The new user becomes the session user
	current := ctx.CurrentUser()
	if current == nil || current.ID != user.ID {
		t.Error("Registration did not open a session")
	}

	// Registration is logged, newest first
	activities := services.ListActivities(ctx)
	if len(activities) == 0 || activities[0].Type != models.ActivityUserRegistered {
		t.Errorf("Expected a user_registered activity at the head, got %+v", activities)
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	ctx, _ := newTestContext()

	if _, err := services.RegisterUser(ctx, validRegistration()); err != nil {
		t.Fatalf("First registration failed: %v", err)
	}

	// Same email with different case is still a conflict
	second := validRegistration()
	second.Email = "PEMA@Example.COM"
	if _, err := services.RegisterUser(ctx, second); err != services.ErrEmailTaken {
		t.Errorf("Got %v, want ErrEmailTaken", err)
	}

	if len(services.ListUsers(ctx)) != 1 {
		t.Error("Conflicting registration wrote a record")
	}
}

func TestRegisterUserValidation(t *testing.T) {
	ctx, _ := newTestContext()

	cases := []struct {
		name   string
		mutate func(*services.RegistrationInput)
	}{
		{"missing first name", func(in *services.RegistrationInput) { in.FirstName = "" }},
		{"bad email", func(in *services.RegistrationInput) { in.Email = "not-an-email" }},
		{"short password", func(in *services.RegistrationInput) { in.Password, in.ConfirmPassword = "abc", "abc" }},
		{"mismatched confirm", func(in *services.RegistrationInput) { in.ConfirmPassword = "different1" }},
		{"unknown role", func(in *services.RegistrationInput) { in.Role = "wizard" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegistration()
			tc.mutate(&in)
			if _, err := services.RegisterUser(ctx, in); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}

	if len(services.ListUsers(ctx)) != 0 {
		t.Error("Rejected registrations wrote records")
	}
}

func TestAuthenticate(t *testing.T) {
	ctx, _ := newTestContext()
	services.RegisterUser(ctx, validRegistration())
	services.SignOut(ctx)

	user, err := services.Authenticate(ctx, "pema@example.com", "secret1")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Email != "pema@example.com" {
		t.Errorf("Authenticated wrong user: %+v", user)
	}
	if ctx.CurrentUser() == nil {
		t.Error("Sign-in did not open a session")
	}
}

func TestAuthenticateUniformFailure(t *testing.T) {
	ctx, _ := newTestContext()
	services.RegisterUser(ctx, validRegistration())
	services.SignOut(ctx)

	// Wrong password for a known email and a completely unknown email fail
	// with the same error, so the endpoint cannot be used to probe emails.
	_, errKnown := services.Authenticate(ctx, "pema@example.com", "wrong")
	_, errUnknown := services.Authenticate(ctx, "nobody@example.com", "wrong")

	if errKnown != services.ErrInvalidCredentials || errUnknown != services.ErrInvalidCredentials {
		t.Errorf("Got (%v, %v), want uniform ErrInvalidCredentials", errKnown, errUnknown)
	}
	if ctx.CurrentUser() != nil {
		t.Error("Failed sign-in left a session open")
	}
}

func TestUpdateUserRole(t *testing.T) {
	ctx, _ := newTestContext()
	user, _ := services.RegisterUser(ctx, validRegistration())

	updated := services.UpdateUserRole(ctx, user.ID, models.RoleArchivist)
	if updated == nil || updated.Role != models.RoleArchivist {
		t.Fatalf("UpdateUserRole = %+v, want archivist", updated)
	}
	if updated.UpdatedAt == nil {
		t.Error("Role change did not stamp UpdatedAt")
	}

	if services.UpdateUserRole(ctx, user.ID, "wizard") != nil {
		t.Error("Invalid role was accepted")
	}
	if services.UpdateUserRole(ctx, "user_missing", models.RoleMonk) != nil {
		t.Error("Unknown id was accepted")
	}
}

func TestDeactivateUser(t *testing.T) {
	ctx, _ := newTestContext()
	user, _ := services.RegisterUser(ctx, validRegistration())

	deactivated := services.DeactivateUser(ctx, user.ID)
	if deactivated == nil {
		t.Fatal("DeactivateUser returned nil")
	}
	if deactivated.Active {
		t.Error("User is still active")
	}
	if deactivated.DeactivatedAt == nil {
		t.Error("Deactivation did not stamp DeactivatedAt")
	}

	// The record survives as a soft delete
	if len(services.ListUsers(ctx)) != 1 {
		t.Error("Deactivation removed the record")
	}

	if services.DeactivateUser(ctx, "user_missing") != nil {
		t.Error("Unknown id was accepted")
	}
}

func TestRegisterUserStoreFailure(t *testing.T) {
	ctx, mem := newTestContext()
	mem.FailWrites = true

	if _, err := services.RegisterUser(ctx, validRegistration()); err != services.ErrStoreWrite {
		t.Errorf("Got %v, want ErrStoreWrite", err)
	}
}
