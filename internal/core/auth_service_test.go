package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"wastesync-backend-go/internal/clients/identity"
	"wastesync-backend-go/internal/db"
	"wastesync-backend-go/internal/models"
	"wastesync-backend-go/internal/result"
)

type fakeAuthRepo struct {
	uid       string
	createErr error
	created   int
	verified  bool
}

func (f *fakeAuthRepo) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created++
	return f.uid, nil
}

func (f *fakeAuthRepo) EmailVerified(ctx context.Context, uid string) (bool, error) {
	return f.verified, nil
}

type fakeUserRepo struct {
	users     map[string]*models.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Listen(ctx context.Context, userID string) *result.Subscription[*models.User] {
	return result.Start(ctx, func(ctx context.Context, emit func(result.Result[*models.User]) bool) {
		emit(result.Loading[*models.User]())
	})
}

type fakeIdentityClient struct {
	signInErr error
}

func (f *fakeIdentityClient) SignInWithPassword(ctx context.Context, email, password string) (*identity.SignInResponse, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &identity.SignInResponse{UID: "uid-1", Email: email, IDToken: "tok"}, nil
}

func (f *fakeIdentityClient) SendVerificationEmail(ctx context.Context, idToken string) error {
	return nil
}

func TestSignUpWritesProfileUnderNewUID(t *testing.T) {
	authRepo := &fakeAuthRepo{uid: "uid-7"}
	userRepo := newFakeUserRepo()
	svc := NewAuthService(authRepo, userRepo, &fakeIdentityClient{})

	user, err := svc.SignUp(context.Background(), models.SignUpRequest{
		Email: "a@b.c", Password: "secret1", Name: "Resident",
	})
	if err != nil {
		t.Fatal(err)
	}
	if user.ID != "uid-7" {
		t.Fatalf("profile ID = %q, want auth UID", user.ID)
	}
	if _, ok := userRepo.users["uid-7"]; !ok {
		t.Fatal("profile document not written")
	}
}

func TestSignUpProfileWriteFailureKeepsIdentity(t *testing.T) {
	authRepo := &fakeAuthRepo{uid: "uid-7"}
	userRepo := newFakeUserRepo()
	userRepo.createErr = errors.New("firestore unavailable")
	svc := NewAuthService(authRepo, userRepo, &fakeIdentityClient{})

	_, err := svc.SignUp(context.Background(), models.SignUpRequest{
		Email: "a@b.c", Password: "secret1", Name: "Resident",
	})
	if !errors.Is(err, ErrProfileWriteAfterSignUp) {
		t.Fatalf("err = %v, want ErrProfileWriteAfterSignUp", err)
	}
	// No compensating delete: the identity creation still happened once.
	if authRepo.created != 1 {
		t.Fatalf("identity created %d times, want exactly 1 with no rollback", authRepo.created)
	}
}

func TestSignUpDuplicateEmailMapsToConflictSentinel(t *testing.T) {
	authRepo := &fakeAuthRepo{
		createErr: fmt.Errorf("%w: 'a@b.c'", db.ErrEmailAlreadyExists),
	}
	userRepo := newFakeUserRepo()
	svc := NewAuthService(authRepo, userRepo, &fakeIdentityClient{})

	_, err := svc.SignUp(context.Background(), models.SignUpRequest{
		Email: "a@b.c", Password: "secret1", Name: "Resident",
	})
	if !errors.Is(err, ErrEmailAlreadyInUse) {
		t.Fatalf("err = %v, want ErrEmailAlreadyInUse", err)
	}
	if len(userRepo.users) != 0 {
		t.Fatal("no profile document may be written for a duplicate e-mail")
	}
}

func TestUpdateProfileAppliesOnlyProvidedFields(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users["u-1"] = &models.User{ID: "u-1", Name: "Old", Address: "Keep St"}
	svc := NewAuthService(&fakeAuthRepo{}, userRepo, &fakeIdentityClient{})

	name := "New"
	user, err := svc.UpdateProfile(context.Background(), "u-1", models.UpdateProfileRequest{Name: &name})
	if err != nil {
		t.Fatal(err)
	}
	if user.Name != "New" {
		t.Fatalf("name = %q", user.Name)
	}
	if user.Address != "Keep St" {
		t.Fatalf("untouched field was modified: %q", user.Address)
	}
}

func TestSetOnboardingCompleted(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users["u-1"] = &models.User{ID: "u-1"}
	svc := NewAuthService(&fakeAuthRepo{}, userRepo, &fakeIdentityClient{})

	if err := svc.SetOnboardingCompleted(context.Background(), "u-1", true); err != nil {
		t.Fatal(err)
	}
	if !userRepo.users["u-1"].OnboardingCompleted {
		t.Fatal("onboarding flag not persisted")
	}
}

func TestSignInPropagatesProviderMessage(t *testing.T) {
	svc := NewAuthService(&fakeAuthRepo{}, newFakeUserRepo(), &fakeIdentityClient{signInErr: errors.New("INVALID_PASSWORD")})

	_, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "a@b.c", Password: "x"})
	if err == nil {
		t.Fatal("expected sign-in error")
	}
}
