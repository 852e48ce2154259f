package core

import (
	"context"
	"errors"
	"fmt"

	"wastesync-backend-go/internal/clients/identity"
	"wastesync-backend-go/internal/db"
	"wastesync-backend-go/internal/models"
	"wastesync-backend-go/internal/result"
)

// ErrUserNotFound is returned when a profile document is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailAlreadyInUse is returned by SignUp when the e-mail is already
// bound to an existing identity.
var ErrEmailAlreadyInUse = errors.New("an account with this e-mail already exists")

// ErrProfileWriteAfterSignUp is returned when the auth identity was created
// but the subsequent profile write failed. The identity is NOT rolled back;
// the caller can retry profile creation against the existing identity.
var ErrProfileWriteAfterSignUp = errors.New("auth identity created but profile write failed")

// authService implements the AuthService interface.
type authService struct {
	authRepo db.AuthRepository
	userRepo db.UserRepository
	identity identity.Client
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(authRepo db.AuthRepository, userRepo db.UserRepository, identityClient identity.Client) AuthService {
	return &authService{
		authRepo: authRepo,
		userRepo: userRepo,
		identity: identityClient,
	}
}

// SignUp creates the auth identity, then writes the profile document keyed
// by the new UID. There is no compensating delete when the profile write
// fails: the identity survives, and the error is wrapped in
// ErrProfileWriteAfterSignUp to make the half-created state explicit to
// the caller.
func (s *authService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, error) {
	uid, err := s.authRepo.CreateAccount(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, db.ErrEmailAlreadyExists) {
			return nil, fmt.Errorf("%w: '%s'", ErrEmailAlreadyInUse, req.Email)
		}
		return nil, fmt.Errorf("sign up: %w", err)
	}

	user := &models.User{
		ID:      uid,
		Email:   req.Email,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		AreaID:  req.AreaID,
		RouteID: req.RouteID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w (uid %s): %v", ErrProfileWriteAfterSignUp, uid, err)
	}
	return user, nil
}

// SignIn exchanges credentials for tokens via the Identity Toolkit API.
func (s *authService) SignIn(ctx context.Context, req models.SignInRequest) (*identity.SignInResponse, error) {
	resp, err := s.identity.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return resp, nil
}

// SendVerificationEmail asks the provider to mail a verification link to the
// identity behind idToken.
func (s *authService) SendVerificationEmail(ctx context.Context, idToken string) error {
	if err := s.identity.SendVerificationEmail(ctx, idToken); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}

// EmailVerified reloads the identity and reports the verified flag.
func (s *authService) EmailVerified(ctx context.Context, userID string) (bool, error) {
	return s.authRepo.EmailVerified(ctx, userID)
}

// GetProfile retrieves the caller's profile document once.
func (s *authService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user by ID '%s': %w", userID, err)
	}
	return user, nil
}

// UpdateProfile applies the provided fields to the caller's profile and
// returns the updated document.
func (s *authService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.PhotoURL != nil {
		user.PhotoURL = *req.PhotoURL
	}
	if req.AreaID != nil {
		user.AreaID = *req.AreaID
	}
	if req.RouteID != nil {
		user.RouteID = *req.RouteID
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile for user '%s': %w", userID, err)
	}
	return user, nil
}

// ListenProfile streams the caller's own profile document.
func (s *authService) ListenProfile(ctx context.Context, userID string) *result.Subscription[*models.User] {
	return s.userRepo.Listen(ctx, userID)
}

// SetOnboardingCompleted persists the one boolean preference the client app
// keeps.
func (s *authService) SetOnboardingCompleted(ctx context.Context, userID string, completed bool) error {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	user.OnboardingCompleted = completed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to set onboarding flag for user '%s': %w", userID, err)
	}
	return nil
}
