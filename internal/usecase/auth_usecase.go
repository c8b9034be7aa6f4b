package usecase

import (
	"errors"
	"strings"

	"github.com/hapchess/chess-mentor-hub/internal/dto"
	"github.com/hapchess/chess-mentor-hub/internal/service"
)

var (
	ErrCredentialsRequired = errors.New("username and password required")
	ErrInvalidCredentials  = errors.New("incorrect username or password")
)

// AuthUsecase authenticates coaches against the fixed credential table.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
type AuthUsecase struct {
	credentials map[string]string
	verifier    service.PasswordVerifierInterface
}

func NewAuthUsecase(credentials map[string]string, verifier service.PasswordVerifierInterface) *AuthUsecase {
	return &AuthUsecase{credentials: credentials, verifier: verifier}
}

func (uc *AuthUsecase) Login(req *dto.CoachLoginRequest) (*dto.CoachLoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	hash, ok := uc.credentials[username]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := uc.verifier.Verify(hash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &dto.CoachLoginResponse{
		Message:  "Login successful",
		CoachID:  username,
		Username: username,
	}, nil
}
