package service

import (
	"context"
	"time"

	"github.com/MKhiriev/brew-review/internal/logger"
	"github.com/MKhiriev/brew-review/internal/store"
	"github.com/MKhiriev/brew-review/models"
)

type userService struct {
	userRepository store.UserRepository
	now            func() time.Time

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, request models.UserLookupRequest) (models.User, error) {
	return s.userRepository.FindUserByEmail(ctx, request.UserEmail)
}

// RegisterUser stores the user with the current UTC time as RegistrationDate.
// Empty name or email are stored as they are.
func (s *userService) RegisterUser(ctx context.Context, request models.UserRegisterRequest) error {
	user := models.User{
		UserName:         request.UserName,
		UserEmail:        request.UserEmail,
		RegistrationDate: s.now(),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "userService.RegisterUser").
		Time("registration_date", user.RegistrationDate).
		Msg("user registered")
	return nil
}
