package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"translation-office/internal/dto"
	"translation-office/internal/repositories"
	"translation-office/pkg/config"
	"translation-office/pkg/constants"
	apperrors "translation-office/pkg/errors"
	"translation-office/pkg/service"
	"translation-office/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, data dto.LoginDTO, clientIP string) (*dto.LoginResponseDTO, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*dto.LoginResponseDTO, error)
	GetUserByID(ctx context.Context, id uint64) (*dto.UserDTO, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService service.JWTService
	cfg        config.AuthConfig
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	cfg config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
		cfg:        cfg,
		logger:     logger,
	}
}

// Login authenticates a staff member. Failed attempts are counted per client
// address in the shared cache, so rotating emails from one origin is still
// limited and a third party cannot lock out someone else's account. Once the
// limit is reached the origin stays blocked until the counter expires; a
// successful login clears it.
func (s *AuthService) Login(ctx context.Context, data dto.LoginDTO, clientIP string) (*dto.LoginResponseDTO, error) {
	attemptsKey := fmt.Sprintf(constants.CacheKeyLoginAttempts, clientIP)

	if locked, err := s.isLockedOut(ctx, attemptsKey); err != nil {
		s.logger.Warn("login attempt counter unavailable", zap.Error(err))
	} else if locked {
		return nil, apperrors.NewRateLimitError("too many failed login attempts, try again later")
	}

	user, err := s.userRepo.FindByEmail(ctx, data.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.recordFailedAttempt(ctx, attemptsKey)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.NewInternalError(err)
	}

	if err := utils.ComparePasswords(user.Password, data.Password); err != nil {
		s.recordFailedAttempt(ctx, attemptsKey)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.cacheRepo.Del(ctx, attemptsKey); err != nil {
		s.logger.Warn("failed to reset login attempt counter", zap.Error(err))
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	return &dto.LoginResponseDTO{
		User: dto.UserDTO{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) isLockedOut(ctx context.Context, key string) (bool, error) {
	value, err := s.cacheRepo.Get(ctx, key)
	if err != nil {
		// A missing key means no failed attempts yet.
		return false, nil
	}
	var attempts int
	if _, err := fmt.Sscanf(value, "%d", &attempts); err != nil {
		return false, err
	}
	return attempts >= s.cfg.MaxLoginAttempts, nil
}

// recordFailedAttempt bumps the counter and refreshes its TTL so the window
// slides from the latest failure.
func (s *AuthService) recordFailedAttempt(ctx context.Context, key string) {
	if _, err := s.cacheRepo.Incr(ctx, key); err != nil {
		s.logger.Warn("failed to record login attempt", zap.Error(err))
		return
	}
	if _, err := s.cacheRepo.Expire(ctx, key, s.cfg.LockoutDuration); err != nil {
		s.logger.Warn("failed to set login attempt TTL", zap.Error(err))
	}
}

func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*dto.LoginResponseDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.NewInternalError(err)
	}

	accessToken, newRefreshToken, err := s.jwtService.GenerateTokens(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	return &dto.LoginResponseDTO{
		User: dto.UserDTO{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.UserDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}
