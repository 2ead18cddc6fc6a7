package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/notify"
	"github.com/anotoria/Zenith-AI/internal/repository"
	"github.com/anotoria/Zenith-AI/internal/transfer"
)

type UserService interface {
	GetUserInfo(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	TogglePermission(ctx context.Context, userID, permission string) (*models.User, error)
	ToggleActive(ctx context.Context, userID, actorID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, pu *transfer.ProfileUpdate) (*models.User, error)
}

type userService struct {
	u repository.UserRepository
	n *notify.Notifier
}

func NewUserService(u repository.UserRepository, n *notify.Notifier) UserService {
	return &userService{
		u: u,
		n: n,
	}
}

func (s *userService) GetUserInfo(ctx context.Context, id string) (*models.User, error) {
	user, isExist, err := s.u.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting user info")
	}

	if !isExist {
		err = errors.New("user not found")
		slog.Info(err.Error())
		return nil, fmt.Errorf("user doesn't exist")
	}

	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.u.List(ctx)
}

func (s *userService) TogglePermission(ctx context.Context, userID, permission string) (*models.User, error) {
	user, isExist, err := s.u.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		err = errors.New("user not found")
		slog.Info(err.Error())
		return nil, err
	}

	switch permission {
	case "can_publish":
		user.Permissions.CanPublish = !user.Permissions.CanPublish
	case "can_manage_trails":
		user.Permissions.CanManageTrails = !user.Permissions.CanManageTrails
	case "can_manage_users":
		user.Permissions.CanManageUsers = !user.Permissions.CanManageUsers
	default:
		err = fmt.Errorf("unknown permission %q", permission)
		slog.Info(err.Error())
		return nil, err
	}

	if err := s.u.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ToggleActive(ctx context.Context, userID, actorID string) (*models.User, error) {
	user, isExist, err := s.u.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		err = errors.New("user not found")
		slog.Info(err.Error())
		return nil, err
	}

	wasActive := user.IsActive
	user.IsActive = !user.IsActive
	if err := s.u.Update(ctx, user); err != nil {
		return nil, err
	}

	if userID == actorID && wasActive {
		s.n.Error("Warning: you deactivated your own user.")
	}

	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, pu *transfer.ProfileUpdate) (*models.User, error) {
	user, isExist, err := s.u.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		err = errors.New("user not found")
		slog.Info(err.Error())
		return nil, err
	}

	if pu.Name != "" {
		user.Name = pu.Name
	}
	if pu.Email != "" {
		user.Email = pu.Email
	}
	if pu.Avatar != "" {
		user.Avatar = pu.Avatar
	}
	user.Socials.Twitter = pu.Twitter
	user.Socials.LinkedIn = pu.LinkedIn
	user.Socials.Website = pu.Website

	if err := s.u.Update(ctx, user); err != nil {
		return nil, err
	}

	s.n.Success("Profile updated successfully!")
	return user, nil
}
