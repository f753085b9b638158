package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/starwars-back/internal/apierror"
	"github.com/Rogue-Bear-Innovations/starwars-back/internal/models"
)

const (
	msgUserNotFound = "User not found"
	msgUserExists   = "User already exists"
)

func (s *General) UserList(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	res := s.db.WithContext(ctx).Order("id").Find(&users)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "list users")
	}
	return users, nil
}

func (s *General) UserGet(ctx context.Context, id uint64) (*models.User, error) {
	user := models.User{}
	res := s.db.WithContext(ctx).First(&user, id)
	if res.Error != nil {
		if isNotFound(res.Error) {
			return nil, apierror.NotFound(msgUserNotFound)
		}
		return nil, errors.Wrap(res.Error, "get user")
	}
	return &user, nil
}

func (s *General) UserCreate(ctx context.Context, req *models.UserReq) (*models.User, error) {
	var count int64
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "count users by email")
	}
	if count != 0 {
		return nil, apierror.BadRequest(msgUserExists)
	}

	hash, err := s.bcryptGen(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "bcryptGen")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	model := models.User{
		Email:    req.Email,
		Password: hash,
		IsActive: isActive,
	}

	res = s.db.WithContext(ctx).Create(&model)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "create user")
	}

	s.logger.Infow("user created", "id", model.ID)
	return &model, nil
}
