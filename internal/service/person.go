package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/starwars-back/internal/apierror"
	"github.com/Rogue-Bear-Innovations/starwars-back/internal/models"
)

const msgPersonNotFound = "Person not found"

func (s *General) PersonList(ctx context.Context) ([]models.Person, error) {
	people := make([]models.Person, 0)
	res := s.db.WithContext(ctx).Order("id").Find(&people)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "list people")
	}
	return people, nil
}

func (s *General) PersonGet(ctx context.Context, id uint64) (*models.Person, error) {
	person := models.Person{}
	res := s.db.WithContext(ctx).First(&person, id)
	if res.Error != nil {
		if isNotFound(res.Error) {
			return nil, apierror.NotFound(msgPersonNotFound)
		}
		return nil, errors.Wrap(res.Error, "get person")
	}
	return &person, nil
}

func (s *General) PersonCreate(ctx context.Context, req *models.PersonReq) (*models.Person, error) {
	model := models.Person{}
	req.Apply(&model)

	res := s.db.WithContext(ctx).Create(&model)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "create person")
	}
	return &model, nil
}

func (s *General) PersonUpdate(ctx context.Context, id uint64, req *models.PersonReq) (*models.Person, error) {
	model, err := s.PersonGet(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(model)

	res := s.db.WithContext(ctx).Save(model)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "update person")
	}
	return model, nil
}

func (s *General) PersonDelete(ctx context.Context, id uint64) error {
	res := s.db.WithContext(ctx).Delete(&models.Person{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete person")
	}
	if res.RowsAffected == 0 {
		return apierror.NotFound(msgPersonNotFound)
	}
	return nil
}
