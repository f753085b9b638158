package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/starwars-back/internal/apierror"
	"github.com/Rogue-Bear-Innovations/starwars-back/internal/models"
)

const msgPlanetNotFound = "Planet not found"

func (s *General) PlanetList(ctx context.Context) ([]models.Planet, error) {
	planets := make([]models.Planet, 0)
	res := s.db.WithContext(ctx).Order("id").Find(&planets)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "list planets")
	}
	return planets, nil
}

func (s *General) PlanetGet(ctx context.Context, id uint64) (*models.Planet, error) {
	planet := models.Planet{}
	res := s.db.WithContext(ctx).First(&planet, id)
	if res.Error != nil {
		if isNotFound(res.Error) {
			return nil, apierror.NotFound(msgPlanetNotFound)
		}
		return nil, errors.Wrap(res.Error, "get planet")
	}
	return &planet, nil
}

func (s *General) PlanetCreate(ctx context.Context, req *models.PlanetReq) (*models.Planet, error) {
	model := models.Planet{}
	req.Apply(&model)

	res := s.db.WithContext(ctx).Create(&model)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "create planet")
	}
	return &model, nil
}

func (s *General) PlanetUpdate(ctx context.Context, id uint64, req *models.PlanetReq) (*models.Planet, error) {
	model, err := s.PlanetGet(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(model)

	res := s.db.WithContext(ctx).Save(model)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "update planet")
	}
	return model, nil
}

func (s *General) PlanetDelete(ctx context.Context, id uint64) error {
	res := s.db.WithContext(ctx).Delete(&models.Planet{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete planet")
	}
	if res.RowsAffected == 0 {
		return apierror.NotFound(msgPlanetNotFound)
	}
	return nil
}
