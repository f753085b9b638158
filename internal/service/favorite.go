package service

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/starwars-back/internal/apierror"
	"github.com/Rogue-Bear-Innovations/starwars-back/internal/models"
)

const (
	msgFavoriteNotFound   = "Favorite not found"
	msgFavoriteNeedsOwner = "user_id is required"
)

// FavoriteCreate does not check that the referenced person, planet or
// starship exists.
func (s *General) FavoriteCreate(ctx context.Context, req *models.FavoriteReq) (*models.Favorite, error) {
	// Row ids start at 1, so a zero owner is as good as none.
	if req.UserID == nil || *req.UserID == 0 {
		return nil, apierror.BadRequest(msgFavoriteNeedsOwner)
	}

	model := models.Favorite{
		UserID:     *req.UserID,
		PersonID:   req.PersonID,
		PlanetID:   req.PlanetID,
		StarshipID: req.StarshipID,
	}

	res := s.db.WithContext(ctx).Create(&model)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "create favorite")
	}
	return &model, nil
}

func (s *General) FavoriteDelete(ctx context.Context, id uint64) error {
	res := s.db.WithContext(ctx).Delete(&models.Favorite{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete favorite")
	}
	if res.RowsAffected == 0 {
		return apierror.NotFound(msgFavoriteNotFound)
	}
	return nil
}

func (s *General) FavoriteListForUser(ctx context.Context, userID uint64) ([]models.Favorite, error) {
	if _, err := s.UserGet(ctx, userID); err != nil {
		return nil, err
	}

	sql, args, err := squirrel.
		Select("f.id", "f.created_at", "f.updated_at", "f.user_id", "f.person_id", "f.planet_id", "f.starship_id").
		From("favorites f").
		Where(squirrel.Eq{"f.user_id": userID}).
		OrderBy("f.id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	favorites := make([]models.Favorite, 0)
	res := s.db.WithContext(ctx).Raw(sql, args...).Scan(&favorites)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "scan")
	}

	return favorites, nil
}
