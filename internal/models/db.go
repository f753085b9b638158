package models

import (
	"time"
)

type (
	GormForkedModel struct {
		ID        uint64 `gorm:"primarykey"`
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	User struct {
		GormForkedModel
		Email     string     `gorm:"unique;not null"`
		Password  string     `gorm:"not null"`
		IsActive  bool       `gorm:"not null"`
		Favorites []Favorite
	}

	Person struct {
		GormForkedModel
		Name        *string
		Height      *int64
		Mass        *int64
		HairColor   *string
		SkinColor   *string
		EyeColor    *string
		BirthYear   *string
		Gender      *string
		HomeworldID *uint64 `gorm:"index"`
	}

	Planet struct {
		GormForkedModel
		Name           *string
		Diameter       *int64
		RotationPeriod *int64
		OrbitalPeriod  *int64
		Gravity        *string
		Population     *int64
		Residents      []Person `gorm:"foreignKey:HomeworldID"`
	}

	// Favorite points at a person, planet or starship by id only. Starships
	// have no table, and none of the ids, user_id included, is checked for
	// existence. No foreign keys are migrated for any relation.
	Favorite struct {
		GormForkedModel
		UserID     uint64 `gorm:"not null;index"`
		PersonID   *uint64
		PlanetID   *uint64
		StarshipID *uint64
	}
)

func (Person) TableName() string {
	return "people"
}
