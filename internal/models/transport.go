package models

// PersonReq is used both for creation and for partial updates. A nil field is
// left untouched by Apply, so an explicit JSON null does not clear a value.
type PersonReq struct {
	Name        *string `json:"name"`
	Height      *int64  `json:"height"`
	Mass        *int64  `json:"mass"`
	HairColor   *string `json:"hair_color"`
	SkinColor   *string `json:"skin_color"`
	EyeColor    *string `json:"eye_color"`
	BirthYear   *string `json:"birth_year"`
	Gender      *string `json:"gender"`
	HomeworldID *uint64 `json:"homeworld_id"`
}

type PersonResp struct {
	ID          uint64  `json:"id"`
	Name        *string `json:"name"`
	Height      *int64  `json:"height"`
	Mass        *int64  `json:"mass"`
	HairColor   *string `json:"hair_color"`
	SkinColor   *string `json:"skin_color"`
	EyeColor    *string `json:"eye_color"`
	BirthYear   *string `json:"birth_year"`
	Gender      *string `json:"gender"`
	HomeworldID *uint64 `json:"homeworld_id"`
}

type PlanetReq struct {
	Name           *string `json:"name"`
	Diameter       *int64  `json:"diameter"`
	RotationPeriod *int64  `json:"rotation_period"`
	OrbitalPeriod  *int64  `json:"orbital_period"`
	Gravity        *string `json:"gravity"`
	Population     *int64  `json:"population"`
}

type PlanetResp struct {
	ID             uint64  `json:"id"`
	Name           *string `json:"name"`
	Diameter       *int64  `json:"diameter"`
	RotationPeriod *int64  `json:"rotation_period"`
	OrbitalPeriod  *int64  `json:"orbital_period"`
	Gravity        *string `json:"gravity"`
	Population     *int64  `json:"population"`
}

type FavoriteReq struct {
	UserID     *uint64 `json:"user_id" validate:"required,min=1"`
	PersonID   *uint64 `json:"person_id"`
	PlanetID   *uint64 `json:"planet_id"`
	StarshipID *uint64 `json:"starship_id"`
}

type FavoriteResp struct {
	ID         uint64  `json:"id"`
	UserID     uint64  `json:"user_id"`
	PersonID   *uint64 `json:"person_id"`
	PlanetID   *uint64 `json:"planet_id"`
	StarshipID *uint64 `json:"starship_id"`
}

type UserReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	IsActive *bool  `json:"is_active"`
}

type UserResp struct {
	ID       uint64 `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type MessageResp struct {
	Message string `json:"message"`
}

func (r *PersonReq) Apply(p *Person) {
	if r.Name != nil {
		p.Name = r.Name
	}
	if r.Height != nil {
		p.Height = r.Height
	}
	if r.Mass != nil {
		p.Mass = r.Mass
	}
	if r.HairColor != nil {
		p.HairColor = r.HairColor
	}
	if r.SkinColor != nil {
		p.SkinColor = r.SkinColor
	}
	if r.EyeColor != nil {
		p.EyeColor = r.EyeColor
	}
	if r.BirthYear != nil {
		p.BirthYear = r.BirthYear
	}
	if r.Gender != nil {
		p.Gender = r.Gender
	}
	if r.HomeworldID != nil {
		p.HomeworldID = r.HomeworldID
	}
}

func (r *PlanetReq) Apply(p *Planet) {
	if r.Name != nil {
		p.Name = r.Name
	}
	if r.Diameter != nil {
		p.Diameter = r.Diameter
	}
	if r.RotationPeriod != nil {
		p.RotationPeriod = r.RotationPeriod
	}
	if r.OrbitalPeriod != nil {
		p.OrbitalPeriod = r.OrbitalPeriod
	}
	if r.Gravity != nil {
		p.Gravity = r.Gravity
	}
	if r.Population != nil {
		p.Population = r.Population
	}
}

func NewPersonResp(p *Person) PersonResp {
	return PersonResp{
		ID:          p.ID,
		Name:        p.Name,
		Height:      p.Height,
		Mass:        p.Mass,
		HairColor:   p.HairColor,
		SkinColor:   p.SkinColor,
		EyeColor:    p.EyeColor,
		BirthYear:   p.BirthYear,
		Gender:      p.Gender,
		HomeworldID: p.HomeworldID,
	}
}

func NewPlanetResp(p *Planet) PlanetResp {
	return PlanetResp{
		ID:             p.ID,
		Name:           p.Name,
		Diameter:       p.Diameter,
		RotationPeriod: p.RotationPeriod,
		OrbitalPeriod:  p.OrbitalPeriod,
		Gravity:        p.Gravity,
		Population:     p.Population,
	}
}

func NewFavoriteResp(f *Favorite) FavoriteResp {
	return FavoriteResp{
		ID:         f.ID,
		UserID:     f.UserID,
		PersonID:   f.PersonID,
		PlanetID:   f.PlanetID,
		StarshipID: f.StarshipID,
	}
}

func NewUserResp(u *User) UserResp {
	return UserResp{
		ID:       u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}
