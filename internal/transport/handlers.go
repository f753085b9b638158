package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rogue-Bear-Innovations/starwars-back/internal/models"
)

func (s *HTTPServer) PersonList(c echo.Context) error {
	people, err := s.svc.PersonList(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]models.PersonResp, len(people))
	for i := range people {
		resp[i] = models.NewPersonResp(&people[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) PersonGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id", "Person not found")
	if err != nil {
		return err
	}

	person, err := s.svc.PersonGet(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewPersonResp(person))
}

func (s *HTTPServer) PersonCreate(c echo.Context) error {
	req := models.PersonReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	person, err := s.svc.PersonCreate(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.NewPersonResp(person))
}

func (s *HTTPServer) PersonUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id", "Person not found")
	if err != nil {
		return err
	}

	req := models.PersonReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	person, err := s.svc.PersonUpdate(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewPersonResp(person))
}

func (s *HTTPServer) PersonDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id", "Person not found")
	if err != nil {
		return err
	}

	if err := s.svc.PersonDelete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.MessageResp{Message: "Person deleted successfully"})
}

func (s *HTTPServer) PlanetList(c echo.Context) error {
	planets, err := s.svc.PlanetList(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]models.PlanetResp, len(planets))
	for i := range planets {
		resp[i] = models.NewPlanetResp(&planets[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) PlanetGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id", "Planet not found")
	if err != nil {
		return err
	}

	planet, err := s.svc.PlanetGet(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewPlanetResp(planet))
}

func (s *HTTPServer) PlanetCreate(c echo.Context) error {
	req := models.PlanetReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	planet, err := s.svc.PlanetCreate(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.NewPlanetResp(planet))
}

func (s *HTTPServer) PlanetUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id", "Planet not found")
	if err != nil {
		return err
	}

	req := models.PlanetReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	planet, err := s.svc.PlanetUpdate(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewPlanetResp(planet))
}

func (s *HTTPServer) PlanetDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id", "Planet not found")
	if err != nil {
		return err
	}

	if err := s.svc.PlanetDelete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.MessageResp{Message: "Planet deleted successfully"})
}

func (s *HTTPServer) FavoriteCreate(c echo.Context) error {
	req := models.FavoriteReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	favorite, err := s.svc.FavoriteCreate(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.NewFavoriteResp(favorite))
}

func (s *HTTPServer) FavoriteDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id", "Favorite not found")
	if err != nil {
		return err
	}

	if err := s.svc.FavoriteDelete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.MessageResp{Message: "Favorite deleted successfully"})
}

func (s *HTTPServer) UserList(c echo.Context) error {
	users, err := s.svc.UserList(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]models.UserResp, len(users))
	for i := range users {
		resp[i] = models.NewUserResp(&users[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) UserGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id", "User not found")
	if err != nil {
		return err
	}

	user, err := s.svc.UserGet(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewUserResp(user))
}

func (s *HTTPServer) UserCreate(c echo.Context) error {
	req := models.UserReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := s.svc.UserCreate(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.NewUserResp(user))
}

func (s *HTTPServer) UserFavorites(c echo.Context) error {
	id, err := GetAndParseParam(c, "id", "User not found")
	if err != nil {
		return err
	}

	favorites, err := s.svc.FavoriteListForUser(c.Request().Context(), id)
	if err != nil {
		return err
	}

	resp := make([]models.FavoriteResp, len(favorites))
	for i := range favorites {
		resp[i] = models.NewFavoriteResp(&favorites[i])
	}
	return c.JSON(http.StatusOK, resp)
}
