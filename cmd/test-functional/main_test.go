//go:build functional

package test_functional

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rogue-Bear-Innovations/starwars-back/internal/apierror"
	"github.com/Rogue-Bear-Innovations/starwars-back/internal/models"
)

func TestPerson(t *testing.T) {
	defer FlushDB()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	cl := resty.New()

	resp, err := cl.R().
		SetHeader("Content-Type", "application/json").
		SetContext(ctx).
		SetResult(&models.PersonResp{}).
		SetBody(`{"name": "Luke", "height": 172}`).
		Post(URL("/person"))
	require.Nil(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode())

	created, ok := resp.Result().(*models.PersonResp)
	require.True(t, ok)
	assert.Equal(t, "Luke", *created.Name)
	assert.Nil(t, created.Mass)

	var height int64
	err = DBConn.QueryRow(ctx, "SELECT height FROM people WHERE id=$1", created.ID).Scan(&height)
	assert.Nil(t, err)
	assert.Equal(t, int64(172), height)

	resp, err = cl.R().
		SetHeader("Content-Type", "application/json").
		SetContext(ctx).
		SetResult(&models.PersonResp{}).
		SetBody(`{"mass": 77}`).
		Put(URL(fmt.Sprintf("/person/%d", created.ID)))
	require.Nil(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	updated, ok := resp.Result().(*models.PersonResp)
	require.True(t, ok)
	assert.Equal(t, int64(172), *updated.Height)
	assert.Equal(t, int64(77), *updated.Mass)

	resp, err = cl.R().SetContext(ctx).Delete(URL(fmt.Sprintf("/person/%d", created.ID)))
	require.Nil(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = cl.R().
		SetHeader("Content-Type", "application/json").
		SetContext(ctx).
		SetError(&apierror.Error{}).
		SetBody(`{"mass": 1}`).
		Put(URL(fmt.Sprintf("/person/%d", created.ID)))
	require.Nil(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	apiErr, ok := resp.Error().(*apierror.Error)
	require.True(t, ok)
	assert.Equal(t, "Person not found", apiErr.Message)
}

func TestFavorites(t *testing.T) {
	defer FlushDB()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	cl := resty.New()

	t.Run("missing user id", func(t *testing.T) {
		resp, err := cl.R().
			SetHeader("Content-Type", "application/json").
			SetContext(ctx).
			SetBody(`{"planet_id": 1}`).
			Post(URL("/favorites"))
		require.Nil(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	})

	t.Run("list for user", func(t *testing.T) {
		resp, err := cl.R().
			SetHeader("Content-Type", "application/json").
			SetContext(ctx).
			SetResult(&models.UserResp{}).
			SetBody(`{"email": "luke@rebels.org", "password": "usetheforce"}`).
			Post(URL("/users"))
		require.Nil(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode())
		user := resp.Result().(*models.UserResp)

		resp, err = cl.R().
			SetContext(ctx).
			SetResult(&[]models.FavoriteResp{}).
			Get(URL(fmt.Sprintf("/users/%d/favorites", user.ID)))
		require.Nil(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Empty(t, *resp.Result().(*[]models.FavoriteResp))

		resp, err = cl.R().
			SetHeader("Content-Type", "application/json").
			SetContext(ctx).
			SetBody(map[string]uint64{"user_id": user.ID, "person_id": 3}).
			Post(URL("/favorites"))
		require.Nil(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode())

		resp, err = cl.R().
			SetContext(ctx).
			SetResult(&[]models.FavoriteResp{}).
			Get(URL(fmt.Sprintf("/users/%d/favorites", user.ID)))
		require.Nil(t, err)
		got := *resp.Result().(*[]models.FavoriteResp)
		require.Len(t, got, 1)
		assert.Equal(t, uint64(3), *got[0].PersonID)
	})
}
