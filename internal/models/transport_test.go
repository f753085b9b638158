package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonReqApply(t *testing.T) {
	name := "Luke"
	height := int64(172)
	p := Person{Name: &name, Height: &height}

	req := PersonReq{}
	require.NoError(t, json.Unmarshal([]byte(`{"mass": 77, "height": null}`), &req))
	req.Apply(&p)

	require.NotNil(t, p.Name)
	assert.Equal(t, "Luke", *p.Name)
	require.NotNil(t, p.Height)
	assert.Equal(t, int64(172), *p.Height)
	require.NotNil(t, p.Mass)
	assert.Equal(t, int64(77), *p.Mass)
	assert.Nil(t, p.Gender)
}

func TestPlanetReqApply(t *testing.T) {
	name := "Tatooine"
	gravity := "1 standard"
	p := Planet{Name: &name, Gravity: &gravity}

	req := PlanetReq{}
	require.NoError(t, json.Unmarshal([]byte(`{"population": 200000, "gravity": "2 standard"}`), &req))
	req.Apply(&p)

	assert.Equal(t, "Tatooine", *p.Name)
	assert.Equal(t, "2 standard", *p.Gravity)
	assert.Equal(t, int64(200000), *p.Population)
	assert.Nil(t, p.Diameter)
}

func TestNewPersonRespNulls(t *testing.T) {
	name := "Luke"
	height := int64(172)
	p := Person{GormForkedModel: GormForkedModel{ID: 1}, Name: &name, Height: &height}

	got, err := json.Marshal(NewPersonResp(&p))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"name": "Luke",
		"height": 172,
		"mass": null,
		"hair_color": null,
		"skin_color": null,
		"eye_color": null,
		"birth_year": null,
		"gender": null,
		"homeworld_id": null
	}`, string(got))
}

func TestNewUserRespHidesPassword(t *testing.T) {
	u := User{GormForkedModel: GormForkedModel{ID: 3}, Email: "a@b.c", Password: "hash", IsActive: true}

	got, err := json.Marshal(NewUserResp(&u))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 3, "email": "a@b.c", "is_active": true}`, string(got))
}
