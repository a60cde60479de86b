package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"silage/database"
	"silage/entities"
	"silage/pkg/aggregate"
	"silage/pkg/client"
	"silage/router"
)

func newServer(t *testing.T) *client.Client {
	t.Helper()
	db, err := database.Open("sqlite", "file::memory:", zap.NewNop())
	require.NoError(t, err)
	e, _ := router.Wire(echo.New(), db, zap.NewNop(), "")
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return client.New(srv.URL, client.WithHTTPClient(srv.Client()))
}

func f64(v float64) *float64 { return &v }
func u(v uint) *uint         { return &v }

func TestClient_CRUDRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newServer(t)

	farm, err := c.Farms().Create(ctx, entities.Farm{Name: "North"})
	require.NoError(t, err)
	assert.NotZero(t, farm.ID)

	tr, err := c.Trenches().Create(ctx, entities.Trench{FarmID: farm.ID, Name: "T1"})
	require.NoError(t, err)

	h, err := c.Harvests().Create(ctx, entities.Harvest{TrenchID: tr.ID, Season: 2024, Harvesting: 1})
	require.NoError(t, err)

	tc, err := c.TrenchControl().Create(ctx, entities.TrenchControl{
		HarvestID: u(h.ID),
		Date:      entities.NewDate(2024, 5, 1),
		Weight:    f64(500),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", tc.Date.String())

	tc.Weight = f64(750)
	updated, err := c.TrenchControl().Update(ctx, tc.ID, *tc)
	require.NoError(t, err)
	assert.Equal(t, 750.0, *updated.Weight)

	got, err := c.TrenchControlForSeason(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tc.ID, got[0].ID)

	none, err := c.TrenchControlForSeason(ctx, 2023)
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, c.TrenchControl().Delete(ctx, tc.ID))
	_, err = c.TrenchControl().Get(ctx, tc.ID)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestClient_APIErrorCarriesServerMessage(t *testing.T) {
	ctx := context.Background()
	c := newServer(t)

	farm, err := c.Farms().Create(ctx, entities.Farm{Name: "North"})
	require.NoError(t, err)
	tr, err := c.Trenches().Create(ctx, entities.Trench{FarmID: farm.ID, Name: "T1"})
	require.NoError(t, err)
	_, err = c.Harvests().Create(ctx, entities.Harvest{TrenchID: tr.ID, Season: 2024, Harvesting: 1})
	require.NoError(t, err)

	_, err = c.Harvests().Create(ctx, entities.Harvest{TrenchID: tr.ID, Season: 2024, Harvesting: 1})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.True(t, apiErr.Mentions("trenches_harvest_uniq"))

	_, err = c.Trenches().Create(ctx, entities.Trench{FarmID: 42, Name: "T2"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "farm_id 42 does not exist", apiErr.Message)
}

func TestClient_TemplatesAndReport(t *testing.T) {
	ctx := context.Background()
	c := newServer(t)

	crop, err := c.Crops().Create(ctx, entities.Crop{Name: "Maize"})
	require.NoError(t, err)
	assert.True(t, crop.Active)

	tpl, err := c.FossTemplates().Create(ctx, entities.FossTemplate{Name: "std", FossLimits: entities.FossLimits{DryMatterLowerLimit: f64(30)}})
	require.NoError(t, err)

	norm, err := c.ApplyFossTemplate(ctx, crop.ID, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, crop.ID, norm.CropID)
	assert.Equal(t, 30.0, *norm.DryMatterLowerLimit)

	norms, err := c.FossNorms().List(ctx, map[string]string{"crop_id": "1"})
	require.NoError(t, err)
	assert.Len(t, norms, 1)

	season := 2024
	rows, err := c.TrenchControlReport(ctx, aggregate.Selection{Season: &season})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := client.New(srv.URL)

	_, err := c.Farms().List(context.Background(), nil)
	require.Error(t, err)
	var apiErr *client.APIError
	assert.NotErrorAs(t, err, &apiErr)
}
