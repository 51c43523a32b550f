package repository_test

import (
	"context"
	"encoding/json"
	"glamp/infras/backend"
	backendMocks "glamp/infras/backend/mocks"
	"glamp/infras/otel/mocks"
	"glamp/internal/domains/glamp/repository"
	"glamp/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	domeID  = "3f1c2a4e-9b7d-4c1a-8e2f-5d6b7a8c9d0e"
	cabinID = "8a7b6c5d-4e3f-4a1b-9c2d-1e0f9a8b7c6d"
)

func TestGlampRepository_GetAllDropsInvalidIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := backendMocks.NewMockClient(ctrl)
	repo := repository.New(client, mocks.NewOtel())

	client.EXPECT().
		Get(gomock.Any(), "/glamps", gomock.Nil()).
		Return(json.RawMessage(`{"success":true,"data":[
			{"id":"`+domeID+`","name":"Dome","pricePerNight":30000},
			{"id":7,"name":"Legacy"},
			{"id":"`+cabinID+`","name":"Cabin","pricePerNight":null}
		]}`), nil)

	glamps, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, glamps, 2)
	assert.Equal(t, domeID, glamps[0].ID)
	assert.Equal(t, cabinID, glamps[1].ID)
	assert.Nil(t, glamps[1].PricePerNight)
}

func TestGlampRepository_GetAllBackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := backendMocks.NewMockClient(ctrl)
	repo := repository.New(client, mocks.NewOtel())

	client.EXPECT().Get(gomock.Any(), "/glamps", gomock.Nil()).Return(nil, &backend.Error{Status: 0, Message: "offline"})

	_, err := repo.GetAll(context.Background())

	var be *backend.Error
	assert.ErrorAs(t, err, &be)
}

func TestGlampRepository_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := backendMocks.NewMockClient(ctrl)
	repo := repository.New(client, mocks.NewOtel())

	client.EXPECT().
		Get(gomock.Any(), "/glamps/"+domeID, gomock.Nil()).
		Return(json.RawMessage(`{"data":{"id":"`+domeID+`","name":"Dome"}}`), nil)

	glamp, err := repo.Get(context.Background(), domeID)
	require.NoError(t, err)
	assert.Equal(t, "Dome", glamp.Name)

	client.EXPECT().
		Get(gomock.Any(), "/glamps/"+cabinID, gomock.Nil()).
		Return(nil, &backend.Error{Status: http.StatusNotFound, Message: "Not found"})

	_, err = repo.Get(context.Background(), cabinID)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
