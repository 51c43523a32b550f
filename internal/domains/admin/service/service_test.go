package service_test

import (
	"context"
	"encoding/json"
	"glamp/infras/backend"
	backendMocks "glamp/infras/backend/mocks"
	"glamp/infras/otel/mocks"
	"glamp/internal/domains/admin/model"
	"glamp/internal/domains/admin/model/dto"
	"glamp/internal/domains/admin/service"
	glampMocks "glamp/internal/domains/glamp/service/mocks"
	"glamp/shared/failure"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Admin, *backendMocks.MockClient, *glampMocks.MockGlamp) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := backendMocks.NewMockClient(ctrl)
	glamps := glampMocks.NewMockGlamp(ctrl)

	return service.New(client, glamps, mocks.NewOtel()), client, glamps
}

func TestAdminService_ForwardRead(t *testing.T) {
	svc, client, _ := newService(t)

	query := url.Values{"status": {"PENDING"}}

	client.EXPECT().
		Do(gomock.Any(), http.MethodGet, "/admin/bookings", query, nil).
		Return(json.RawMessage(`{"success":true,"data":[]}`), nil)

	res, err := svc.Forward(context.Background(), dto.ForwardRequest{
		Area:   model.AreaAdmin,
		Method: http.MethodGet,
		Path:   "bookings",
		Query:  query,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(res))
}

func TestAdminService_ForwardGlampMutationInvalidatesCache(t *testing.T) {
	svc, client, glamps := newService(t)

	client.EXPECT().
		Do(gomock.Any(), http.MethodPatch, "/admin/glamps/g-1", gomock.Nil(), json.RawMessage(`{"name":"Dome"}`)).
		Return(json.RawMessage(`{"success":true}`), nil)

	glamps.EXPECT().Invalidate(gomock.Any())

	_, err := svc.Forward(context.Background(), dto.ForwardRequest{
		Area:   model.AreaAdmin,
		Method: http.MethodPatch,
		Path:   "/glamps/g-1",
		Body:   json.RawMessage(` {"name":"Dome"} `),
	})
	require.NoError(t, err)
}

func TestAdminService_ForwardErrors(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ForwardRequest
		setupMock func(client *backendMocks.MockClient)
		wantCode  int
	}{
		{
			name:      "unsupported method",
			req:       dto.ForwardRequest{Area: model.AreaAdmin, Method: http.MethodOptions},
			setupMock: func(client *backendMocks.MockClient) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid body",
			req:       dto.ForwardRequest{Area: model.AreaAdmin, Method: http.MethodPost, Body: json.RawMessage(`{`)},
			setupMock: func(client *backendMocks.MockClient) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "forbidden",
			req:  dto.ForwardRequest{Area: model.AreaSuperAdmin, Method: http.MethodGet, Path: "users"},
			setupMock: func(client *backendMocks.MockClient) {
				client.EXPECT().Do(gomock.Any(), http.MethodGet, "/super-admin/users", gomock.Any(), gomock.Any()).
					Return(nil, &backend.Error{Status: http.StatusForbidden, Message: "Forbidden"})
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "failed glamp mutation keeps cache",
			req:  dto.ForwardRequest{Area: model.AreaAdmin, Method: http.MethodDelete, Path: "glamps/g-1"},
			setupMock: func(client *backendMocks.MockClient) {
				client.EXPECT().Do(gomock.Any(), http.MethodDelete, "/admin/glamps/g-1", gomock.Any(), gomock.Any()).
					Return(nil, &backend.Error{Status: http.StatusNotFound, Message: "Glamp not found"})
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, client, _ := newService(t)
			tt.setupMock(client)

			_, err := svc.Forward(context.Background(), tt.req)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
