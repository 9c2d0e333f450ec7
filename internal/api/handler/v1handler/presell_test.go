package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"presell/internal/api/handler/v1handler"
	"presell/internal/presell"
	mockpresell "presell/internal/presell/mock"
	"presell/pkg/domain"
	"presell/pkg/serrors"
	"presell/pkg/urlguard"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiFixture struct {
	service *mockpresell.MockService
	handler http.Handler
	userID  domain.UserID
	token   string
}

func newAPIFixture(t *testing.T) apiFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mockpresell.NewMockService(ctrl)

	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	uid := uuid.New()
	now := time.Now()

	allowList, err := urlguard.NewAllowList("hotmart.com")
	require.NoError(t, err)

	h := v1handler.New(v1handler.Deps{
		Presells:  service,
		Validator: urlguard.New(allowList, urlguard.Options{}),
	})

	return apiFixture{
		service: service,
		handler: h.Routes(sh),
		userID:  domain.UserID(uid),
		token:   signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour)),
	}
}

func (f apiFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+f.token)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	return rec
}

func ptr(s string) *string { return &s }

func TestCreatePresell(t *testing.T) {
	f := newAPIFixture(t)
	ID := domain.PresellID(uuid.New())
	created := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)

	f.service.EXPECT().Create(gomock.Any(), f.userID, "https://pay.hotmart.com/x").Return(&domain.Presell{
		ID:                 ID,
		UserID:             f.userID,
		URL:                "https://pay.hotmart.com/x",
		Status:             domain.PresellStatusPending,
		CaptureRequestedAt: created,
		CreatedAt:          created,
	}, nil)

	rec := f.do(http.MethodPost, "/presells", `{"url":"https://pay.hotmart.com/x"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "/v1/presells/"+ID.String(), rec.Header().Get("Location"))
	require.JSONEq(t, `{
		"id":"`+ID.String()+`",
		"url":"https://pay.hotmart.com/x",
		"status":"PENDING",
		"desktop":null,
		"mobile":null,
		"captureRequestedAt":"2025-05-06T07:08:09Z",
		"createdAt":"2025-05-06T07:08:09Z"
	}`, rec.Body.String())
}

func TestCreatePresell_ValidationError(t *testing.T) {
	f := newAPIFixture(t)

	v := urlguard.New(nil, urlguard.Options{})
	f.service.EXPECT().Create(gomock.Any(), f.userID, "https://evil.example/").
		Return(nil, v.Validate("https://evil.example/").Err())

	rec := f.do(http.MethodPost, "/presells", `{"url":"https://evil.example/"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var res v1handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "BAD_REQUEST", res.Code)
	require.Equal(t, urlguard.ErrDomainNotAllowlisted.Error(), res.Reason)
}

func TestCreatePresell_BadBody(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/presells", `{"link":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/presells", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPresells(t *testing.T) {
	f := newAPIFixture(t)

	f.service.EXPECT().UserPresells(gomock.Any(), f.userID, "c1", uint(5)).
		Return([]domain.Presell{{URL: "https://a.hotmart.com/"}, {URL: "https://b.hotmart.com/"}}, "c2", nil)

	rec := f.do(http.MethodGet, "/presells?cursor=c1&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res v1handler.PresellList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Items, 2)
	require.Equal(t, "c2", *res.NextCursor)

	f.service.EXPECT().UserPresells(gomock.Any(), f.userID, "", uint(v1handler.DefaultLimit)).
		Return(nil, "", nil)
	rec = f.do(http.MethodGet, "/presells", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[],"nextCursor":null}`, rec.Body.String())
}

func TestListPresells_InvalidLimit(t *testing.T) {
	f := newAPIFixture(t)

	for _, limit := range []string{"0", "-1", "abc", "1000"} {
		rec := f.do(http.MethodGet, "/presells?limit="+limit, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, limit)
	}
}

func TestGetPresell(t *testing.T) {
	f := newAPIFixture(t)
	ID := domain.PresellID(uuid.New())

	f.service.EXPECT().Get(gomock.Any(), f.userID, ID).Return(nil, serrors.With(serrors.ErrNotFound, "presell not found"))
	rec := f.do(http.MethodGet, "/presells/"+ID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"presell not found"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/presells/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePresell(t *testing.T) {
	f := newAPIFixture(t)
	ID := domain.PresellID(uuid.New())

	f.service.EXPECT().Delete(gomock.Any(), f.userID, ID).Return(nil)
	rec := f.do(http.MethodDelete, "/presells/"+ID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestRecapturePresell(t *testing.T) {
	f := newAPIFixture(t)
	ID := domain.PresellID(uuid.New())

	f.service.EXPECT().Recapture(gomock.Any(), f.userID, ID).
		Return(&domain.Presell{ID: ID, Status: domain.PresellStatusPending}, nil)
	rec := f.do(http.MethodPost, "/presells/"+ID.String()+"/capture", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestGetScreenshots(t *testing.T) {
	f := newAPIFixture(t)
	ID := domain.PresellID(uuid.New())

	f.service.EXPECT().Screenshots(gomock.Any(), f.userID, ID).Return(&presell.Screenshots{
		Status:       domain.PresellStatusCompleted,
		State:        domain.CaptureStatePartial,
		Ready:        true,
		HasArtifacts: true,
		Desktop:      ptr("https://cdn.example/d.jpg"),
	}, nil)

	rec := f.do(http.MethodGet, "/presells/"+ID.String()+"/screenshots", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"status":"COMPLETED",
		"state":"PARTIAL",
		"ready":true,
		"hasArtifacts":true,
		"desktop":"https://cdn.example/d.jpg",
		"mobile":null
	}`, rec.Body.String())
}

func TestRoutes_RequireAuth(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/presells", nil)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
