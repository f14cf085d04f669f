package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexus_recycle/internal/adapter/http/handlers/mocks"
	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func profile() entities.UserProfile {
	return entities.UserProfile{
		ID:            "user-1",
		FullName:      "Ana Souza",
		ContactNumber: "+1 555 0100",
		EntityType:    entities.EntityTypeShop,
		Location:      &entities.Coordinates{Lat: 37.7749, Lng: -122.4194},
	}
}

func TestSessionHandler_CreateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/profile", h.CreateProfile)

		req := httptest.NewRequest(http.MethodPost, "/v1/profile", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/profile", h.CreateProfile)

		body := `{"full_name":"Ana","entity_type":"Home","location":{"lat":1}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/profile", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(entities.UserProfile{}, usecase.ErrInvalidProfile)

		r := gin.New()
		r.POST("/v1/profile", h.CreateProfile)

		req := httptest.NewRequest(http.MethodPost, "/v1/profile", bytes.NewBufferString(`{"full_name":"Ana","entity_type":"Farm"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already signed in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(entities.UserProfile{}, usecase.ErrProfileAlreadyExists)

		r := gin.New()
		r.POST("/v1/profile", h.CreateProfile)

		req := httptest.NewRequest(http.MethodPost, "/v1/profile", bytes.NewBufferString(`{"full_name":"Ana","entity_type":"Home"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, draft entities.UserProfile) (entities.UserProfile, error) {
			if draft.FullName != "Ana Souza" || draft.EntityType != entities.EntityTypeShop || draft.Location == nil {
				t.Fatalf("unexpected draft %+v", draft)
			}
			return profile(), nil
		})

		r := gin.New()
		r.POST("/v1/profile", h.CreateProfile)

		body := `{"full_name":" Ana Souza ","contact_number":"+1 555 0100","entity_type":"Shop","location":{"lat":37.7749,"lng":-122.4194}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/profile", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["id"] != "user-1" || got["entity_type"] != "Shop" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestSessionHandler_GetProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().GetProfile(gomock.Any()).Return(entities.UserProfile{}, usecase.ErrNoActiveSession)

		r := gin.New()
		r.GET("/v1/profile", h.GetProfile)

		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().GetProfile(gomock.Any()).Return(profile(), nil)

		r := gin.New()
		r.GET("/v1/profile", h.GetProfile)

		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSessionHandler_UpdateLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	loc := entities.Coordinates{Lat: 37.8, Lng: -122.41}

	t.Run("missing coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.PUT("/v1/profile/location", h.UpdateLocation)

		req := httptest.NewRequest(http.MethodPut, "/v1/profile/location", bytes.NewBufferString(`{"lng":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ignored update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().UpdateLocation(gomock.Any(), "old-user", loc).Return(entities.UserProfile{}, usecase.ErrLocationUpdateIgnored)

		r := gin.New()
		r.PUT("/v1/profile/location", h.UpdateLocation)

		req := httptest.NewRequest(http.MethodPut, "/v1/profile/location", bytes.NewBufferString(`{"profile_id":"old-user","lat":37.8,"lng":-122.41}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"applied":false`)) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().UpdateLocation(gomock.Any(), "", gomock.Any()).Return(entities.UserProfile{}, usecase.ErrInvalidLocation)

		r := gin.New()
		r.PUT("/v1/profile/location", h.UpdateLocation)

		req := httptest.NewRequest(http.MethodPut, "/v1/profile/location", bytes.NewBufferString(`{"lat":137.8,"lng":-122.41}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		updated := profile()
		updated.Location = &loc
		uc.EXPECT().UpdateLocation(gomock.Any(), "", loc).Return(updated, nil)

		r := gin.New()
		r.PUT("/v1/profile/location", h.UpdateLocation)

		req := httptest.NewRequest(http.MethodPut, "/v1/profile/location", bytes.NewBufferString(`{"lat":37.8,"lng":-122.41}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"applied":true`)) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestSessionHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name        string
		err         error
		wantCode    int
		wantWarning bool
	}{
		{"success", nil, http.StatusOK, false},
		{"deferred", usecase.ErrPersistenceDeferred, http.StatusOK, true},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockISessionUseCase(ctrl)
			h := NewSessionHandler(uc)

			uc.EXPECT().Logout(gomock.Any()).Return(tc.err)

			r := gin.New()
			r.DELETE("/v1/session", h.Logout)

			req := httptest.NewRequest(http.MethodDelete, "/v1/session", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
			if got := bytes.Contains(w.Body.Bytes(), []byte(`"warning"`)); got != tc.wantWarning {
				t.Fatalf("warning present=%v, body %s", got, w.Body.String())
			}
		})
	}
}
