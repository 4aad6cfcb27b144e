package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	response "estimate_wizard/internal/adapter/http/dto/response"
	"estimate_wizard/internal/adapter/http/handlers/mocks"
	"estimate_wizard/internal/domain/entities"
	"estimate_wizard/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func galleryRouter(h *GalleryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/gallery", h.List)
	r.GET("/v1/gallery/:id", h.Get)
	r.GET("/v1/gallery/:id/neighbors", h.Neighbors)
	return r
}

func TestGalleryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list passes the filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGalleryUseCase(ctrl)
		r := galleryRouter(NewGalleryHandler(uc))

		want := entities.GalleryFilter{MediaType: entities.MediaTypeVideo, VehicleMake: "Porsche", FeaturedOnly: true}
		uc.EXPECT().Filter(want).Return([]entities.MediaItem{{ID: "a", MediaType: entities.MediaTypeVideo}})

		req := httptest.NewRequest(http.MethodGet, "/v1/gallery?media_type=video&vehicle_make=Porsche&featured=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.GalleryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Total != 1 || body.Items[0].ID != "a" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("invalid filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGalleryUseCase(ctrl)
		r := galleryRouter(NewGalleryHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/gallery?media_type=gif", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("open item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGalleryUseCase(ctrl)
		r := galleryRouter(NewGalleryHandler(uc))

		uc.EXPECT().Open(entities.GalleryFilter{}, "a").Return(entities.MediaItem{ID: "a", Title: "M3 ceramic"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/gallery/a", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("neighbors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGalleryUseCase(ctrl)
		r := galleryRouter(NewGalleryHandler(uc))

		uc.EXPECT().Neighbors(entities.GalleryFilter{PriceBucket: entities.PriceBucketPremium}, "b").
			Return(entities.MediaItem{ID: "a"}, entities.MediaItem{ID: "c"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/gallery/b/neighbors?price_bucket=premium", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.NeighborsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Previous.ID != "a" || body.Next.ID != "c" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("neighbors outside the filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGalleryUseCase(ctrl)
		r := galleryRouter(NewGalleryHandler(uc))

		uc.EXPECT().Neighbors(gomock.Any(), "zz").Return(entities.MediaItem{}, entities.MediaItem{}, usecase.ErrMediaNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/gallery/zz/neighbors", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapGalleryError(t *testing.T) {
	if got := mapGalleryError(usecase.ErrMediaNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", got.HTTPStatus)
	}
	if got := mapGalleryError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got.HTTPStatus)
	}
}
