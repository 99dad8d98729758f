package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"craftapi/internal/model"
	"craftapi/internal/service"
	serviceMocks "craftapi/internal/service/mocks"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateArtisan(t *testing.T) {
	mockSvc := new(serviceMocks.MockArtisanService)
	app := fiber.New()
	app.Post("/artisans", CreateArtisan(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "Kamala Devi", "weaving", "").
			Return(&model.Artisan{ID: uuid.New().String(), Name: "Kamala Devi"}, nil).Once()

		body := strings.NewReader(`{"name":"Kamala Devi","craft_type":"weaving"}`)
		req := httptest.NewRequest(http.MethodPost, "/artisans", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "", "weaving", "").
			Return(nil, service.ErrNameRequired).Once()

		body := strings.NewReader(`{"craft_type":"weaving"}`)
		req := httptest.NewRequest(http.MethodPost, "/artisans", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "VALIDATION_ERROR", payload.Error.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/artisans", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetArtisan(t *testing.T) {
	mockSvc := new(serviceMocks.MockArtisanService)
	app := fiber.New()
	app.Get("/artisans/:id", GetArtisan(mockSvc))

	id := uuid.New().String()

	t.Run("found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, id).
			Return(&model.Artisan{ID: id, Name: "Kamala Devi"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/artisans/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, id).
			Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/artisans/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/artisans/not-a-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "INVALID_ID", payload.Error.Code)
	})
}

func TestListArtisans(t *testing.T) {
	mockSvc := new(serviceMocks.MockArtisanService)
	app := fiber.New()
	app.Get("/artisans", ListArtisans(mockSvc))

	t.Run("success", func(t *testing.T) {
		expected := &service.ArtisanListResult{
			Items: []model.Artisan{{ID: uuid.New().String(), Name: "Kamala Devi"}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, 10, 0).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/artisans?limit=10&offset=0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.ArtisanListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/artisans?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "INVALID_LIMIT", payload.Error.Code)
	})

	t.Run("invalid offset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/artisans?offset=xyz", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "INVALID_OFFSET", payload.Error.Code)
	})
}

func TestUpdateArtisan(t *testing.T) {
	mockSvc := new(serviceMocks.MockArtisanService)
	app := fiber.New()
	app.Patch("/artisans/:id", UpdateArtisan(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, id, "Kamala Devi", "pottery", "").
			Return(&model.Artisan{ID: id, CraftType: "pottery"}, nil).Once()

		body := strings.NewReader(`{"name":"Kamala Devi","craft_type":"pottery"}`)
		req := httptest.NewRequest(http.MethodPatch, "/artisans/"+id, body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, id, "x", "y", "").
			Return(nil, service.ErrNotFound).Once()

		body := strings.NewReader(`{"name":"x","craft_type":"y"}`)
		req := httptest.NewRequest(http.MethodPatch, "/artisans/"+id, body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

// multipartBody builds a multipart form with one file field plus extra
// string fields, returning the body and its content type.
func multipartBody(t *testing.T, field, filename, fileContentType string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", fileContentType)
	fw, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadProduct(t *testing.T) {
	mockSvc := new(serviceMocks.MockProductService)
	app := fiber.New()
	app.Post("/artisans/:id/products", UploadProduct(mockSvc))

	artisanID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Upload", mock.Anything, mock.Anything, "photo.jpg", "image/jpeg", int64(5),
			service.ProductUpload{
				ArtisanID:   artisanID,
				Description: "scarf",
				Materials:   "silk",
				Dimensions:  "180x60",
			}).
			Return(&model.Product{ID: uuid.New().String(), ArtisanID: artisanID}, nil).Once()

		body, ct := multipartBody(t, "image", "photo.jpg", "image/jpeg", []byte("image"), map[string]string{
			"description": "scarf",
			"materials":   "silk",
			"dimensions":  "180x60",
		})
		req := httptest.NewRequest(http.MethodPost, "/artisans/"+artisanID+"/products", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing image", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("description", "scarf"))
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/artisans/"+artisanID+"/products", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "IMAGE_REQUIRED", payload.Error.Code)
	})

	t.Run("unknown artisan", func(t *testing.T) {
		mockSvc.On("Upload", mock.Anything, mock.Anything, "photo.jpg", "image/jpeg", int64(5), mock.Anything).
			Return(nil, service.ErrNotFound).Once()

		body, ct := multipartBody(t, "image", "photo.jpg", "image/jpeg", []byte("image"), nil)
		req := httptest.NewRequest(http.MethodPost, "/artisans/"+artisanID+"/products", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid artisan id", func(t *testing.T) {
		body, ct := multipartBody(t, "image", "photo.jpg", "image/jpeg", []byte("image"), nil)
		req := httptest.NewRequest(http.MethodPost, "/artisans/nope/products", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListProducts(t *testing.T) {
	mockSvc := new(serviceMocks.MockProductService)
	app := fiber.New()
	app.Get("/artisans/:id/products", ListProducts(mockSvc))

	artisanID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		expected := &service.ProductListResult{
			Items: []model.Product{{ID: uuid.New().String(), ArtisanID: artisanID, Description: "scarf"}},
			Total: 1,
		}
		mockSvc.On("ListByArtisan", mock.Anything, artisanID, 10, 0).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/artisans/"+artisanID+"/products?limit=10&offset=0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.ProductListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty list", func(t *testing.T) {
		mockSvc.On("ListByArtisan", mock.Anything, artisanID, 10, 0).
			Return(&service.ProductListResult{Items: []model.Product{}, Total: 0}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/artisans/"+artisanID+"/products", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.ProductListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Empty(t, result.Items)
		assert.Equal(t, 0, result.Total)
	})

	t.Run("invalid artisan id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/artisans/nope/products", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetProduct(t *testing.T) {
	mockSvc := new(serviceMocks.MockProductService)
	app := fiber.New()
	app.Get("/products/:id", GetProduct(mockSvc))

	id := uuid.New().String()

	t.Run("found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, id).
			Return(&model.Product{ID: id}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/products/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, id).
			Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/products/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestConfirmTags(t *testing.T) {
	mockSvc := new(serviceMocks.MockProductService)
	app := fiber.New()
	app.Put("/products/:id/tags", ConfirmTags(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		mockSvc.On("ConfirmTags", mock.Anything, id, []string{"pottery", "terracotta"}).
			Return(&model.Product{ID: id, Tags: []string{"pottery", "terracotta"}}, nil).Once()

		body := strings.NewReader(`{"tags":["pottery","terracotta"]}`)
		req := httptest.NewRequest(http.MethodPut, "/products/"+id+"/tags", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var p model.Product
		json.NewDecoder(resp.Body).Decode(&p)
		assert.Equal(t, []string{"pottery", "terracotta"}, p.Tags)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("ConfirmTags", mock.Anything, id, mock.Anything).
			Return(nil, service.ErrNotFound).Once()

		body := strings.NewReader(`{"tags":[]}`)
		req := httptest.NewRequest(http.MethodPut, "/products/"+id+"/tags", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteProduct(t *testing.T) {
	mockSvc := new(serviceMocks.MockProductService)
	app := fiber.New()
	app.Delete("/products/:id", DeleteProduct(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/products/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/products/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
