package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/auth"
	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/models"
	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/services"
)

type stubItemService struct {
	CreateFunc      func(ctx context.Context, ownerID string, input services.ItemInput) (models.Item, error)
	GetFunc         func(ctx context.Context, id string) (models.Item, error)
	UpdateFunc      func(ctx context.Context, id, actorID string, patch services.ItemPatch) (models.Item, error)
	DeleteFunc      func(ctx context.Context, id, actorID string) error
	SearchFunc      func(ctx context.Context, criteria services.SearchCriteria) ([]models.Item, error)
	ListByOwnerFunc func(ctx context.Context, ownerID string) ([]models.Item, error)
}

func (s *stubItemService) Create(ctx context.Context, ownerID string, input services.ItemInput) (models.Item, error) {
	return s.CreateFunc(ctx, ownerID, input)
}
func (s *stubItemService) Get(ctx context.Context, id string) (models.Item, error) {
	return s.GetFunc(ctx, id)
}
func (s *stubItemService) Update(ctx context.Context, id, actorID string, patch services.ItemPatch) (models.Item, error) {
	return s.UpdateFunc(ctx, id, actorID, patch)
}
func (s *stubItemService) Delete(ctx context.Context, id, actorID string) error {
	return s.DeleteFunc(ctx, id, actorID)
}
func (s *stubItemService) Search(ctx context.Context, criteria services.SearchCriteria) ([]models.Item, error) {
	return s.SearchFunc(ctx, criteria)
}
func (s *stubItemService) ListByOwner(ctx context.Context, ownerID string) ([]models.Item, error) {
	return s.ListByOwnerFunc(ctx, ownerID)
}

func newItemRouter(svc services.ItemServiceProvider) *chi.Mux {
	h := NewItemHandler(svc)
	r := chi.NewRouter()
	r.Get("/items", h.List)
	r.Get("/items/{id}", h.Get)
	r.Post("/items", h.Create)
	r.Put("/items/{id}", h.Update)
	r.Delete("/items/{id}", h.Delete)
	r.Get("/items/user/my-items", h.ListMine)
	return r
}

func withUser(r *http.Request, userID string) *http.Request {
	claims := &auth.Claims{UserID: userID}
	return r.WithContext(context.WithValue(r.Context(), auth.UserClaimsKey, claims))
}

func TestListParsesQueryIntoCriteria(t *testing.T) {
	var got services.SearchCriteria
	svc := &stubItemService{
		SearchFunc: func(_ context.Context, criteria services.SearchCriteria) ([]models.Item, error) {
			got = criteria
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/items?type=lost&category=Bags&search=backpack", nil)
	rec := httptest.NewRecorder()
	newItemRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.TypeLost, got.Type)
	assert.Equal(t, "Bags", got.Category)
	assert.Equal(t, "backpack", got.Text)

	// nil result still renders as an empty JSON array
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestGetNotFoundMapsTo404(t *testing.T) {
	svc := &stubItemService{
		GetFunc: func(context.Context, string) (models.Item, error) {
			return models.Item{}, services.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/items/missing", nil)
	rec := httptest.NewRecorder()
	newItemRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateWithoutIdentity(t *testing.T) {
	svc := &stubItemService{
		CreateFunc: func(context.Context, string, services.ItemInput) (models.Item, error) {
			t.Error("service should not be called")
			return models.Item{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	newItemRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateReturnsItem(t *testing.T) {
	svc := &stubItemService{
		CreateFunc: func(_ context.Context, ownerID string, input services.ItemInput) (models.Item, error) {
			return models.Item{ID: "item-1", Title: input.Title, OwnerID: ownerID, Status: models.StatusSearching}, nil
		},
	}

	body := `{"title":"Blue Backpack","type":"lost","category":"Bags","location":"Student Center","date":"2024-10-30","description":"Nike backpack with laptop inside"}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()
	newItemRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "Blue Backpack", item.Title)
	assert.Equal(t, "user-1", item.OwnerID)
}

func TestCreateValidationMapsTo400(t *testing.T) {
	svc := &stubItemService{
		CreateFunc: func(context.Context, string, services.ItemInput) (models.Item, error) {
			return models.Item{}, &services.ValidationError{Field: "title", Reason: "must not be empty"}
		},
	}

	req := withUser(httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{}`)), "user-1")
	rec := httptest.NewRecorder()
	newItemRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateForwardsPatchAndActor(t *testing.T) {
	var gotID, gotActor string
	var gotPatch services.ItemPatch
	svc := &stubItemService{
		UpdateFunc: func(_ context.Context, id, actorID string, patch services.ItemPatch) (models.Item, error) {
			gotID, gotActor, gotPatch = id, actorID, patch
			return models.Item{ID: id, Status: models.StatusClaimed}, nil
		},
	}

	req := withUser(httptest.NewRequest(http.MethodPut, "/items/item-9", strings.NewReader(`{"status":"claimed"}`)), "user-2")
	rec := httptest.NewRecorder()
	newItemRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "item-9", gotID)
	assert.Equal(t, "user-2", gotActor)
	require.NotNil(t, gotPatch.Status)
	assert.Equal(t, models.StatusClaimed, *gotPatch.Status)
	assert.Nil(t, gotPatch.Title)
}

func TestUpdateUnauthorizedMapsTo401(t *testing.T) {
	svc := &stubItemService{
		UpdateFunc: func(context.Context, string, string, services.ItemPatch) (models.Item, error) {
			return models.Item{}, services.ErrUnauthorized
		},
	}

	req := withUser(httptest.NewRequest(http.MethodPut, "/items/item-9", strings.NewReader(`{}`)), "user-2")
	rec := httptest.NewRecorder()
	newItemRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDelete(t *testing.T) {
	var gotID, gotActor string
	svc := &stubItemService{
		DeleteFunc: func(_ context.Context, id, actorID string) error {
			gotID, gotActor = id, actorID
			return nil
		},
	}

	req := withUser(httptest.NewRequest(http.MethodDelete, "/items/item-3", nil), "user-1")
	rec := httptest.NewRecorder()
	newItemRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "item-3", gotID)
	assert.Equal(t, "user-1", gotActor)
}

func TestListMine(t *testing.T) {
	svc := &stubItemService{
		ListByOwnerFunc: func(_ context.Context, ownerID string) ([]models.Item, error) {
			return []models.Item{{ID: "item-1", OwnerID: ownerID}}, nil
		},
	}

	req := withUser(httptest.NewRequest(http.MethodGet, "/items/user/my-items", nil), "user-1")
	rec := httptest.NewRecorder()
	newItemRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "user-1", items[0].OwnerID)
}
