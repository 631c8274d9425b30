package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/dto"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) seedCategoryAndCloth(t *testing.T, managerID uuid.UUID) (categoryID, clothID uuid.UUID) {
	t.Helper()
	cat, err := e.catalog.CreateCategory(context.Background(), dto.CreateCategoryRequest{Name: "Shirts"})
	require.NoError(t, err)
	categoryID = uuid.MustParse(cat.ID)

	cloth, err := e.clothes.Create(context.Background(), dto.CreateClothRequest{
		Name:       "Plain Tee",
		Price:      decimal.NewFromFloat(19.99),
		CategoryID: cat.ID,
	}, managerID)
	require.NoError(t, err)
	return categoryID, uuid.MustParse(cloth.ID)
}

func TestLikeEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, clothID := env.seedCategoryAndCloth(t, uuid.New())

	for want := 1; want <= 2; want++ {
		w := env.do(t, http.MethodPost, "/clothes/"+clothID.String()+"/like", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.LikeResponse
		decodeBody(t, w, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, want, resp.Likes)
	}
}

func TestLikeEndpointErrors(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/clothes/not-a-uuid/like", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/clothes/"+uuid.NewString()+"/like", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "cloth not found", resp.Error)
}

func TestListEndpointStatusFilter(t *testing.T) {
	env := newTestEnv(t)
	staff := env.seedStaff(t, "manager", "secret99")
	catID, clothID := env.seedCategoryAndCloth(t, staff.ID)

	sold, err := env.clothes.Create(context.Background(), dto.CreateClothRequest{
		Name:       "Vintage Tee",
		Price:      decimal.NewFromFloat(9.99),
		Status:     model.StatusSold,
		CategoryID: catID.String(),
	}, staff.ID)
	require.NoError(t, err)

	// Default: available only.
	w := env.do(t, http.MethodGet, "/manager/clothes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.ClothResponse
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, clothID.String(), list[0].ID)

	// ?status=all lifts the filter.
	w = env.do(t, http.MethodGet, "/manager/clothes?status=all", nil, "")
	decodeBody(t, w, &list)
	assert.Len(t, list, 2)

	// ?status=sold narrows it.
	w = env.do(t, http.MethodGet, "/manager/clothes?status=sold", nil, "")
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, sold.ID, list[0].ID)

	// The public alias serves the same listing.
	w = env.do(t, http.MethodGet, "/clothes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &list)
	assert.Len(t, list, 1)
}

func TestCreateClothEndpointRequiresStaff(t *testing.T) {
	env := newTestEnv(t)
	staff := env.seedStaff(t, "manager", "secret99")
	token := env.loginToken(t, "manager", "secret99")
	catID, _ := env.seedCategoryAndCloth(t, staff.ID)

	body := map[string]interface{}{
		"name":        "Hoodie",
		"price":       "59.90",
		"category_id": catID.String(),
	}

	anon := env.do(t, http.MethodPost, "/manager/clothes/add", body, "")
	assert.Equal(t, http.StatusUnauthorized, anon.Code)

	w := env.do(t, http.MethodPost, "/manager/clothes/add", body, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ClothResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Hoodie", resp.Name)
	assert.Equal(t, model.StatusAvailable, resp.Status)
	assert.Equal(t, staff.ID.String(), resp.ManagerID, "the creator becomes the manager")
}

func TestEditEndpointOwnerGate(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedStaff(t, "owner", "secret99")
	env.seedStaff(t, "colleague", "secret99")
	_, clothID := env.seedCategoryAndCloth(t, owner.ID)

	ownerToken := env.loginToken(t, "owner", "secret99")
	otherToken := env.loginToken(t, "colleague", "secret99")
	path := "/manager/clothes/" + clothID.String() + "/edit"
	body := map[string]string{"name": "Renamed Tee"}

	// A staff user who is not the assigned manager gets a 403.
	w := env.do(t, http.MethodPost, path, body, otherToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	detail := env.do(t, http.MethodGet, "/manager/clothes/"+clothID.String(), nil, "")
	var got dto.ClothResponse
	decodeBody(t, detail, &got)
	assert.Equal(t, "Plain Tee", got.Name, "rejected edit changes nothing")

	// The owner succeeds.
	w = env.do(t, http.MethodPost, path, body, ownerToken)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &got)
	assert.Equal(t, "Renamed Tee", got.Name)
}

func TestDashboardListsOwnClothesOnly(t *testing.T) {
	env := newTestEnv(t)
	mine := env.seedStaff(t, "mine", "secret99")
	other := env.seedStaff(t, "other", "secret99")
	catID, _ := env.seedCategoryAndCloth(t, mine.ID)

	_, err := env.clothes.Create(context.Background(), dto.CreateClothRequest{
		Name:       "Not Mine",
		Price:      decimal.NewFromFloat(5),
		CategoryID: catID.String(),
	}, other.ID)
	require.NoError(t, err)

	token := env.loginToken(t, "mine", "secret99")
	w := env.do(t, http.MethodGet, "/manager/dashboard", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Clothes []dto.ClothResponse `json:"clothes"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Clothes, 1)
	assert.Equal(t, "Plain Tee", resp.Clothes[0].Name)
}
