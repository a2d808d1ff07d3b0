package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/macroprep/backend/internal/models"
)

func TestSupabaseClient_FetchTable(t *testing.T) {
	t.Run("should fetch and decode a table", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/v1/ingredients_library", r.URL.Path)
			assert.Equal(t, "select=*", r.URL.RawQuery)
			assert.Equal(t, "store-key", r.Header.Get("apikey"))
			assert.Equal(t, "Bearer store-key", r.Header.Get("Authorization"))
			w.Write([]byte(`[{"ingredient_id":1,"name":"Rice"},{"ingredient_id":2,"name":"Oats"}]`))
		}))
		defer srv.Close()

		client := NewSupabaseClient(srv.URL, "store-key", srv.Client(), zap.NewNop())

		var rows []models.Ingredient
		require.NoError(t, client.FetchTable(context.Background(), "ingredients_library", &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "Rice", rows[0].Name)
	})

	t.Run("should fail on non-200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := NewSupabaseClient(srv.URL, "bad-key", srv.Client(), zap.NewNop())
		var rows []models.Ingredient
		err := client.FetchTable(context.Background(), "ingredients_library", &rows)
		assert.ErrorContains(t, err, "status 401")
	})

	t.Run("should keep nutrient values as numbers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"recipe_id":1,"nutrient_id":20,"value":12.5}]`))
		}))
		defer srv.Close()

		client := NewSupabaseClient(srv.URL, "store-key", srv.Client(), zap.NewNop())
		var rows []models.RecipeNutrition
		require.NoError(t, client.FetchTable(context.Background(), "recipe_nutrition_join_table", &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "12.5", rows[0].Value.String())
	})
}

func TestLoadDataset(t *testing.T) {
	t.Run("should load every table", func(t *testing.T) {
		seen := map[string]bool{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen[r.URL.Path] = true
			if r.URL.Path == "/rest/v1/recipes" {
				w.Write([]byte(`[{"recipe_id":1,"name":"Chicken Rice Bowl","cuisine":"fusion"}]`))
				return
			}
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		client := NewSupabaseClient(srv.URL, "store-key", srv.Client(), zap.NewNop())
		ds, err := LoadDataset(context.Background(), client, zap.NewNop())
		require.NoError(t, err)

		assert.Len(t, seen, 11)
		require.Len(t, ds.Recipes, 1)
		assert.Equal(t, "Chicken Rice Bowl", ds.Recipes[0].Name)
		assert.Contains(t, ds.Recipes[0].Meta, "cuisine")
	})

	t.Run("should fail when a table fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/rest/v1/tags_library" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		client := NewSupabaseClient(srv.URL, "store-key", srv.Client(), zap.NewNop())
		_, err := LoadDataset(context.Background(), client, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestDataset_RecipeByID(t *testing.T) {
	ds := testDataset()

	recipe := ds.RecipeByID(2)
	require.NotNil(t, recipe)
	assert.Equal(t, "Oat Pancakes", recipe.Name)

	assert.Nil(t, ds.RecipeByID(999))
}
