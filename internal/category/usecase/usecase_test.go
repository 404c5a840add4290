package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-pricing-service/internal/category/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cat(id, name string, parent *string) model.Category {
	return model.Category{BaseModel: model.BaseModel{ID: id}, MerchantID: "m1", Name: name, ParentID: parent}
}

func ptr(s string) *string { return &s }

type memRepo struct {
	cats []model.Category
}

func (m *memRepo) FindByID(_ context.Context, merchantID, id string) (*model.Category, error) {
	for _, c := range m.cats {
		if c.ID == id && c.MerchantID == merchantID {
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memRepo) FindAll(_ context.Context, _ *dto.CategoryFilters) ([]model.Category, int, error) {
	return m.cats, len(m.cats), nil
}

func (m *memRepo) FindByKeys(_ context.Context, merchantID string, keys []string) ([]model.Category, error) {
	var out []model.Category
	for _, c := range m.cats {
		for _, k := range keys {
			if c.MerchantID == merchantID && (c.ID == k || c.Name == k) {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func TestUnknownTargets(t *testing.T) {
	uc := NewCategoryUseCase(&memRepo{cats: []model.Category{
		cat("c1", "Bebidas", nil),
		cat("c2", "Postres", nil),
	}}, logger.NewNop())

	unknown, err := uc.UnknownTargets(context.Background(), "m1", []string{"c1", "Postres", "Panadería"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Panadería"}, unknown)

	unknown, err = uc.UnknownTargets(context.Background(), "m1", nil)
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestListCategories_Tree(t *testing.T) {
	uc := NewCategoryUseCase(&memRepo{cats: []model.Category{
		cat("c1", "Bebidas", nil),
		cat("c2", "Calientes", ptr("c1")),
		cat("c3", "Frías", ptr("c1")),
		cat("c4", "Postres", nil),
		cat("c5", "Huérfana", ptr("missing")),
	}}, logger.NewNop())

	tree, count, err := uc.ListCategories(context.Background(), &dto.CategoryFilters{MerchantID: "m1", IncludeChildren: true})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.Len(t, tree, 3)
	assert.Equal(t, "c1", tree[0].ID)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "c2", tree[0].Children[0].ID)
	assert.Equal(t, "c5", tree[2].ID)
}
