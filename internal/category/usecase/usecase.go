package usecase

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/category"
	"github.com/fekuna/omnipos-pricing-service/internal/category/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, merchantID, id string) (*model.Category, error) {
	return uc.repo.FindByID(ctx, merchantID, id)
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error) {
	categories, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	if filters.IncludeChildren {
		categories = BuildTree(categories)
		count = len(categories)
	}
	return categories, count, nil
}

func (uc *categoryUseCase) UnknownTargets(ctx context.Context, merchantID string, targets []string) ([]string, error) {
	if len(targets) == 0 {
		return nil, nil
	}
	found, err := uc.repo.FindByKeys(ctx, merchantID, targets)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(found)*2)
	for _, c := range found {
		known[c.ID] = struct{}{}
		known[c.Name] = struct{}{}
	}

	var unknown []string
	for _, t := range targets {
		if _, ok := known[t]; !ok {
			unknown = append(unknown, t)
		}
	}
	return unknown, nil
}

// BuildTree nests a flat list under its parents. Categories whose parent is not in the list
// become roots. Input order is kept at every level.
func BuildTree(flat []model.Category) []model.Category {
	index := make(map[string]int, len(flat))
	for i, c := range flat {
		index[c.ID] = i
	}

	children := make(map[string][]int)
	var roots []int
	for i, c := range flat {
		if c.ParentID != nil {
			if _, ok := index[*c.ParentID]; ok && *c.ParentID != c.ID {
				children[*c.ParentID] = append(children[*c.ParentID], i)
				continue
			}
		}
		roots = append(roots, i)
	}

	var build func(i int, seen map[string]bool) model.Category
	build = func(i int, seen map[string]bool) model.Category {
		node := flat[i]
		node.Children = nil
		seen[node.ID] = true
		for _, ci := range children[node.ID] {
			if seen[flat[ci].ID] {
				continue
			}
			node.Children = append(node.Children, build(ci, seen))
		}
		return node
	}

	tree := make([]model.Category, 0, len(roots))
	seen := map[string]bool{}
	for _, i := range roots {
		tree = append(tree, build(i, seen))
	}
	return tree
}
