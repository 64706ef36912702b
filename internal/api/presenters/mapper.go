package presenters

import (
	"recipe-management/domain"
	"recipe-management/entities"
)

func ToUserResponse(u *entities.User) domain.UserResponse {
	resp := domain.UserResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		Email:       u.Email,
		RecipeIDs:   make([]string, 0, len(u.Recipes)),
		FavoriteIDs: make([]string, 0, len(u.Favorites)),
		CreatedAt:   u.CreatedAt,
	}
	for _, r := range u.Recipes {
		resp.RecipeIDs = append(resp.RecipeIDs, r.ID.String())
	}
	for _, f := range u.Favorites {
		resp.FavoriteIDs = append(resp.FavoriteIDs, f.RecipeID.String())
	}
	return resp
}

func ToRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	resp := domain.RecipeResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description,
		AuthorID:    r.AuthorID.String(),
		Steps:       make([]domain.StepResponse, 0, len(r.Steps)),
		Ingredients: make([]domain.RecipeIngredientResponse, 0, len(r.RecipeIngredients)),
		Categories:  make([]domain.RecipeCategoryResponse, 0, len(r.RecipeCategories)),
		CreatedAt:   r.CreatedAt,
	}
	if r.Author != nil {
		resp.Author = r.Author.Username
	}
	for _, s := range r.Steps {
		resp.Steps = append(resp.Steps, domain.StepResponse{
			ID:          s.ID.String(),
			Order:       s.Order,
			Description: s.Description,
		})
	}
	for _, ri := range r.RecipeIngredients {
		item := domain.RecipeIngredientResponse{
			IngredientID: ri.IngredientID.String(),
			Amount:       ri.Amount,
		}
		if ri.Ingredient != nil {
			item.Name = ri.Ingredient.Name
		}
		resp.Ingredients = append(resp.Ingredients, item)
	}
	for _, rc := range r.RecipeCategories {
		item := domain.RecipeCategoryResponse{CategoryID: rc.CategoryID.String()}
		if rc.Category != nil {
			item.Name = rc.Category.Name
		}
		resp.Categories = append(resp.Categories, item)
	}
	return resp
}

func ToRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	out := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, ToRecipeResponse(r))
	}
	return out
}

func ToIngredientResponses(items []*entities.Ingredient) []domain.CatalogItemResponse {
	out := make([]domain.CatalogItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, domain.CatalogItemResponse{ID: i.ID.String(), Name: i.Name})
	}
	return out
}

func ToCategoryResponses(items []*entities.Category) []domain.CatalogItemResponse {
	out := make([]domain.CatalogItemResponse, 0, len(items))
	for _, c := range items {
		out = append(out, domain.CatalogItemResponse{ID: c.ID.String(), Name: c.Name})
	}
	return out
}
