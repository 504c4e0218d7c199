package service

import "fmt"

// RecipeCount is the number of recipes the model is asked for
const RecipeCount = 2

const recipeSchema = `[
  {
    "title": "Recipe name",
    "desc": "Short description of the dish",
    "time": "Total preparation and cooking time",
    "ingredients": ["ingredient with quantity"],
    "steps": ["preparation step"]
  }
]`

// BuildRecipePrompt builds the single instruction sent to the generation API.
// Ingredients and lang are embedded as given.
func BuildRecipePrompt(ingredients, lang string) string {
	return fmt.Sprintf(`You are an expert chef.
Suggest exactly %d recipes that can be cooked using these ingredients: %s.
Write every value in the language with the code "%s".

Respond with ONLY a JSON array (no markdown, no code fences, no extra text) matching this exact schema:
%s`, RecipeCount, ingredients, lang, recipeSchema)
}
