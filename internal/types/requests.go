package types

// RecipeRequest represents the request body for recipe generation
type RecipeRequest struct {
	Ingredients string `json:"ingredients"`
	Lang        string `json:"lang,omitempty"`
}

// ErrorResponse is the body of every non-success response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
