package types

// DefaultLang is used when a request omits the language code
const DefaultLang = "ar"

// Recipe is a single recipe as produced by the generation model
type Recipe struct {
	Title       string   `json:"title"`
	Desc        string   `json:"desc"`
	Time        string   `json:"time"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}
