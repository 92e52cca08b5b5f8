package domain

// Category groups events, e.g. "VISUAL ARTS"
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Event is a single contest inside a category
type Event struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID int    `json:"categoryId"`
}

// CategoryWithEvents is the shape returned by GET /api/categories
type CategoryWithEvents struct {
	Category *Category `json:"category"`
	Events   []*Event  `json:"events"`
}
