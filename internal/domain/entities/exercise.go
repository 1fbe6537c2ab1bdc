package entities

// Exercise is a catalog entry that members can browse and comment on.
type Exercise struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	ImageURL    string `json:"imageUrl" db:"imageUrl"`
}
