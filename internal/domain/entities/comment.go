package entities

// Comment is a free-text note attached to an exercise. The JSON field names
// mirror the comments table columns, which the web client reads directly.
type Comment struct {
	ID         int64  `json:"id" db:"id"`
	ExerciseID int64  `json:"exerciseId" db:"exerciseId"`
	Text       string `json:"comment" db:"comment"`
}
