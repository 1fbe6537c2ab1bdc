package catalog

import "github.com/evelinastr/trainingclub/internal/domain/entities"

// Exercises is the client-bundled exercise list. The server's exercises
// table is the writable source of truth; this copy exists so the browsing
// and favorites views render without a round trip, and the seeder loads it
// into the table to keep the two in step.
var Exercises = []entities.Exercise{
	{ID: 1, Title: "Arm Curls", Description: "Curls for building biceps.", ImageURL: "/images/10.jpg"},
	{ID: 2, Title: "Leg Press", Description: "Strengthens leg muscles.", ImageURL: "/images/14.jpg"},
	{ID: 3, Title: "Bench Press", Description: "Builds chest muscles.", ImageURL: "/images/15.jpg"},
	{ID: 4, Title: "Ab Crunches", Description: "Strengthens abdominal muscles.", ImageURL: "/images/13.jpg"},
	{ID: 5, Title: "Back Pulldown", Description: "Targets the back muscles.", ImageURL: "/images/8.jpg"},
	{ID: 6, Title: "Squats", Description: "Improves lower body strength and flexibility.", ImageURL: "/images/11.jpg"},
}

// ByID returns the bundled exercise with the given id, or nil.
func ByID(id int64) *entities.Exercise {
	for i := range Exercises {
		if Exercises[i].ID == id {
			return &Exercises[i]
		}
	}
	return nil
}
