package entities

// Trainer leads scheduled sessions. Trainers are seeded out of band; no API
// operation creates them.
type Trainer struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Specialization string `json:"specialization" db:"specialization"`
}
