package models

// Domain models matching the database schema in db/migrations/0001_init.sql

// Status is the workflow state of a stringing job. The set is closed:
// staff move a job between these values, nothing else is accepted.
type Status string

const (
	StatusQueued     Status = "Queued"
	StatusInProgress Status = "In Progress"
	StatusFinished   Status = "Finished"
)

func (s Status) Valid() bool {
	switch s {
	case StatusQueued, StatusInProgress, StatusFinished:
		return true
	}
	return false
}

// Racket is one customer's stringing work order. Stringer is empty until a
// staff member is assigned. Timestamps are unix milliseconds UTC.
type Racket struct {
	ID          int64  `json:"id" db:"id"`
	PlayerName  string `json:"player_name" db:"player_name" validate:"required"`
	PhoneNumber string `json:"phone_number" db:"phone_number" validate:"required"`
	RacketBrand string `json:"racket_brand" db:"racket_brand" validate:"required"`
	RacketModel string `json:"racket_model" db:"racket_model" validate:"required"`
	StringMain  string `json:"string_main" db:"string_main" validate:"required"`
	StringCross string `json:"string_cross" db:"string_cross" validate:"required"`
	Tension     int    `json:"tension" db:"tension" validate:"required"`
	Status      Status `json:"status" db:"status"`
	Stringer    string `json:"stringer,omitempty" db:"stringer"`
	Payment     bool   `json:"payment" db:"payment"`
	CreatedOn   int64  `json:"created_on" db:"created_on"`
	UpdatedOn   int64  `json:"updated_on" db:"updated_on"`
}

type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username" validate:"required"`
	PasswordHash string `json:"-" db:"password_hash"`
}
