package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	GenderMale   = "male"
	GenderFemale = "female"
)

// User is a shop account. The ID is assigned by the upstream identity provider.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Photo     string    `json:"photo"`
	Role      string    `json:"role"`
	Gender    string    `json:"gender"`
	DOB       time.Time `json:"dob"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u User) Created() time.Time {
	return u.CreatedAt
}

// Age returns the number of whole years between the user's date of birth and at.
func (u User) Age(at time.Time) int {
	age := at.Year() - u.DOB.Year()
	if at.Month() < u.DOB.Month() || (at.Month() == u.DOB.Month() && at.Day() < u.DOB.Day()) {
		age--
	}
	return age
}
