package models

// WorkingPosition enumerates the job categories of directory users.
type WorkingPosition int

const (
	PositionManager WorkingPosition = iota
	PositionProgrammer
	PositionEngineer
	PositionExpert
)

// User is a record in the user directory served by the data endpoint.
// It is unrelated to UserCredentials; the directory is just the protected
// data set this service fronts.
type User struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Age             int             `json:"age"`
	Email           string          `json:"email"`
	WorkingPosition WorkingPosition `json:"workingPosition"`
}
