package models

// Employee belongs to a branch through BranchID. The reference is soft:
// existence of the branch is never checked, and deleting a branch leaves its
// employees in place.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BranchID   int    `json:"branchId"`
}
