package dto

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
	Password string `json:"password" binding:"required,min=8"`
}

type UserListResponse struct {
	Items []UserInfo `json:"items"`
	Total int        `json:"total"`
}

// ImportUsersResult reports the outcome of a CSV bulk registration.
// Skipped counts malformed lines, Duplicates counts already-registered
// emails; neither aborts the import.
type ImportUsersResult struct {
	Imported   int `json:"imported"`
	Skipped    int `json:"skipped"`
	Duplicates int `json:"duplicates"`
}
