package common

// UserResult is the user summary exposed by the API. Password and provider
// subject id never leave the service.
type UserResult struct {
	UserId          uint   `json:"userId"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	UserRole        string `json:"userRole"`
	EmailVerified   bool   `json:"emailVerified"`
	Provider        string `json:"provider,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	CreateDate      string `json:"createDate"`
	UpdateDate      string `json:"updateDate"`
}
