package hatchery

// CreateHatcheryRequest - payload for registering a hatchery
type CreateHatcheryRequest struct {
	Name               string  `json:"name"`
	RegistrationNumber string  `json:"registration_number"`
	Address            *string `json:"address,omitempty"`
	AdminUserID        string  `json:"admin_user_id"`
}
