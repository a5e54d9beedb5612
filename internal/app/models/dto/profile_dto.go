package dto

// LoginRequest authenticates against the profile service.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest edits the caller's own profile. All fields optional;
// empty strings are omitted from the PATCH body.
type UpdateProfileRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Bio         string `json:"bio,omitempty" validate:"omitempty,max=500"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Location    string `json:"location,omitempty" validate:"omitempty,max=100"`
}

// PhotoUploadResponse returns where the uploaded avatar was stored.
type PhotoUploadResponse struct {
	URL string `json:"url"`
}
