package clients

import (
	"context"
	"net/url"

	"github.com/classconnect/classconnect-go/internal/app/models"
	"github.com/classconnect/classconnect-go/internal/app/models/dto"
	"github.com/classconnect/classconnect-go/internal/pkg/httpclient"
)

// ProfileClient talks to the profile service: authentication, own-profile
// management and public profile lookups.
type ProfileClient struct {
	http *httpclient.Client
}

// NewProfileClient creates a ProfileClient over the given transport.
func NewProfileClient(http *httpclient.Client) *ProfileClient {
	return &ProfileClient{http: http}
}

// Login exchanges credentials for an access token. Runs without a session.
func (c *ProfileClient) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.http.Post(ctx, "/login", req, &out)
	return out, err
}

// GetOwnProfile fetches the caller's profile.
func (c *ProfileClient) GetOwnProfile(ctx context.Context) (models.UserProfile, error) {
	var out models.UserProfile
	err := c.http.Get(ctx, "/profile", &out)
	return out, err
}

// GetProfile fetches another user's public profile by ID. This is the
// lookup behind forum and submission enrichment.
func (c *ProfileClient) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	var out models.UserProfile
	err := c.http.Get(ctx, "/profile/"+url.PathEscape(userID), &out)
	return out, err
}

// UpdateProfile edits the caller's profile.
func (c *ProfileClient) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (models.UserProfile, error) {
	var out models.UserProfile
	err := c.http.Patch(ctx, "/profile", req, &out)
	return out, err
}

// UploadPhoto replaces the caller's avatar via a multipart upload. An
// unsupported format comes back as a 400 with a server-supplied message.
func (c *ProfileClient) UploadPhoto(ctx context.Context, attachment *httpclient.Attachment) (dto.PhotoUploadResponse, error) {
	var out dto.PhotoUploadResponse
	err := c.http.PostMultipart(ctx, "/profile/photo", nil, attachment, &out)
	return out, err
}
