package clients

import (
	"context"

	"github.com/classconnect/classconnect-go/internal/app/models/dto"
	"github.com/classconnect/classconnect-go/internal/pkg/httpclient"
)

// ChatClient talks to the chat/AI service.
type ChatClient struct {
	http *httpclient.Client
}

// NewChatClient creates a ChatClient over the given transport.
func NewChatClient(http *httpclient.Client) *ChatClient {
	return &ChatClient{http: http}
}

// CustomInference asks the AI service for a generated completion.
func (c *ChatClient) CustomInference(ctx context.Context, req dto.InferenceRequest) (string, error) {
	var out dto.InferenceResponse
	if err := c.http.Post(ctx, "/custom_inference", req, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}
