package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sendgrid/rest"
	"go.uber.org/zap"
)

// ChatClient drives the community chat service: one channel per active
// project team plus direct messages for booking reminders.
type ChatClient interface {
	CreateChannel(ctx context.Context, name string) (string, error)
	ArchiveChannel(ctx context.Context, channelID string) error
	AddMember(ctx context.Context, channelID, handle string) error
	RemoveMember(ctx context.Context, channelID, handle string) error
	PostMessage(ctx context.Context, channelID, text string) error
	DirectMessage(ctx context.Context, handle, text string) error
}

type chatClient struct {
	baseURL string
	apiKey  string
}

// NewChatClient returns a ChatClient talking to the chat service at baseURL.
// If baseURL is empty a no-op client is returned so the API runs without a
// chat backend configured.
func NewChatClient(baseURL, apiKey string) ChatClient {
	if baseURL == "" {
		zap.S().Warn("CHAT_API_URL not set, chat side effects will be dropped")
		return noopChatClient{}
	}
	return &chatClient{baseURL: baseURL, apiKey: apiKey}
}

func (c *chatClient) send(ctx context.Context, method rest.Method, path string, payload interface{}) (*rest.Response, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	request := rest.Request{
		Method:  method,
		BaseURL: c.baseURL + path,
		Headers: map[string]string{
			"Authorization": "Bearer " + c.apiKey,
			"Content-Type":  "application/json",
		},
		Body: body,
	}
	response, err := rest.SendWithContext(ctx, request)
	if err != nil {
		return nil, err
	}
	if response.StatusCode >= 400 {
		return nil, fmt.Errorf("chat service returned %d: %s", response.StatusCode, response.Body)
	}
	return response, nil
}

func (c *chatClient) CreateChannel(ctx context.Context, name string) (string, error) {
	response, err := c.send(ctx, rest.Post, "/channels", map[string]string{"name": name})
	if err != nil {
		return "", err
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(response.Body), &created); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("chat service returned no channel id")
	}
	return created.ID, nil
}

func (c *chatClient) ArchiveChannel(ctx context.Context, channelID string) error {
	_, err := c.send(ctx, rest.Post, "/channels/"+channelID+"/archive", nil)
	return err
}

func (c *chatClient) AddMember(ctx context.Context, channelID, handle string) error {
	_, err := c.send(ctx, rest.Post, "/channels/"+channelID+"/members", map[string]string{"handle": handle})
	return err
}

func (c *chatClient) RemoveMember(ctx context.Context, channelID, handle string) error {
	_, err := c.send(ctx, rest.Delete, "/channels/"+channelID+"/members/"+handle, nil)
	return err
}

func (c *chatClient) PostMessage(ctx context.Context, channelID, text string) error {
	_, err := c.send(ctx, rest.Post, "/channels/"+channelID+"/messages", map[string]string{"text": text})
	return err
}

func (c *chatClient) DirectMessage(ctx context.Context, handle, text string) error {
	_, err := c.send(ctx, rest.Post, "/direct-messages", map[string]string{"handle": handle, "text": text})
	return err
}

type noopChatClient struct{}

func (noopChatClient) CreateChannel(ctx context.Context, name string) (string, error) {
	return "", nil
}
func (noopChatClient) ArchiveChannel(ctx context.Context, channelID string) error      { return nil }
func (noopChatClient) AddMember(ctx context.Context, channelID, handle string) error   { return nil }
func (noopChatClient) RemoveMember(ctx context.Context, channelID, handle string) error { return nil }
func (noopChatClient) PostMessage(ctx context.Context, channelID, text string) error   { return nil }
func (noopChatClient) DirectMessage(ctx context.Context, handle, text string) error    { return nil }
