package gateway

import (
	"context"
	"fmt"

	gatewayport "github.com/fbp-works/economy-service/internal/domain/port/gateway"
	"github.com/go-resty/resty/v2"
)

// messageRequest is the payload the chat gateway expects for channel messages
type messageRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ChannelNotifier delivers notifications to chat channels through the
// gateway sidecar. Channel keys resolve within the configured
// notification group.
type ChannelNotifier struct {
	client  *resty.Client
	groupID string
}

// NewChannelNotifier creates a new ChannelNotifier
func NewChannelNotifier(client *resty.Client, groupID string) *ChannelNotifier {
	return &ChannelNotifier{
		client:  client,
		groupID: groupID,
	}
}

// Send posts the notification to the channel identified by channelKey
func (n *ChannelNotifier) Send(ctx context.Context, channelKey string, notification gatewayport.Notification) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"groupId":    n.groupID,
			"channelKey": channelKey,
		}).
		SetBody(messageRequest{
			Title: notification.Title,
			Body:  notification.Body,
		}).
		Post("/groups/{groupId}/channels/{channelKey}/messages")
	if err != nil {
		return fmt.Errorf("chat gateway unreachable: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("chat gateway rejected message: status %d", resp.StatusCode())
	}

	return nil
}
