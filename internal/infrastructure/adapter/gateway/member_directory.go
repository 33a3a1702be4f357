package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	errs "github.com/fbp-works/economy-service/internal/domain/error"
	"github.com/go-resty/resty/v2"
)

// memberResponse is one roster entry returned by the chat gateway
type memberResponse struct {
	ExternalID string `json:"external_id"`
	Username   string `json:"username"`
}

// MemberDirectory resolves usernames against the gateway's member roster
type MemberDirectory struct {
	client *resty.Client
}

// NewMemberDirectory creates a new MemberDirectory
func NewMemberDirectory(client *resty.Client) *MemberDirectory {
	return &MemberDirectory{client: client}
}

// FindByUsername resolves a username case-insensitively to an external
// identity string
func (d *MemberDirectory) FindByUsername(ctx context.Context, username string) (string, error) {
	var members []memberResponse
	resp, err := d.client.R().
		SetContext(ctx).
		SetQueryParam("username", username).
		SetResult(&members).
		Get("/members")
	if err != nil {
		return "", fmt.Errorf("chat gateway unreachable: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return "", errs.ErrMemberNotFound
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat gateway roster lookup failed: status %d", resp.StatusCode())
	}

	// The gateway matches loosely, so re-check here to keep lookup
	// semantics independent of its implementation.
	for _, member := range members {
		if strings.EqualFold(member.Username, username) {
			return member.ExternalID, nil
		}
	}

	return "", errs.ErrMemberNotFound
}
