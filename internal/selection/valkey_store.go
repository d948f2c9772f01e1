package selection

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/sentidash/internal/clients"
)

const (
	valkeySessionPrefix = "sentidash:session:"
	valkeyRetries       = 3
)

// ValkeyStore keeps selections in Valkey under one key per session, so
// several dashboard replicas can serve the same browser session.
type ValkeyStore struct {
	client *clients.ValkeyClient
	ttl    time.Duration
}

func NewValkeyStore(client *clients.ValkeyClient, ttl time.Duration) *ValkeyStore {
	return &ValkeyStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return valkeySessionPrefix + sessionID
}

func (s *ValkeyStore) Load(ctx context.Context, sessionID string) (Selection, error) {
	key := sessionKey(sessionID)
	res := s.client.DoWithRetry(ctx, func(c valkey.Client) valkey.Completed {
		return c.B().Get().Key(key).Build()
	}, valkeyRetries)

	raw, err := res.ToString()
	if valkey.IsValkeyNil(err) {
		return Unselected, nil
	}
	if err != nil {
		return Unselected, fmt.Errorf("[ValkeyStore] failed to load session %s: %w", sessionID, err)
	}

	sel, err := decode(raw)
	if err != nil {
		return Unselected, fmt.Errorf("[ValkeyStore] corrupt session %s: %w", sessionID, err)
	}
	return sel, nil
}

func (s *ValkeyStore) Save(ctx context.Context, sessionID string, sel Selection) error {
	key := sessionKey(sessionID)

	var build func(valkey.Client) valkey.Completed
	if !sel.Active() {
		build = func(c valkey.Client) valkey.Completed {
			return c.B().Del().Key(key).Build()
		}
	} else {
		value, err := encode(sel)
		if err != nil {
			return fmt.Errorf("[ValkeyStore] failed to encode selection: %w", err)
		}
		seconds := int64(s.ttl / time.Second)
		build = func(c valkey.Client) valkey.Completed {
			if seconds > 0 {
				return c.B().Set().Key(key).Value(value).ExSeconds(seconds).Build()
			}
			return c.B().Set().Key(key).Value(value).Build()
		}
	}

	if err := s.client.DoWithRetry(ctx, build, valkeyRetries).Error(); err != nil {
		return fmt.Errorf("[ValkeyStore] failed to save session %s: %w", sessionID, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *ValkeyStore) Close() {
	s.client.Close()
}
