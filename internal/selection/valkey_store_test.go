package selection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go"
	"github.com/valkey-io/valkey-go/mock"
	"go.uber.org/mock/gomock"

	"github.com/spacesedan/sentidash/internal/clients"
)

func newMockValkeyStore(t *testing.T, ttl time.Duration) (*ValkeyStore, *mock.Client) {
	t.Helper()
	m := mock.NewClient(gomock.NewController(t))
	return NewValkeyStore(clients.NewValkeyClientFrom(m, clients.ValkeyOptions{}), ttl), m
}

func TestValkeyStoreLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		reply   valkey.ValkeyResult
		want    Selection
		wantErr bool
	}{
		{
			name:  "missing key is unselected",
			reply: mock.Result(mock.ValkeyNil()),
			want:  Unselected,
		},
		{
			name:  "stored selection",
			reply: mock.Result(mock.ValkeyString(`{"group":"negative","keyword":"bad"}`)),
			want:  Select(GroupNegative, "bad"),
		},
		{
			name:  "stored inactive selection",
			reply: mock.Result(mock.ValkeyString(`{"group":"","keyword":""}`)),
			want:  Unselected,
		},
		{
			name:    "corrupt value",
			reply:   mock.Result(mock.ValkeyString(`{"group":"neutral"`)),
			want:    Unselected,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store, m := newMockValkeyStore(t, time.Hour)
			m.EXPECT().
				Do(gomock.Any(), mock.Match("GET", "sentidash:session:abc")).
				Return(tt.reply)

			got, err := store.Load(context.Background(), "abc")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValkeyStoreSave(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ttl     time.Duration
		sel     Selection
		command []string
	}{
		{
			name:    "unselected deletes the key",
			ttl:     time.Hour,
			sel:     Unselected,
			command: []string{"DEL", "sentidash:session:abc"},
		},
		{
			name:    "selection expires with the session",
			ttl:     time.Hour,
			sel:     Select(GroupPositive, "great"),
			command: []string{"SET", "sentidash:session:abc", `{"group":"positive","keyword":"great"}`, "EX", "3600"},
		},
		{
			name:    "sub-second ttl stores without expiry",
			ttl:     500 * time.Millisecond,
			sel:     Select(GroupNegative, "bad"),
			command: []string{"SET", "sentidash:session:abc", `{"group":"negative","keyword":"bad"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store, m := newMockValkeyStore(t, tt.ttl)
			m.EXPECT().
				Do(gomock.Any(), mock.Match(tt.command...)).
				Return(mock.Result(mock.ValkeyString("OK")))

			require.NoError(t, store.Save(context.Background(), "abc", tt.sel))
		})
	}
}

func TestValkeyStoreSaveFailure(t *testing.T) {
	t.Parallel()

	store, m := newMockValkeyStore(t, time.Hour)
	m.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		Return(mock.ErrorResult(errors.New("READONLY You can't write against a read only replica"))).
		Times(valkeyRetries)

	err := store.Save(context.Background(), "abc", Select(GroupPositive, "great"))
	assert.ErrorContains(t, err, "failed to save session abc")
}
