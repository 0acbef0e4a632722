package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/mock"
)

type sleeperProviderMock struct {
	mock.Mock
}

func (m *sleeperProviderMock) FetchLeagueInfo(ctx context.Context, leagueID string) (ExternalLeague, bool, error) {
	args := m.Called(ctx, leagueID)

	var res ExternalLeague
	if args.Get(0) != nil {
		res = args.Get(0).(ExternalLeague)
	}
	return res, args.Bool(1), args.Error(2)
}

func (m *sleeperProviderMock) FetchLeagueUsers(ctx context.Context, leagueID string) ([]ExternalUser, error) {
	args := m.Called(ctx, leagueID)

	var res []ExternalUser
	if args.Get(0) != nil {
		res = args.Get(0).([]ExternalUser)
	}
	return res, args.Error(1)
}

func (m *sleeperProviderMock) FetchLeagueRosters(ctx context.Context, leagueID string) ([]ExternalRoster, error) {
	args := m.Called(ctx, leagueID)

	var res []ExternalRoster
	if args.Get(0) != nil {
		res = args.Get(0).([]ExternalRoster)
	}
	return res, args.Error(1)
}

func (m *sleeperProviderMock) FetchAllPlayers(ctx context.Context) (PlayerCatalog, error) {
	args := m.Called(ctx)

	var res PlayerCatalog
	if args.Get(0) != nil {
		res = args.Get(0).(PlayerCatalog)
	}
	return res, args.Error(1)
}

func newSleeperProviderMock(t *testing.T) *sleeperProviderMock {
	m := &sleeperProviderMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type catalogCacheStub struct {
	mu    sync.Mutex
	items map[string]PlayerCatalog
	ttls  map[string]time.Duration
	sets  int
}

func newCatalogCacheStub() *catalogCacheStub {
	return &catalogCacheStub{
		items: make(map[string]PlayerCatalog),
		ttls:  make(map[string]time.Duration),
	}
}

func (c *catalogCacheStub) Get(_ context.Context, key string) (PlayerCatalog, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[key]
	return item, ok
}

func (c *catalogCacheStub) Set(_ context.Context, key string, catalog PlayerCatalog, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = catalog
	c.ttls[key] = ttl
	c.sets++
}

func decodeJSON[T any](t *testing.T, raw string) T {
	t.Helper()

	var out T
	if err := sonic.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return out
}
