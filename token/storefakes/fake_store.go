package storefakes

import (
	"sync"

	"github.com/emstack/go-employee-console/token"
)

var _ token.Store = (*FakeStore)(nil)

// FakeStore is an in-memory token.Store for tests.
type FakeStore struct {
	lock sync.RWMutex
	pair token.Pair

	SaveErr  error // returned by Save when set
	ClearErr error // returned by Clear when set
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (f *FakeStore) Save(pair token.Pair) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	f.pair = pair
	return nil
}

func (f *FakeStore) Clear() error {
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	f.pair = token.Pair{}
	return nil
}

func (f *FakeStore) AccessToken() string {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.pair.Access
}

func (f *FakeStore) RefreshToken() string {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.pair.Refresh
}
