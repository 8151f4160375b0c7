// Package storefile persists the token pair as a JSON file under the
// configured data folder, surviving restarts the way localStorage
// survives reloads.
package storefile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/emstack/go-employee-console/token"
)

const fileName = "session.json"

var _ token.Store = (*Store)(nil)

type Store struct {
	path string

	lock sync.RWMutex
	pair token.Pair
}

// New opens (or creates) the store rooted at dataFolder and loads any
// previously saved pair. A missing or unreadable file means a signed-out
// store, never an error: a corrupt session degrades to "no session".
func New(dataFolder string) (*Store, error) {
	if err := os.MkdirAll(dataFolder, 0o700); err != nil {
		return nil, errors.Wrap(err, "[storefile.New] MkdirAll")
	}

	s := &Store{path: filepath.Join(dataFolder, fileName)}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return s, nil
	}
	var pair token.Pair
	if err := json.Unmarshal(data, &pair); err != nil {
		return s, nil
	}
	s.pair = pair
	return s, nil
}

// Save writes both tokens in one atomic step: the pair is marshalled to
// a temp file and renamed over the old one, so a reader never sees an
// access token without its refresh token.
func (s *Store) Save(pair token.Pair) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	data, err := json.Marshal(pair)
	if err != nil {
		return errors.Wrap(err, "[Store.Save] Marshal")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "[Store.Save] WriteFile")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "[Store.Save] Rename")
	}

	s.pair = pair
	return nil
}

func (s *Store) Clear() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[Store.Clear] Remove")
	}
	s.pair = token.Pair{}
	return nil
}

func (s *Store) AccessToken() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.pair.Access
}

func (s *Store) RefreshToken() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.pair.Refresh
}
