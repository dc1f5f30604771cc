// /internal/form/memory.go
package form

import (
	"errors"

	"forge-launcher/internal/log"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "forge-launcher"
	keyringUser    = "last-username"
)

// Memory stores the last username that launched the game.
type Memory interface {
	Last() string
	Remember(username string) error
}

// Keyring keeps the username in the OS credential store.
type Keyring struct{}

func (Keyring) Last() string {
	name, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Log.Debug("Could not read the last username: %v", err)
		}
		return ""
	}
	return name
}

func (Keyring) Remember(username string) error {
	return keyring.Set(keyringService, keyringUser, username)
}

// Forget is a Memory that never stores anything.
type Forget struct{}

func (Forget) Last() string          { return "" }
func (Forget) Remember(string) error { return nil }
