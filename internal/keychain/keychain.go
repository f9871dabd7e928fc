package keychain

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const serviceName = "tokubot"

// TokenAccount is the keychain account holding the Telegram bot token.
const TokenAccount = "telegram_token"

// ErrNotFound is returned when the account has no stored secret.
var ErrNotFound = errors.New("no secret stored in keychain")

// Get retrieves a secret from the system keychain. A missing entry yields
// ErrNotFound; any other failure means the keychain itself is unavailable.
func Get(account string) (string, error) {
	secret, err := keyring.Get(serviceName, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("%s/%s: %w", serviceName, account, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read keychain %s/%s: %w", serviceName, account, err)
	}
	return secret, nil
}

// Set stores a secret in the system keychain.
func Set(account, value string) error {
	if err := keyring.Set(serviceName, account, value); err != nil {
		return fmt.Errorf("write keychain %s/%s: %w", serviceName, account, err)
	}
	return nil
}
