package dispatch

import (
	"errors"
	"log"
	"os"

	"github.com/status-scheduler/statusd/internal/rules"
)

// ErrNoAccounts means no configured account had a resolvable credential.
var ErrNoAccounts = errors.New("no accounts with usable credentials")

// BuildAccounts constructs the account list from the configured specs.
// Accounts whose token environment variable is unset are skipped with a
// warning; if none remain the startup must fail, so an error is returned.
func BuildAccounts(specs []rules.AccountSpec, newAPI func(token string) StatusAPI) ([]Account, error) {
	var accounts []Account
	for _, spec := range specs {
		token := os.Getenv(spec.TokenEnv)
		if token == "" {
			log.Printf("Warning: skipping account %s: %s is not set", spec.Name, spec.TokenEnv)
			continue
		}
		accounts = append(accounts, Account{
			Name: spec.Name,
			API:  newAPI(token),
		})
	}

	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	return accounts, nil
}
