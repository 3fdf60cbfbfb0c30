package common

import (
	"github.com/pepealonso95/zeromail/internal/server"
)

// GetAccountFromArgs extracts the account name from request arguments.
// Defaults to "default" when no account is given.
func GetAccountFromArgs(args map[string]interface{}) string {
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		return accountVal
	}
	return server.DefaultAccount
}
