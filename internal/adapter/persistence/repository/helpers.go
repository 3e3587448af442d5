package repository

import "os"

// Table names are env-overridable so local DynamoDB and deployed stacks can
// use different names without code changes.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
