package repository

import "os"

// getenvDefault returns the env value for key, or def when unset or empty.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
