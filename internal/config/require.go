package config

import "log"

// MustSet aborts startup when a required variable resolved to empty. The
// connection string and the signing secret have no usable default.
func MustSet(name, value string) {
	if value == "" {
		log.Fatalf("config: required variable %s is not set", name)
	}
}
