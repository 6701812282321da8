// Package config loads and validates the dashwire server configuration.
package config
