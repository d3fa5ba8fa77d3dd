// Package config manages user-level settings stored at ~/.skillman/config.yaml.
// It wraps Viper for load/get/set plus typed getters for the keys the rest of
// the program cares about: the skills directory, the manifest URL, the mainline
// branch name, the message bus address, and update concurrency.
package config
