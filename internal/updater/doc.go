// Package updater checks GitHub releases for a newer CLI version. It only
// reports availability; installation is left to the platform's package
// manager or a manual download.
package updater
