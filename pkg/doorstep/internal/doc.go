// Package internal contains the core infrastructure for doorstep: logging,
// theming, SDL window management, input mapping and text rendering helpers.
// Types and functions in this package are not part of the public API.
package internal
