package core

import "errors"

var (
	// ErrManifestNotFound is returned when no manifest exists in the working directory
	ErrManifestNotFound = errors.New("no pack manifest found; run 'mod-updater pack init' first")
	// ErrAlreadyPresent is returned when adding a mod whose slug is already in the pack
	ErrAlreadyPresent = errors.New("mod is already in the pack")
	// ErrModNotFound is returned when a mod cannot be found, locally or on the remote source
	ErrModNotFound = errors.New("mod not found")
	// ErrNoCompatibleVersion is returned when no version matches the requested loader and game version
	ErrNoCompatibleVersion = errors.New("no compatible version found")
)
