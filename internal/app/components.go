package app

import "go.trai.ch/toolup/internal/core/ports"

// Components bundles the fully wired application surface handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}
