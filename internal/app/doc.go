// Package app is the composition root for Pulse.
//
// Run loads, in order:
//
//  1. Dashboard settings from ~/.config/pulse/config.toml (defaults when missing)
//  2. The zap logger (file only; disabled without log_path)
//  3. Seed data from seed_path or the embedded sample data
//  4. The preference store holding the theme
//
// and then hands a ui.Options to the Bubble Tea program, which runs until the
// user quits or the context is cancelled.
//
// RenderFrame performs the same loading and prints a single static frame of
// one view, which is what the render subcommand uses.
package app
