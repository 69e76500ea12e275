// Package config manages the gitdash user configuration.
//
// It handles:
//   - The JSON config file under ~/.gitdash
//   - GitHub token resolution from the environment and the file
package config
