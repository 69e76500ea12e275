// Package runtime wires the repository backend, user configuration, GitHub
// client and logger that every command receives.
package runtime
