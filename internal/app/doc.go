// Package app wires configuration, logging, presentation and orchestration
// into the kata command tree and maps every outcome to a process exit code.
package app
