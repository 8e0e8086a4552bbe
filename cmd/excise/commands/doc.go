// Package commands implements the excise command tree.
package commands
