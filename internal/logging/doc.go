// Package logging configures the process-wide zerolog logger. Diagnostic
// output goes to stderr so it never mixes with command output on stdout.
package logging
