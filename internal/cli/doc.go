// Package cli renders everything the toolkit writes around routine output:
// the countdown spinner, section headers and summary tables of "kata all",
// the routine catalogue and the output-file copy.
//
// # Naming Conventions
//
//   - Display*/Print* functions write formatted output to an [io.Writer].
//   - Format*/Render* functions return or stream a rendered form without
//     touching routine output.
//   - Write* functions write data to files on the filesystem.
package cli
