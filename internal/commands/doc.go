// Package commands implements the CLI subcommands of wpa-netman.
//
// Every command satisfies the Runner interface: a constructor builds the
// flag set, Init parses arguments and loads the settings file, Run does
// the work and returns an error that main turns into exit code 1.
//
// Commands that print machine-readable output to stdout (show, list,
// make -p, diff) force all logging to stderr so the output can be piped.
//
// The networks directory comes from the settings file and can be
// overridden per invocation with -d; the override path is used verbatim.
package commands
