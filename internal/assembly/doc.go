// Package assembly builds and publishes the monolithic wpa_supplicant
// configuration out of the fragment store.
//
// The document layout is fixed: a generated-file banner, an optional
// static header, every fragment block in store order, and an optional
// static footer, all separated by blank lines. The document is ephemeral;
// it is rebuilt from scratch on every assemble and only persisted at the
// publish target.
//
// # Publishing
//
// Publish backs up the existing target to <target>.bkp before writing
// the new contents. Backup and write are separate, non-atomic steps; the
// failure window between them is accepted and documented rather than
// papered over with renames.
//
// # Change Detection
//
// UpToDate compares the assembled document against the published file by
// MD5 checksum, and Diff renders a unified diff between them. Both are
// read-only; nothing here modifies the store.
package assembly
