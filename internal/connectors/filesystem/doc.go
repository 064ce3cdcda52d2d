// Package filesystem provides local filesystem access for the console:
// resolving user-supplied paths and watching drop folders.
package filesystem
