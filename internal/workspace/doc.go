// Package workspace identifies which JavaScript workspace manager governs a
// directory tree. It provides the Manager type for the supported managers and
// their marker files, and the Root type with the ancestor search that locates
// the nearest workspace root.
package workspace
