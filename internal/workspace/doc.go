// Package workspace reads cargo workspace and package manifests and decides
// which workspace members take part in container image generation.
//
// All reads go through an fs.FS rooted at the workspace directory, so member
// and manifest paths are slash separated and relative to that root.
package workspace
