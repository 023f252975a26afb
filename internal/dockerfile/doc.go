// Package dockerfile validates package metadata and renders the generated
// artifacts: a multi-stage Dockerfile with one image section per package
// and a companion script tagging the built images and pruning the builder
// stage.
//
// Rendering is a pure function of the validated packages. Both artifacts
// are assembled fully in memory; writing them is left to the caller.
package dockerfile
