package workspace

import "github.com/go-logr/logr"

type WithLog struct{ Log logr.Logger }

func (w WithLog) ConfigureFilter(c *FilterConfig) {
	c.Log = w.Log
}

type WithLibraryPrefix string

func (w WithLibraryPrefix) ConfigureFilter(c *FilterConfig) {
	c.LibraryPrefix = string(w)
}

type WithDeduplicate bool

func (w WithDeduplicate) ConfigureFilter(c *FilterConfig) {
	c.Deduplicate = bool(w)
}
