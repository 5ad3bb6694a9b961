// Package bincheck reports which external tools are available on PATH.
package bincheck

import (
	"os/exec"
	"sync"
)

type Checker struct {
	cache sync.Map
}

func NewChecker() *Checker {
	return &Checker{}
}

// InPath reports whether name resolves on PATH. Results are cached.
func (c *Checker) InPath(name string) bool {
	if v, ok := c.cache.Load(name); ok {
		found, _ := v.(bool)
		return found
	}

	actual, _ := c.cache.LoadOrStore(name, lookPath(name))
	found, _ := actual.(bool)
	return found
}

// Missing returns the names that are not on PATH, in the order given.
func (c *Checker) Missing(names ...string) []string {
	var missing []string
	for _, name := range names {
		if !c.InPath(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func lookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
