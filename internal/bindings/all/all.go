// Package all registers every built-in class binding.
package all

import (
	_ "github.com/zboralski/tarsier/internal/bindings/android"
	_ "github.com/zboralski/tarsier/internal/bindings/lang"
)
