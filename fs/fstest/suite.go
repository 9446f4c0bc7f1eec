// Package fstest provides a conformance suite for core.FS providers.
//
// The suite checks the parts of the provider contract scoped file access
// relies on: the three open modes, not-found reporting, handle release and
// the read/write restrictions of each mode.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/fileaccess/fs/core"
)

// FSTestConfig configures the suite to match provider behavior.
type FSTestConfig struct {
	// VirtualDirectories indicates directories are virtual (e.g., S3 prefixes)
	// and cannot be stat'd directly.
	VirtualDirectories bool

	// ImplicitParentDirs indicates files can be created without parent
	// directories existing first.
	ImplicitParentDirs bool

	// SkipTests lists specific test names to skip.
	// Format: "Group/SubTest" (e.g., "Modes/AppendCreates").
	SkipTests []string
}

// POSIXTestConfig returns configuration for the go-billy providers.
// Both osfs and memfs create missing parents on O_CREATE.
func POSIXTestConfig() FSTestConfig {
	return FSTestConfig{
		VirtualDirectories: false,
		ImplicitParentDirs: true,
	}
}

// S3TestConfig returns configuration for object-store providers.
func S3TestConfig() FSTestConfig {
	return FSTestConfig{
		VirtualDirectories: true,
		ImplicitParentDirs: true,
	}
}

// TestSuite runs all conformance tests with POSIXTestConfig.
// The newFS function should return a fresh, empty filesystem for each call.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, POSIXTestConfig())
}

// TestSuiteWithConfig runs all conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	t.Run("Read", func(t *testing.T) {
		if config.skip("Read") {
			t.Skip("Skipped by provider configuration")
			return
		}
		TestReadWithConfig(t, newFS(), config)
	})

	t.Run("Modes", func(t *testing.T) {
		if config.skip("Modes") {
			t.Skip("Skipped by provider configuration")
			return
		}
		TestModesWithConfig(t, newFS(), config)
	})

	t.Run("Handles", func(t *testing.T) {
		if config.skip("Handles") {
			t.Skip("Skipped by provider configuration")
			return
		}
		TestHandlesWithConfig(t, newFS(), config)
	})
}

func (c FSTestConfig) skip(name string) bool {
	for _, s := range c.SkipTests {
		if s == name {
			return true
		}
	}
	return false
}

// run runs fn as a subtest of group unless it is listed in SkipTests.
func (c FSTestConfig) run(t *testing.T, group, name string, fn func(t *testing.T)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if c.skip(group + "/" + name) {
			t.Skip("Skipped by provider configuration")
			return
		}
		fn(t)
	})
}
