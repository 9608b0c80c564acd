package driver

import "fmt"

// DriverError wraps file I/O and line-editor failures that the
// pipeline itself never produces.
type DriverError struct {
	Message string
}

func (e DriverError) Error() string {
	return fmt.Sprintf("💥 driver error: %s", e.Message)
}
