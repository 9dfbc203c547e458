// Command a11yinspect inspects how the accessibility bridge exposes
// widgets to the native runtime.
package main

import "github.com/go-drift/accessbridge/cmd/a11yinspect/cmd"

func main() {
	cmd.Execute()
}
