// Command bindgen projects the Jianshu schema and operation documents into
// the Go bindings of internal/jianshu.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bindgen:", err)
		os.Exit(1)
	}
}
