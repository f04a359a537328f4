// Command connectctl inspects and manages Amazon Connect instances from the
// command line.
//
//	connectctl --region us-west-2 describe-instance --instance-id 1c2a...
//	connectctl --config connectctl.yml list-queues --queue-type STANDARD
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
