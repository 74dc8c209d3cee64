// Command comguard brings the COM/OLE runtime up on one thread and reports
// the status codes, or classifies a status code given on the command line.
package main

import "github.com/oshokin/com-runtime/cmd/comguard/cmd"

func main() {
	cmd.Execute()
}
