// chatwarden is a household safety proxy for AI chat services.
package main

import "github.com/ppiankov/chatwarden/internal/cli"

func main() {
	cli.Execute()
}
