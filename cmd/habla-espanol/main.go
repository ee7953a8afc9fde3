package main

import "github.com/seekayel/habla-espanol-ext/internal/cli"

func main() {
	cli.Execute()
}
