package main

import (
	"log"

	"github.com/serenityjs/create-serenity/cli/cmd"
	"github.com/serenityjs/create-serenity/cli/util"
	"github.com/serenityjs/create-serenity/cli/version"
)

func main() {
	defer func() {
		// A panic is reported as an internal error instead of a stack trace.
		if r := recover(); r != nil {
			log.Fatalf("%s", util.InternalError("Unhandled internal error: %s",
				version.GetVersion, r))
		}
	}()

	cmd.Execute()
}
