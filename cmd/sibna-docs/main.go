package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	a := newApp()
	err := newRootCmd(a).Execute()
	if a.logger == nil {
		if err != nil {
			fmt.Fprintf(os.Stderr, "sibna-docs: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err != nil {
		a.logger.Error("command failed", zap.Error(err))
	}
	_ = a.logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
