package main

import (
	"context"
	"os"

	"github.com/agbru/recur/internal/app"
	"github.com/agbru/recur/internal/driver"
)

func main() {
	cmd := app.Command{
		Name:    driver.FibonacciName,
		Summary: "Prints the Fibonacci numbers F(0) through F(10), one per line, then Done!.",
		Program: driver.FibonacciProgram(),
	}

	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout, cmd.Name)
		return
	}

	application, err := app.New(os.Args[1:], os.Stderr, cmd)
	if err != nil {
		os.Exit(app.ReportError(os.Stderr, err))
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
