package main

import (
	"context"
	"os"

	"github.com/agbru/recur/internal/app"
	"github.com/agbru/recur/internal/driver"
)

func main() {
	cmd := app.Command{
		Name:    driver.FibonacciRecordName,
		Summary: "Prints F(0) through F(10) with each index passed as a record, then Done!.",
		Program: driver.FibonacciRecordProgram(),
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
