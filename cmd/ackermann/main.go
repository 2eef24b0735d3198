package main

import (
	"context"
	"os"

	"github.com/agbru/recur/internal/ackermann"
	"github.com/agbru/recur/internal/app"
	"github.com/agbru/recur/internal/driver"
)

func main() {
	calc, err := ackermann.NewDefaultFactory().Get(ackermann.DefaultStrategy)
	if err != nil {
		os.Exit(app.ReportError(os.Stderr, err))
	}

	cmd := app.Command{
		Name:    driver.AckermannName,
		Summary: "Prints the Ackermann values A(3, 0) through A(3, 11), one per line, then Done!.",
		Program: driver.AckermannProgram(calc),
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
