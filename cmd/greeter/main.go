package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/ghstatus/internal/greeting"
	"github.com/spf13/cobra"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version), fang.WithoutManpage(), fang.WithoutCompletions()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greeter [message...]",
		Short: "Respond to a greeting message",
		Long: `Respond to a greeting message.

Prints a welcome line followed by the response to the message. Without
arguments the message is "hi".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			message := "hi"
			if len(args) > 0 {
				message = strings.Join(args, " ")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Welcome to the greeting application!")
			fmt.Fprintln(out, greeting.Greet(message))
			return nil
		},
	}
}
