package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/metinatakli/train-seat-reservation/internal/client"
	"github.com/metinatakli/train-seat-reservation/internal/vcs"
	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:3000"

type options struct {
	server  string
	timeout time.Duration
}

func NewRoot() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "seatctl",
		Short:         "Book and inspect train seats through the reservation API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	server := os.Getenv("SEATCTL_SERVER")
	if server == "" {
		server = defaultServer
	}

	cmd.PersistentFlags().StringVar(&opts.server, "server", server, "reservation API base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")

	cmd.AddCommand(newBookCmd(opts))
	cmd.AddCommand(newResetCmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute() {
	if err := NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *options) client() *client.Client {
	return client.New(o.server)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seatctl %s\n", vcs.Version())
		},
	}
}
