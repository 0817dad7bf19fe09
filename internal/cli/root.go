// Package cli is the avatarctl command tree: the text view over the session
// controller, catalog, chat and influencer tools.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/avatar-commerce/avatarcommerce/internal/app"
	"github.com/avatar-commerce/avatarcommerce/internal/config"
	"github.com/avatar-commerce/avatarcommerce/internal/logging"
	"github.com/avatar-commerce/avatarcommerce/internal/session"
	"github.com/avatar-commerce/avatarcommerce/internal/telemetry"
)

const serviceName = "avatarctl"

// Options controls how the command tree builds its dependencies.
type Options struct {
	LoadConfig func() (config.ClientConfig, error)
	LogOutput  io.Writer
}

type env struct {
	opts     Options
	app      *app.App
	shutdown func(context.Context) error
}

// newRoot builds avatarctl. A zero Options reads the environment and logs to
// stderr.
func newRoot(opts Options) (*cobra.Command, *env) {
	if opts.LoadConfig == nil {
		opts.LoadConfig = config.LoadClient
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	e := &env{opts: opts}

	root := &cobra.Command{
		Use:           "avatarctl",
		Short:         "AvatarCommerce client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCommand(e),
		newSignupCommand(e),
		newLogoutCommand(e),
		newStatusCommand(e),
		newChatCommand(e),
		newRecommendCommand(e),
		newProductsCommand(),
		newStatsCommand(),
		newInfluencerCommand(e),
		newAvatarCommand(e),
		newDashboardCommand(e),
		newAffiliateCommand(e),
	)
	return root, e
}

// Execute runs avatarctl against the environment and returns the exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return Run(ctx, Options{LogOutput: stderr}, args, stdout, stderr)
}

// Run executes one command line and releases the client afterwards.
func Run(ctx context.Context, opts Options, args []string, stdout, stderr io.Writer) int {
	root, e := newRoot(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if cerr := e.close(context.WithoutCancel(ctx)); cerr != nil {
		fmt.Fprintln(stderr, "Warning:", cerr)
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", session.UserMessage(err))
		return 1
	}
	return 0
}

// client builds the app on first use so offline commands never touch config.
func (e *env) client(ctx context.Context) (*app.App, error) {
	if e.app != nil {
		return e.app, nil
	}
	cfg, err := e.opts.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.NewWriter(e.opts.LogOutput, cfg.LogLevel)
	e.shutdown = telemetry.Setup(ctx, serviceName, logger)
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	e.app = a
	return a, nil
}

func (e *env) close(ctx context.Context) error {
	if e.app != nil {
		e.app.Close()
		e.app = nil
	}
	if e.shutdown != nil {
		err := e.shutdown(ctx)
		e.shutdown = nil
		return err
	}
	return nil
}

// requireSession fails with the expired-session message when signed out.
func (e *env) requireSession(ctx context.Context) (*app.App, error) {
	a, err := e.client(ctx)
	if err != nil {
		return nil, err
	}
	if !a.Session.State().IsAuthenticated() {
		return nil, fmt.Errorf("not signed in, run avatarctl login")
	}
	return a, nil
}
