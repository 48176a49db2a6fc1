// Command nicru-dns manages DNS zones hosted on NIC.RU from the command
// line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/oauth2"

	"github.com/yuriy-kovalchuk/nicru-dns/internal/config"
	"github.com/yuriy-kovalchuk/nicru-dns/internal/tokencache"
	"github.com/yuriy-kovalchuk/nicru-dns/nicru"
)

var Version = "dev"

type app struct {
	configPath string
	verbosity  int
	service    string
	zone       string

	log logr.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "nicru-dns",
		Short:         "Manage DNS zones hosted on NIC.RU",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = newLogger(a.verbosity)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default configs/nicru-dns.yaml or $NICRU_DNS_CONFIG)")
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity")
	root.PersistentFlags().StringVar(&a.service, "service", "", "DNS service name (overrides the config default)")
	root.PersistentFlags().StringVar(&a.zone, "zone", "", "zone name in IDNA ASCII form (overrides the config default)")

	root.AddCommand(
		newServicesCmd(a),
		newZonesCmd(a),
		newZonefileCmd(a),
		newRecordsCmd(a),
		newCommitCmd(a),
		newRollbackCmd(a),
	)
	return root
}

func newLogger(verbosity int) logr.Logger {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	z, err := zc.Build()
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(z)
}

// newClient builds an authenticated API client from the config file,
// reusing a cached token when one exists and persisting every
// replacement token the transport obtains.
func (a *app) newClient(ctx context.Context) (*nicru.Client, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = nicru.DefaultBaseURL
	}

	var cached *oauth2.Token
	if cfg.TokenCache != "" {
		if cached, err = tokencache.Load(cfg.TokenCache); err != nil {
			return nil, err
		}
	}
	onToken := func(tok *oauth2.Token) {
		if cfg.TokenCache == "" {
			return
		}
		if err := tokencache.Save(cfg.TokenCache, tok); err != nil {
			a.log.Error(err, "unable to cache token", "path", cfg.TokenCache)
		}
	}

	httpc, err := nicru.NewOAuthClient(ctx, baseURL, nicru.Password{
		AppLogin:    cfg.AppLogin,
		AppPassword: cfg.AppPassword,
		Username:    cfg.Username,
		Password:    cfg.Password,
	}, cached, onToken)
	if err != nil {
		return nil, err
	}

	service := a.service
	if service == "" {
		service = cfg.Service
	}
	zone := a.zone
	if zone == "" {
		zone = cfg.Zone
	}

	return nicru.New(httpc,
		nicru.WithBaseURL(baseURL),
		nicru.WithLogger(a.log),
		nicru.WithDefaults(service, zone),
	), nil
}
