package cmd

import (
	"fmt"
	"net/http"

	"github.com/nfdez/brainctl/internal/adapters/api"
	"github.com/nfdez/brainctl/internal/config"
	"github.com/spf13/viper"
)

type app struct {
	serverURL  string
	httpClient *http.Client
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire configuration: %w", err)
	}

	return &app{
		serverURL:  cfg.ServerURL,
		httpClient: http.DefaultClient,
	}, nil
}

// brainAPI builds a client for the server URL resolved after flag parsing.
func (a *app) brainAPI() *api.Client {
	return api.NewClient(a.httpClient, a.serverURL)
}
