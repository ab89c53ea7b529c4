package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/huddle/internal/client/api"
	"github.com/dmitrijs2005/huddle/internal/client/config"
)

// functionsClient is the part of api.Client the console uses.
type functionsClient interface {
	SetToken(token string)
	HasToken() bool
	DeleteAccount(ctx context.Context) (*api.Result, error)
	AdminDeleteUser(ctx context.Context, targetUserID, expectedUsername string) (*api.Result, error)
	ReportActivity(ctx context.Context, coords *api.Coordinates) (*api.Result, error)
	Status(ctx context.Context) (*api.PlatformStatus, error)
}

type App struct {
	config *config.Config
	client functionsClient
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	client := api.NewClient(c.ServerBaseURL, c.RequestTimeout)
	if c.AccessToken != "" {
		client.SetToken(c.AccessToken)
	}
	return &App{config: c, client: client, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to huddlectl (type 'help' for commands), server:", a.config.ServerBaseURL)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) hasToken() bool {
	return a.client.HasToken()
}

func (a *App) getStatus() string {
	if a.hasToken() {
		return "(authenticated)"
	}
	return "(anonymous)"
}
