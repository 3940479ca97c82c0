package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"folkers/internal/cli/api"
	cliauth "folkers/internal/cli/auth"
	"folkers/internal/config"
)

// statusCmd — сведения о текущем пользователе (/me).
type statusCmd struct{}

func init() { RegisterCmd(statusCmd{}) }

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the authenticated user" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token := cliauth.LoadToken(cfg.TokenFile)
	if token == "" {
		return fmt.Errorf("not logged in, run 'folkers login' first")
	}
	resp, body, err := api.GetJSON(cfg.ServerURL+"/me", token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("token expired or revoked, run 'folkers login' again")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	var me struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	if err := json.Unmarshal(body, &me); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Logged in as %s (%s)\n", me.Username, me.Role)
	return nil
}
