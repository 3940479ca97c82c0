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

// loginCmd — аутентификация на сервере и сохранение bearer-токена.
type loginCmd struct{}

func init() { RegisterCmd(loginCmd{}) }

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Authenticate and store the access token" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	payload := map[string]string{
		"username": args[0],
		"password": args[1],
	}
	resp, body, err := api.PostJSON(cfg.ServerURL+"/login", payload, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return err
	}
	if err := cliauth.SaveToken(cfg.TokenFile, out.Token); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Login successful")
	return nil
}
