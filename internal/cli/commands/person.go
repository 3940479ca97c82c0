package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"folkers/internal/cli/api"
	cliauth "folkers/internal/cli/auth"
	"folkers/internal/config"
)

// personCmd — показать одну запись досье целиком.
type personCmd struct{}

func init() { RegisterCmd(personCmd{}) }

func (personCmd) Name() string        { return "person" }
func (personCmd) Description() string { return "Show a single dossier record" }
func (personCmd) Usage() string       { return "person <id>" }

func (personCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token := cliauth.LoadToken(cfg.TokenFile)
	if token == "" {
		return fmt.Errorf("not logged in, run 'folkers login' first")
	}
	resp, body, err := api.GetJSON(cfg.ServerURL+"/persons/"+args[0], token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return fmt.Errorf("token expired or revoked, run 'folkers login' again")
	case http.StatusNotFound:
		return fmt.Errorf("record %s not found", args[0])
	default:
		return fmt.Errorf("server returned %s", resp.Status)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		return err
	}
	fmt.Fprintln(Out, pretty.String())
	return nil
}
