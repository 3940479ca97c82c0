package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"

	"folkers/internal/cli/api"
	cliauth "folkers/internal/cli/auth"
	"folkers/internal/config"
)

// personRow — подмножество полей записи для табличного вывода.
type personRow struct {
	ID         string `json:"id"`
	Surname    string `json:"surname"`
	Name       string `json:"name"`
	Patronymic string `json:"patronymic"`
	City       string `json:"city"`
	Author     string `json:"author"`
}

func printPersonRows(rows []personRow) {
	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSURNAME\tNAME\tPATRONYMIC\tCITY\tAUTHOR")
	for _, p := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Surname, p.Name, p.Patronymic, p.City, p.Author)
	}
	tw.Flush()
}

func fetchPersonRows(cfg *config.Config, path string) ([]personRow, error) {
	token := cliauth.LoadToken(cfg.TokenFile)
	if token == "" {
		return nil, fmt.Errorf("not logged in, run 'folkers login' first")
	}
	resp, body, err := api.GetJSON(cfg.ServerURL+path, token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("token expired or revoked, run 'folkers login' again")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s", resp.Status)
	}
	var rows []personRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// personsCmd — список всех записей досье.
type personsCmd struct{}

func init() { RegisterCmd(personsCmd{}) }

func (personsCmd) Name() string        { return "persons" }
func (personsCmd) Description() string { return "List dossier records" }
func (personsCmd) Usage() string       { return "persons" }

func (personsCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	rows, err := fetchPersonRows(cfg, "/persons")
	if err != nil {
		return err
	}
	printPersonRows(rows)
	return nil
}

// searchCmd — поиск записей по имени.
type searchCmd struct{}

func init() { RegisterCmd(searchCmd{}) }

func (searchCmd) Name() string        { return "search" }
func (searchCmd) Description() string { return "Search dossier records by name" }
func (searchCmd) Usage() string       { return "search <query>" }

func (searchCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	rows, err := fetchPersonRows(cfg, "/persons/search?q="+url.QueryEscape(args[0]))
	if err != nil {
		return err
	}
	printPersonRows(rows)
	return nil
}
