package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"

	"folkers/internal/cli/api"
	cliauth "folkers/internal/cli/auth"
	"folkers/internal/config"
)

// uploadCmd — загрузка файла в медиа-хранилище сервера.
type uploadCmd struct{}

func init() { RegisterCmd(uploadCmd{}) }

func (uploadCmd) Name() string        { return "upload" }
func (uploadCmd) Description() string { return "Upload a media file, print its hash" }
func (uploadCmd) Usage() string       { return "upload <file>" }

func (uploadCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token := cliauth.LoadToken(cfg.TokenFile)
	if token == "" {
		return fmt.Errorf("not logged in, run 'folkers login' first")
	}

	contentType := mime.TypeByExtension(filepath.Ext(args[0]))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, body, err := api.UploadFile(cfg.ServerURL+"/upload", "photo", args[0], contentType, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return fmt.Errorf("token expired or revoked, run 'folkers login' again")
	case http.StatusForbidden:
		return fmt.Errorf("uploads require editor role")
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("file exceeds the server upload limit")
	default:
		return fmt.Errorf("server returned %s", resp.Status)
	}
	var hash string
	if err := json.Unmarshal(body, &hash); err != nil {
		return err
	}
	fmt.Fprintln(Out, hash)
	return nil
}
