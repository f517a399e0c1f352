// Command admin performs operator tasks against the configured store.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gerogew22122/BuiltBetterHomes/internal/config"
	"github.com/gerogew22122/BuiltBetterHomes/internal/logging"
	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
	"github.com/gerogew22122/BuiltBetterHomes/internal/notify"
	"github.com/gerogew22122/BuiltBetterHomes/internal/repository"
	"github.com/gerogew22122/BuiltBetterHomes/internal/service"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: admin <command> [args]

Commands:
  create-user <username>   create an operator account; password is read from stdin
  check-user <username>    verify an operator password read from stdin
  submissions [-json]      list contact submissions, newest first`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if cfg.DatabaseURL == "" {
		logging.Fatal("DATABASE_URL is required; the in-memory store does not outlive this process")
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, cfg.DatabaseURL, model.SettingsInput{})
	if err != nil {
		logging.Fatal("failed to open store", "error", err)
	}
	defer store.Close()

	users := service.NewUserService(store)
	contacts := service.NewContactService(store, store,
		notify.NewNotifier(cfg.NotifyFrom, notify.ResendFactory(cfg.ResendBaseURL)),
		service.ContactOptions{Timeout: cfg.NotifyTimeout})

	switch os.Args[1] {
	case "create-user":
		if len(os.Args) != 3 {
			usage()
		}
		err = createUser(ctx, users, os.Args[2], os.Stdin, os.Stdout)
	case "check-user":
		if len(os.Args) != 3 {
			usage()
		}
		err = checkUser(ctx, users, os.Args[2], os.Stdin, os.Stdout)
	case "submissions":
		asJSON := len(os.Args) > 2 && os.Args[2] == "-json"
		err = listSubmissions(ctx, contacts, asJSON, os.Stdout)
	default:
		usage()
	}
	if err != nil {
		logging.Fatal("admin command failed", "command", os.Args[1], "error", err)
	}
}

func readPassword(in io.Reader) (string, error) {
	password, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(password, "\r\n"), nil
}

func createUser(ctx context.Context, users service.UserService, username string, in io.Reader, out io.Writer) error {
	password, err := readPassword(in)
	if err != nil {
		return err
	}
	user, err := users.Register(ctx, username, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "created user %s (%s)\n", user.Username, user.ID)
	return nil
}

func checkUser(ctx context.Context, users service.UserService, username string, in io.Reader, out io.Writer) error {
	password, err := readPassword(in)
	if err != nil {
		return err
	}
	user, err := users.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "password ok for %s (%s)\n", user.Username, user.ID)
	return nil
}

func listSubmissions(ctx context.Context, contacts service.ContactService, asJSON bool, out io.Writer) error {
	subs, err := contacts.List(ctx)
	if err != nil {
		return err
	}
	if asJSON {
		if subs == nil {
			subs = []*model.ContactSubmission{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(subs)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBMITTED\tNAME\tEMAIL\tPHONE\tBUDGET\tAREA")
	for _, s := range subs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.SubmittedAt.Local().Format(time.DateTime), s.Name, s.Email, s.Phone, s.Budget, s.Area)
	}
	return tw.Flush()
}
