package config

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/interfaces"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"github.com/taskdeck-io/taskdeck/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Roster holds CLI flags for the user roster. The roster is a TOML file
// of [[user]] tables loaded into the repository at startup; the service
// itself never mutates users.
type Roster struct {
	path string
}

// RosterUser is one [[user]] entry in the roster file.
type RosterUser struct {
	ID       string `toml:"id"`
	Username string `toml:"username"`
	Email    string `toml:"email"`
}

// Validate checks if the RosterUser is valid
func (u *RosterUser) Validate() error {
	if u.ID == "" {
		return goerr.New("user id is required", goerr.V("username", u.Username))
	}
	if u.Username == "" {
		return goerr.New("username is required", goerr.V("id", u.ID))
	}
	return nil
}

type rosterFile struct {
	Users []RosterUser `toml:"user"`
}

// Flags returns CLI flags for roster configuration
func (r *Roster) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "user-roster",
			Usage:       "Path to TOML user roster file",
			Sources:     cli.EnvVars("TASKDECK_USER_ROSTER"),
			Destination: &r.path,
		},
	}
}

// Load parses and validates the roster file. A missing flag yields an
// empty roster without error.
func (r *Roster) Load() ([]RosterUser, error) {
	if r.path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read roster file", goerr.V("path", r.path))
	}

	var file rosterFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse roster file", goerr.V("path", r.path))
	}

	seen := make(map[string]bool)
	for _, u := range file.Users {
		if err := u.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid roster entry")
		}
		if seen[u.ID] {
			return nil, goerr.New("duplicate user ID in roster", goerr.V("id", u.ID))
		}
		seen[u.ID] = true
	}

	return file.Users, nil
}

// Configure loads the roster and seeds the repository with its users.
func (r *Roster) Configure(ctx context.Context, repo interfaces.Repository) error {
	users, err := r.Load()
	if err != nil {
		return err
	}

	for _, u := range users {
		if err := repo.User().Put(ctx, &model.User{
			ID:       types.UserID(u.ID),
			Username: u.Username,
			Email:    u.Email,
		}); err != nil {
			return goerr.Wrap(err, "failed to seed roster user", goerr.V("id", u.ID))
		}
	}

	if len(users) > 0 {
		logging.Default().Info("Loaded user roster", "path", r.path, "users", len(users))
	}

	return nil
}
