package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/service/privacy"
	"github.com/secmon-lab/rollcall/pkg/service/roster"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

type Policy struct {
	filePath string
}

// policyFile is the YAML layout of the policy file. Omitted sections keep
// their defaults.
type policyFile struct {
	Rooms *struct {
		ExcludedPrefixes []string `yaml:"excluded_prefixes"`
		ExcludedNames    []string `yaml:"excluded_names"`
	} `yaml:"rooms"`
	Privacy *struct {
		Keywords  []string `yaml:"keywords"`
		MaxLength int      `yaml:"max_length"`
	} `yaml:"privacy"`
}

func (x *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "YAML file overriding excluded rooms and privacy keywords",
			Aliases:     []string{"p"},
			Destination: &x.filePath,
			Category:    "Policy",
			Sources:     cli.EnvVars("ROLLCALL_POLICY"),
		},
	}
}

func (x Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file_path", x.filePath),
	)
}

// Configure loads the policy file. Without a file the built-in defaults
// are returned.
func (x *Policy) Configure() (roster.RoomPolicy, privacy.Policy, error) {
	rooms := roster.DefaultRoomPolicy()
	comments := privacy.DefaultPolicy()

	if x.filePath == "" {
		return rooms, comments, nil
	}

	raw, err := os.ReadFile(filepath.Clean(x.filePath))
	if err != nil {
		return rooms, comments, goerr.Wrap(err, "failed to read policy file", goerr.V("path", x.filePath))
	}

	var file policyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return rooms, comments, goerr.Wrap(err, "failed to parse policy file", goerr.V("path", x.filePath))
	}

	if file.Rooms != nil {
		rooms = roster.RoomPolicy{
			ExcludedPrefixes: file.Rooms.ExcludedPrefixes,
			ExcludedNames:    file.Rooms.ExcludedNames,
		}
	}
	if file.Privacy != nil {
		if file.Privacy.Keywords != nil {
			comments.Keywords = file.Privacy.Keywords
		}
		if file.Privacy.MaxLength > 0 {
			comments.MaxLength = file.Privacy.MaxLength
		}
	}

	return rooms, comments, nil
}
