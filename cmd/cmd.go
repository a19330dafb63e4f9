// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Output raw JSON",
	}
}

func formatFlag(value, usage string) cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   usage,
		Value:   value,
	}
}

// setupCommand initializes the config file and storage.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create the config file, initialize storage and run migrations",
		Action: r.Setup,
	}
}

// tuiCommand launches the terminal client.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive terminal client (default)",
		Action: r.TUI,
	}
}

// navCommand manages the navigation restore hint.
func navCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "nav",
		Aliases: []string{"navigation"},
		Usage:   "Inspect and manage the last visited menu screen",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the cached screen, its age and whether it will be restored",
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.NavShow,
			},
			{
				Name:  "save",
				Usage: "Cache a screen as if it had just been visited",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "screen"},
				},
				Action: r.NavSave,
			},
			{
				Name:   "clear",
				Usage:  "Forget the cached screen",
				Action: r.NavClear,
			},
		},
	}
}

// authCommand manages the local demo account.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the local account",
		Commands: []*cli.Command{
			{
				Name:  "signup",
				Usage: "Create the local account and log in",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "Email address"},
					&cli.StringFlag{Name: "password", Usage: "Password"},
					&cli.StringFlag{Name: "name", Usage: "Full name, also used as username"},
					&cli.StringFlag{Name: "birth", Usage: "Date of birth (YYYY-MM-DD)"},
					&cli.StringFlag{Name: "gender", Usage: "Male or Female"},
				},
				Action: r.AuthSignUp,
			},
			{
				Name:  "login",
				Usage: "Log in with an email or username",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "identifier"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Password",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Log out, keeping the stored profile",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the login state and stored profile",
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.AuthStatus,
			},
		},
	}
}

// themeCommand manages the theme preferences.
func themeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "theme",
		Usage: "Inspect and change the theme",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the theme mode and resolved palette",
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.ThemeShow,
			},
			{
				Name:  "set",
				Usage: "Set the theme mode (light, dark, custom)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "mode"},
				},
				Action: r.ThemeSet,
			},
			{
				Name:   "toggle",
				Usage:  "Switch between light and dark",
				Action: r.ThemeToggle,
			},
			{
				Name:  "colors",
				Usage: "Set the custom theme colors",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "primary"},
					&cli.StringArg{Name: "secondary"},
					&cli.StringArg{Name: "accent"},
				},
				Action: r.ThemeColors,
			},
			{
				Name:   "presets",
				Usage:  "List the preset colors",
				Action: r.ThemePresets,
			},
		},
	}
}

// settingsCommand manages the remaining preferences.
func settingsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Inspect and change settings",
		Commands: []*cli.Command{
			{
				Name:  "notifications",
				Usage: "Show, or set with on/off, the notifications preference",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "value"},
				},
				Action: r.SettingsNotifications,
			},
		},
	}
}

// catalogCommand browses the catalog outside the TUI.
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Aliases: []string{"cat"},
		Usage:   "Browse the music catalog",
		Commands: []*cli.Command{
			{
				Name:   "home",
				Usage:  "Show the home feed",
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.CatalogHome,
			},
			{
				Name:   "browse",
				Usage:  "Show the browse categories",
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.CatalogBrowse,
			},
			{
				Name:  "library",
				Usage: "Show the library",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "filter",
						Usage: "Playlists, Podcasts, Albums or Artists",
					},
					jsonFlag(),
				},
				Action: r.CatalogLibrary,
			},
			{
				Name:   "playlists",
				Usage:  "List playlists",
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.CatalogPlaylists,
			},
			{
				Name:  "search",
				Usage: "Search titles and artists",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.CatalogSearch,
			},
			{
				Name:  "export",
				Usage: "Export a playlist with its tracks",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID to export",
						Required: true,
					},
					formatFlag("txt", "Output format (csv, md, txt, json)"),
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write files instead of printing (csv: base path, md: directory, txt/json: file)",
					},
				},
				Action: r.CatalogExport,
			},
		},
	}
}

// draftCommand runs playlist draft scripts.
func draftCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "draft",
		Usage: "Build a playlist draft from actions",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Apply actions in order and print the final draft",
				ArgsUsage: "add:<name> | remove:<index> | clear | history:<name> ...",
				Flags:     []cli.Flag{formatFlag("txt", "Output format (txt, md, csv, json)")},
				Action:    r.DraftRun,
			},
		},
	}
}
