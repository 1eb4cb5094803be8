// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for configuration and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write an example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "signin",
				Usage: "Sign in and persist the session token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Account password (prompted when omitted)",
					},
				},
				Action: r.AuthSignin,
			},
			{
				Name:   "status",
				Usage:  "Show the persisted session, if any",
				Action: r.AuthStatus,
			},
			{
				Name:   "signout",
				Usage:  "Discard the persisted session",
				Action: r.AuthSignout,
			},
		},
	}
}

// wordsCommand handles word list and word detail operations
func wordsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "words",
		Aliases: []string{"w"},
		Usage:   "Browse the word list",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List dictionary entries page by page",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "pages",
						Usage: "Number of advances to perform",
						Value: 1,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output JSON",
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV",
					},
				},
				Action: r.WordsList,
			},
			{
				Name:  "show",
				Usage: "Show phonetics and meanings for a word",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "word"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output JSON",
					},
					&cli.BoolFlag{
						Name:  "markdown",
						Usage: "Output Markdown",
					},
				},
				Action: r.WordsShow,
			},
		},
	}
}

// favoritesCommand handles the favorites list and toggles
func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "Manage favorited words",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List favorited words",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "pages",
						Usage: "Number of advances to perform",
						Value: 1,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output JSON",
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV",
					},
				},
				Action: r.FavoritesList,
			},
			{
				Name:  "add",
				Usage: "Favorite a word",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "word"},
				},
				Action: r.FavoritesAdd,
			},
			{
				Name:  "remove",
				Usage: "Unfavorite a word",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "word"},
				},
				Action: r.FavoritesRemove,
			},
		},
	}
}

// historyCommand lists recently viewed words
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List recently viewed words",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "pages",
				Usage: "Number of advances to perform",
				Value: 1,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output JSON",
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Output CSV",
			},
		},
		Action: r.History,
	}
}

// cacheCommand handles the local word cache
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Manage the local word cache",
		Commands: []*cli.Command{
			{
				Name:  "prefetch",
				Usage: "Walk the word list and cache every entry locally",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "rate",
						Usage: "Requests per second (0 uses the configured rate)",
					},
					&cli.IntFlag{
						Name:  "page-size",
						Usage: "Items per page (0 uses the configured size)",
					},
					&cli.IntFlag{
						Name:  "max-pages",
						Usage: "Page budget (0 walks until exhaustion)",
					},
				},
				Action: r.CachePrefetch,
			},
			{
				Name:   "stats",
				Usage:  "Show cached word count",
				Action: r.CacheStats,
			},
			{
				Name:   "clear",
				Usage:  "Delete all cached words",
				Action: r.CacheClear,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive dictionary browser",
		Action:  r.TUI,
	}
}
