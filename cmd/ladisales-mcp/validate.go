package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ladiops/ladisales-mcp/internal/config"
	"github.com/ladiops/ladisales-mcp/internal/fancy"
	"github.com/ladiops/ladisales-mcp/internal/ladisales"
	"github.com/ladiops/ladisales-mcp/internal/server/tools"
)

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate the configuration and print the tool catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a TOML config file, layered under environment variables",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if err := cfg.Validate(); err != nil {
				return cli.Exit(fmt.Sprintf("%s\n%v",
					fancy.ErrorText("Configuration is invalid:"), err), 1)
			}

			// Building the registry exercises the same registration path the
			// server uses, so duplicate or broken tools fail here too.
			client, err := ladisales.New(cfg.APIBaseURL, cfg.APIKey,
				ladisales.WithLocationBaseURL(cfg.LocationBaseURL),
				ladisales.WithTimeout(time.Duration(cfg.UpstreamTimeout)),
			)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			registry, err := tools.New(client, slog.Default(), Version)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			fmt.Println(fancy.ValidText("Configuration is valid") + " " +
				fancy.CountText(fmt.Sprintf("(%d tools)", len(registry.Names()))))
			fmt.Println()
			fmt.Println(renderSummary(cfg, cmd.String("config"), registry))
			return nil
		},
	}
}

// toolGroups maps catalog group names to their tool name prefixes, in
// display order.
var toolGroups = []struct {
	name     string
	prefixes []string
}{
	{"products", []string{"list_products", "get_product", "create_product", "update_product", "delete_product", "list_checkout_configs"}},
	{"customers", []string{"get_customer", "create_customer", "update_customer", "delete_customer", "search_customers"}},
	{"discounts", []string{"create_discount", "update_discount", "delete_discount", "search_product_tags", "search_product_variants", "search_customer_tags"}},
	{"locations", []string{"list_country", "list_state", "list_district", "list_ward"}},
}

// maxURLDisplay keeps long upstream URLs from wrapping the tree output.
const maxURLDisplay = 64

func renderSummary(cfg *config.Config, configPath string, registry *tools.Registry) string {
	root := fancy.Tree()
	root.Root(fancy.RootStyle.Render("ladisales-mcp"))

	if configPath != "" {
		root.Child("config " + fancy.PathText(configPath))
	}

	endpoints := fancy.BranchNode("endpoints", "")
	endpoints.Child("listen " + fancy.EndpointText(cfg.Listen))
	endpoints.Child("upstream " + fancy.EndpointText(fancy.TruncateString(cfg.APIBaseURL, maxURLDisplay)))
	if cfg.LocationBaseURL != cfg.APIBaseURL {
		endpoints.Child("locations " + fancy.EndpointText(fancy.TruncateString(cfg.LocationBaseURL, maxURLDisplay)))
	}
	root.Child(endpoints)

	registered := make(map[string]bool, len(registry.Names()))
	for _, name := range registry.Names() {
		registered[name] = true
	}

	catalog := fancy.BranchNode("tools", fmt.Sprintf("(%d)", len(registered)))
	for _, group := range toolGroups {
		node := fancy.BranchNode(fancy.GroupText(group.name),
			fmt.Sprintf("(%d)", len(group.prefixes)))
		for _, name := range group.prefixes {
			if registered[name] {
				node.Child(fancy.ToolText(name))
				delete(registered, name)
			}
		}
		catalog.Child(node)
	}
	// Anything not claimed by a group still shows up, in sorted order.
	for _, name := range registry.Names() {
		if registered[name] {
			catalog.Child(fancy.ToolText(name))
		}
	}
	root.Child(catalog)

	var b strings.Builder
	b.WriteString(root.String())
	b.WriteString("\n")
	return b.String()
}
