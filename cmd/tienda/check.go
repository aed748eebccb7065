package main

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and templates, then list routes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.dispatcher.Check(cmd.Context()); err != nil {
			return err
		}

		r, err := a.router()
		if err != nil {
			return err
		}

		var routes []string
		err = chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			routes = append(routes, fmt.Sprintf("%-6s %s", method, route))
			return nil
		})
		if err != nil {
			return err
		}
		sort.Strings(routes)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "templates: %d\n", len(a.renderer.Names()))
		for _, route := range routes {
			fmt.Fprintln(out, route)
		}
		return nil
	},
}
