package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "bubblycrochet",
		Short: "Bubbly Crochet storefront API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.AddCommand(serveCmd(), createAdminCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
