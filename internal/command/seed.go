package command

import (
	"errors"
	"log/slog"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"

	"github.com/HenningWaack/ccAcmePairing/internal/catalog"
)

func seedCommand() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with sample products",
		Long: "Creates randomly generated sample products in the configured database.\n" +
			"Intended for local development and demos.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			_, store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			products := catalog.NewService(store)
			for _, draft := range sampleDrafts(count) {
				created, err := products.Create(cmd.Context(), draft)
				if err != nil {
					return err
				}
				slog.InfoContext(cmd.Context(), "created product",
					slog.Int64("id", created.ID),
					slog.String("name", created.Name),
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 20, "number of sample products to create")
	return cmd
}

// sampleDrafts generates count valid product drafts with fake but plausible
// catalog data.
func sampleDrafts(count int) []catalog.Draft {
	faker := gofakeit.New(0)
	drafts := make([]catalog.Draft, 0, count)
	for range count {
		price := faker.Price(1, 500)
		drafts = append(drafts, catalog.Draft{
			Name:        faker.ProductName(),
			Description: faker.ProductDescription(),
			Price:       &price,
		})
	}
	return drafts
}
