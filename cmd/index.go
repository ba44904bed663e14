package cmd

import (
	"context"
	"fmt"

	"github.com/jsphweid/fretdex/catalog"
	"github.com/jsphweid/fretdex/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var indexFlags constraintFlags

func init() {
	addConstraintFlags(indexCmd, &indexFlags)
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Creates a catalog",
	Long: `Searches every root and chord type on one tuning and profile and saves the
shapes as a catalog in the index dir, where "serve" picks it up.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, tuningName, err := indexFlags.resolve(cmd)
		if err != nil {
			return err
		}
		path, err := Index(cmd.Context(), tuningName, c)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created catalog: %v\n", path)
		return nil
	},
}

// Index builds and saves a catalog, returning where it was written.
func Index(ctx context.Context, tuningName string, c model.Constraints) (string, error) {
	logger.Info("Creating catalog", zap.String("tuning", tuningName))
	cat, err := catalog.Build(ctx, tuningName, c)
	if err != nil {
		return "", fmt.Errorf("building catalog: %w", err)
	}
	path, err := cat.Save(cfg.IndexDir)
	if err != nil {
		return "", err
	}
	logger.Info("Created catalog", zap.String("path", path), zap.Int("entries", len(cat.Entries)))
	return path, nil
}
