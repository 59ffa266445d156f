package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archiview/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout cache",
	}
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	return cmd
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	var redisAddr string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached layouts and SVGs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := c.newCache(cmd.Context(), engineOpts{redis: redisAddr})
			if err != nil {
				return err
			}
			defer ch.Close()

			clearer, ok := ch.(cache.Clearer)
			if !ok {
				printInfo("Cache backend cannot be cleared")
				return nil
			}
			if err := clearer.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess("Cache cleared")
			switch ch := ch.(type) {
			case *cache.FileCache:
				printDetail("Directory: %s", ch.Dir())
			case *cache.RedisCache:
				printDetail("Redis: %s", redisAddr)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&redisAddr, "redis", "", "clear the redis cache at this address instead of the file cache")
	return cmd
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cache.DefaultDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(stdout, dir)
			return nil
		},
	}
}
