package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mateoroldos/personal-blog/backend/internal/setup"
	"github.com/mateoroldos/personal-blog/shared/config"
	"github.com/mateoroldos/personal-blog/shared/tags"
)

type options struct {
	contentDir   string
	configFolder string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "sitectl",
		Short:         "Inspect blog content and build static artifacts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.contentDir, "content", "content", "path to the content folder")
	root.PersistentFlags().StringVar(&opts.configFolder, "config_folder", "backend/config", "path to folder with configs")

	root.AddCommand(newVersionCmd(), newTagsCmd(opts), newFeedCmd(opts))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sitectl %s (commit %s)\n", version, commit)
		},
	}
}

func newTagsCmd(opts *options) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the unique tags, or the entries under --tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := setup.LoadContent(opts.contentDir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if tag == "" {
				for _, t := range content.UniqueTags() {
					fmt.Fprintln(out, t)
				}
				return nil
			}

			entries := content.ByTag(tags.Slugify(tag))
			for _, p := range entries.Posts {
				fmt.Fprintf(out, "post\t%s\t%s\n", p.Slug, p.Title)
			}
			for _, p := range entries.Projects {
				fmt.Fprintf(out, "project\t%s\t%s\n", p.RepoPath(), p.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "show posts and projects carrying this tag")
	return cmd
}

func newFeedCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Render the RSS feed to stdout or a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFolder)
			if err != nil {
				return err
			}
			content, err := setup.LoadContent(opts.contentDir)
			if err != nil {
				return err
			}

			body, err := setup.NewFeed(cfg).Build(content.Posts())
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(output, body, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", output, len(body))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the feed to this file instead of stdout")
	return cmd
}
