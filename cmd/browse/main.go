package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"galerij/internal/client"
	artworkDto "galerij/internal/domains/artwork/model/dto"

	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:3000"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var apiURL string

	root := &cobra.Command{
		Use:           "browse",
		Short:         "Browse the gallery from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&apiURL, "api", defaultAPIURL, "base URL of the gallery API")

	var filter string

	list := &cobra.Command{
		Use:   "list",
		Short: "List public artworks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Loading artworks...")

			artworks, err := client.New(apiURL).ListArtworks(cmd.Context())
			if err != nil {
				return fail(cmd, "Failed to load artworks", err)
			}

			printList(cmd.OutOrStdout(), client.Filter(artworks, filter))

			return nil
		},
	}
	list.Flags().StringVar(&filter, "filter", "", "only show artworks whose title or artist contains this text")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one artwork with its images, techniques and comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fail(cmd, "Invalid artwork id", fmt.Errorf("%q is not a positive number", args[0]))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Loading artwork...")

			detail, err := client.New(apiURL).GetArtwork(cmd.Context(), id)
			if errors.Is(err, client.ErrNotFound) {
				return fail(cmd, "Artwork not found", err)
			}

			if err != nil {
				return fail(cmd, "Failed to load artwork", err)
			}

			printDetail(cmd.OutOrStdout(), detail)

			return nil
		},
	}

	root.AddCommand(list, show)
	root.SetContext(context.Background())

	return root
}

func fail(cmd *cobra.Command, msg string, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", msg, err)

	return err
}

func printList(out io.Writer, artworks []artworkDto.ArtworkListItem) {
	if len(artworks) == 0 {
		fmt.Fprintln(out, "No artworks found.")

		return
	}

	for _, artwork := range artworks {
		fmt.Fprintf(out, "#%d  %s", artwork.ID, artwork.Title)

		if artwork.ArtistName != nil {
			fmt.Fprintf(out, " by %s", *artwork.ArtistName)
		}

		if artwork.Image != nil {
			fmt.Fprintf(out, "  [%s]", artwork.Image.URL)
		}

		fmt.Fprintln(out)
	}
}

func printDetail(out io.Writer, detail artworkDto.ArtworkDetailResponse) {
	artwork := detail.Artwork

	fmt.Fprintf(out, "%s (#%d)\n", artwork.Title, artwork.ID)

	if artwork.ArtistName != nil {
		fmt.Fprintf(out, "Artist: %s\n", *artwork.ArtistName)
	}

	if artwork.Year != nil {
		fmt.Fprintf(out, "Year: %d\n", *artwork.Year)
	}

	if artwork.Dimensions != nil {
		fmt.Fprintf(out, "Dimensions: %s\n", *artwork.Dimensions)
	}

	if artwork.Price != nil {
		fmt.Fprintf(out, "Price: %.2f\n", *artwork.Price)
	}

	if artwork.Description != nil {
		fmt.Fprintf(out, "\n%s\n", *artwork.Description)
	}

	fmt.Fprintf(out, "\nImages (%d)\n", len(detail.Images))

	for _, image := range detail.Images {
		fmt.Fprintf(out, "  %d. %s\n", image.SortOrder, image.URL)
	}

	fmt.Fprintf(out, "Techniques (%d)\n", len(detail.Techniques))

	for _, technique := range detail.Techniques {
		fmt.Fprintf(out, "  - %s\n", technique.Name)
	}

	fmt.Fprintf(out, "Comments (%d)\n", len(detail.Comments))

	for _, comment := range detail.Comments {
		fmt.Fprintf(out, "  %s (%s): %s\n", client.DisplayName(comment), comment.CreatedAt, comment.Content)
	}
}
