package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/archiview/pkg/errors"
	"github.com/matzehuels/archiview/pkg/model"
	"github.com/matzehuels/archiview/pkg/viewpoint"
)

func (c *CLI) viewpointsCommand() *cobra.Command {
	var kinds, browse bool
	cmd := &cobra.Command{
		Use:   "viewpoints [NAME]",
		Short: "List built-in viewpoints or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showViewpoint(args[0])
			}
			if browse {
				return browseViewpoints(cmd.Context())
			}
			if kinds {
				listKinds()
				return nil
			}
			listViewpoints()
			return nil
		},
	}
	cmd.Flags().BoolVar(&kinds, "kinds", false, "list element and relationship kinds instead")
	cmd.Flags().BoolVarP(&browse, "interactive", "i", false, "pick a viewpoint from an interactive list")
	cmd.MarkFlagsMutuallyExclusive("kinds", "interactive")
	return cmd
}

func listViewpoints() {
	printTitle("Viewpoints")
	for _, vp := range viewpoint.All() {
		if vp.IsTotal() {
			printKeyValue(vp.Name(), "everything")
			continue
		}
		printKeyValue(vp.Name(), summarize(len(vp.ElementKinds()), "element kind"))
	}
}

func browseViewpoints(ctx context.Context) error {
	p := tea.NewProgram(NewViewpointListModel(viewpoint.All()), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	fm, ok := final.(ViewpointListModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil
	}
	return showViewpoint(fm.Selected.Name())
}

func showViewpoint(name string) error {
	vp, ok := viewpoint.Lookup(name)
	if !ok {
		return errors.New(errors.ErrCodeInvalidViewpoint, "unknown viewpoint %q (run 'archiview viewpoints' for the list)", name)
	}
	printTitle(vp.Name())
	if vp.IsTotal() {
		printInfo("no restriction")
		return nil
	}
	printKeyValue("elements", joinKinds(vp.ElementKinds()))
	printKeyValue("relationships", joinKinds(vp.RelationshipKinds()))
	return nil
}

func listKinds() {
	printTitle("Element kinds")
	printDetail("%s", joinKinds(model.ElementKinds()))
	printTitle("Relationship kinds")
	printDetail("%s", joinKinds(model.RelationshipKinds()))
}

func joinKinds[K ~string](kinds []K) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

func summarize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
