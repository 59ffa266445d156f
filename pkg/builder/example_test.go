package builder_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/archiview/internal/enginetest"
	"github.com/matzehuels/archiview/pkg/builder"
	"github.com/matzehuels/archiview/pkg/model"
	"github.com/matzehuels/archiview/pkg/view"
)

func Example() {
	b := builder.New("Shop",
		builder.WithVersion("1.0"),
		builder.WithRenderer(view.NewRenderer(&enginetest.Grid{}, nil)))

	web := b.Element(model.ApplicationComponent, "web shop")
	orders := b.Element(model.ApplicationService, "orders")
	db := b.Element(model.DataObject, "order data")
	b.Realizes(web, orders)
	b.Accesses(web, db)
	b.View("Overview", view.Options{})

	m, err := b.Build(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d := m.Diagrams[0]
	fmt.Println("elements:", len(m.Elements))
	fmt.Println("relationships:", len(m.Relationships))
	fmt.Printf("%s: %d nodes, %d connections\n", d.Name, len(d.Nodes), len(d.Connections))
	// Output:
	// elements: 3
	// relationships: 2
	// Overview: 3 nodes, 2 connections
}
