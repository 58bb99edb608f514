package kdgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/kdgo"
	"github.com/hupe1980/kdgo/blobstore"
)

type city struct {
	Name string      `json:"name"`
	Pos  kdgo.Point2 `json:"pos"`
}

func (c city) Position() kdgo.Point2 { return c.Pos }

func exampleCities() []city {
	return []city{
		{Name: "Berlin", Pos: kdgo.Point2{13.40, 52.52}},
		{Name: "Hamburg", Pos: kdgo.Point2{9.99, 53.55}},
		{Name: "Munich", Pos: kdgo.Point2{11.58, 48.14}},
		{Name: "Cologne", Pos: kdgo.Point2{6.96, 50.94}},
		{Name: "Dresden", Pos: kdgo.Point2{13.74, 51.05}},
	}
}

// Example_lookUp demonstrates a box-pruned range query.
func Example_lookUp() {
	tree := kdgo.New[kdgo.Point2](exampleCities())

	// Everything within 2 degrees of Berlin.
	query := kdgo.NewWithinDistance(kdgo.Point2{13.40, 52.52}, 2)

	var names []string
	tree.LookUp(query, func(_ int, c *city) bool {
		names = append(names, c.Name)
		return true
	})

	fmt.Println(len(names))
	// Output: 2
}

// Example_nearest demonstrates a nearest-neighbor query.
func Example_nearest() {
	tree := kdgo.New[kdgo.Point2](exampleCities())

	// Closest city to Leipzig.
	if c := tree.Nearest(kdgo.Point2{12.37, 51.34}); c != nil {
		fmt.Println(c.Name)
	}
	// Output: Dresden
}

// Example_snapshot demonstrates persisting a tree and loading it back.
func Example_snapshot() {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	tree := kdgo.New[kdgo.Point2](exampleCities())

	if err := kdgo.Save(ctx, store, "cities.kd", tree); err != nil {
		log.Fatal(err)
	}

	loaded, err := kdgo.Load[kdgo.Point2, city](ctx, store, "cities.kd")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(loaded.Len())
	// Output: 5
}
