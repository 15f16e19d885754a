// Package factories builds demo data for the seed command.
package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
)

var fake = faker.New()

// FlavorSeed is the name/category pair the seed command registers through
// the catalog API.
type FlavorSeed struct {
	Name     string
	Category string
}

// FlavorSeeds returns the classic rodízio menu.
func FlavorSeeds() []FlavorSeed {
	return []FlavorSeed{
		{Name: "Margherita", Category: "savory"},
		{Name: "Calabresa", Category: "savory"},
		{Name: "Portuguesa", Category: "savory"},
		{Name: "Quatro Queijos", Category: "savory"},
		{Name: "Frango com Catupiry", Category: "savory"},
		{Name: "Napolitana", Category: "savory"},
		{Name: "Pepperoni", Category: "savory"},
		{Name: "Chocolate", Category: "sweet"},
		{Name: "Romeu e Julieta", Category: "sweet"},
		{Name: "Banana com Canela", Category: "sweet"},
		{Name: "Prestígio", Category: "sweet"},
	}
}

// ServerNames generates n waiter names.
func ServerNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fake.Person().Name()
	}
	return names
}

// TableNumber picks a plausible table.
func TableNumber() int {
	return rand.Intn(20) + 1
}

// GapMinutes spaces demo orders through the evening.
func GapMinutes() int {
	return rand.Intn(9) + 1
}

// PrepMinutes is a plausible kitchen turnaround for a completed demo order.
func PrepMinutes() int {
	return rand.Intn(14) + 1
}

// ShouldComplete decides whether a demo order gets completed. Roughly three
// in four do, so the live queue still shows pending cards.
func ShouldComplete() bool {
	return rand.Intn(4) > 0
}
