// Package warehouse holds record types whose accessors conflict, next to the
// embedding patterns that resolve cleanly.
package warehouse

// Animal is implemented by Dog.
type Animal interface {
	Sound() string
}

type Dog struct {
	Name string
}

func (Dog) Sound() string { return "woof" }

// Person declares an int getter and a bool getter for one property.
type Person struct {
	age int
}

func (p Person) GetAge() int { return p.age }
func (p Person) IsAge() bool { return p.age > 0 }

// Kennel keeps any animal.
type Kennel struct {
	pet Animal
}

func (k *Kennel) GetPet() Animal  { return k.pet }
func (k *Kennel) SetPet(a Animal) { k.pet = a }

// DogKennel narrows the pet getter to Dog. The more specific getter wins and
// the setter inherited from Kennel keeps accepting any Animal.
type DogKennel struct {
	Kennel
}

func (k *DogKennel) GetPet() Dog {
	dog, _ := k.pet.(Dog)
	return dog
}

// Gauge takes its level as a number.
type Gauge struct {
	level int
}

func (g *Gauge) SetLevel(level int) { g.level = level }

// Meter adds a string setter for the level promoted from Gauge. Neither
// parameter type is assignable to the other.
type Meter struct {
	Gauge

	label string
}

func (m *Meter) SetLevel(label string) { m.label = label }

// Crate and Pallet both label themselves.
type Crate struct{}

func (Crate) GetLabel() string { return "crate" }

type Pallet struct{}

func (Pallet) GetLabel() string { return "pallet" }

// Shipment embeds Crate and Pallet at the same depth, so Go cannot select
// either label getter.
type Shipment struct {
	Crate
	Pallet

	Carrier string
}

// Bin is a storage location.
type Bin struct {
	Code  string
	Slots []Slot
}

type Slot struct {
	SKU      string
	Quantity int
}

// Warehouse resolves cleanly: fields only.
type Warehouse struct {
	Name    string
	Bins    map[string]*Bin
	Manager *Dog
}
