package reflector

import (
	"strings"
)

type Item struct {
	Price float64
}

type Customer struct {
	Name string
}

type Order struct {
	Items    []Item
	Customer *Customer
	Notes    map[string]string
	Total    float64
	ShipTo   string
}

// Product mixes accessor methods and fields.
type Product struct {
	Title  string
	Stock  int
	Active bool
	sku    string
	_      int
}

func (p *Product) GetTitle() string { return strings.ToUpper(p.Title) }

func (p *Product) SetTitle(title string) { p.Title = strings.TrimSpace(title) }

func (p *Product) GetSKU() string { return p.sku }

func (p *Product) SetSKU(sku string) error {
	if sku == "" {
		return errEmptySKU
	}

	p.sku = sku

	return nil
}

func (p Product) IsAvailable() bool { return p.Active && p.Stock > 0 }

// AgeConflict has unrelated getters for one property.
type AgeConflict struct{}

func (AgeConflict) GetAge() int { return 42 }
func (AgeConflict) IsAge() bool { return true }
func (AgeConflict) Issue() string { return "not an accessor" }

// Flags has two boolean getters for one property.
type Flags struct {
	active bool
}

func (f Flags) GetActive() bool { return false }
func (f Flags) IsActive() bool  { return f.active }

type Animal interface {
	Sound() string
}

type Dog struct{}

func (Dog) Sound() string { return "woof" }

type Cat struct{}

func (Cat) Sound() string { return "meow" }

// Keeper and DogKeeper override a getter with a more specific result.
type Keeper struct{}

func (Keeper) GetPet() Animal { return Cat{} }

type DogKeeper struct {
	Keeper
}

func (DogKeeper) GetPet() Dog { return Dog{} }

// Vet and AnyVet declare the more specific getter on the embedded type.
type Vet struct{}

func (Vet) GetPet() Dog { return Dog{} }

type AnyVet struct {
	Vet
}

func (AnyVet) GetPet() Animal { return Cat{} }

// CodeBase and Coded declare unrelated getters on two levels.
type CodeBase struct{}

func (CodeBase) GetCode() int { return 1 }

type Coded struct {
	CodeBase
}

func (Coded) GetCode() string { return "one" }

// Left and Right declare the same getter; Sides embeds both at one depth.
type Left struct{}

func (Left) GetSide() string { return "left" }

type Right struct{}

func (Right) GetSide() string { return "right" }

type Sides struct {
	Left
	Right
}

// Centered selects the side getter itself.
type Centered struct {
	Left
	Right
}

func (Centered) GetSide() string { return "center" }

// Deep has Right one level further down than Left.
type Deep struct {
	Left
	Inner
}

type Inner struct {
	Right
}

// Stamp is embedded by pointer into Document.
type Stamp struct {
	At string
}

func (s *Stamp) GetStamped() string { return "at " + s.At }

func (s *Stamp) SetStamped(at string) { s.At = at }

type Document struct {
	*Stamp
	Body string
}

// Named is embedded as an interface.
type Named interface {
	GetName() string
}

type fixedName string

func (n fixedName) GetName() string { return string(n) }

type Labeled struct {
	Named
}

type labels []string

// Tagged embeds a named slice and a value type with a value-receiver getter.
type Tagged struct {
	labels
	Product
}

func (l labels) GetCount() int { return len(l) }

type errSKU string

func (e errSKU) Error() string { return string(e) }

const errEmptySKU = errSKU("empty sku")

// Ticket has methods that look like accessors but are not.
type Ticket struct{}

func (Ticket) Issue() string           { return "" }
func (Ticket) Getaway() int            { return 0 }
func (Ticket) GetID() int              { return 7 }
func (Ticket) GetNumber() (int, error) { return 7, nil }
func (Ticket) GetPair() (int, int)     { return 1, 2 }
func (Ticket) GetWith(int) int         { return 0 }
func (Ticket) SetMany(...int)          {}
func (Ticket) SetTwo(int, int)         {}
func (Ticket) SetResult(int) int       { return 0 }
