package model

import "github.com/google/uuid"

// Profile represents a steel section the shop regularly quotes: its shape,
// weight per meter, and the stock lengths the supplier sells it in.
type Profile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Shape        string    `json:"shape"` // e.g. "SHS", "flat", "angle", "tube", "rebar"
	KgPerMeter   float64   `json:"kg_per_meter"`
	StockLengths []float64 `json:"stock_lengths"` // mm
}

// NewProfile creates a new Profile with a generated ID.
func NewProfile(name, shape string, kgPerMeter float64, stockLengths ...float64) Profile {
	if len(stockLengths) == 0 {
		stockLengths = []float64{float64(DefaultStockLength)}
	}
	return Profile{
		ID:           uuid.New().String()[:8],
		Name:         name,
		Shape:        shape,
		KgPerMeter:   kgPerMeter,
		StockLengths: stockLengths,
	}
}

// StockOptions returns the profile's stock lengths as planner stock options.
func (p Profile) StockOptions() []StockOption {
	opts := make([]StockOption, len(p.StockLengths))
	for i, l := range p.StockLengths {
		opts[i] = StockOption(l)
	}
	return opts
}

// WeightForLength returns the mass in kg of a given length (mm) of this
// profile.
func (p Profile) WeightForLength(lengthMM float64) float64 {
	return (lengthMM / 1000.0) * p.KgPerMeter
}

// Catalog holds the shop's saved steel profiles.
type Catalog struct {
	Profiles []Profile `json:"profiles"`
}

// DefaultCatalog returns a catalog populated with common fabrication
// sections.
func DefaultCatalog() Catalog {
	return Catalog{
		Profiles: []Profile{
			NewProfile("SHS 20x20x1.5", "SHS", 0.879, 6000),
			NewProfile("SHS 25x25x2", "SHS", 1.39, 6000),
			NewProfile("SHS 40x40x3", "SHS", 3.41, 6000, 12000),
			NewProfile("Flat 40x5", "flat", 1.57, 6000),
			NewProfile("Angle 30x30x3", "angle", 1.36, 6000),
			NewProfile("Angle 50x50x5", "angle", 3.77, 6000, 12000),
			NewProfile("Round Tube 19x1.5", "tube", 0.647, 6000),
			NewProfile("Rebar 12mm", "rebar", 0.888, 6000, 12000),
		},
	}
}

// FindProfileByID returns a pointer to the profile with the given ID, or nil.
func (c *Catalog) FindProfileByID(id string) *Profile {
	for i := range c.Profiles {
		if c.Profiles[i].ID == id {
			return &c.Profiles[i]
		}
	}
	return nil
}

// FindProfileByName returns a pointer to the first profile with the given
// name, or nil.
func (c *Catalog) FindProfileByName(name string) *Profile {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i]
		}
	}
	return nil
}

// ProfileNames returns a list of profile names for listings and prompts.
func (c *Catalog) ProfileNames() []string {
	names := make([]string, len(c.Profiles))
	for i, p := range c.Profiles {
		names[i] = p.Name
	}
	return names
}
