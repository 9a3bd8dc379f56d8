package model

// AppConfig holds tool-wide preferences and default settings applied to new
// jobs.
type AppConfig struct {
	// Defaults applied to new planning jobs
	DefaultKerf         float64   `json:"default_kerf"`
	DefaultStockLengths []float64 `json:"default_stock_lengths"`
	DefaultPolicy       Policy    `json:"default_policy"`

	// Purchase estimation defaults
	WastePercent float64 `json:"waste_percent"` // extra bars factor, e.g. 10 for 10%
	PricePerKg   float64 `json:"price_per_kg"`  // default steel price
	CutCharge    float64 `json:"cut_charge"`    // labor charge per cut

	// Application preferences
	RecentJobs []string `json:"recent_jobs"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultKerf:         defaults.Kerf,
		DefaultStockLengths: []float64{float64(DefaultStockLength)},
		DefaultPolicy:       defaults.Policy,
		WastePercent:        10.0,
		PricePerKg:          2.50,
		CutCharge:           0.50,
		RecentJobs:          []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// PlanSettings struct. Used when a job does not override them.
func (c AppConfig) ApplyToSettings(s *PlanSettings) {
	s.Kerf = c.DefaultKerf
	s.Policy = c.DefaultPolicy
}

// StockOptions returns the configured default stock lengths as StockOption
// values for planning.
func (c AppConfig) StockOptions() []StockOption {
	opts := make([]StockOption, len(c.DefaultStockLengths))
	for i, l := range c.DefaultStockLengths {
		opts[i] = StockOption(l)
	}
	return opts
}
