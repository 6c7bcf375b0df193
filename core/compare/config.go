package compare

// Config defines the settings for a comparison run. Fields carry viper
// mapstructure tags so the struct doubles as the "compare" configuration
// section; per-run values such as the column exclusion list are supplied by
// the caller.
type Config struct {
	// Delimiter is the field separator, possibly multi-character.
	Delimiter string `mapstructure:"delimiter" default:"!@#"`

	// SearchBudget caps the number of candidate rows examined during the
	// moved-row search phase. Candidates beyond the budget are classified
	// NotSearched.
	SearchBudget int `mapstructure:"search_budget" default:"750000"`

	// Workers is the parallelism of the search phase. Values below 2 run
	// the search sequentially. It never changes results.
	Workers int `mapstructure:"workers" default:"8"`

	// NormalizePunctuation enables punctuation and special-character
	// standardization in addition to the unconditional whitespace trim.
	NormalizePunctuation bool `mapstructure:"punctuation" default:"true"`

	// Encodings is the ordered encoding fallback list for the loader.
	Encodings []string `mapstructure:"encodings" default:"utf-8,latin1,cp1252"`

	// ExcludeColumns lists 0-based column indices dropped from both tables
	// before any comparison. Not configurable via environment; set per run.
	ExcludeColumns []int `mapstructure:"-"`
}
