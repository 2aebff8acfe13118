package types

// Defaults applied by consumers when the corresponding field is zero.
const (
	// DefaultMaxPermutations bounds n! per sweep; 40 million admits
	// n <= 10 and refuses anything larger.
	DefaultMaxPermutations int64 = 40_000_000

	// DefaultCacheLimit bounds the number of permutations whose
	// (sign, value) terms are cached across an m-sweep; 9! keeps the
	// cache under a few hundred MB for every family.
	DefaultCacheLimit int64 = 362_880
)

// EngineConfig holds settings for the APD computation engine.
type EngineConfig struct {
	// Workers is the size of the partition worker pool (default GOMAXPROCS).
	Workers int `json:"workers" yaml:"workers"`

	// MaxPermutations is the operator cost guard: a sweep whose n!
	// exceeds it is refused (default DefaultMaxPermutations).
	MaxPermutations int64 `json:"max_permutations" yaml:"max_permutations"`

	// CacheLimit is the largest n! for which per-permutation terms are
	// cached across the m-sweep (default DefaultCacheLimit).
	CacheLimit int64 `json:"cache_limit" yaml:"cache_limit"`
}

// StoreConfig holds settings for the verification results store.
type StoreConfig struct {
	// ResultsDir is the base directory for results (contains apd.db and exports).
	ResultsDir string `json:"results_dir" yaml:"results_dir"`

	// MaxResults is the default maximum number of listed runs (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ReportConfig holds settings for result rendering.
type ReportConfig struct {
	// SciNotationDigits is the significant-digit count used when huge
	// integers are compressed to scientific notation (default 6).
	SciNotationDigits int `json:"sci_notation_digits" yaml:"sci_notation_digits"`

	// SciNotationMinLen is the digit length past which integers switch
	// to scientific notation in LaTeX output (default 15).
	SciNotationMinLen int `json:"sci_notation_min_len" yaml:"sci_notation_min_len"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Engine EngineConfig `json:"engine" yaml:"engine"`
	Store  StoreConfig  `json:"store" yaml:"store"`
	Report ReportConfig `json:"report" yaml:"report"`
}
