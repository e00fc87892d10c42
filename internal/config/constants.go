package config

// Default source file names, matching the dataset distribution.
const (
	DefaultFactFile     = "Boxoffice_Fact.csv"
	DefaultDirectorFile = "Director_dim.csv"
	DefaultGenreFile    = "Genere_dim.csv"
	DefaultLanguageFile = "Language_dim.csv"
)

// Default directories.
const (
	DefaultInputDir  = "."
	DefaultOutputDir = "output"
)

// ReportFile is the name of the combined report document.
const ReportFile = "REPORT.md"

// WorkbookFile is the name of the combined Excel workbook.
const WorkbookFile = "REPORT.xlsx"

// EnvPrefix is the envconfig prefix for all BOXCLI_* variables.
const EnvPrefix = "BOXCLI"

// ConfigFileName is the optional YAML configuration file looked up next to
// the working directory.
const ConfigFileName = "config.yaml"
