package model

// Path represents a file system path.
type Path string

// ScopeType names the kind of top-level declaration a scope covers.
type ScopeType string

const (
	// ScopeGlobal represents package-level const and var declarations.
	ScopeGlobal ScopeType = "global"

	// ScopeInit represents init() functions.
	ScopeInit ScopeType = "init"

	// ScopeFunction represents regular function declarations.
	ScopeFunction ScopeType = "function"
)

// CodeScope is a top-level declaration found in a Go source file.
type CodeScope struct {
	Type      ScopeType `yaml:"type"`
	Name      string    `yaml:"name"`
	StartLine int       `yaml:"start_line"`
	EndLine   int       `yaml:"end_line"`
}

// Translation is the TypeScript produced from one Go source file.
type Translation struct {
	Source     Path        `yaml:"source"`
	Hash       string      `yaml:"hash"`
	Scopes     []CodeScope `yaml:"scopes"`
	TypeScript string      `yaml:"typescript"`
}
