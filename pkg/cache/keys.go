package cache

// LayoutKeyOpts distinguishes layout outputs for the same DOT input.
type LayoutKeyOpts struct {
	Engine string `json:"engine"`
	Format string `json:"format"`
}

// ArtifactKeyOpts distinguishes rendered artifacts (e.g. SVG) for the same DOT input.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer builds cache keys.
type Keyer interface {
	LayoutKey(dotHash string, opts LayoutKeyOpts) string
	ArtifactKey(dotHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds "layout:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key builder.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns the key for engine output.
func (DefaultKeyer) LayoutKey(dotHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", dotHash, opts)
}

// ArtifactKey returns the key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(dotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dotHash, opts)
}
