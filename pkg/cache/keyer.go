package cache

// LayoutKeyOpts carries the layout parameters that affect a computed plan.
type LayoutKeyOpts struct {
	Scale      float64
	Spacing    float64
	ConfigHash string // hash of the per-category configuration
}

// ArtifactKeyOpts carries the render parameters that affect output bytes.
type ArtifactKeyOpts struct {
	Format string // svg, png, pdf, json
	Scale  float64
}

// Keyer derives cache keys from content hashes and options.
// Keeping key derivation behind an interface lets the server scope keys
// per deployment without the pipeline knowing.
type Keyer interface {
	// ProjectKey identifies a parsed project file by its content hash.
	ProjectKey(contentHash string) string

	// LayoutKey identifies a computed plan for one tray of a project.
	LayoutKey(projectHash, trayName string, opts LayoutKeyOpts) string

	// ArtifactKey identifies rendered output derived from a plan.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer derives keys by hashing the identifying parts.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ProjectKey generates a key for a parsed project.
func (k *DefaultKeyer) ProjectKey(contentHash string) string {
	return "project:" + contentHash
}

// LayoutKey generates a key for a computed layout plan.
func (k *DefaultKeyer) LayoutKey(projectHash, trayName string, opts LayoutKeyOpts) string {
	return hashKey("layout", projectHash, trayName, opts)
}

// ArtifactKey generates a key for rendered output.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
