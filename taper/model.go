package taper

type Side int

const (
	SideCenter Side = iota
	SideMirror
	SideWaveguide
)

// Quantity holds the taper parameters of one geometric quantity: the exact
// center value and the asymptotic target on each side of the lattice.
type Quantity struct {
	V0              float64 `json:"v0" yaml:"v0"`
	MirrorTarget    float64 `json:"mirror_target" yaml:"mirror_target"`
	WaveguideTarget float64 `json:"waveguide_target" yaml:"waveguide_target"`
}

type TaperSpec struct {
	NExt int     `json:"n_ext" yaml:"n_ext"`
	DelX float64 `json:"delx" yaml:"delx"`
	M    float64 `json:"m" yaml:"m"`

	D Quantity `json:"d" yaml:"d"`
	H Quantity `json:"h" yaml:"h"`
}

type ProfileRow struct {
	Index int
	D     float64
	H     float64
}

type GeometryProfile []ProfileRow
