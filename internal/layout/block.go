// Package layout decomposes documents into blocks and packs measured blocks
// into fixed-size page frames.
package layout

// Kind classifies a block for packing.
type Kind string

const (
	KindHeading Kind = "heading"
	KindContent Kind = "content"
	KindSpacer  Kind = "spacer"
)

// Role selects how a block is formatted and measured.
type Role string

const (
	RoleIdentity  Role = "identity"
	RoleContact   Role = "contact"
	RoleHeading   Role = "heading"
	RoleSummary   Role = "summary"
	RoleSkills    Role = "skills"
	RoleSkillList Role = "skill-list"
	RoleEntry     Role = "entry"
	RoleEducation Role = "education"
	RoleBullet    Role = "bullet"
	RoleDetail    Role = "detail"
	RoleCompact   Role = "compact"
	RoleItem      Role = "item"
	RoleSpacer    Role = "spacer"
)

// Block is an atomic, independently measurable unit of content. Blocks are
// never split or resized.
type Block struct {
	Key     string `json:"key"`
	Kind    Kind   `json:"kind"`
	Role    Role   `json:"role"`
	Section string `json:"section"`

	Text     string   `json:"text,omitempty"`
	Title    string   `json:"title,omitempty"`
	Subtitle string   `json:"subtitle,omitempty"`
	Aside    string   `json:"aside,omitempty"`
	Body     string   `json:"body,omitempty"`
	Items    []string `json:"items,omitempty"`

	// Height is the fixed height of a spacer.
	Height float64 `json:"height,omitempty"`
	// First marks the first heading of a column; it only drops the top margin.
	First bool `json:"first,omitempty"`
}

// Columns holds the block sequence of each column.
type Columns struct {
	Main      []Block `json:"main"`
	Secondary []Block `json:"secondary"`
}
