// Package domain defines the entities produced by the scanner: findings for
// each of the four taxonomies, crumbs, influence edges, and the composite
// analysis that ties one run together. All tags are typed strings so they
// serialize by name.
package domain

// FrameType categorizes invisible architecture detected in text.
type FrameType string

const (
	FrameNormative     FrameType = "NORMATIVE"
	FrameLinguistic    FrameType = "LINGUISTIC"
	FrameInstitutional FrameType = "INSTITUTIONAL"
	FrameTemporal      FrameType = "TEMPORAL"
	FrameEpistemic     FrameType = "EPISTEMIC"
	FrameEconomic      FrameType = "ECONOMIC"
	FrameTechnological FrameType = "TECHNOLOGICAL"
	FrameMythological  FrameType = "MYTHOLOGICAL"
)

// MaskType categorizes performed identity in systems.
type MaskType string

const (
	MaskAuthority     MaskType = "AUTHORITY"
	MaskBenevolence   MaskType = "BENEVOLENCE"
	MaskNeutrality    MaskType = "NEUTRALITY"
	MaskMeritocracy   MaskType = "MERITOCRACY"
	MaskInevitability MaskType = "INEVITABILITY"
	MaskTradition     MaskType = "TRADITION"
	MaskInnovation    MaskType = "INNOVATION"
	MaskExpertise     MaskType = "EXPERTISE"
)

// SpellType categorizes narrative enchantment.
type SpellType string

const (
	SpellOriginMyth        SpellType = "ORIGIN_MYTH"
	SpellProgressNarrative SpellType = "PROGRESS_NARRATIVE"
	SpellFearNarrative     SpellType = "FEAR_NARRATIVE"
	SpellScarcity          SpellType = "SCARCITY_SPELL"
	SpellIdentity          SpellType = "IDENTITY_SPELL"
	SpellComplexity        SpellType = "COMPLEXITY_SPELL"
	SpellUnity             SpellType = "UNITY_SPELL"
	SpellBinary            SpellType = "BINARY_SPELL"
)

// PrisonType categorizes invisible constraint.
type PrisonType string

const (
	PrisonChoiceArchitecture  PrisonType = "CHOICE_ARCHITECTURE"
	PrisonOvertonWindow       PrisonType = "OVERTON_WINDOW"
	PrisonDebtStructure       PrisonType = "DEBT_STRUCTURE"
	PrisonCredentialGate      PrisonType = "CREDENTIAL_GATE"
	PrisonPlatformLock        PrisonType = "PLATFORM_LOCK"
	PrisonTemporalTrap        PrisonType = "TEMPORAL_TRAP"
	PrisonIdentityCage        PrisonType = "IDENTITY_CAGE"
	PrisonLearnedHelplessness PrisonType = "LEARNED_HELPLESSNESS"
)

// CrumbType categorizes traces left for other seekers.
type CrumbType string

const (
	CrumbQuestion CrumbType = "QUESTION"
	CrumbPattern  CrumbType = "PATTERN"
	CrumbParadox  CrumbType = "PARADOX"
	CrumbBridge   CrumbType = "BRIDGE"
	CrumbMirror   CrumbType = "MIRROR"
	CrumbTrail    CrumbType = "TRAIL"
	CrumbSignal   CrumbType = "SIGNAL"
)

// SeeingDepth is the level of structural awareness achieved by an analysis.
type SeeingDepth string

const (
	DepthSurface    SeeingDepth = "surface"
	DepthPattern    SeeingDepth = "pattern"
	DepthStructure  SeeingDepth = "structure"
	DepthGenerative SeeingDepth = "generative"
	DepthRecursive  SeeingDepth = "recursive"
	DepthIntegral   SeeingDepth = "integral"
)

// Crumb visibility levels.
const (
	VisibilityHidden = "hidden"
	VisibilitySubtle = "subtle"
	VisibilityPublic = "public"
)
