package sigil

// Profile is the fixed description of one of the sixteen types.
type Profile struct {
	Code        Code     `json:"code"`
	Name        string   `json:"name"`
	Lens        string   `json:"lens"`
	Keywords    []string `json:"keywords"`
	ActionStyle string   `json:"action_style"`
}

// GenericLens is returned for codes with no profile.
const GenericLens = "Trust your instincts and take one step in the direction the cards point."

var profiles = map[Code]Profile{
	// catalyst + aether
	"VIEQ": {
		Code: "VIEQ", Name: "Astra Seer",
		Lens:        "An innovator who holds up an ideal and cuts to the essence by intuition, with an eye for the whole picture.",
		Keywords:    []string{"ideal", "intuition", "breakthrough"},
		ActionStyle: "Start small and fast: give the hunch a shape.",
	},
	"VIED": {
		Code: "VIED", Name: "Oracle Keeper",
		Lens:        "A charismatic guide who turns ideals into firm decisions and leads with steady conviction.",
		Keywords:    []string{"vision", "conviction", "leadership"},
		ActionStyle: "Commit: decide and stand by it.",
	},
	"VILQ": {
		Code: "VILQ", Name: "Flame Philosopher",
		Lens:        "A revolutionary who builds ideals out of logic and argues for them with heat; contradictions do not get a pass.",
		Keywords:    []string{"logic", "passion", "argument"},
		ActionStyle: "Strategize: break through with reasoning.",
	},
	"VILD": {
		Code: "VILD", Name: "Truth Weaver",
		Lens:        "A builder of systems who pursues an ideal with cool precision and weaves the facts into one fabric.",
		Keywords:    []string{"system", "strategy", "reconstruction"},
		ActionStyle: "Rebuild: change the mechanism, not the symptom.",
	},

	// catalyst + terra
	"VCEQ": {
		Code: "VCEQ", Name: "Path Forger",
		Lens:        "A mood maker who starts new currents from within a web of people.",
		Keywords:    []string{"connection", "flow", "influence"},
		ActionStyle: "Involve: bring people along.",
	},
	"VCED": {
		Code: "VCED", Name: "Stone Crafter",
		Lens:        "A site foreman with the drive to turn plans into something solid.",
		Keywords:    []string{"action", "reality", "production"},
		ActionStyle: "Produce: make it tangible.",
	},
	"VCLQ": {
		Code: "VCLQ", Name: "Steel Strategist",
		Lens:        "A tactician who attacks boldly and logically on the strength of real data.",
		Keywords:    []string{"efficiency", "victory", "tactics"},
		ActionStyle: "Optimize: take the shortest road.",
	},
	"VCLD": {
		Code: "VCLD", Name: "Structure Sage",
		Lens:        "A problem solver who spots the flaws in organizations and systems and rebuilds them.",
		Keywords:    []string{"optimization", "problem-solving", "structure"},
		ActionStyle: "Fix the flow: clear the bottleneck.",
	},

	// ward + aether
	"SIEQ": {
		Code: "SIEQ", Name: "Dream Walker",
		Lens:        "An artist who guards an inner world and grows a sensibility all their own.",
		Keywords:    []string{"sensitivity", "inner world", "artistry"},
		ActionStyle: "Reflect: savour it inwardly first.",
	},
	"SIED": {
		Code: "SIED", Name: "Still Water",
		Lens:        "A quiet pillar whose inner calm does not waver.",
		Keywords:    []string{"serenity", "acceptance", "stability"},
		ActionStyle: "Wait and observe.",
	},
	"SILQ": {
		Code: "SILQ", Name: "Mirror Judge",
		Lens:        "A solitary critic who pursues inner logical correctness.",
		Keywords:    []string{"objectivity", "self-correction", "aesthetics"},
		ActionStyle: "Self-correct: straighten your own line first.",
	},
	"SILD": {
		Code: "SILD", Name: "Archive Keeper",
		Lens:        "A sage who gathers knowledge and experience, orders it, and keeps it safe.",
		Keywords:    []string{"knowledge", "tradition", "archive"},
		ActionStyle: "Refer: learn from precedent.",
	},

	// ward + terra
	"SCEQ": {
		Code: "SCEQ", Name: "Earth Tender",
		Lens:        "A caregiver who cherishes and protects the people and places close by.",
		Keywords:    []string{"care", "protection", "empathy"},
		ActionStyle: "Nurture: grow and protect.",
	},
	"SCED": {
		Code: "SCED", Name: "Root Guardian",
		Lens:        "A guardian resolved to defend tradition and community to the end.",
		Keywords:    []string{"responsibility", "defense", "community"},
		ActionStyle: "Fortify: shore up the defenses.",
	},
	"SCLQ": {
		Code: "SCLQ", Name: "Balance Smith",
		Lens:        "A smith who logically tunes fairness and balance inside relationships.",
		Keywords:    []string{"balance", "fairness", "adjustment"},
		ActionStyle: "Balance: adjust before advancing.",
	},
	"SCLD": {
		Code: "SCLD", Name: "Foundation Master",
		Lens:        "A practitioner who secures the practical base of everyday life with logic.",
		Keywords:    []string{"foundation", "risk management", "practicality"},
		ActionStyle: "Stabilize: firm up the ground.",
	},
}

// LookupProfile returns the profile for code.
func LookupProfile(code Code) (Profile, bool) {
	p, ok := profiles[code]
	return p, ok
}

// Profiles returns all sixteen profiles in code order.
func Profiles() []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, c := range AllCodes() {
		out = append(out, profiles[c])
	}
	return out
}

// AllCodes enumerates the sixteen codes in axis order.
func AllCodes() []Code {
	codes := make([]Code, 0, 16)
	for _, a := range []byte{Axes[0].First, Axes[0].Second} {
		for _, b := range []byte{Axes[1].First, Axes[1].Second} {
			for _, c := range []byte{Axes[2].First, Axes[2].Second} {
				for _, d := range []byte{Axes[3].First, Axes[3].Second} {
					codes = append(codes, Code([]byte{a, b, c, d}))
				}
			}
		}
	}
	return codes
}

// LensFor returns the profile lens sentence, or GenericLens.
func LensFor(code Code) string {
	if p, ok := profiles[code]; ok {
		return p.Lens
	}
	return GenericLens
}
