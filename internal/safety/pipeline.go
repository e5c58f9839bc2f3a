package safety

import "github.com/komekomeaaa/tarot/internal/domain"

// Outcome is the final state of text after the whole pipeline ran.
type Outcome struct {
	Text       string
	Blocked    bool
	Warnings   []domain.SafetyWarning
	Advisories []string
}

// Critical returns the first critical warning, if any.
func (o Outcome) Critical() (domain.SafetyWarning, bool) {
	for _, w := range o.Warnings {
		if w.Severity == SeverityCritical {
			return w, true
		}
	}
	return domain.SafetyWarning{}, false
}

// Pipeline runs filters in order, each on the text left by the previous one.
type Pipeline struct {
	filters []Filter
}

// NewPipeline builds a pipeline. With no filters the default set is used.
func NewPipeline(filters ...Filter) *Pipeline {
	if len(filters) == 0 {
		filters = DefaultFilters()
	}
	return &Pipeline{filters: filters}
}

func applies(f Filter, c domain.Category) bool {
	for _, fc := range f.Categories() {
		if fc == c {
			return true
		}
	}
	return false
}

// Scan runs every filter relevant to category. When any filter raised a
// critical warning the text is replaced by the safe-harbor message of the
// first one, whatever the earlier rewrites did. Advisories are collected but
// not appended.
func (p *Pipeline) Scan(category domain.Category, text string, uc domain.UserContext) Outcome {
	out := Outcome{Text: text}
	for _, f := range p.filters {
		if !applies(f, category) {
			continue
		}
		res := f.Check(out.Text, uc)
		out.Text = res.Text
		out.Warnings = append(out.Warnings, res.Warnings...)
		if res.Advisory != "" {
			out.Advisories = append(out.Advisories, res.Advisory)
		}
	}

	if w, ok := out.Critical(); ok {
		out.Text = SafeHarbor(w.Type)
		out.Blocked = true
		out.Advisories = nil
	}
	return out
}

// Apply is Scan with the advisories appended to the surviving text.
func (p *Pipeline) Apply(category domain.Category, text string, uc domain.UserContext) Outcome {
	out := p.Scan(category, text, uc)
	for _, a := range out.Advisories {
		out.Text += "\n\n" + a
	}
	return out
}

var safeHarbors = map[string]string{
	TypeHealthDiagnosis: "Questions about your health are best taken to a medical professional.\n\n" +
		"Where to turn:\n" +
		"- your regular doctor or clinic\n" +
		"- a public health advice line (for example NHS 111 in the UK)\n" +
		"- your local health consultation office",

	TypeSelfHarm: "Please don't carry this alone. Trained people are ready to listen to you.\n\n" +
		"Where to turn:\n" +
		"- 988 Suicide & Crisis Lifeline (US): call or text 988, 24 hours\n" +
		"- Samaritans (UK and Ireland): 116 123, 24 hours\n" +
		"- Inochi no Denwa (Japan): 0570-783-556\n" +
		"- your local emergency number if you are in immediate danger",

	TypeLegalEncouragement: "Getting help from a professional is one way toward a healthier relationship.\n\n" +
		"Where to turn:\n" +
		"- a counselling service\n" +
		"- a legal advice service\n" +
		"- your local family support office",

	"default": "For a question like this, we recommend talking to a professional.\n\n" +
		"Where to turn:\n" +
		"- a counselling service\n" +
		"- your local general consultation office",
}

// SafeHarbor returns the canned replacement text for a warning type.
func SafeHarbor(warningType string) string {
	if s, ok := safeHarbors[warningType]; ok {
		return s
	}
	return safeHarbors["default"]
}
