package safety

import (
	"regexp"

	"github.com/komekomeaaa/tarot/internal/domain"
)

// Advisory lines shown beside a reading. They point to real help and never
// replace the reading.
const (
	AdvisoryCrisis     = "If there is any sign of self-harm or harm to others, contact a crisis support line rather than relying on a reading (in the US call or text 988; in the UK call Samaritans on 116 123)."
	AdvisoryHealth     = "If you feel seriously unwell or unsafe, don't decide by a reading; contact a doctor or a public health line early."
	AdvisoryDebt       = "Don't try to settle debts through a reading; get ready to talk to a professional such as a lawyer or a debt advice service."
	AdvisoryInvestment = "Don't make investment decisions by a reading. Always seek professional advice and decide on your own responsibility."
	AdvisoryPet        = "Don't judge a pet's health by a reading; take a log of the symptoms to a vet."
)

var (
	crisisInput     = regexp.MustCompile(`(?i)\b(want(ed)? to die|want to disappear|suicid(e|al)|kill(ing)? myself|self[- ]harm|cutting myself)\b`)
	healthInput     = regexp.MustCompile(`(?i)\b(hospital|diagnos(is|ed|e)|symptoms?|pain(ful)?|hurts?|suffering)\b`)
	debtInput       = regexp.MustCompile(`(?i)\b(debts?|loans?|repay(ment|ing)?|borrow(ed|ing)?)\b`)
	investmentInput = regexp.MustCompile(`(?i)\b(invest(ing|ment|ments)?|stocks?|shares|forex|crypto(currency)?|gambl(e|ing))\b`)
	petInput        = regexp.MustCompile(`(?i)\b(pets?|dogs?|cats?|pupp(y|ies)|kittens?|animals?|listless)\b`)
)

// Advisory returns the safety line for the user's own words, or "" when none
// applies. Crisis language is checked for every category.
func Advisory(category domain.Category, input string) string {
	if crisisInput.MatchString(input) {
		return AdvisoryCrisis
	}
	switch category {
	case domain.CategoryHealth:
		if healthInput.MatchString(input) {
			return AdvisoryHealth
		}
	case domain.CategoryMoney:
		if debtInput.MatchString(input) {
			return AdvisoryDebt
		}
		if investmentInput.MatchString(input) {
			return AdvisoryInvestment
		}
	case domain.CategoryFamily:
		if petInput.MatchString(input) {
			return AdvisoryPet
		}
	}
	return ""
}
