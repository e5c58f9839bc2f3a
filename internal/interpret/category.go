package interpret

import "github.com/komekomeaaa/tarot/internal/domain"

// CategoryTemplate is the text family for one life category.
type CategoryTemplate struct {
	Thesis    Template
	Situation Template
	Obstacle  Template
	Advice    Template
	KeyLine   string
	Message   Template // optional sample message
}

var categoryTemplates = map[domain.Category]CategoryTemplate{
	domain.CategoryLove: {
		Thesis: "The \"{DOMINANT_SUIT}\" side is strongest right now. The focus is to steer toward {ADVICE_KW}.\n" +
			"What you want, \"{USER_GOAL}\", bends out of shape the more you rush it, so settle the flow with one light move first.",
		Situation: "As {SITUATION_CARD} shows, the relationship is at the \"{SITUATION_KW}\" stage. There is room to move, but the weight of your words will change the result.",
		Obstacle:  "The obstacle is {OBSTACLE_CARD}. Being {OBSTACLE_ORI}, it brings out \"{OBSTACLE_KW}\". Rushing to confirm feelings here will land on them as pressure.",
		Advice: "The advice is {ADVICE_CARD}. First priority is a point of contact that costs them as little as possible.\n" +
			"Rather than chasing an answer, move one step in a form that is easy to respond to.",
		KeyLine: "The key is not a heavy check-in but a light point of contact that invites a reply.",
		Message: "(Sample message)\n\"Quick question: do you have a few minutes to talk sometime this week? No worries if not!\"",
	},
	domain.CategoryWork: {
		Thesis: "This reading is about your decision axis and your working steps. {ADVICE_KW} is the key.\n" +
			"To reach \"{USER_GOAL}\", lead with the conclusion and line up the conditions (deadline, priority) before you move.",
		Situation: "{SITUATION_CARD} shows the current state as \"{SITUATION_KW}\". Tasks, expectations or responsibility tend to swell in this layout.",
		Obstacle: "{OBSTACLE_CARD} is the obstacle. Being {OBSTACLE_ORI}, it tends to jam at \"{OBSTACLE_KW}\".\n" +
			"The more the issues blur together, the more friction you get with people, reviews or quality.",
		Advice: "{ADVICE_CARD} points to \"{ADVICE_KW}\".\n" +
			"What you need is agreement, not explanation. Narrow it to one condition and bring the next checkpoint with it.",
		KeyLine: "The key is agreement over explanation. Offer a single priority and a single deadline.",
		Message: "(Sample message)\n\"Sharing the conclusion first: to get to {USER_GOAL}, I'd like to prioritise A this week, due on the [date]. If that works for you I'll proceed on that basis.\"",
	},
	domain.CategoryMoney: {
		Thesis: "A money reading is about how to set things in order, not a prophecy. The focus is {ADVICE_KW}.\n" +
			"Toward \"{USER_GOAL}\", the \"{DOMINANT_SUIT}\" side is showing, so making one number visible will quiet the worry.",
		Situation: "{SITUATION_CARD} shows \"{SITUATION_KW}\". The bottleneck is more likely spending, fixed costs or habits than income.",
		Obstacle: "The shadow of {OBSTACLE_CARD} is \"{OBSTACLE_KW}\". Being {OBSTACLE_ORI}, haste or impulse can tip your judgement.\n" +
			"Plug the leaks before you try to grow anything.",
		Advice: "{ADVICE_CARD} points to \"{ADVICE_KW}\".\n" +
			"Today, pick one number (a fixed cost, a repayment, a savings amount) and decide the next move for it.",
		KeyLine: "The key is order, not prophecy. Make the numbers small and visible, then decide which leak to close first.",
	},
	domain.CategoryHealth: {
		Thesis: "A health reading reads tendencies and does not diagnose. The focus is {ADVICE_KW}.\n" +
			"For \"{USER_GOAL}\", this layout improves the more you put recovery in order: sleep, food, rest, load.",
		Situation: "{SITUATION_CARD} shows \"{SITUATION_KW}\". Energy and mood come in waves and no single cause stands out.",
		Obstacle: "The shadow of {OBSTACLE_CARD} is \"{OBSTACLE_KW}\". When {OBSTACLE_ORI}, strain piles up and worry grows.\n" +
			"Settling in beats pushing harder.",
		Advice: "{ADVICE_CARD} points to \"{ADVICE_KW}\".\n" +
			"Today, write down a timeline of how you feel and how you live, and get ready to reach out to a professional if needed.",
		KeyLine: "The key is care, not a verdict. Keep a timeline of how you feel and be ready to ask a professional.",
	},
	domain.CategoryRelationship: {
		Thesis: "The core of this reading is distance and how you phrase things. The key is {ADVICE_KW}.\n" +
			"To reach \"{USER_GOAL}\" without breaking the bond, state your boundary in a few short words.",
		Situation: "{SITUATION_CARD} shows \"{SITUATION_KW}\". You tend to carry too much here, so roles and expectations have gone vague.",
		Obstacle:  "The shadow of {OBSTACLE_CARD} is \"{OBSTACLE_KW}\". Being {OBSTACLE_ORI}, misunderstanding, holding back and second-guessing wear you down.",
		Advice: "{ADVICE_CARD} points to \"{ADVICE_KW}\".\n" +
			"Agreement over explanation. Do not ask more of them; set just one rule of your own.",
		KeyLine: "The key is agreement over explanation. Ask nothing extra of them and set just one rule of your own.",
		Message: "(Sample message)\n\"I can't do it this time. I could do something else instead, or next week works for me.\"",
	},
	domain.CategoryFamily: {
		Thesis: "In family matters the answer is what lasts, not who is right. The key is {ADVICE_KW}.\n" +
			"For \"{USER_GOAL}\", skip the quick resolution and build house rules (time, chores, agreements) that fit daily life.",
		Situation: "{SITUATION_CARD} shows \"{SITUATION_KW}\". Feelings and living conditions tangle here, so conversations keep missing each other.",
		Obstacle:  "The shadow of {OBSTACLE_CARD} is \"{OBSTACLE_KW}\". Being {OBSTACLE_ORI}, patience and postponement pile up until they burst.",
		Advice: "{ADVICE_CARD} points to \"{ADVICE_KW}\".\n" +
			"Narrow it to one thing to decide, and set the date of the next talk along with it.",
		KeyLine: "The key is what lasts over who is right. Start by making one rule that fits daily life.",
	},
}

// LookupCategory returns the template family for c.
func LookupCategory(c domain.Category) (CategoryTemplate, bool) {
	t, ok := categoryTemplates[c]
	return t, ok
}

// KeyLine returns the closing line of a category, or "" when unknown.
func KeyLine(c domain.Category) string {
	return categoryTemplates[c].KeyLine
}

var suitNames = map[domain.Suit]string{
	domain.Wands:     "drive and momentum (Wands)",
	domain.Cups:      "feeling and connection (Cups)",
	domain.Swords:    "thought and judgement (Swords)",
	domain.Pentacles: "the practical and the lasting (Pentacles)",
}

// SuitName is the display name of a suit. NoSuit reads as the whole spread.
func SuitName(s domain.Suit) string {
	if s == domain.NoSuit {
		return "the whole spread"
	}
	if n, ok := suitNames[s]; ok {
		return n
	}
	return string(s)
}

var signLines = map[domain.Deadline]string{
	domain.DeadlineToday:  "Check before the day ends whether you feel calmer or your decision feels lighter.",
	domain.DeadlineWeek:   "Watch over the next week for signs of improvement: their response, your progress, or how strong the worry is.",
	domain.DeadlineMonth:  "Check within a month whether you have a system that keeps this from repeating.",
	domain.DeadlineLonger: "Check over three months whether the new habit, setting or way of relating has taken hold.",
}

// SignLine returns the observation hint for a deadline. Unknown deadlines
// use the one-week line; "3months" is accepted for the longest bucket.
func SignLine(d domain.Deadline) string {
	if d == "3months" {
		d = domain.DeadlineLonger
	}
	if s, ok := signLines[d]; ok {
		return s
	}
	return signLines[domain.DeadlineWeek]
}
